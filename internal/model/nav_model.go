package model

import (
	"time"

	"github.com/google/uuid"
)

// Nav rows carry note_id and database_id denormalized so the sync feed can
// scan one table. parid references another nav in the same note (or the root
// sentinel) but is deliberately not a foreign key.
type Nav struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Parid         string    `gorm:"type:varchar(64);not null"`
	SameDeepOrder float64   `gorm:"not null;default:0"`
	Content       string    `gorm:"type:text;not null;default:''"`
	AccountId     int64     `gorm:"not null"`
	NoteId        string    `gorm:"type:varchar(64);not null;index"`
	DatabaseId    string    `gorm:"type:varchar(64);not null;index:idx_navs_db_updated,priority:1"`
	IsDisplay     bool      `gorm:"not null;default:true"`
	IsPublic      bool      `gorm:"not null;default:false"`
	IsDelete      bool      `gorm:"not null;default:false"`
	Properties    string    `gorm:"type:text;not null;default:''"`
	ExtraId       string    `gorm:"type:varchar(64);not null;default:''"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;index:idx_navs_db_updated,priority:2"`
}

func (Nav) TableName() string {
	return "hulunote_navs"
}
