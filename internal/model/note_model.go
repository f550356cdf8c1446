package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"type:varchar(255);not null"`
	DatabaseId string    `gorm:"type:varchar(64);not null;index"`
	RootNavId  string    `gorm:"type:varchar(64);not null"`
	IsDelete   bool      `gorm:"not null;default:false"`
	IsPublic   bool      `gorm:"not null;default:false"`
	IsShortcut bool      `gorm:"not null;default:false"`
	AccountId  int64     `gorm:"not null;index"`
	Pv         int64     `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "hulunote_notes"
}
