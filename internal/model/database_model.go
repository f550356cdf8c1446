package model

import (
	"time"

	"github.com/google/uuid"
)

// Soft delete on all hulunote tables is a plain is_delete column, not
// gorm.DeletedAt: deleted rows must stay visible to the sync feed and are
// excluded from default listings explicitly by query specifications.
type Database struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	IsDelete    bool      `gorm:"not null;default:false"`
	IsPublic    bool      `gorm:"not null;default:false"`
	IsDefault   bool      `gorm:"not null;default:false"`
	AccountId   int64     `gorm:"not null;index"`
	Setting     string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Database) TableName() string {
	return "hulunote_databases"
}
