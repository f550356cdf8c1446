package entity

import (
	"time"

	"github.com/google/uuid"
)

// Database is a user-owned namespace of notes. It is a domain term, not the
// storage engine.
type Database struct {
	Id          uuid.UUID
	Name        string
	Description string
	IsDelete    bool
	IsPublic    bool
	IsDefault   bool
	AccountId   int64
	Setting     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
