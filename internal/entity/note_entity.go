package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note groups one outline tree. RootNavId pins the tree's entry nav, which is
// created together with the note and never supplied afterwards.
type Note struct {
	Id         uuid.UUID
	Title      string
	DatabaseId string
	RootNavId  string
	IsDelete   bool
	IsPublic   bool
	IsShortcut bool
	AccountId  int64
	Pv         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
