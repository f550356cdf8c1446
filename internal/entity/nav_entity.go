package entity

import (
	"time"

	"github.com/google/uuid"
)

// RootNavParid is the reserved parent id of a note's root nav ("no parent").
const RootNavParid = "00000000-0000-0000-0000-000000000000"

// RootNavContent is the fixed content marker written into every root nav.
const RootNavContent = "ROOT"

// Nav is one node of an outline tree. The tree is flat in storage: each nav
// points at its parent through Parid and siblings sort ascending by
// SameDeepOrder. IsDelete is a soft delete; the row stays visible to the sync
// feed so clients replicate the deletion.
type Nav struct {
	Id            uuid.UUID
	Parid         string
	SameDeepOrder float64
	Content       string
	AccountId     int64
	NoteId        string
	DatabaseId    string
	IsDisplay     bool
	IsPublic      bool
	IsDelete      bool
	Properties    string
	ExtraId       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
