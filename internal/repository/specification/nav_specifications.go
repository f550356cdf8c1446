package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByNoteID filters navs by their owning note.
type ByNoteID struct {
	NoteID string
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

// UpdatedSince is the incremental sync cursor: rows whose updated_at strictly
// exceeds the checkpoint, in milliseconds since epoch. When AfterId is set the
// cursor is composite: rows at exactly the checkpoint millisecond are included
// when their id sorts after AfterId, which closes the page-boundary skip a
// timestamp-only cursor allows.
type UpdatedSince struct {
	Millis  int64
	AfterId *uuid.UUID
}

func (s UpdatedSince) Apply(db *gorm.DB) *gorm.DB {
	if s.AfterId != nil {
		return db.Where(
			"EXTRACT(EPOCH FROM updated_at) * 1000 > ? OR (EXTRACT(EPOCH FROM updated_at) * 1000 = ? AND id > ?)",
			float64(s.Millis), float64(s.Millis), *s.AfterId,
		)
	}
	return db.Where("EXTRACT(EPOCH FROM updated_at) * 1000 > ?", float64(s.Millis))
}

// SyncOrder sorts the sync feed: ascending updated_at with id as the
// deterministic tie-break. Resupplying the last row's cursor never re-receives
// or skips rows within a page.
type SyncOrder struct{}

func (s SyncOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at ASC, id ASC")
}

// TreeOrder sorts navs the way siblings render: ascending same_deep_order,
// ties broken by id so the order is stable.
type TreeOrder struct{}

func (s TreeOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("same_deep_order ASC, id ASC")
}
