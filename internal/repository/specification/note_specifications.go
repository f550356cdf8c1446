package specification

import "gorm.io/gorm"

// ByDatabaseID filters notes or navs by the owning database. The column is
// varchar on both tables, so the id travels as a string.
type ByDatabaseID struct {
	DatabaseID string
}

func (s ByDatabaseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("database_id = ?", s.DatabaseID)
}

// ByTitle filters notes by exact title.
type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// ShortcutsOnly keeps only notes pinned as shortcuts.
type ShortcutsOnly struct{}

func (s ShortcutsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_shortcut = true")
}
