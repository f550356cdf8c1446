package dto

type NavInfo struct {
	Id            string  `json:"id"`
	Parid         string  `json:"parid"`
	SameDeepOrder float64 `json:"same-deep-order"`
	Content       string  `json:"content"`
	AccountId     int64   `json:"account-id"`
	LastAccountId int64   `json:"last-account-id"`
	NoteId        string  `json:"note-id"`
	HulunoteNote  string  `json:"hulunote-note"`
	DatabaseId    string  `json:"database-id"`
	IsDisplay     bool    `json:"is-display"`
	IsPublic      bool    `json:"is-public"`
	IsDelete      bool    `json:"is-delete"`
	Properties    string  `json:"properties"`
	CreatedAt     string  `json:"created-at"`
	UpdatedAt     string  `json:"updated-at"`
}

// CreateOrUpdateNavRequest is a field-level patch: on update only the
// non-nil fields are written.
type CreateOrUpdateNavRequest struct {
	DatabaseRef
	NoteId     string   `json:"note-id" validate:"required"`
	Id         string   `json:"id"`
	Parid      *string  `json:"parid"`
	Content    *string  `json:"content"`
	IsDelete   *bool    `json:"is-delete"`
	IsDisplay  *bool    `json:"is-display"`
	Properties *string  `json:"properties"`
	Order      *float64 `json:"order"`
}

type CreateNavResponse struct {
	Success   bool     `json:"success"`
	Id        string   `json:"id"`
	Nav       *NavInfo `json:"nav,omitempty"`
	BackendTs int64    `json:"backend-ts"`
}

type GetNavsRequest struct {
	NoteId string `json:"note-id" validate:"required"`
}

type GetNavsResponse struct {
	NavList []*NavInfo `json:"nav-list"`
}

// GetAllNavsRequest drives both sync variants. BackendTs is the checkpoint a
// client echoes back ("changed strictly after this"); LastNavId optionally
// upgrades it to a composite cursor that is airtight at the checkpoint
// millisecond.
type GetAllNavsRequest struct {
	DatabaseRef
	BackendTs int64  `json:"backend-ts"`
	LastNavId string `json:"last-nav-id"`
	Page      int64  `json:"page"`
	Size      int64  `json:"size"`
}

type GetAllNavsByPageResponse struct {
	NavList   []*NavInfo `json:"nav-list"`
	AllPages  int64      `json:"all-pages"`
	BackendTs int64      `json:"backend-ts"`
}

type GetAllNavsResponse struct {
	NavList   []*NavInfo `json:"nav-list"`
	BackendTs int64      `json:"backend-ts"`
}
