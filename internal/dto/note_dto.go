package dto

type NoteInfo struct {
	Id         string `json:"hulunote-notes/id"`
	Title      string `json:"hulunote-notes/title"`
	DatabaseId string `json:"hulunote-notes/database-id"`
	RootNavId  string `json:"hulunote-notes/root-nav-id"`
	IsDelete   bool   `json:"hulunote-notes/is-delete"`
	IsPublic   bool   `json:"hulunote-notes/is-public"`
	IsShortcut bool   `json:"hulunote-notes/is-shortcut"`
	AccountId  int64  `json:"hulunote-notes/account-id"`
	Pv         int64  `json:"hulunote-notes/pv"`
	CreatedAt  string `json:"hulunote-notes/created-at"`
	UpdatedAt  string `json:"hulunote-notes/updated-at"`
}

type CreateNoteRequest struct {
	DatabaseRef
	Title string `json:"title" validate:"required"`

	// Optional client-assigned ids, honored when well-formed so offline-first
	// clients can pre-generate them.
	NoteId    string `json:"note-id"`
	RootNavId string `json:"root-nav-id"`
}

type GetNoteListRequest struct {
	DatabaseRef
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

type GetNoteListResponse struct {
	NoteList []*NoteInfo `json:"note-list"`
	AllPages int64       `json:"all-pages"`
}

type GetAllNoteListResponse struct {
	NoteList []*NoteInfo `json:"note-list"`
}

type UpdateNoteRequest struct {
	NoteId     string  `json:"note-id" validate:"required"`
	Title      *string `json:"title"`
	IsDelete   *bool   `json:"is-delete"`
	IsPublic   *bool   `json:"is-public"`
	IsShortcut *bool   `json:"is-shortcut"`
}

type UpdateNoteResponse struct {
	Success bool `json:"success"`
}
