package dto

// ImportNoteJson is the schema of one import document: one note plus its
// full nav set.
type ImportNoteJson struct {
	Note ImportNoteData  `json:"note"`
	Navs []ImportNavData `json:"navs"`
}

type ImportNoteData struct {
	Id         string `json:"hulunote-notes/id"`
	Title      string `json:"hulunote-notes/title"`
	RootNavId  string `json:"hulunote-navs/root-nav-id"`
	IsDelete   *bool  `json:"hulunote-notes/is-delete"`
	IsPublic   *bool  `json:"hulunote-notes/is-public"`
	IsShortcut *bool  `json:"hulunote-notes/is-shortcut"`
}

type ImportNavData struct {
	Id            string  `json:"id"`
	Parid         string  `json:"parid"`
	Content       string  `json:"content"`
	SameDeepOrder float64 `json:"same-deep-order"`
	HulunoteNote  string  `json:"hulunote-note"`
	IsDisplay     *bool   `json:"is-display"`
	IsDelete      *bool   `json:"is-delete"`
}

type ImportedNote struct {
	File     string `json:"file"`
	NoteId   string `json:"note-id"`
	Title    string `json:"title"`
	NavCount int    `json:"nav-count"`
}

type ImportError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// ImportNotesResponse is a batch result: partial success is a normal
// outcome, not an error state.
type ImportNotesResponse struct {
	Success       bool            `json:"success"`
	ImportedCount int             `json:"imported-count"`
	ErrorCount    int             `json:"error-count"`
	Imported      []*ImportedNote `json:"imported"`
	Errors        []*ImportError  `json:"errors"`
}
