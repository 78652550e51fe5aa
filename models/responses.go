package models

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NotesResponse is a page of notes.
type NotesResponse struct {
	Notes []Note `json:"notes"`

	// Length is the number of entries in Notes.
	Length int `json:"length"`
}

// SessionResponse is returned by GET /api/session.
type SessionResponse struct {
	Visits int `json:"visits"`
}
