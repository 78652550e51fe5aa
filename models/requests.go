package models

// Credentials are exchanged for an access token.
type Credentials struct {
	Subject string `json:"subject"`
	APIKey  string `json:"api_key"`
}

// NoteRequest is the body of the create and update note requests.
type NoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag,omitempty"`
}
