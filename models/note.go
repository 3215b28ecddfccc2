package models

import "time"

// Note is a single titled text record owned by a user of the remote notes
// service. The client only ever holds transient copies: the server assigns
// ID, User, and both timestamps, and once a note has been fetched into a
// view list its ID is treated as immutable for the rest of the session.
type Note struct {
	// ID is the server-assigned unique identifier of the note.
	ID int64 `json:"id"`

	// Title is the note headline. Required, non-empty after trimming.
	Title string `json:"title"`

	// Content is the note body. Required, non-empty after trimming.
	Content string `json:"content"`

	// User is the owner's username, assigned by the server from the
	// bearer token of the creating request.
	User string `json:"user"`

	// IsPublic marks the note as readable without authentication.
	IsPublic bool `json:"is_public"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the server-assigned last-modification timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteRequest is the payload for POST /admin/contents.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// UpdateNoteRequest is the payload for PUT /admin/contents/{id}.
// Nil fields are omitted and left unchanged by the server.
type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}
