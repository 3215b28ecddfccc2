// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-client/models"
)

// NotesAPI is the client-side contract for the remote notes service. All
// methods issue a single HTTP request; authenticated endpoints use the bearer
// token previously stored via SetToken.
type NotesAPI interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty string clears it.
	SetToken(token string)
	// Token returns the currently held bearer token, or "" if none is set.
	Token() string

	// Login exchanges credentials for a bearer token via POST /login.
	// The token is NOT stored automatically; the caller decides whether
	// the new session replaces the current one.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// PublicNotes lists all public notes via GET /contents.
	PublicNotes(ctx context.Context) ([]models.Note, error)
	// PublicNote fetches one public note via GET /contents/{id}.
	PublicNote(ctx context.Context, id int64) (models.Note, error)

	// PrivateNotes lists the authenticated user's notes via GET /admin/contents.
	PrivateNotes(ctx context.Context) ([]models.Note, error)
	// PrivateNote fetches one owner-scoped note via GET /admin/contents/{id}.
	PrivateNote(ctx context.Context, id int64) (models.Note, error)

	// CreateNote creates a note via POST /admin/contents and returns the
	// server-assigned id.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (int64, error)
	// UpdateNote updates a note via PUT /admin/contents/{id}. Nil request
	// fields are left unchanged by the server.
	UpdateNote(ctx context.Context, id int64, req models.UpdateNoteRequest) error
	// DeleteNote deletes a note via DELETE /admin/contents/{id}.
	DeleteNote(ctx context.Context, id int64) error

	// Stats fetches the per-user aggregate counters via GET /admin/stats.
	Stats(ctx context.Context) (models.Stats, error)
}
