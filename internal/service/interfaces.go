package service

import (
	"context"

	"github.com/MKhiriev/go-notes-client/models"
)

// ClientAuthService defines the client-side contract for the user session:
// exchanging credentials for a token, restoring a persisted session on
// startup, and tearing the session down on logout. Implementations own the
// in-memory session and keep it consistent with the durable session store
// and the adapter's bearer token.
type ClientAuthService interface {
	// Login authenticates against the server. On success the returned
	// token and the given username are stored in memory, installed on the
	// adapter, and persisted. A failed login leaves any prior session
	// untouched.
	Login(ctx context.Context, username, password string) error

	// Logout clears the session from memory, from the adapter, and from
	// durable storage. Logging out with no session is not an error.
	Logout() error

	// Restore reconstructs the session from durable storage. Partial or
	// expired state is discarded and reported as no session.
	Restore() (models.Session, error)

	// Session returns the current in-memory session (possibly invalid).
	Session() models.Session

	// IsAuthenticated reports whether a complete session is held.
	IsAuthenticated() bool
}

// ClientNotesService defines the client-side contract for note lists and
// note CRUD. Fetches replace the corresponding cached list; create, update,
// and delete patch the private cache in place so the UI can re-render
// without a second round trip.
type ClientNotesService interface {
	// LoadPublic fetches all public notes and replaces the public cache.
	LoadPublic(ctx context.Context) ([]models.Note, error)

	// LoadPrivate fetches the user's notes and replaces the private cache.
	// Fails with ErrNotAuthenticated when no session is held.
	LoadPrivate(ctx context.Context) ([]models.Note, error)

	// Create validates and creates a note, prepends it to the private
	// cache, and returns the cached copy.
	Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// Update validates and updates a note, patches the cached copy in
	// place, and returns it.
	Update(ctx context.Context, id int64, req models.CreateNoteRequest) (models.Note, error)

	// Delete deletes a note and removes it from the private cache.
	Delete(ctx context.Context, id int64) error

	// PublicDetail returns one public note, from cache when present,
	// falling back to a remote fetch for ids outside the cached list.
	PublicDetail(ctx context.Context, id int64) (models.Note, error)

	// PrivateDetail returns one of the user's notes, from cache when
	// present, falling back to a remote fetch.
	PrivateDetail(ctx context.Context, id int64) (models.Note, error)

	// Stats fetches the per-user aggregate counters.
	Stats(ctx context.Context) (models.Stats, error)

	// Public and Private return copies of the cached lists.
	Public() []models.Note
	Private() []models.Note

	// ResetPrivate discards the private cache. Called on logout so a
	// later session never sees another user's notes.
	ResetPrivate()
}
