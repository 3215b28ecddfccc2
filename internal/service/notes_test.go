// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotesService(t *testing.T, api *fakeNotesAPI, authenticated bool) *NotesService {
	t.Helper()
	auth := newTestAuthService(api, &fakeSessionStore{})
	if authenticated {
		api.loginToken = "tok-123"
		require.NoError(t, auth.Login(context.Background(), "alice", "s3cret"))
	}

	svc := NewNotesService(api, auth, logger.Nop())
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return svc
}

// ── LoadPublic / LoadPrivate ──────────────────────────────────────────────────

func TestLoadPublic(t *testing.T) {
	api := &fakeNotesAPI{publicNotes: sampleNotes()}
	svc := newTestNotesService(t, api, false)

	notes, err := svc.LoadPublic(context.Background())

	require.NoError(t, err)
	assert.Len(t, notes, 3)
	assert.Len(t, svc.Public(), 3)
}

func TestLoadPublic_ServerError(t *testing.T) {
	api := &fakeNotesAPI{publicErr: adapter.ErrInternalServerError}
	svc := newTestNotesService(t, api, false)
	api.publicErr = nil
	api.publicNotes = sampleNotes()
	_, err := svc.LoadPublic(context.Background())
	require.NoError(t, err)

	// a later failed fetch keeps the previously cached list
	api.publicErr = adapter.ErrInternalServerError
	_, err = svc.LoadPublic(context.Background())

	require.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Len(t, svc.Public(), 3)
}

func TestLoadPrivate(t *testing.T) {
	api := &fakeNotesAPI{privateNotes: sampleNotes()[:2]}
	svc := newTestNotesService(t, api, true)

	notes, err := svc.LoadPrivate(context.Background())

	require.NoError(t, err)
	assert.Len(t, notes, 2)
	assert.Len(t, svc.Private(), 2)
}

func TestLoadPrivate_NotAuthenticated(t *testing.T) {
	svc := newTestNotesService(t, &fakeNotesAPI{}, false)

	_, err := svc.LoadPrivate(context.Background())

	require.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Create ────────────────────────────────────────────────────────────────────

// TestCreate verifies that the locally assembled note carries the server id,
// the session username and local timestamps, and lands first in the cache.
func TestCreate(t *testing.T) {
	api := &fakeNotesAPI{privateNotes: sampleNotes(), createID: 42}
	svc := newTestNotesService(t, api, true)
	_, err := svc.LoadPrivate(context.Background())
	require.NoError(t, err)

	note, err := svc.Create(context.Background(), models.CreateNoteRequest{
		Title:    "  groceries  ",
		Content:  "milk, eggs",
		IsPublic: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), note.ID)
	assert.Equal(t, "groceries", note.Title)
	assert.Equal(t, "alice", note.User)
	assert.True(t, note.IsPublic)
	assert.Equal(t, svc.now(), note.CreatedAt)
	assert.Equal(t, svc.now(), note.UpdatedAt)

	private := svc.Private()
	require.Len(t, private, 4)
	assert.Equal(t, int64(42), private[0].ID)

	// the request went out trimmed
	require.Len(t, api.createReqs, 1)
	assert.Equal(t, "groceries", api.createReqs[0].Title)
}

func TestCreate_ValidationBlocksRequest(t *testing.T) {
	api := &fakeNotesAPI{}
	svc := newTestNotesService(t, api, true)

	tests := []struct {
		name    string
		req     models.CreateNoteRequest
		wantErr error
	}{
		{"empty title", models.CreateNoteRequest{Title: "   ", Content: "body"}, ErrValidationEmptyTitle},
		{"empty content", models.CreateNoteRequest{Title: "title", Content: "\n\t"}, ErrValidationEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// no request ever reached the server
	assert.Empty(t, api.createReqs)
}

func TestCreate_NotAuthenticated(t *testing.T) {
	svc := newTestNotesService(t, &fakeNotesAPI{}, false)

	_, err := svc.Create(context.Background(), models.CreateNoteRequest{Title: "t", Content: "c"})

	require.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestUpdate(t *testing.T) {
	api := &fakeNotesAPI{privateNotes: sampleNotes()}
	svc := newTestNotesService(t, api, true)
	_, err := svc.LoadPrivate(context.Background())
	require.NoError(t, err)

	note, err := svc.Update(context.Background(), 2, models.CreateNoteRequest{
		Title:   "renamed",
		Content: "rewritten",
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", note.Title)
	assert.Equal(t, svc.now(), note.UpdatedAt)

	require.Len(t, api.updateIDs, 1)
	assert.Equal(t, int64(2), api.updateIDs[0])
	require.NotNil(t, api.updateReqs[0].Title)
	assert.Equal(t, "renamed", *api.updateReqs[0].Title)

	// cached copy patched in place
	private := svc.Private()
	assert.Equal(t, "renamed", private[1].Title)
}

func TestUpdate_NotFound(t *testing.T) {
	api := &fakeNotesAPI{updateErr: adapter.ErrNotFound}
	svc := newTestNotesService(t, api, true)

	_, err := svc.Update(context.Background(), 404, models.CreateNoteRequest{Title: "t", Content: "c"})

	require.ErrorIs(t, err, ErrNoteNotFound)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	api := &fakeNotesAPI{privateNotes: sampleNotes()}
	svc := newTestNotesService(t, api, true)
	_, err := svc.LoadPrivate(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 2))

	assert.Equal(t, []int64{2}, api.deleteIDs)
	private := svc.Private()
	require.Len(t, private, 2)
	assert.Equal(t, int64(3), private[0].ID)
}

func TestDelete_ServerErrorKeepsCache(t *testing.T) {
	api := &fakeNotesAPI{privateNotes: sampleNotes()}
	svc := newTestNotesService(t, api, true)
	_, err := svc.LoadPrivate(context.Background())
	require.NoError(t, err)

	api.deleteErr = adapter.ErrForbidden
	err = svc.Delete(context.Background(), 2)

	require.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Len(t, svc.Private(), 3)
}

// ── Detail ────────────────────────────────────────────────────────────────────

// TestPublicDetail_CacheHit verifies that a cached note is served without a
// remote call.
func TestPublicDetail_CacheHit(t *testing.T) {
	api := &fakeNotesAPI{publicNotes: sampleNotes(), publicNoteErr: adapter.ErrInternalServerError}
	svc := newTestNotesService(t, api, false)
	_, err := svc.LoadPublic(context.Background())
	require.NoError(t, err)

	note, err := svc.PublicDetail(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "first", note.Title)
}

func TestPublicDetail_CacheMissFallsBackToRemote(t *testing.T) {
	api := &fakeNotesAPI{publicNote: models.Note{ID: 77, Title: "remote"}}
	svc := newTestNotesService(t, api, false)

	note, err := svc.PublicDetail(context.Background(), 77)

	require.NoError(t, err)
	assert.Equal(t, "remote", note.Title)
}

func TestPublicDetail_NotFound(t *testing.T) {
	api := &fakeNotesAPI{publicNoteErr: adapter.ErrNotFound}
	svc := newTestNotesService(t, api, false)

	_, err := svc.PublicDetail(context.Background(), 404)

	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestPrivateDetail(t *testing.T) {
	api := &fakeNotesAPI{privateNote: models.Note{ID: 5, Title: "mine"}}
	svc := newTestNotesService(t, api, true)

	note, err := svc.PrivateDetail(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "mine", note.Title)
}

func TestPrivateDetail_NotAuthenticated(t *testing.T) {
	svc := newTestNotesService(t, &fakeNotesAPI{}, false)

	_, err := svc.PrivateDetail(context.Background(), 5)

	require.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Stats / ResetPrivate ──────────────────────────────────────────────────────

func TestStats(t *testing.T) {
	api := &fakeNotesAPI{stats: models.Stats{TotalNotes: 10, PublicNotes: 4, PrivateNotes: 6}}
	svc := newTestNotesService(t, api, true)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalNotes)
}

func TestStats_NotAuthenticated(t *testing.T) {
	svc := newTestNotesService(t, &fakeNotesAPI{}, false)

	_, err := svc.Stats(context.Background())

	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestResetPrivate(t *testing.T) {
	api := &fakeNotesAPI{publicNotes: sampleNotes(), privateNotes: sampleNotes()}
	svc := newTestNotesService(t, api, true)
	_, err := svc.LoadPublic(context.Background())
	require.NoError(t, err)
	_, err = svc.LoadPrivate(context.Background())
	require.NoError(t, err)

	svc.ResetPrivate()

	assert.Empty(t, svc.Private())
	assert.Len(t, svc.Public(), 3)
}
