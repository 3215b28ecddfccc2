package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
)

// NotesService implements [ClientNotesService]. It keeps an in-memory cache
// of the last-fetched public and private lists and patches the private cache
// in place after successful mutations.
type NotesService struct {
	api  adapter.NotesAPI
	auth ClientAuthService

	mu    sync.RWMutex
	cache notesCache

	now func() time.Time

	logger *logger.Logger
}

func NewNotesService(api adapter.NotesAPI, auth ClientAuthService, log *logger.Logger) *NotesService {
	return &NotesService{api: api, auth: auth, now: time.Now, logger: log}
}

// LoadPublic implements [ClientNotesService].
func (n *NotesService) LoadPublic(ctx context.Context) ([]models.Note, error) {
	notes, err := n.api.PublicNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load public notes: %w", err)
	}

	n.mu.Lock()
	n.cache.replacePublic(notes)
	n.mu.Unlock()

	n.logger.Debug().Int("count", len(notes)).Msg("public notes loaded")
	return append([]models.Note(nil), notes...), nil
}

// LoadPrivate implements [ClientNotesService].
func (n *NotesService) LoadPrivate(ctx context.Context) ([]models.Note, error) {
	if !n.auth.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	notes, err := n.api.PrivateNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load private notes: %w", err)
	}

	n.mu.Lock()
	n.cache.replacePrivate(notes)
	n.mu.Unlock()

	n.logger.Debug().Int("count", len(notes)).Msg("private notes loaded")
	return append([]models.Note(nil), notes...), nil
}

// Create implements [ClientNotesService]. The server answers a create with
// the new id only, so the cached copy is assembled locally: author from the
// current session, timestamps from the local clock. The next full fetch
// replaces it with the server's record.
func (n *NotesService) Create(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	req, err := normalizeNoteRequest(req)
	if err != nil {
		return models.Note{}, err
	}
	if !n.auth.IsAuthenticated() {
		return models.Note{}, ErrNotAuthenticated
	}

	id, err := n.api.CreateNote(ctx, req)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}

	now := n.now()
	note := models.Note{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		User:      n.auth.Session().Username,
		IsPublic:  req.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	n.mu.Lock()
	n.cache.prependPrivate(note)
	n.mu.Unlock()

	n.logger.Debug().Int64("id", id).Msg("note created")
	return note, nil
}

// Update implements [ClientNotesService].
func (n *NotesService) Update(ctx context.Context, id int64, req models.CreateNoteRequest) (models.Note, error) {
	req, err := normalizeNoteRequest(req)
	if err != nil {
		return models.Note{}, err
	}
	if !n.auth.IsAuthenticated() {
		return models.Note{}, ErrNotAuthenticated
	}

	update := models.UpdateNoteRequest{
		Title:    &req.Title,
		Content:  &req.Content,
		IsPublic: &req.IsPublic,
	}
	if err = n.api.UpdateNote(ctx, id, update); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotFound, err)
		}
		return models.Note{}, fmt.Errorf("update note: %w", err)
	}

	n.mu.Lock()
	note, ok := n.cache.patchPrivate(id, req, n.now())
	n.mu.Unlock()
	if !ok {
		// updated a note the cache never saw; the next fetch picks it up
		note = models.Note{ID: id, Title: req.Title, Content: req.Content, IsPublic: req.IsPublic}
	}

	n.logger.Debug().Int64("id", id).Msg("note updated")
	return note, nil
}

// Delete implements [ClientNotesService].
func (n *NotesService) Delete(ctx context.Context, id int64) error {
	if !n.auth.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := n.api.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
		}
		return fmt.Errorf("delete note: %w", err)
	}

	n.mu.Lock()
	n.cache.removePrivate(id)
	n.mu.Unlock()

	n.logger.Debug().Int64("id", id).Msg("note deleted")
	return nil
}

// PublicDetail implements [ClientNotesService].
func (n *NotesService) PublicDetail(ctx context.Context, id int64) (models.Note, error) {
	n.mu.RLock()
	note, ok := n.cache.lookupPublic(id)
	n.mu.RUnlock()
	if ok {
		return note, nil
	}

	note, err := n.api.PublicNote(ctx, id)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotFound, err)
		}
		return models.Note{}, fmt.Errorf("load public note: %w", err)
	}

	return note, nil
}

// PrivateDetail implements [ClientNotesService].
func (n *NotesService) PrivateDetail(ctx context.Context, id int64) (models.Note, error) {
	if !n.auth.IsAuthenticated() {
		return models.Note{}, ErrNotAuthenticated
	}

	n.mu.RLock()
	note, ok := n.cache.lookupPrivate(id)
	n.mu.RUnlock()
	if ok {
		return note, nil
	}

	note, err := n.api.PrivateNote(ctx, id)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotFound, err)
		}
		return models.Note{}, fmt.Errorf("load private note: %w", err)
	}

	return note, nil
}

// Stats implements [ClientNotesService].
func (n *NotesService) Stats(ctx context.Context) (models.Stats, error) {
	if !n.auth.IsAuthenticated() {
		return models.Stats{}, ErrNotAuthenticated
	}

	stats, err := n.api.Stats(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("load stats: %w", err)
	}

	return stats, nil
}

// Public implements [ClientNotesService].
func (n *NotesService) Public() []models.Note {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.cache.snapshotPublic()
}

// Private implements [ClientNotesService].
func (n *NotesService) Private() []models.Note {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.cache.snapshotPrivate()
}

// ResetPrivate implements [ClientNotesService].
func (n *NotesService) ResetPrivate() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cache.resetPrivate()
}

// normalizeNoteRequest trims the title and content and rejects requests
// where either is blank. Validation happens before any network call.
func normalizeNoteRequest(req models.CreateNoteRequest) (models.CreateNoteRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Title == "" {
		return models.CreateNoteRequest{}, ErrValidationEmptyTitle
	}
	if req.Content == "" {
		return models.CreateNoteRequest{}, ErrValidationEmptyContent
	}

	return req, nil
}
