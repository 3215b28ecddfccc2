package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/models"
)

// fakeNotesAPI is a scriptable in-memory NotesAPI. Each endpoint returns the
// corresponding canned value or error.
type fakeNotesAPI struct {
	mu    sync.Mutex
	token string

	loginToken string
	loginErr   error
	loginCalls []models.LoginRequest

	publicNotes []models.Note
	publicErr   error

	publicNote    models.Note
	publicNoteErr error

	privateNotes []models.Note
	privateErr   error

	privateNote    models.Note
	privateNoteErr error

	createID   int64
	createErr  error
	createReqs []models.CreateNoteRequest

	updateErr  error
	updateIDs  []int64
	updateReqs []models.UpdateNoteRequest

	deleteErr error
	deleteIDs []int64

	stats    models.Stats
	statsErr error
}

func (f *fakeNotesAPI) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeNotesAPI) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeNotesAPI) Login(_ context.Context, req models.LoginRequest) (string, error) {
	f.loginCalls = append(f.loginCalls, req)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeNotesAPI) PublicNotes(context.Context) ([]models.Note, error) {
	return f.publicNotes, f.publicErr
}

func (f *fakeNotesAPI) PublicNote(_ context.Context, _ int64) (models.Note, error) {
	return f.publicNote, f.publicNoteErr
}

func (f *fakeNotesAPI) PrivateNotes(context.Context) ([]models.Note, error) {
	return f.privateNotes, f.privateErr
}

func (f *fakeNotesAPI) PrivateNote(_ context.Context, _ int64) (models.Note, error) {
	return f.privateNote, f.privateNoteErr
}

func (f *fakeNotesAPI) CreateNote(_ context.Context, req models.CreateNoteRequest) (int64, error) {
	f.createReqs = append(f.createReqs, req)
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

func (f *fakeNotesAPI) UpdateNote(_ context.Context, id int64, req models.UpdateNoteRequest) error {
	f.updateIDs = append(f.updateIDs, id)
	f.updateReqs = append(f.updateReqs, req)
	return f.updateErr
}

func (f *fakeNotesAPI) DeleteNote(_ context.Context, id int64) error {
	f.deleteIDs = append(f.deleteIDs, id)
	return f.deleteErr
}

func (f *fakeNotesAPI) Stats(context.Context) (models.Stats, error) {
	return f.stats, f.statsErr
}

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	session models.Session
	has     bool

	saveErr  error
	loadErr  error
	clearErr error

	clearCalls int
}

func (f *fakeSessionStore) Save(session models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = session
	f.has = true
	return nil
}

func (f *fakeSessionStore) Load() (models.Session, error) {
	if f.loadErr != nil {
		return models.Session{}, f.loadErr
	}
	if !f.has {
		return models.Session{}, store.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeSessionStore) Clear() error {
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = models.Session{}
	f.has = false
	return nil
}
