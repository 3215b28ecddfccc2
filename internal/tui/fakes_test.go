package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/models"
)

type fakeAuth struct {
	session  models.Session
	loginErr error

	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, username, _ string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.session = models.Session{Token: "tok", Username: username}
	return nil
}

func (f *fakeAuth) Logout() error {
	f.logoutCalls++
	f.session = models.Session{}
	return nil
}

func (f *fakeAuth) Restore() (models.Session, error) {
	return f.session, nil
}

func (f *fakeAuth) Session() models.Session {
	return f.session
}

func (f *fakeAuth) IsAuthenticated() bool {
	return f.session.Valid()
}

type fakeNotes struct {
	public  []models.Note
	private []models.Note
	stats   models.Stats

	loadErr error

	createCalls []models.CreateNoteRequest
	updateIDs   []int64
	deleteIDs   []int64
	resetCalls  int
}

func (f *fakeNotes) LoadPublic(context.Context) ([]models.Note, error) {
	return f.public, f.loadErr
}

func (f *fakeNotes) LoadPrivate(context.Context) ([]models.Note, error) {
	return f.private, f.loadErr
}

func (f *fakeNotes) Create(_ context.Context, req models.CreateNoteRequest) (models.Note, error) {
	f.createCalls = append(f.createCalls, req)
	note := models.Note{ID: int64(len(f.createCalls)), Title: req.Title, Content: req.Content, IsPublic: req.IsPublic}
	f.private = append([]models.Note{note}, f.private...)
	return note, nil
}

func (f *fakeNotes) Update(_ context.Context, id int64, req models.CreateNoteRequest) (models.Note, error) {
	f.updateIDs = append(f.updateIDs, id)
	return models.Note{ID: id, Title: req.Title, Content: req.Content, IsPublic: req.IsPublic}, nil
}

func (f *fakeNotes) Delete(_ context.Context, id int64) error {
	f.deleteIDs = append(f.deleteIDs, id)
	for i := range f.private {
		if f.private[i].ID == id {
			f.private = append(f.private[:i], f.private[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeNotes) PublicDetail(_ context.Context, id int64) (models.Note, error) {
	for _, n := range f.public {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, service.ErrNoteNotFound
}

func (f *fakeNotes) PrivateDetail(_ context.Context, id int64) (models.Note, error) {
	for _, n := range f.private {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, service.ErrNoteNotFound
}

func (f *fakeNotes) Stats(context.Context) (models.Stats, error) {
	return f.stats, nil
}

func (f *fakeNotes) Public() []models.Note {
	return f.public
}

func (f *fakeNotes) Private() []models.Note {
	return f.private
}

func (f *fakeNotes) ResetPrivate() {
	f.resetCalls++
	f.private = nil
}
