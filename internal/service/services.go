// Package service holds the client's business layer: the session lifecycle
// and the cached view of the remote note collection. It sits between the
// HTTP adapter and the terminal UI.
package service

import (
	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/store"
)

// ClientServices bundles the client's services for injection into the UI.
type ClientServices struct {
	Auth  ClientAuthService
	Notes ClientNotesService
}

func NewClientServices(api adapter.NotesAPI, sessionStore store.SessionStore, log *logger.Logger) *ClientServices {
	auth := NewAuthService(api, sessionStore, log.GetChildLogger())
	notes := NewNotesService(api, auth, log.GetChildLogger())

	return &ClientServices{Auth: auth, Notes: notes}
}
