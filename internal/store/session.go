// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's durable state: the session file that
// survives restarts. Everything else the client holds (note lists, view
// state) is deliberately in-memory only.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-client/models"
)

// ErrSessionNotFound is returned by Load when no usable session is stored.
var ErrSessionNotFound = errors.New("stored session not found")

// SessionStore is the durable holder of the auth token and username.
type SessionStore interface {
	// Save persists the session. Both fields are written together; a
	// session missing either field is rejected.
	Save(session models.Session) error
	// Load restores the persisted session. A file holding only one of the
	// two fields is treated as absent (partial state is a defect to guard
	// against, not a session).
	Load() (models.Session, error)
	// Clear removes the persisted session. Clearing an absent session is
	// not an error.
	Clear() error
}

type fileSessionStore struct {
	path string

	mu sync.Mutex
}

type persistedSession struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	SavedAt  time.Time `json:"saved_at"`
}

// NewFileSessionStore returns a SessionStore backed by a JSON file at path.
// The file is created on first Save with owner-only permissions.
func NewFileSessionStore(path string) (SessionStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is empty")
	}
	return &fileSessionStore{path: path}, nil
}

func (s *fileSessionStore) Save(session models.Session) error {
	if !session.Valid() {
		return fmt.Errorf("refusing to persist partial session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	state := persistedSession{
		Token:    session.Token,
		Username: session.Username,
		SavedAt:  time.Now().UTC(),
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *fileSessionStore) Load() (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var state persistedSession
	if err = json.Unmarshal(data, &state); err != nil {
		return models.Session{}, fmt.Errorf("decode session file: %w", err)
	}

	session := models.Session{Token: state.Token, Username: state.Username}
	if !session.Valid() {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
