// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (SessionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileSessionStore(path)
	require.NoError(t, err)
	return s, path
}

func TestNewFileSessionStore_EmptyPath(t *testing.T) {
	_, err := NewFileSessionStore("")
	require.Error(t, err)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	want := models.Session{Token: "sometoken", Username: "alice"}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	s, err := NewFileSessionStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(models.Session{Token: "tok", Username: "alice"}))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSave_OwnerOnlyPermissions(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Save(models.Session{Token: "tok", Username: "alice"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_RejectsPartialSession(t *testing.T) {
	s, _ := newTestStore(t)

	require.Error(t, s.Save(models.Session{Token: "tok"}))
	require.Error(t, s.Save(models.Session{Username: "alice"}))
	require.Error(t, s.Save(models.Session{}))
}

func TestLoad_NoFile(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLoad_PartialStateTreatedAsAbsent(t *testing.T) {
	s, path := newTestStore(t)

	// token without username must not resurrect a session
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"tok"}`), 0o600))

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLoad_MalformedFile(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := s.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestClear_RemovesFile(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Save(models.Session{Token: "tok", Username: "alice"}))

	require.NoError(t, s.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestClear_AbsentFileIsNoError(t *testing.T) {
	s, _ := newTestStore(t)
	assert.NoError(t, s.Clear())
}
