package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrLoginOnServer    = errors.New("login on server failed")

	ErrNoteNotFound = errors.New("note not found")

	ErrValidationEmptyTitle   = errors.New("title must not be empty")
	ErrValidationEmptyContent = errors.New("content must not be empty")
)
