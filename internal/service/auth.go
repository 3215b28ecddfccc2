package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService implements [ClientAuthService] on top of the notes API adapter
// and a durable session store.
type AuthService struct {
	api   adapter.NotesAPI
	store store.SessionStore

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

func NewAuthService(api adapter.NotesAPI, sessionStore store.SessionStore, log *logger.Logger) *AuthService {
	return &AuthService{api: api, store: sessionStore, logger: log}
}

// Login implements [ClientAuthService].
func (a *AuthService) Login(ctx context.Context, username, password string) error {
	token, err := a.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	session := models.Session{Token: token, Username: username}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	a.api.SetToken(token)

	if err = a.store.Save(session); err != nil {
		// session persists only until exit, but the login itself stands
		a.logger.Warn().Err(err).Msg("session not persisted")
	}

	a.logger.Debug().Str("username", username).Msg("logged in")
	return nil
}

// Logout implements [ClientAuthService].
func (a *AuthService) Logout() error {
	a.mu.Lock()
	a.session = models.Session{}
	a.mu.Unlock()
	a.api.SetToken("")

	if err := a.store.Clear(); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	a.logger.Debug().Msg("logged out")
	return nil
}

// Restore implements [ClientAuthService]. A stored token past its expiry is
// treated the same as no stored session: the stale state is cleared and
// [store.ErrSessionNotFound] is returned.
func (a *AuthService) Restore() (models.Session, error) {
	session, err := a.store.Load()
	if err != nil {
		return models.Session{}, err
	}

	if tokenExpired(session.Token, time.Now()) {
		a.logger.Debug().Str("username", session.Username).Msg("persisted session expired")
		if err = a.store.Clear(); err != nil {
			a.logger.Warn().Err(err).Msg("stale session not cleared")
		}
		return models.Session{}, store.ErrSessionNotFound
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	a.api.SetToken(session.Token)

	a.logger.Debug().Str("username", session.Username).Msg("session restored")
	return session, nil
}

// Session implements [ClientAuthService].
func (a *AuthService) Session() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

// IsAuthenticated implements [ClientAuthService].
func (a *AuthService) IsAuthenticated() bool {
	return a.Session().Valid()
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the server remains the authority and rejects bad tokens with
// 401. Tokens that are not JWTs or carry no exp claim are assumed live.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(now)
}

// IsAuthError reports whether err means the server no longer accepts the
// session's token.
func IsAuthError(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}
