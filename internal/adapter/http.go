package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
	"github.com/go-resty/resty/v2"
)

type httpNotesAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs an HTTP/REST implementation of [NotesAPI].
// It normalises and validates the base URL from serverCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if serverCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesAdapter(serverCfg config.Server, log *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(serverCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid notes server address: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(serverCfg.RequestTimeout)

	cli.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.IsError() {
			log.Debug().
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Msg("notes api error response")
		}
		return nil
	})

	return &httpNotesAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [NotesAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpNotesAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [NotesAPI]. It returns the bearer token currently held by
// the adapter, or an empty string if none has been set.
func (h *httpNotesAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [NotesAPI]. It POSTs the credentials to POST /login and
// returns the issued bearer token. The token is not stored; callers decide
// when the new session takes effect.
func (h *httpNotesAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	return lr.Token, nil
}

// PublicNotes implements [NotesAPI].
func (h *httpNotesAdapter) PublicNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		Get("/contents")
	if err != nil {
		return nil, fmt.Errorf("public notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode public notes response: %w", err)
	}

	return notes, nil
}

// PublicNote implements [NotesAPI].
func (h *httpNotesAdapter) PublicNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		Get("/contents/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Note{}, fmt.Errorf("public note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode public note response: %w", err)
	}

	return note, nil
}

// PrivateNotes implements [NotesAPI]. Requires a valid bearer token.
func (h *httpNotesAdapter) PrivateNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/admin/contents")
	if err != nil {
		return nil, fmt.Errorf("private notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode private notes response: %w", err)
	}

	return notes, nil
}

// PrivateNote implements [NotesAPI]. Requires a valid bearer token.
func (h *httpNotesAdapter) PrivateNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/admin/contents/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Note{}, fmt.Errorf("private note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode private note response: %w", err)
	}

	return note, nil
}

// CreateNote implements [NotesAPI]. The server echoes back only the new id;
// the full note is not part of the response. Requires a valid bearer token.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, req models.CreateNoteRequest) (int64, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/admin/contents")
	if err != nil {
		return 0, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var cr models.CreateNoteResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return 0, fmt.Errorf("decode create note response: %w", err)
	}

	return cr.ID, nil
}

// UpdateNote implements [NotesAPI]. Requires a valid bearer token.
func (h *httpNotesAdapter) UpdateNote(ctx context.Context, id int64, req models.UpdateNoteRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Put("/admin/contents/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [NotesAPI]. Requires a valid bearer token.
func (h *httpNotesAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/admin/contents/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// Stats implements [NotesAPI]. Requires a valid bearer token.
func (h *httpNotesAdapter) Stats(ctx context.Context) (models.Stats, error) {
	resp, err := h.authedRequest(ctx).Get("/admin/stats")
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stats{}, err
	}

	var stats models.Stats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.Stats{}, fmt.Errorf("decode stats response: %w", err)
	}

	return stats, nil
}

func (h *httpNotesAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
