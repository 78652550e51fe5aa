package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-finchers/internal/config"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/internal/utils"
	"github.com/MKhiriev/go-finchers/models"
)

const userAgent = "go-finchers-client"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL
	dialer  *websocket.Dialer

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter creates the REST implementation of [ServerAdapter]
// for cfg.ServerURL. An address without scheme is taken as http.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL.String(), cfg.RequestTimeout, userAgent),
		baseURL: baseURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, errors.New("address must include an http(s) scheme and a host")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, fmt.Errorf("%w: no token", ErrUnauthorized)
	}
	return h.client.R().SetContext(ctx).SetAuthToken(h.token), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&token).
		Post("/api/token")
	if err != nil {
		return models.Token{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	h.SetToken(token.SignedString)
	h.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("token received")
	return token, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	r, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id uuid.UUID) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String()).
		SetResult(&note).
		Get("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	var page models.NotesResponse

	r := h.client.R().SetContext(ctx).SetResult(&page)
	if filter.Limit > 0 {
		r.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Offset > 0 {
		r.SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	}
	if filter.Tag != "" {
		r.SetQueryParam("tag", filter.Tag)
	}

	resp, err := r.Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return page.Notes, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id uuid.UUID, req models.NoteRequest, version int64) (models.Note, error) {
	r, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}
	if version > 0 {
		r.SetHeader("If-Match", `"`+strconv.FormatInt(version, 10)+`"`)
	}

	var note models.Note
	resp, err := r.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id.String()).
		SetBody(req).
		SetResult(&note).
		Put("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id uuid.UUID) error {
	r, err := h.authorized(ctx)
	if err != nil {
		return err
	}

	resp, err := r.
		SetPathParam("id", id.String()).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Watch(ctx context.Context, onEvent func(models.NoteEvent)) error {
	u := *h.baseURL
	u.Scheme = "ws"
	if h.baseURL.Scheme == "https" {
		u.Scheme = "wss"
	}
	u.Path += "/api/notes/live"

	header := http.Header{"User-Agent": {userAgent}}
	conn, resp, err := h.dialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("live feed handshake: http %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("live feed handshake: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		var event models.NoteEvent
		if err = conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("live feed: %w", err)
		}
		onEvent(event)
	}
}
