package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register and returns the created account echoed back by the
// server. Returns an error if the request fails or the server responds with a
// non-2xx status.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&created).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/token and reads the bearer token from the JSON body,
// falling back to the Authorization response header. On success the token is
// stored via SetToken and returned in compact form.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&tokenResponse).
		Post("/api/auth/token")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := tokenResponse.AccessToken
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	return token, nil
}

// ListTodos implements [ServerAdapter]. It GETs /api/todo/ and decodes the
// response into a slice of [models.Todo]. Requires a valid bearer token.
func (h *httpServerAdapter) ListTodos(ctx context.Context) ([]models.Todo, error) {
	resp, err := h.authedRequest(ctx).Get("/api/todo/")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var todos []models.Todo
	if err = json.Unmarshal(resp.Body(), &todos); err != nil {
		return nil, fmt.Errorf("decode list todos response: %w", err)
	}

	return todos, nil
}

// GetTodo implements [ServerAdapter]. It GETs /api/todo/{id} and decodes the
// response. Returns [ErrNotFound] (wrapped) on HTTP 404. Requires a valid
// bearer token.
func (h *httpServerAdapter) GetTodo(ctx context.Context, id int64) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/todo/%d", id))
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var todo models.Todo
	if err = json.Unmarshal(resp.Body(), &todo); err != nil {
		return models.Todo{}, fmt.Errorf("decode get todo response: %w", err)
	}

	return todo, nil
}

// CreateTodo implements [ServerAdapter]. It POSTs the todo to /api/todo/ and
// returns the created record, including the server-assigned id and the
// possibly enriched description. Requires a valid bearer token.
func (h *httpServerAdapter) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	var created models.Todo

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(todo).
		SetResult(&created).
		Post("/api/todo/")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return created, nil
}

// UpdateTodo implements [ServerAdapter]. It PUTs the replacement fields to
// /api/todo/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404. Requires a
// valid bearer token.
func (h *httpServerAdapter) UpdateTodo(ctx context.Context, update models.TodoUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(fmt.Sprintf("/api/todo/%d", update.ID))
	if err != nil {
		return fmt.Errorf("update todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteTodo implements [ServerAdapter]. It sends DELETE /api/todo/{id}.
// Returns [ErrNotFound] (wrapped) on HTTP 404. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteTodo(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/todo/%d", id))
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
