package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/utils"
	"github.com/kvasnikov/go-task-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.AgentAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

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

// SetToken implements [ServerAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken. Returns an
// error if the request fails, the server returns a non-2xx status, or the
// token cannot be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error
// if the request fails, the server returns a non-2xx status, or the token
// cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Push implements [ServerAdapter]. It POSTs the change set to
// POST /api/sync/push. Requires a valid bearer token. Returns an error if
// the request or response mapping fails.
func (h *httpServerAdapter) Push(ctx context.Context, request models.PushRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/sync/push")
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}

	return mapHTTPError(resp)
}

// Pull implements [ServerAdapter]. It POSTs the watermark and schema
// descriptor to POST /api/sync/pull and decodes the returned change set.
// Requires a valid bearer token. Returns an error if the request, response
// mapping, or JSON decoding fails.
func (h *httpServerAdapter) Pull(ctx context.Context, request models.PullRequest) (models.PullResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/sync/pull")
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PullResponse{}, err
	}

	var response models.PullResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.PullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return response, nil
}

// authedRequest returns a request builder with the stored bearer token
// attached.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token)
}
