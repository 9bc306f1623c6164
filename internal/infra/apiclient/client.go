// Package apiclient is the HTTP adapter to the remote catalog REST API. It
// attaches the bearer credential, unwraps response envelopes and notifies
// subscribers when the API rejects the credential.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"adminpanel/config"
	deliverycontext "adminpanel/internal/delivery/context"
	domainerrors "adminpanel/internal/domain/errors"
	"adminpanel/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxResponseSize  = 10 << 20
	imagePlaceholder = "/static/placeholder.svg"
)

// Params defines the parameters required for the client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Tokens service.TokenSource
}

// Client implements service.CatalogAPI over net/http.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     service.TokenSource
	logger     *slog.Logger

	mu       sync.RWMutex
	handlers []service.UnauthorizedHandler
}

var _ service.CatalogAPI = (*Client)(nil)

// New creates the client from application config.
func New(params Params) (*Client, error) {
	return NewClient(params.Config.API, params.Tokens, params.Logger)
}

// NewClient creates a client for the API rooted at cfg.BaseURL.
func NewClient(cfg config.APIConfig, tokens service.TokenSource, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid api base URL")
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("api base URL must be http(s), got %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// OnUnauthorized registers handler to run whenever a call comes back 401.
func (c *Client) OnUnauthorized(handler service.UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers = append(c.handlers, handler)
}

// ResolveImageURL makes a stored image reference fetchable: absolute http(s)
// URLs pass through, paths are resolved against the API origin and an empty
// reference yields the placeholder image.
func (c *Client) ResolveImageURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return imagePlaceholder
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ref
	}

	origin := url.URL{Scheme: c.baseURL.Scheme, Host: c.baseURL.Host}

	return origin.String() + "/" + strings.TrimLeft(ref, "/")
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// request describes one API call. Exactly one of body and form is used.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	form   *multipartBody

	// anonymous calls carry no credential and never fire the unauthorized
	// event; a failed login must not end an existing session.
	anonymous bool
}

// do performs req and hands the unwrapped envelope to decode (which may be nil).
func (c *Client) do(ctx context.Context, req request, decode func(envelope) error) error {
	endpoint := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.form != nil:
		body = bytes.NewReader(req.form.data)
		contentType = req.form.contentType
	case req.body != nil:
		raw, err := json.Marshal(req.body)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	var sent string
	if !req.anonymous {
		sent = c.credential(ctx)
		if sent != "" {
			httpReq.Header.Set("Authorization", "Bearer "+sent)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log(ctx).Warn("API request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "%s %s", req.method, req.path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", req.method, req.path)
	}

	c.log(ctx).Debug("API request",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	env := parseEnvelope(raw)

	if resp.StatusCode == http.StatusUnauthorized {
		if !req.anonymous {
			c.fireUnauthorized(ctx, sent)
		}

		return domainerrors.NewAPIError(resp.StatusCode, env.message())
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.NewAPIError(resp.StatusCode, env.message())
	}
	if env.failed() {
		return domainerrors.NewAPIError(resp.StatusCode, env.message())
	}

	if decode == nil {
		return nil
	}
	if env.empty() {
		return errors.Errorf("%s %s: response is not JSON", req.method, req.path)
	}

	return decode(env)
}

// credential is the token a request carries: a per-call override from the
// context, else the session's.
func (c *Client) credential(ctx context.Context) string {
	if token := deliverycontext.GetCredentialFromContext(ctx); token != "" {
		return token
	}
	if c.tokens == nil {
		return ""
	}

	return c.tokens.Token()
}

func (c *Client) fireUnauthorized(ctx context.Context, rejectedToken string) {
	c.mu.RLock()
	handlers := make([]service.UnauthorizedHandler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.RUnlock()

	c.log(ctx).Info("API rejected the credential", slog.Int("handlers", len(handlers)))

	// teardown must finish even when the triggering request is cancelled
	ctx = context.WithoutCancel(ctx)
	for _, handler := range handlers {
		handler(ctx, rejectedToken)
	}
}
