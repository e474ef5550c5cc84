// Package api is the SAPPHIRE forecast-data API client.
//
// A Client issues synchronous HTTP requests against one of the SAPPHIRE
// services (preprocessing or postprocessing), retrying transient failures
// with exponential backoff and splitting bulk writes into batches. Resource
// access is grouped into services, e.g. client.Runoff().List(ctx, opts).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

// Service prefixes for API gateway routing.
const (
	PreprocessingPrefix  = "/api/preprocessing"
	PostprocessingPrefix = "/api/postprocessing"
)

// Config holds the client settings. It is read once at construction;
// changing it afterwards has no effect on an existing Client.
type Config struct {
	BaseURL    string
	AuthToken  string
	MaxRetries int           // total attempt budget, not additional retries
	BatchSize  int           // records per bulk-write request
	Timeout    time.Duration // per-request timeout
}

// DefaultConfig returns a Config populated from environment variables with
// fallback to default values.
//
// Environment variables:
//   - SAPPHIRE_MAX_RETRIES: total request attempts (default: 3)
//   - SAPPHIRE_BATCH_SIZE: records per write batch (default: 1000)
//   - SAPPHIRE_TIMEOUT: per-request timeout (default: "30s")
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		MaxRetries: getEnvInt("SAPPHIRE_MAX_RETRIES", DefaultMaxRetries),
		BatchSize:  getEnvInt("SAPPHIRE_BATCH_SIZE", DefaultBatchSize),
		Timeout:    getEnvDuration("SAPPHIRE_TIMEOUT", DefaultTimeout),
	}
}

// Client is the base SAPPHIRE API client. Construct it with New (or the
// NewPreprocessing/NewPostprocessing wrappers) so the configuration is
// validated; the zero value is not usable.
//
// The Client owns its HTTP connection pool for its lifetime. It is not
// documented as safe for concurrent use from multiple goroutines; callers
// needing concurrency should use separate Client instances.
type Client struct {
	BaseURL       string
	ServicePrefix string
	MaxRetries    int
	BatchSize     int
	HTTP          *http.Client
	UserAgent     string

	authToken   string
	backoffBase time.Duration // shortened in tests only
}

// New creates a client from cfg. The base URL must use http or https and
// carry a host; BatchSize and Timeout must be positive and MaxRetries
// non-negative.
func New(cfg Config) (*Client, error) {
	if err := validation.BaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	if err := validation.PositiveInt(cfg.BatchSize, "batch size"); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		return nil, &validation.Error{Param: "timeout", Reason: fmt.Sprintf("must be positive, got %s", cfg.Timeout)}
	}
	if err := validation.NonNegativeInt(cfg.MaxRetries, "max retries"); err != nil {
		return nil, err
	}

	validation.WarnPlainHTTPToken(cfg.BaseURL, cfg.AuthToken != "")

	return &Client{
		BaseURL:     trimTrailingSlash(cfg.BaseURL),
		MaxRetries:  cfg.MaxRetries,
		BatchSize:   cfg.BatchSize,
		authToken:   cfg.AuthToken,
		HTTP:        &http.Client{Timeout: cfg.Timeout},
		backoffBase: backoffBase,
	}, nil
}

// PreprocessingClient talks to the preprocessing service (runoff,
// hydrograph, meteo, and snow data).
type PreprocessingClient struct{ *Client }

// PostprocessingClient talks to the postprocessing service (forecasts,
// linear regression forecasts, and skill metrics).
type PostprocessingClient struct{ *Client }

// NewPreprocessing creates a client routed to the preprocessing service.
func NewPreprocessing(cfg Config) (*PreprocessingClient, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.ServicePrefix = PreprocessingPrefix
	return &PreprocessingClient{c}, nil
}

// NewPostprocessing creates a client routed to the postprocessing service.
func NewPostprocessing(cfg Config) (*PostprocessingClient, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	c.ServicePrefix = PostprocessingPrefix
	return &PostprocessingClient{c}, nil
}

// IsAuthenticated reports whether an auth token is configured.
func (c *Client) IsAuthenticated() bool {
	return c.authToken != ""
}

// String never exposes the auth token.
func (c *Client) String() string {
	auth := "unauthenticated"
	if c.IsAuthenticated() {
		auth = "authenticated"
	}
	return fmt.Sprintf("api.Client(base_url=%q, %s)", c.BaseURL, auth)
}

func trimTrailingSlash(u string) string {
	for len(u) > 0 && u[len(u)-1] == '/' {
		u = u[:len(u)-1]
	}
	return u
}

// fullURL builds the absolute request URL. Duplicate slashes are the
// caller's responsibility; no normalization happens here.
func (c *Client) fullURL(endpoint string, params url.Values) string {
	u := c.BaseURL + c.ServicePrefix + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// retryableStatus is the synthesized failure for 502/503/504 responses so
// they feed the same retry loop (and attempt budget) as transport errors.
type retryableStatus struct {
	code int
}

func (e *retryableStatus) Error() string {
	return fmt.Sprintf("server returned %d, will retry", e.code)
}

// executeRequest performs one logical request with retries and returns the
// raw response body. Failures come back as one of the classified error
// types in errors.go.
func (c *Client) executeRequest(ctx context.Context, method, endpoint string, params url.Values, body any) ([]byte, error) {
	reqURL := c.fullURL(endpoint, params)

	// Marshal once; the bytes are reused across attempts.
	var jsonBody []byte
	if body != nil {
		var err error
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	attempts := c.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var resp *http.Response
	var respBody []byte
	for attempt := 1; ; attempt++ {
		var err error
		var retryable bool
		resp, respBody, err, retryable = c.attempt(ctx, method, reqURL, jsonBody)
		if err == nil {
			break
		}
		if !retryable {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt >= attempts {
			return nil, &ConnectivityError{URL: reqURL, Attempts: attempt, Err: err}
		}
		delay := c.backoffDelay(attempt)
		slog.Warn("request failed, retrying",
			"method", method, "url", reqURL,
			"attempt", attempt, "delay", delay, "error", err)
		if err := sleepWithContext(ctx, delay); err != nil {
			return nil, err
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &AuthenticationError{}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &AuthorizationError{}
	case resp.StatusCode >= 400:
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Body:       truncateBody(string(respBody)),
		}
	}

	return respBody, nil
}

// attempt issues a single HTTP exchange. retryable reports whether a failed
// attempt hit a connection/timeout failure or a retryable status, in which
// case the caller may try again against the shared attempt budget.
func (c *Client) attempt(ctx context.Context, method, reqURL string, jsonBody []byte) (resp *http.Response, respBody []byte, err error, retryable bool) {
	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		// A malformed request never becomes valid on retry.
		return nil, nil, fmt.Errorf("failed to create request: %w", err), false
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if jsonBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err = c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Caller cancellation, not a transient transport failure. A
			// deadline from c.HTTP.Timeout leaves ctx.Err() nil and retries.
			return nil, nil, ctx.Err(), false
		}
		return nil, nil, err, true
	}

	respBody, err = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		// Connection dropped mid-body; same class as a connect failure.
		return nil, nil, fmt.Errorf("failed to read response: %w", err), true
	}

	if isRetryableStatus(resp.StatusCode) {
		return nil, nil, &retryableStatus{code: resp.StatusCode}, true
	}

	return resp, respBody, nil, false
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// get performs a GET request and decodes the JSON response into result.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, result any) error {
	respBody, err := c.executeRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	return decodeJSON(respBody, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, endpoint string, body any, result any) error {
	respBody, err := c.executeRequest(ctx, http.MethodPost, endpoint, nil, body)
	if err != nil {
		return err
	}
	return decodeJSON(respBody, result)
}

func decodeJSON(data []byte, result any) error {
	if result == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return nil
}
