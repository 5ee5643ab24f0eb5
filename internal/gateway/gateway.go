// Package gateway talks to the remote calorie service. It turns register,
// login and lookup into JSON POSTs and reports every failure as *Error.
//
// The gateway never retries and never cancels a request on its own; a call
// resolves or fails exactly once. Cancellation is left to the caller's
// context and to the optional client timeout.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/models/user"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
	lookupPath   = "/get-calories"

	defaultRegisterMessage = "Registration failed"
	defaultLoginMessage    = "Login failed"
	defaultLookupMessage   = "Failed to fetch calories"
)

type Config struct {
	BaseURL string
	// Timeout bounds a whole request; zero disables it.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func New(cfg Config, log *logger.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

func (c *Client) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	var resp user.AuthResponse
	if err := c.post(ctx, registerPath, "", req, &resp, defaultRegisterMessage); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	var resp user.AuthResponse
	if err := c.post(ctx, loginPath, "", req, &resp, defaultLoginMessage); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Lookup asks the service for the calories of one dish, authenticated with
// token as a bearer credential.
func (c *Client) Lookup(ctx context.Context, req models.LookupRequest, token string) (*models.LookupResult, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	var resp models.LookupResult
	if err := c.post(ctx, lookupPath, token, req, &resp, defaultLookupMessage); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path, token string, in, out any, fallback string) error {
	body, err := json.Marshal(in)
	if err != nil {
		return transportError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return transportError(err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("POST %s request_id=%s", path, requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("POST %s request_id=%s failed: %v", path, requestID, err)
		return transportError(unwrapURLError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("POST %s request_id=%s: read body: %v", path, requestID, err)
		return transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message, err := errorMessage(data)
		if err != nil {
			// An error body that is not JSON is reported like a transport
			// failure: message only, no status.
			c.log.Warn("POST %s request_id=%s status=%d: undecodable error body: %v", path, requestID, resp.StatusCode, err)
			return transportError(err)
		}
		if message == "" {
			message = fallback
		}
		c.log.Warn("POST %s request_id=%s status=%d: %s", path, requestID, resp.StatusCode, message)
		return statusError(resp.StatusCode, message)
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn("POST %s request_id=%s status=%d: undecodable body: %v", path, requestID, resp.StatusCode, err)
		return transportError(err)
	}

	c.log.Info("POST %s request_id=%s status=%d took=%s", path, requestID, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return nil
}

// errorMessage extracts a non-empty string "message" from any JSON error
// body. Valid JSON of any other shape yields "" so the caller falls back
// while keeping the status.
func errorMessage(data []byte) (string, error) {
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return "", err
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return "", nil
	}
	message, _ := obj["message"].(string)
	return message, nil
}

// unwrapURLError drops the "Post \"<url>\":" prefix the HTTP client adds, so
// the message shown to users names the failure rather than the endpoint.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
