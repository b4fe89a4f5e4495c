// Package remote wraps the HTTP contracts of the four external services the
// storefront depends on: identity, catalog, basket and order. Each service
// gets a small typed client sharing one transport that attaches the caller's
// credentials, tags requests with an id and maps failures onto a small error
// taxonomy the handlers can switch on.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrNotFound reports that the requested resource does not exist. The UI
	// renders it as an inline "could not be retrieved" state, not a
	// notification.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized reports that the request carried no valid credentials.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from a service, carrying the
// server-provided message when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service returned status %d", e.StatusCode)
}

// client is the shared JSON-over-HTTP transport for all service clients.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newClient(baseURL string, httpClient *http.Client, logger *slog.Logger) client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// doJSON performs a request against path, sending body as JSON when non-nil
// and decoding the response into out when non-nil. Credentials carried in ctx
// are attached to the request, and the request is cancelled when ctx is.
func (c client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	CredentialsFromContext(ctx).apply(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.mapStatus(res, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// errorBody is the shape services use for error payloads. Some return
// {"error": ...}, some {"message": ...}; take whichever is set.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c client) mapStatus(res *http.Response, method, path string) error {
	switch res.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	message := body.Error
	if message == "" {
		message = body.Message
	}

	c.logger.Warn("service request failed",
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"message", message,
	)
	return &APIError{StatusCode: res.StatusCode, Message: message}
}
