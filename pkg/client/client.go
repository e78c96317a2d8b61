// Package client is a thin gateway to the Zenith HTTP API. It unwraps the
// server's response envelope and reports failures as *APIError. It never
// retries and sets no timeout of its own; cancellation is the caller's
// context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// TokenFunc yields the current access token, or "" when logged out.
type TokenFunc func() string

// Client calls the Zenith API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, token TokenFunc) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		token:      token,
	}
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// Call performs one request. body is JSON-encoded when non-nil; on success
// the envelope's data is decoded into out when out is non-nil.
func (c *Client) Call(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(env.Error, resp.StatusCode)}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// errorMessage extracts a printable message from the envelope's error field,
// which may be a string or a field map.
func errorMessage(raw json.RawMessage, status int) string {
	if len(raw) == 0 {
		return http.StatusText(status)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for field, msg := range fields {
			parts = append(parts, field+": "+msg)
		}
		return strings.Join(parts, "; ")
	}

	return string(raw)
}
