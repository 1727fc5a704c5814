package punchclock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport handles low-level HTTP and authentication
type Transport struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and auth
func NewTransport(baseURL, token string, httpClient *http.Client) *Transport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Transport{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AuthToken:  token,
		HTTPClient: httpClient,
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Do sends a request and returns the body of a 2xx response. data, when not
// nil, is sent as JSON.
func (t *Transport) Do(ctx context.Context, method, path string, query map[string]string, data any) ([]byte, error) {
	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Message: err.Error(), Err: err}
	}

	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.AuthToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.AuthToken))
	}

	start := time.Now()
	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		slog.Debug("punch clock request failed", "method", method, "path", path, "error", err)
		return nil, &NetworkError{Method: method, Path: path, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	resdata, err := io.ReadAll(resp.Body)
	slog.Debug("punch clock request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, resdata),
		}
	}

	return resdata, nil
}

// Get sends a GET request
func (t *Transport) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return t.Do(ctx, http.MethodGet, path, query, nil)
}

// Post sends a POST request with JSON body
func (t *Transport) Post(ctx context.Context, path string, data any) ([]byte, error) {
	return t.Do(ctx, http.MethodPost, path, nil, data)
}

// Put sends a PUT request with JSON body
func (t *Transport) Put(ctx context.Context, path string, data any) ([]byte, error) {
	return t.Do(ctx, http.MethodPut, path, nil, data)
}

// Delete sends a DELETE request
func (t *Transport) Delete(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	return t.Do(ctx, http.MethodDelete, path, query, nil)
}

// errorMessage picks the text shown to the user for a failed call: the
// message or error field of a JSON body, the raw body, or the status text.
func errorMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return text
}

// decode unmarshals a 2xx body, reporting shape problems as malformed.
func decode(path string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &MalformedResponseError{Path: path, Err: err}
	}
	return nil
}

// messageOf extracts the optional {"message": ...} of a mutation response.
// An empty body or any JSON that is not an object means the API confirmed
// without a message.
func messageOf(path string, body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", nil
	}
	if !json.Valid(trimmed) {
		return "", &MalformedResponseError{Path: path, Err: errors.New("body is not valid JSON")}
	}
	if trimmed[0] != '{' {
		return "", nil
	}
	var result struct {
		Message string `json:"message"`
	}
	if err := decode(path, trimmed, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}
