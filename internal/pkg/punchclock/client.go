// Package punchclock is a typed client for the remote punch clock API that
// owns employees, punch entries and the history log.
package punchclock

import (
	"net/http"
	"time"
)

type Client struct {
	Transport *Transport
	Employees *EmployeeEndpoint
	Entries   *EntryEndpoint
	History   *HistoryEndpoint
}

type options struct {
	token      string
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*options)

// WithToken sends a static bearer token on every request.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithHTTPClient replaces the default client, e.g. with one that refreshes
// OAuth2 tokens.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// NewClient initializes the API client
func NewClient(baseURL string, opts ...Option) *Client {
	o := options{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	// Copied so the timeout never leaks into a client the caller owns.
	httpClient := &http.Client{}
	if o.httpClient != nil {
		c := *o.httpClient
		httpClient = &c
	}
	if httpClient.Timeout == 0 && o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}

	t := NewTransport(baseURL, o.token, httpClient)
	return &Client{
		Transport: t,
		Employees: &EmployeeEndpoint{transport: t},
		Entries:   &EntryEndpoint{transport: t},
		History:   &HistoryEndpoint{transport: t},
	}
}
