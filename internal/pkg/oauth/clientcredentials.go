package oauth

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientCredentials describes a machine-to-machine grant against the punch
// clock API's token endpoint.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
	Audience     string
}

func (c ClientCredentials) Enabled() bool {
	return c.ClientID != "" && c.TokenURL != ""
}

func (c ClientCredentials) config() *clientcredentials.Config {
	config := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		Scopes:       c.Scopes,
		AuthStyle:    oauth2.AuthStyleAutoDetect,
	}
	if c.Audience != "" {
		config.EndpointParams = url.Values{"audience": {c.Audience}}
	}
	return config
}

// HTTPClient returns a client that fetches and refreshes access tokens on
// demand. ctx only scopes token requests, not API calls.
func (c ClientCredentials) HTTPClient(ctx context.Context) *http.Client {
	return c.config().Client(ctx)
}

// Token fetches a single access token.
func (c ClientCredentials) Token(ctx context.Context) (*oauth2.Token, error) {
	return c.config().Token(ctx)
}
