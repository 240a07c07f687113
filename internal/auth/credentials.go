// Package auth implements credential attachment for outgoing API requests.
package auth

import (
	"net/http"

	"github.com/forgeapi-io/gh3/internal/constants"
)

// Provider attaches credentials to an outgoing request. Implementations are
// pure and idempotent: attaching twice replaces the relevant header rather
// than appending, so a provider is safe to share across concurrent calls.
type Provider interface {
	Apply(req *http.Request)
}

// TokenProvider sends a personal access or OAuth token as a Bearer token.
type TokenProvider struct {
	token string
}

// NewTokenProvider creates a provider for a static token.
func NewTokenProvider(token string) *TokenProvider {
	return &TokenProvider{token: token}
}

// Apply implements Provider.
func (p *TokenProvider) Apply(req *http.Request) {
	req.Header.Set(constants.HeaderAuthorization, "Bearer "+p.token)
}

// AppProvider sends OAuth application credentials as HTTP basic auth,
// raising the unauthenticated rate limit for server-to-server calls.
type AppProvider struct {
	clientID     string
	clientSecret string
}

// NewAppProvider creates a provider for OAuth application credentials.
func NewAppProvider(clientID, clientSecret string) *AppProvider {
	return &AppProvider{clientID: clientID, clientSecret: clientSecret}
}

// Apply implements Provider.
func (p *AppProvider) Apply(req *http.Request) {
	req.SetBasicAuth(p.clientID, p.clientSecret)
}

// FromCredentials selects a provider for the given credential material.
// It returns nil when no credentials are configured; a nil Provider means
// requests go out unauthenticated.
func FromCredentials(token, clientID, clientSecret string) Provider {
	if token != "" {
		return NewTokenProvider(token)
	}

	if clientID != "" && clientSecret != "" {
		return NewAppProvider(clientID, clientSecret)
	}

	return nil
}
