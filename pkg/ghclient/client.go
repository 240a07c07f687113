// Package ghclient provides the main entry point for creating API clients.
package ghclient

import (
	"fmt"
	"strings"

	"github.com/forgeapi-io/gh3/internal/client"
	"github.com/forgeapi-io/gh3/internal/constants"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// New creates a new API client. When config.BaseURL is empty the public
// endpoint is used, which makes a zero-value config (plus credentials)
// sufficient for most callers.
func New(config *github.Config) (github.Client, error) {
	if config == nil {
		return nil, github.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	// Normalize the endpoint
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	if config.UserAgent == "" {
		config.UserAgent = constants.DefaultUserAgent
	}

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithEndpoint creates an unauthenticated client for a given endpoint.
func NewWithEndpoint(baseURL string) (github.Client, error) {
	return New(&github.Config{BaseURL: baseURL})
}

// NewWithToken creates a client that authenticates with a personal access
// token against the public endpoint.
func NewWithToken(token string) (github.Client, error) {
	return New(&github.Config{Token: token})
}

// NewWithClientCredentials creates a client that authenticates with OAuth
// application credentials against the public endpoint.
func NewWithClientCredentials(clientID, clientSecret string) (github.Client, error) {
	return New(&github.Config{ClientID: clientID, ClientSecret: clientSecret})
}
