// Package client implements the github.Client interface on top of the
// internal request executor.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeapi-io/gh3/internal/auth"
	"github.com/forgeapi-io/gh3/internal/constants"
	"github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// Client implements the github.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     github.Logger

	// Resource clients
	repositories github.RepositoriesClient
	issues       github.IssuesClient
	pulls        github.PullsClient
	labels       github.LabelsClient
	gists        github.GistsClient
	deployments  github.DeploymentsClient
	search       github.SearchClient
	users        github.UsersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *github.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RateLimitResetHeader != "" {
		httpOpts = append(httpOpts, http.WithRateLimitResetHeader(config.RateLimitResetHeader))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client. Credentials are fixed here for the lifetime
// of the client.
func New(config *github.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, github.ErrBaseURLRequired
	}

	provider := auth.FromCredentials(config.Token, config.ClientID, config.ClientSecret)
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, provider, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// RateLimit implements github.Client.RateLimit.
func (c *Client) RateLimit(ctx context.Context) (*github.RateLimitStatus, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathRateLimit, nil)
	if err != nil {
		return nil, fmt.Errorf("getting rate limit: %w", err)
	}

	var status github.RateLimitStatus

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing rate limit response: %w", err)}
	}

	return &status, nil
}

// Resource client accessors

// Repositories implements github.Client.Repositories.
func (c *Client) Repositories() github.RepositoriesClient {
	return c.repositories
}

// Issues implements github.Client.Issues.
func (c *Client) Issues() github.IssuesClient {
	return c.issues
}

// Pulls implements github.Client.Pulls.
func (c *Client) Pulls() github.PullsClient {
	return c.pulls
}

// Labels implements github.Client.Labels.
func (c *Client) Labels() github.LabelsClient {
	return c.labels
}

// Gists implements github.Client.Gists.
func (c *Client) Gists() github.GistsClient {
	return c.gists
}

// Deployments implements github.Client.Deployments.
func (c *Client) Deployments() github.DeploymentsClient {
	return c.deployments
}

// Search implements github.Client.Search.
func (c *Client) Search() github.SearchClient {
	return c.search
}

// Users implements github.Client.Users.
func (c *Client) Users() github.UsersClient {
	return c.users
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.repositories = NewRepositoriesClient(c.httpClient)
	c.issues = NewIssuesClient(c.httpClient)
	c.pulls = NewPullsClient(c.httpClient)
	c.labels = NewLabelsClient(c.httpClient)
	c.gists = NewGistsClient(c.httpClient)
	c.deployments = NewDeploymentsClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
}
