package github

import (
	"context"
	"time"
)

// Client is the top-level API surface. A concrete implementation is
// constructed by the ghclient package.
type Client interface {
	Repositories() RepositoriesClient
	Issues() IssuesClient
	Pulls() PullsClient
	Labels() LabelsClient
	Gists() GistsClient
	Deployments() DeploymentsClient
	Search() SearchClient
	Users() UsersClient

	// RateLimit reports the caller's current quota (GET /rate_limit).
	RateLimit(ctx context.Context) (*RateLimitStatus, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a github.Client.
//
// # Credentials
//
// Credentials are fixed at construction time and never mutated afterwards:
//  1. Token: sent as a Bearer token on every request.
//  2. ClientID/ClientSecret: sent as HTTP basic auth (raises the
//     unauthenticated rate limit for server-to-server integrations).
//  3. Neither: requests are sent without authentication.
//
// # Retries
//
// By default one logical call maps to exactly one HTTP request. Setting
// RetryMax > 0 opts into transparent retries for transient transport
// failures; classification of the final response is unaffected.
type Config struct {
	// BaseURL is the API host. ghclient.New defaults it to
	// https://api.github.com and normalizes a missing scheme or trailing
	// slash.
	BaseURL string

	// Token is a personal access or OAuth token.
	Token string
	// ClientID and ClientSecret identify an OAuth application.
	ClientID     string
	ClientSecret string

	// UserAgent identifies the integration; the API rejects requests
	// without one. ghclient.New falls back to a library default.
	UserAgent string

	// RetryMax enables retries for transient transport failures when > 0.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger

	// RateLimitResetHeader names the response header carrying the
	// epoch-seconds reset time of the rate limit window. Defaults to
	// X-RateLimit-Reset. Kept configurable because the exact header is an
	// API convention, not part of the wire contract.
	RateLimitResetHeader string

	// Interceptors is an optional chain run around every request, for
	// cross-cutting concerns like throttling or custom telemetry.
	Interceptors *InterceptorChain
}
