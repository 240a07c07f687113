// Package constants centralizes shared values used across the client.
package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the public API host.
	DefaultBaseURL = "https://api.github.com"

	// DefaultUserAgent identifies the library when the caller supplies
	// no agent of its own. The API rejects requests without a User-Agent.
	DefaultUserAgent = "gh3-go/1.0"
)

// Header names and media types.
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderLink          = "Link"
	HeaderUserAgent     = "User-Agent"

	// MediaTypeV3 pins responses to the v3 wire format.
	MediaTypeV3     = "application/vnd.github.v3+json"
	ContentTypeJSON = "application/json"
)

// Rate limit signaling.
const (
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"

	// DefaultRateLimitResetHeader carries the epoch-seconds reset time of
	// the current quota window. Configurable on the client because it is
	// an API convention rather than part of the wire contract.
	DefaultRateLimitResetHeader = "X-RateLimit-Reset"
)

// Link header relations.
const (
	LinkRelNext = "next"
	LinkRelLast = "last"
)

// HTTP client defaults.
const (
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second
)

// File system permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API paths for resources not scoped to a repository.
const (
	APIPathUser         = "/user"
	APIPathUserRepos    = "/user/repos"
	APIPathGists        = "/gists"
	APIPathRateLimit    = "/rate_limit"
	APIPathSearchIssues = "/search/issues"
)
