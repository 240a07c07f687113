package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// FieldError describes a single entry of the "errors" list in a structured
// API error body.
type FieldError struct {
	Resource         string `json:"resource"                    yaml:"resource"`
	Field            string `json:"field,omitempty"             yaml:"field,omitempty"`
	Code             string `json:"code"                        yaml:"code"`
	Message          string `json:"message,omitempty"           yaml:"message,omitempty"`
	DocumentationURL string `json:"documentation_url,omitempty" yaml:"documentation_url,omitempty"`
}

// ClientError is the structured error body the API returns for non-2xx
// responses.
type ClientError struct {
	Message string       `json:"message"          yaml:"message"`
	Errors  []FieldError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s (%d field errors)", e.Message, len(e.Errors))
}

// APIError represents a non-2xx response that carried (or degraded to) a
// structured error body. The HTTP status is always populated, even when the
// body could not be parsed.
type APIError struct {
	StatusCode  int         `json:"status_code"  yaml:"status_code"`
	ClientError ClientError `json:"client_error" yaml:"client_error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.ClientError.Message, e.StatusCode)
}

// RateLimitError indicates the API rejected the request because the rate
// limit quota is exhausted. Reset is the zero time when the API did not
// report a reset timestamp.
type RateLimitError struct {
	Reset time.Time
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return "rate limit exceeded"
	}

	return fmt.Sprintf("rate limit exceeded, resets at %s", e.Reset.Format(time.RFC3339))
}

// DecodeError wraps a JSON encode/decode failure for a request or response
// body that was expected to be well-formed.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrBaseURLRequired  = errors.New("base URL is required")
	ErrNoMoreItems      = errors.New("no more items")
	ErrNilFetcher       = errors.New("page fetcher is required")
	ErrTokenNotProvided = errors.New("no token provided")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	return ErrorStatus(err) == http.StatusNotFound
}

// IsUnprocessable checks if the error is a 422 validation error.
func IsUnprocessable(err error) bool {
	return ErrorStatus(err) == http.StatusUnprocessableEntity
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// IsDecode checks if the error is a body decode failure.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// ErrorStatus returns the HTTP status of an API error, or 0 when the error
// did not originate from a classified API response.
func ErrorStatus(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// ParseClientError parses a structured error body. The second return value
// reports whether the body matched the expected shape; callers degrade to a
// synthesized message when it did not.
func ParseClientError(data []byte) (*ClientError, error) {
	var clientErr ClientError

	err := json.Unmarshal(data, &clientErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &clientErr, nil
}
