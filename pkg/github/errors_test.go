package github_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientError_Error(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()

		clientErr := &github.ClientError{Message: "Not Found"}
		assert.Equal(t, "Not Found", clientErr.Error())
	})

	t.Run("with field errors", func(t *testing.T) {
		t.Parallel()

		clientErr := &github.ClientError{
			Message: "Validation Failed",
			Errors: []github.FieldError{
				{Resource: "Label", Field: "name", Code: "missing_field"},
			},
		}
		assert.Equal(t, "Validation Failed (1 field errors)", clientErr.Error())
	})
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := &github.APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		ClientError: github.ClientError{Message: "Validation Failed"},
	}
	assert.Equal(t, "Validation Failed (status: 422)", apiErr.Error())
}

func TestRateLimitError_Error(t *testing.T) {
	t.Parallel()

	t.Run("without reset", func(t *testing.T) {
		t.Parallel()

		rateErr := &github.RateLimitError{}
		assert.Equal(t, "rate limit exceeded", rateErr.Error())
	})

	t.Run("with reset", func(t *testing.T) {
		t.Parallel()

		reset := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		rateErr := &github.RateLimitError{Reset: reset}
		assert.Contains(t, rateErr.Error(), "2024-06-01T12:00:00Z")
	})
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	inner := errors.New("unexpected end of JSON input")
	decodeErr := &github.DecodeError{Err: inner}

	assert.Contains(t, decodeErr.Error(), "decoding response")
	require.ErrorIs(t, decodeErr, inner)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting label: %w", &github.APIError{
		StatusCode:  http.StatusNotFound,
		ClientError: github.ClientError{Message: "Not Found"},
	})
	unprocessable := fmt.Errorf("adding labels: %w", &github.APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		ClientError: github.ClientError{Message: "Validation Failed"},
	})
	rateLimited := fmt.Errorf("listing issues: %w", &github.RateLimitError{})
	decode := fmt.Errorf("parsing response: %w", &github.DecodeError{Err: errors.New("bad json")})

	assert.True(t, github.IsNotFound(notFound))
	assert.False(t, github.IsNotFound(unprocessable))

	assert.True(t, github.IsUnprocessable(unprocessable))
	assert.False(t, github.IsUnprocessable(notFound))

	assert.True(t, github.IsRateLimited(rateLimited))
	assert.False(t, github.IsRateLimited(notFound))

	assert.True(t, github.IsDecode(decode))
	assert.False(t, github.IsDecode(rateLimited))

	assert.Equal(t, http.StatusNotFound, github.ErrorStatus(notFound))
	assert.Equal(t, 0, github.ErrorStatus(rateLimited))
	assert.Equal(t, 0, github.ErrorStatus(nil))
}

func TestParseClientError(t *testing.T) {
	t.Parallel()

	t.Run("structured body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"message": "Validation Failed",
			"errors": [
				{"resource": "Label", "field": "color", "code": "invalid"}
			]
		}`)

		clientErr, err := github.ParseClientError(body)
		require.NoError(t, err)
		assert.Equal(t, "Validation Failed", clientErr.Message)
		require.Len(t, clientErr.Errors, 1)
		assert.Equal(t, "Label", clientErr.Errors[0].Resource)
		assert.Equal(t, "color", clientErr.Errors[0].Field)
		assert.Equal(t, "invalid", clientErr.Errors[0].Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		_, err := github.ParseClientError([]byte("<html>Bad Gateway</html>"))
		require.Error(t, err)
	})
}
