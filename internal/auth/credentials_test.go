package auth_test

import (
	"net/http"
	"testing"

	"github.com/forgeapi-io/gh3/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenProvider(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodGet, "https://api.example.com/user", nil)
	require.NoError(t, err)

	provider := auth.NewTokenProvider("test-token")
	provider.Apply(req)

	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
}

func TestTokenProvider_Idempotent(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodGet, "https://api.example.com/user", nil)
	require.NoError(t, err)

	provider := auth.NewTokenProvider("test-token")

	// Applying twice must replace, not append
	provider.Apply(req)
	provider.Apply(req)

	assert.Len(t, req.Header.Values("Authorization"), 1)
	assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
}

func TestAppProvider(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodGet, "https://api.example.com/user", nil)
	require.NoError(t, err)

	provider := auth.NewAppProvider("client-id", "client-secret")
	provider.Apply(req)

	username, password, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "client-id", username)
	assert.Equal(t, "client-secret", password)
}

func TestFromCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		token        string
		clientID     string
		clientSecret string
		expected     interface{}
	}{
		{
			name:     "token wins",
			token:    "test-token",
			clientID: "client-id", clientSecret: "client-secret",
			expected: &auth.TokenProvider{},
		},
		{
			name:     "app credentials",
			clientID: "client-id", clientSecret: "client-secret",
			expected: &auth.AppProvider{},
		},
		{
			name:     "secret alone is not enough",
			clientID: "", clientSecret: "client-secret",
			expected: nil,
		},
		{
			name:     "no credentials",
			expected: nil,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			provider := auth.FromCredentials(testCase.token, testCase.clientID, testCase.clientSecret)

			if testCase.expected == nil {
				assert.Nil(t, provider)

				return
			}

			assert.IsType(t, testCase.expected, provider)
		})
	}
}
