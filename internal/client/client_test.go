package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/forgeapi-io/gh3/internal/client"
	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires base URL", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&github.Config{})
		require.ErrorIs(t, err, github.ErrBaseURLRequired)
	})

	t.Run("initializes resource clients", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&github.Config{BaseURL: "https://api.example.com"})
		require.NoError(t, err)

		assert.NotNil(t, apiClient.Repositories())
		assert.NotNil(t, apiClient.Issues())
		assert.NotNil(t, apiClient.Pulls())
		assert.NotNil(t, apiClient.Labels())
		assert.NotNil(t, apiClient.Gists())
		assert.NotNil(t, apiClient.Deployments())
		assert.NotNil(t, apiClient.Search())
		assert.NotNil(t, apiClient.Users())
	})
}

func TestClient_RateLimit(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/rate_limit", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(github.RateLimitStatus{
			Rate: github.RateLimitQuota{Limit: 5000, Remaining: 4999, Reset: 1717243200},
		})
	}))

	status, err := apiClient.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000, status.Rate.Limit)
	assert.Equal(t, 4999, status.Rate.Remaining)
}

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/octocat", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(github.User{Login: "octocat", ID: 1})
	}))

	user, err := apiClient.Users().Get(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
}

func TestUsersClient_AuthenticatedUser(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(github.User{Login: "octocat", ID: 1})
	}))

	user, err := apiClient.Users().AuthenticatedUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
}

func TestSearchClient_Issues(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/search/issues", request.URL.Path)
		assert.Equal(t, "repo:acme/widgets is:open label:bug", request.URL.Query().Get("q"))
		assert.Equal(t, "10", request.URL.Query().Get("per_page"))

		_ = json.NewEncoder(writer).Encode(github.SearchResult[github.SearchIssuesItem]{
			TotalResults: 1,
			Items: []github.SearchIssuesItem{
				{Number: 42, Title: "Widget misbehaves", State: "open"},
			},
		})
	}))

	result, err := apiClient.Search().Issues(context.Background(),
		"repo:acme/widgets is:open label:bug", github.NewListOptions().WithPerPage(10))
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalResults)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 42, result.Items[0].Number)
}

func TestRepositoriesClient_Get(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/repos/acme/widgets", request.URL.Path)
		_ = json.NewEncoder(writer).Encode(github.Repo{Name: "widgets", FullName: "acme/widgets"})
	}))

	repo, err := apiClient.Repositories().Get(context.Background(), "acme", "widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", repo.FullName)
}

func TestRepositoriesClient_GetNotFound(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{"message":"Not Found"}`))
	}))

	_, err := apiClient.Repositories().Get(context.Background(), "acme", "missing")
	require.Error(t, err)
	assert.True(t, github.IsNotFound(err))
}

func TestGistsClient_Create(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/gists", request.URL.Path)

		var body github.GistRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Contains(t, body.Files, "hello.go")

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(github.Gist{ID: "gist-1", Public: true})
	}))

	public := true
	gist, err := apiClient.Gists().Create(context.Background(), &github.GistRequest{
		Public: &public,
		Files: map[string]github.GistFileContent{
			"hello.go": {Content: "package main"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "gist-1", gist.ID)
}

func TestDeploymentsClient_Create(t *testing.T) {
	t.Parallel()

	apiClient, _ := newTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/repos/acme/widgets/deployments", request.URL.Path)

		var body github.DeploymentRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "main", body.Ref)

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(github.Deployment{ID: 7, Ref: body.Ref})
	}))

	deployment, err := apiClient.Deployments().Create(context.Background(), "acme", "widgets",
		&github.DeploymentRequest{Ref: "main"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), deployment.ID)
}
