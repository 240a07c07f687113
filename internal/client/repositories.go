package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeapi-io/gh3/internal/constants"
	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// RepositoriesClient implements the github.RepositoriesClient interface.
type RepositoriesClient struct {
	httpClient *internalhttp.Client
}

// NewRepositoriesClient creates a new RepositoriesClient.
func NewRepositoriesClient(httpClient *internalhttp.Client) *RepositoriesClient {
	return &RepositoriesClient{httpClient: httpClient}
}

// Get retrieves a specific repository.
func (c *RepositoriesClient) Get(ctx context.Context, owner, repo string) (*github.Repo, error) {
	path := "/repos/" + owner + "/" + repo

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting repository: %w", err)
	}

	var repository github.Repo

	err = json.Unmarshal(resp.Body, &repository)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing repository response: %w", err)}
	}

	return &repository, nil
}

// List lists one page of the authenticated user's repositories.
func (c *RepositoriesClient) List(ctx context.Context, opts *github.ListOptions) (*github.Page[github.Repo], error) {
	return listPage[github.Repo](ctx, c.httpClient, constants.APIPathUserRepos, opts)
}

// ListByOrg lists one page of an organization's repositories.
func (c *RepositoriesClient) ListByOrg(ctx context.Context, org string, opts *github.ListOptions) (*github.Page[github.Repo], error) {
	return listPage[github.Repo](ctx, c.httpClient, "/orgs/"+org+"/repos", opts)
}

// Create creates a repository for the authenticated user.
func (c *RepositoriesClient) Create(ctx context.Context, request *github.RepoRequest) (*github.Repo, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathUserRepos, request)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}

	var repository github.Repo

	err = json.Unmarshal(resp.Body, &repository)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing repository response: %w", err)}
	}

	return &repository, nil
}

// Delete deletes a repository.
func (c *RepositoriesClient) Delete(ctx context.Context, owner, repo string) error {
	path := "/repos/" + owner + "/" + repo

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting repository: %w", err)
	}

	return nil
}

// Iter lazily iterates the authenticated user's repositories across pages.
func (c *RepositoriesClient) Iter(ctx context.Context, opts *github.ListOptions) *github.PaginationIterator[github.Repo] {
	return iterate[github.Repo](ctx, c.httpClient, constants.APIPathUserRepos, opts)
}

// All collects the authenticated user's repositories from every page.
func (c *RepositoriesClient) All(ctx context.Context, opts *github.ListOptions) ([]github.Repo, error) {
	return c.Iter(ctx, opts).All()
}
