package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeapi-io/gh3/internal/constants"
	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// GistsClient implements the github.GistsClient interface.
type GistsClient struct {
	httpClient *internalhttp.Client
}

// NewGistsClient creates a new GistsClient.
func NewGistsClient(httpClient *internalhttp.Client) *GistsClient {
	return &GistsClient{httpClient: httpClient}
}

// Get retrieves a specific gist.
func (c *GistsClient) Get(ctx context.Context, id string) (*github.Gist, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathGists+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting gist: %w", err)
	}

	var gist github.Gist

	err = json.Unmarshal(resp.Body, &gist)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing gist response: %w", err)}
	}

	return &gist, nil
}

// List lists one page of a user's gists, or the authenticated user's gists
// when username is empty.
func (c *GistsClient) List(ctx context.Context, username string, opts *github.ListOptions) (*github.Page[github.Gist], error) {
	path := constants.APIPathGists
	if username != "" {
		path = "/users/" + username + "/gists"
	}

	return listPage[github.Gist](ctx, c.httpClient, path, opts)
}

// Create creates a gist.
func (c *GistsClient) Create(ctx context.Context, request *github.GistRequest) (*github.Gist, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathGists, request)
	if err != nil {
		return nil, fmt.Errorf("creating gist: %w", err)
	}

	var gist github.Gist

	err = json.Unmarshal(resp.Body, &gist)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing gist response: %w", err)}
	}

	return &gist, nil
}

// Delete deletes a gist.
func (c *GistsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, constants.APIPathGists+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting gist: %w", err)
	}

	return nil
}
