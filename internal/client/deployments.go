package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// DeploymentsClient implements the github.DeploymentsClient interface.
type DeploymentsClient struct {
	httpClient *internalhttp.Client
}

// NewDeploymentsClient creates a new DeploymentsClient.
func NewDeploymentsClient(httpClient *internalhttp.Client) *DeploymentsClient {
	return &DeploymentsClient{httpClient: httpClient}
}

func deploymentsPath(owner, repo string) string {
	return "/repos/" + owner + "/" + repo + "/deployments"
}

// List lists one page of a repository's deployments.
func (c *DeploymentsClient) List(ctx context.Context, owner, repo string, opts *github.ListOptions) (*github.Page[github.Deployment], error) {
	return listPage[github.Deployment](ctx, c.httpClient, deploymentsPath(owner, repo), opts)
}

// Create creates a deployment for a ref.
func (c *DeploymentsClient) Create(ctx context.Context, owner, repo string, request *github.DeploymentRequest) (*github.Deployment, error) {
	resp, err := c.httpClient.Post(ctx, deploymentsPath(owner, repo), request)
	if err != nil {
		return nil, fmt.Errorf("creating deployment: %w", err)
	}

	var deployment github.Deployment

	err = json.Unmarshal(resp.Body, &deployment)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing deployment response: %w", err)}
	}

	return &deployment, nil
}

// Iter lazily iterates a repository's deployments across pages.
func (c *DeploymentsClient) Iter(ctx context.Context, owner, repo string, opts *github.ListOptions) *github.PaginationIterator[github.Deployment] {
	return iterate[github.Deployment](ctx, c.httpClient, deploymentsPath(owner, repo), opts)
}
