package client

import (
	"context"
	"encoding/json"
	"fmt"

	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// LabelsClient implements the github.LabelsClient interface.
type LabelsClient struct {
	httpClient *internalhttp.Client
}

// NewLabelsClient creates a new LabelsClient.
func NewLabelsClient(httpClient *internalhttp.Client) *LabelsClient {
	return &LabelsClient{httpClient: httpClient}
}

func labelsPath(owner, repo string) string {
	return "/repos/" + owner + "/" + repo + "/labels"
}

// Get retrieves a single label by name.
func (c *LabelsClient) Get(ctx context.Context, owner, repo, name string) (*github.Label, error) {
	resp, err := c.httpClient.Get(ctx, labelsPath(owner, repo)+"/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("getting label: %w", err)
	}

	var label github.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing label response: %w", err)}
	}

	return &label, nil
}

// List lists one page of the labels defined on a repository.
func (c *LabelsClient) List(ctx context.Context, owner, repo string, opts *github.ListOptions) (*github.Page[github.Label], error) {
	return listPage[github.Label](ctx, c.httpClient, labelsPath(owner, repo), opts)
}

// Create creates a label.
func (c *LabelsClient) Create(ctx context.Context, owner, repo string, request *github.LabelRequest) (*github.Label, error) {
	resp, err := c.httpClient.Post(ctx, labelsPath(owner, repo), request)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	var label github.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing label response: %w", err)}
	}

	return &label, nil
}

// Update renames or recolors a label.
func (c *LabelsClient) Update(ctx context.Context, owner, repo, name string, request *github.LabelRequest) (*github.Label, error) {
	resp, err := c.httpClient.Patch(ctx, labelsPath(owner, repo)+"/"+name, request)
	if err != nil {
		return nil, fmt.Errorf("updating label: %w", err)
	}

	var label github.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing label response: %w", err)}
	}

	return &label, nil
}

// Delete removes a label from a repository.
func (c *LabelsClient) Delete(ctx context.Context, owner, repo, name string) error {
	_, err := c.httpClient.Delete(ctx, labelsPath(owner, repo)+"/"+name)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	return nil
}

// Iter lazily iterates all labels of a repository across pages.
func (c *LabelsClient) Iter(ctx context.Context, owner, repo string) *github.PaginationIterator[github.Label] {
	return iterate[github.Label](ctx, c.httpClient, labelsPath(owner, repo), nil)
}

// All collects the labels of a repository from every page.
func (c *LabelsClient) All(ctx context.Context, owner, repo string) ([]github.Label, error) {
	return c.Iter(ctx, owner, repo).All()
}
