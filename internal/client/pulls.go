package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// PullsClient implements the github.PullsClient interface.
type PullsClient struct {
	httpClient *internalhttp.Client
}

// NewPullsClient creates a new PullsClient.
func NewPullsClient(httpClient *internalhttp.Client) *PullsClient {
	return &PullsClient{httpClient: httpClient}
}

func pullsPath(owner, repo string) string {
	return "/repos/" + owner + "/" + repo + "/pulls"
}

func pullPath(owner, repo string, number int) string {
	return pullsPath(owner, repo) + "/" + strconv.Itoa(number)
}

// Get retrieves a specific pull request.
func (c *PullsClient) Get(ctx context.Context, owner, repo string, number int) (*github.Pull, error) {
	resp, err := c.httpClient.Get(ctx, pullPath(owner, repo, number), nil)
	if err != nil {
		return nil, fmt.Errorf("getting pull request: %w", err)
	}

	var pull github.Pull

	err = json.Unmarshal(resp.Body, &pull)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing pull request response: %w", err)}
	}

	return &pull, nil
}

// List lists one page of a repository's pull requests.
func (c *PullsClient) List(ctx context.Context, owner, repo string, opts *github.ListOptions) (*github.Page[github.Pull], error) {
	return listPage[github.Pull](ctx, c.httpClient, pullsPath(owner, repo), opts)
}

// Create opens a new pull request.
func (c *PullsClient) Create(ctx context.Context, owner, repo string, request *github.PullRequest) (*github.Pull, error) {
	resp, err := c.httpClient.Post(ctx, pullsPath(owner, repo), request)
	if err != nil {
		return nil, fmt.Errorf("creating pull request: %w", err)
	}

	var pull github.Pull

	err = json.Unmarshal(resp.Body, &pull)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing pull request response: %w", err)}
	}

	return &pull, nil
}

// Update edits a pull request.
func (c *PullsClient) Update(ctx context.Context, owner, repo string, number int, request *github.PullUpdateRequest) (*github.Pull, error) {
	resp, err := c.httpClient.Patch(ctx, pullPath(owner, repo, number), request)
	if err != nil {
		return nil, fmt.Errorf("updating pull request: %w", err)
	}

	var pull github.Pull

	err = json.Unmarshal(resp.Body, &pull)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing pull request response: %w", err)}
	}

	return &pull, nil
}

// Iter lazily iterates a repository's pull requests across pages.
func (c *PullsClient) Iter(ctx context.Context, owner, repo string, opts *github.ListOptions) *github.PaginationIterator[github.Pull] {
	return iterate[github.Pull](ctx, c.httpClient, pullsPath(owner, repo), opts)
}

// ListFiles lists one page of the files changed by a pull request.
func (c *PullsClient) ListFiles(ctx context.Context, owner, repo string, number int) (*github.Page[github.FileDiff], error) {
	return listPage[github.FileDiff](ctx, c.httpClient, pullPath(owner, repo, number)+"/files", nil)
}

// IsMerged reports whether a pull request has been merged. The API signals
// this with 204 (merged) or 404 (not merged).
func (c *PullsClient) IsMerged(ctx context.Context, owner, repo string, number int) (bool, error) {
	_, err := c.httpClient.Get(ctx, pullPath(owner, repo, number)+"/merge", nil)
	if err != nil {
		apiErr := &github.APIError{}
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}

		return false, fmt.Errorf("checking merge status: %w", err)
	}

	return true, nil
}

// AddLabels attaches labels to a pull request. Pull labels ride the issues
// endpoint of the same number.
func (c *PullsClient) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]github.Label, error) {
	resp, err := c.httpClient.Post(ctx, issuePath(owner, repo, number)+"/labels", labels)
	if err != nil {
		return nil, fmt.Errorf("adding labels: %w", err)
	}

	var added []github.Label

	err = json.Unmarshal(resp.Body, &added)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing labels response: %w", err)}
	}

	return added, nil
}

// ListLabels lists one page of the labels attached to a pull request.
func (c *PullsClient) ListLabels(ctx context.Context, owner, repo string, number int) (*github.Page[github.Label], error) {
	return listPage[github.Label](ctx, c.httpClient, issuePath(owner, repo, number)+"/labels", nil)
}
