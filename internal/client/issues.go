package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// IssuesClient implements the github.IssuesClient interface.
type IssuesClient struct {
	httpClient *internalhttp.Client
}

// NewIssuesClient creates a new IssuesClient.
func NewIssuesClient(httpClient *internalhttp.Client) *IssuesClient {
	return &IssuesClient{httpClient: httpClient}
}

func issuesPath(owner, repo string) string {
	return "/repos/" + owner + "/" + repo + "/issues"
}

func issuePath(owner, repo string, number int) string {
	return issuesPath(owner, repo) + "/" + strconv.Itoa(number)
}

// Get retrieves a specific issue.
func (c *IssuesClient) Get(ctx context.Context, owner, repo string, number int) (*github.Issue, error) {
	resp, err := c.httpClient.Get(ctx, issuePath(owner, repo, number), nil)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	var issue github.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing issue response: %w", err)}
	}

	return &issue, nil
}

// List lists one page of a repository's issues.
func (c *IssuesClient) List(ctx context.Context, owner, repo string, opts *github.ListOptions) (*github.Page[github.Issue], error) {
	return listPage[github.Issue](ctx, c.httpClient, issuesPath(owner, repo), opts)
}

// Create opens a new issue.
func (c *IssuesClient) Create(ctx context.Context, owner, repo string, request *github.IssueRequest) (*github.Issue, error) {
	resp, err := c.httpClient.Post(ctx, issuesPath(owner, repo), request)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	var issue github.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing issue response: %w", err)}
	}

	return &issue, nil
}

// Update edits an issue.
func (c *IssuesClient) Update(ctx context.Context, owner, repo string, number int, request *github.IssueRequest) (*github.Issue, error) {
	resp, err := c.httpClient.Patch(ctx, issuePath(owner, repo, number), request)
	if err != nil {
		return nil, fmt.Errorf("updating issue: %w", err)
	}

	var issue github.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing issue response: %w", err)}
	}

	return &issue, nil
}

// Iter lazily iterates a repository's issues across pages.
func (c *IssuesClient) Iter(ctx context.Context, owner, repo string, opts *github.ListOptions) *github.PaginationIterator[github.Issue] {
	return iterate[github.Issue](ctx, c.httpClient, issuesPath(owner, repo), opts)
}

// AddLabels attaches labels to an issue and returns the issue's full label
// set as reported by the API.
func (c *IssuesClient) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]github.Label, error) {
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

// RemoveLabel detaches a single label from an issue.
func (c *IssuesClient) RemoveLabel(ctx context.Context, owner, repo string, number int, label string) error {
	_, err := c.httpClient.Delete(ctx, issuePath(owner, repo, number)+"/labels/"+label)
	if err != nil {
		return fmt.Errorf("removing label: %w", err)
	}

	return nil
}
