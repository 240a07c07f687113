package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/forgeapi-io/gh3/internal/constants"
	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// SearchClient implements the github.SearchClient interface.
type SearchClient struct {
	httpClient *internalhttp.Client
}

// NewSearchClient creates a new SearchClient.
func NewSearchClient(httpClient *internalhttp.Client) *SearchClient {
	return &SearchClient{httpClient: httpClient}
}

// Issues searches issues and pull requests matching a query string.
func (c *SearchClient) Issues(ctx context.Context, query string, opts *github.ListOptions) (*github.SearchResult[github.SearchIssuesItem], error) {
	params := url.Values{}
	if opts != nil {
		params = opts.ToValues()
	}

	params.Set("q", query)

	resp, err := c.httpClient.Get(ctx, constants.APIPathSearchIssues, params)
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}

	var result github.SearchResult[github.SearchIssuesItem]

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing search response: %w", err)}
	}

	return &result, nil
}
