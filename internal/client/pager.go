package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeapi-io/gh3/internal/constants"
	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// newPageFetcher adapts the HTTP client to the pagination engine for an
// item type. Each fetch decodes the page body as a JSON array of T and
// extracts the next cursor from the Link header.
func newPageFetcher[T any](httpClient *internalhttp.Client) github.PageFetcherFunc[T] {
	return func(ctx context.Context, pageURL string) (*github.Page[T], error) {
		resp, err := httpClient.Get(ctx, pageURL, nil)
		if err != nil {
			return nil, fmt.Errorf("fetching page: %w", err)
		}

		var items []T

		if len(bytes.TrimSpace(resp.Body)) > 0 {
			err = json.Unmarshal(resp.Body, &items)
			if err != nil {
				return nil, &github.DecodeError{Err: fmt.Errorf("parsing page body: %w", err)}
			}
		}

		next := github.ParseLinkHeader(resp.Headers.Get(constants.HeaderLink), constants.LinkRelNext)

		return &github.Page[T]{Items: items, NextURL: next}, nil
	}
}

// startURL builds the first-page URL. Caller-supplied query parameters are
// attached here once; later page URLs come verbatim from Link headers.
func startURL(path string, opts *github.ListOptions) string {
	values := opts.ToValues()
	if len(values) == 0 {
		return path
	}

	return path + "?" + values.Encode()
}

// listPage fetches a single page of a list resource.
func listPage[T any](ctx context.Context, httpClient *internalhttp.Client, path string, opts *github.ListOptions) (*github.Page[T], error) {
	return newPageFetcher[T](httpClient).FetchPage(ctx, startURL(path, opts))
}

// iterate starts a lazy iterator over all pages of a list resource.
func iterate[T any](ctx context.Context, httpClient *internalhttp.Client, path string, opts *github.ListOptions) *github.PaginationIterator[T] {
	return github.NewPaginationIterator(ctx, newPageFetcher[T](httpClient), startURL(path, opts))
}
