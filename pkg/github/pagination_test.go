package github_test

import (
	"context"
	"errors"
	"testing"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string
	Name string
}

// mockFetcher serves canned pages keyed by URL.
type mockFetcher struct {
	pages map[string]*github.Page[testItem]
	errs  map[string]error
	calls []string
}

func (m *mockFetcher) FetchPage(_ context.Context, pageURL string) (*github.Page[testItem], error) {
	m.calls = append(m.calls, pageURL)

	if err, ok := m.errs[pageURL]; ok {
		return nil, err
	}

	page, ok := m.pages[pageURL]
	if !ok {
		return &github.Page[testItem]{}, nil
	}

	return page, nil
}

func twoPageFetcher() *mockFetcher {
	return &mockFetcher{
		pages: map[string]*github.Page[testItem]{
			"/test": {
				Items: []testItem{
					{ID: "1", Name: "Item 1"},
					{ID: "2", Name: "Item 2"},
				},
				NextURL: "https://api.example.com/test?page=2",
			},
			"https://api.example.com/test?page=2": {
				Items: []testItem{
					{ID: "3", Name: "Item 3"},
				},
			},
		},
	}
}

func TestPaginationIterator_HasNext(t *testing.T) {
	t.Parallel()

	fetcher := twoPageFetcher()
	iterator := github.NewPaginationIterator[testItem](context.Background(), fetcher, "/test")

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())
	assert.Zero(t, fetcher.calls)

	item1, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item1.ID)

	assert.True(t, iterator.HasNext())

	item2, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", item2.ID)

	// Next page still pending
	assert.True(t, iterator.HasNext())

	item3, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", item3.ID)

	assert.False(t, iterator.HasNext())
}

func TestPaginationIterator_Exhaustion(t *testing.T) {
	t.Parallel()

	iterator := github.NewPaginationIterator[testItem](context.Background(), twoPageFetcher(), "/test")

	for i := 0; i < 3; i++ {
		_, err := iterator.Next()
		require.NoError(t, err)
	}

	// Exhaustion is permanent
	_, err := iterator.Next()
	require.ErrorIs(t, err, github.ErrNoMoreItems)

	_, err = iterator.Next()
	require.ErrorIs(t, err, github.ErrNoMoreItems)
}

func TestPaginationIterator_All(t *testing.T) {
	t.Parallel()

	fetcher := twoPageFetcher()
	iterator := github.NewPaginationIterator[testItem](context.Background(), fetcher, "/test")

	items, err := iterator.All()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "3", items[2].ID)

	// One fetch per page, no refetches
	assert.Equal(t, 2, iterator.Fetches())
	assert.Equal(t, []string{"/test", "https://api.example.com/test?page=2"}, fetcher.calls)
}

func TestPaginationIterator_ForEach(t *testing.T) {
	t.Parallel()

	iterator := github.NewPaginationIterator[testItem](context.Background(), twoPageFetcher(), "/test")

	var seen []string

	err := iterator.ForEach(func(item testItem) error {
		seen = append(seen, item.ID)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, seen)
}

func TestPaginationIterator_ForEachStopsOnError(t *testing.T) {
	t.Parallel()

	iterator := github.NewPaginationIterator[testItem](context.Background(), twoPageFetcher(), "/test")
	errStop := errors.New("stop")

	var seen int

	err := iterator.ForEach(func(testItem) error {
		seen++
		if seen == 2 {
			return errStop
		}

		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 2, seen)
}

func TestPaginationIterator_EmptyStart(t *testing.T) {
	t.Parallel()

	iterator := github.NewPaginationIterator[testItem](context.Background(), &mockFetcher{}, "")

	assert.False(t, iterator.HasNext())

	_, err := iterator.Next()
	require.ErrorIs(t, err, github.ErrNoMoreItems)
}

func TestPaginationIterator_EmptyPageWithNext(t *testing.T) {
	t.Parallel()

	// A page may legitimately be empty while still advertising a next page.
	fetcher := &mockFetcher{
		pages: map[string]*github.Page[testItem]{
			"/test": {
				NextURL: "/test?page=2",
			},
			"/test?page=2": {
				Items: []testItem{{ID: "1", Name: "Item 1"}},
			},
		},
	}
	iterator := github.NewPaginationIterator[testItem](context.Background(), fetcher, "/test")

	item, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, 2, iterator.Fetches())

	_, err = iterator.Next()
	require.ErrorIs(t, err, github.ErrNoMoreItems)
}

func TestPaginationIterator_ErrorReportedOnce(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	fetcher := &mockFetcher{
		pages: map[string]*github.Page[testItem]{
			"/test": {
				Items:   []testItem{{ID: "1", Name: "Item 1"}},
				NextURL: "/test?page=2",
			},
		},
		errs: map[string]error{
			"/test?page=2": errBoom,
		},
	}
	iterator := github.NewPaginationIterator[testItem](context.Background(), fetcher, "/test")

	item, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	// The failed page surfaces its error exactly once
	_, err = iterator.Next()
	require.ErrorIs(t, err, errBoom)

	// then the iterator behaves as exhausted, without refetching
	_, err = iterator.Next()
	require.ErrorIs(t, err, github.ErrNoMoreItems)
	assert.Equal(t, []string{"/test", "/test?page=2"}, fetcher.calls)
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()
	t.Run("collects every page", func(t *testing.T) {
		t.Parallel()

		items, err := github.FetchAllPages[testItem](context.Background(), twoPageFetcher(), "/test", nil)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("honors MaxPages", func(t *testing.T) {
		t.Parallel()

		opts := &github.PaginationOptions{MaxPages: 1}

		items, err := github.FetchAllPages[testItem](context.Background(), twoPageFetcher(), "/test", opts)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("rejects nil fetcher", func(t *testing.T) {
		t.Parallel()

		_, err := github.FetchAllPages[testItem](context.Background(), nil, "/test", nil)
		require.ErrorIs(t, err, github.ErrNilFetcher)
	})
}

func TestStreamPages(t *testing.T) {
	t.Parallel()
	t.Run("streams pages in order", func(t *testing.T) {
		t.Parallel()

		results := github.StreamPages[testItem](context.Background(), twoPageFetcher(), "/test", nil)

		var pages [][]testItem

		for result := range results {
			require.NoError(t, result.Err)
			pages = append(pages, result.Items)
		}

		require.Len(t, pages, 2)
		assert.Len(t, pages[0], 2)
		assert.Len(t, pages[1], 1)
	})

	t.Run("delivers error and closes", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		fetcher := &mockFetcher{
			errs: map[string]error{"/test": errBoom},
		}

		results := github.StreamPages[testItem](context.Background(), fetcher, "/test", nil)

		result, ok := <-results
		require.True(t, ok)
		require.ErrorIs(t, result.Err, errBoom)

		_, ok = <-results
		assert.False(t, ok)
	})
}

func TestParseLinkHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		rel      string
		expected string
	}{
		{
			name:     "next among multiple relations",
			header:   `<https://api.example.com/repos?page=2>; rel="next", <https://api.example.com/repos?page=5>; rel="last"`,
			rel:      "next",
			expected: "https://api.example.com/repos?page=2",
		},
		{
			name:     "last relation",
			header:   `<https://api.example.com/repos?page=2>; rel="next", <https://api.example.com/repos?page=5>; rel="last"`,
			rel:      "last",
			expected: "https://api.example.com/repos?page=5",
		},
		{
			name:     "unquoted rel",
			header:   `</repos?page=2>; rel=next`,
			rel:      "next",
			expected: "/repos?page=2",
		},
		{
			name:     "relation absent",
			header:   `<https://api.example.com/repos?page=1>; rel="prev"`,
			rel:      "next",
			expected: "",
		},
		{
			name:     "empty header",
			header:   "",
			rel:      "next",
			expected: "",
		},
		{
			name:     "malformed entry",
			header:   `https://api.example.com/repos?page=2; rel="next"`,
			rel:      "next",
			expected: "",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, github.ParseLinkHeader(testCase.header, testCase.rel))
		})
	}
}
