package github

import (
	"context"
	"errors"
	"strings"
)

// Page holds one fetched page of a paginated list resource. NextURL is the
// absolute URL of the following page taken from the Link response header,
// or empty when no further pages exist.
type Page[T any] struct {
	Items   []T
	NextURL string
}

// PageFetcher fetches a single page identified by its absolute or
// host-relative URL.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, pageURL string) (*Page[T], error)
}

// PageFetcherFunc adapts a function to the PageFetcher interface.
type PageFetcherFunc[T any] func(ctx context.Context, pageURL string) (*Page[T], error)

// FetchPage implements PageFetcher.
func (f PageFetcherFunc[T]) FetchPage(ctx context.Context, pageURL string) (*Page[T], error) {
	return f(ctx, pageURL)
}

// PaginationIterator lazily walks a Link-header paginated resource, fetching
// one page at a time and yielding items in arrival order.
//
// The iterator is a forward-only state machine: items from the current page
// are buffered and handed out one per Next call; a new page is fetched only
// when the buffer is empty and a next cursor remains. Once both are gone the
// iterator is permanently exhausted and Next keeps returning ErrNoMoreItems.
// A fetch or decode failure is reported exactly once, after which the
// iterator behaves as exhausted; the failed page is never re-fetched.
//
// An iterator must not be shared between goroutines without external
// synchronization.
type PaginationIterator[T any] struct {
	ctx     context.Context
	fetcher PageFetcher[T]
	nextURL string
	buffer  []T
	err     error
	fetches int
}

// NewPaginationIterator creates an iterator starting at startURL. Any
// caller-supplied query parameters must already be encoded into startURL;
// subsequent page URLs come verbatim from Link headers.
func NewPaginationIterator[T any](ctx context.Context, fetcher PageFetcher[T], startURL string) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:     ctx,
		fetcher: fetcher,
		nextURL: startURL,
	}
}

// HasNext reports whether another call to Next can yield an item or a
// pending error. It never performs a fetch; an empty trailing page can make
// HasNext return true with the following Next reporting exhaustion.
func (it *PaginationIterator[T]) HasNext() bool {
	return len(it.buffer) > 0 || it.err != nil || it.nextURL != ""
}

// Next returns the next item in page order. It returns ErrNoMoreItems once
// the sequence is exhausted, permanently. A failed page surfaces its error
// on exactly one call; later calls report exhaustion.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	for {
		if len(it.buffer) > 0 {
			item := it.buffer[0]
			it.buffer = it.buffer[1:]

			return item, nil
		}

		if it.err != nil {
			err := it.err
			it.err = nil

			return zero, err
		}

		if it.nextURL == "" {
			return zero, ErrNoMoreItems
		}

		it.fetchNextPage()
	}
}

// fetchNextPage advances the cursor by one page. An empty page with a next
// cursor simply loops in Next; the cursor always changes or clears, so no
// page is fetched twice.
func (it *PaginationIterator[T]) fetchNextPage() {
	pageURL := it.nextURL
	it.nextURL = ""
	it.fetches++

	page, err := it.fetcher.FetchPage(it.ctx, pageURL)
	if err != nil {
		it.err = err

		return
	}

	it.buffer = page.Items
	it.nextURL = page.NextURL
}

// All drains the iterator and returns every remaining item.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Fetches returns the number of page fetches performed so far.
func (it *PaginationIterator[T]) Fetches() int {
	return it.fetches
}

// PaginationOptions tunes the page-collection helpers.
type PaginationOptions struct {
	// MaxPages limits how many pages are fetched; 0 means unlimited.
	MaxPages int
}

// FetchAllPages collects every item of a paginated resource into one slice.
func FetchAllPages[T any](ctx context.Context, fetcher PageFetcher[T], startURL string, opts *PaginationOptions) ([]T, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}

	maxPages := 0
	if opts != nil {
		maxPages = opts.MaxPages
	}

	var items []T

	nextURL := startURL
	fetched := 0

	for nextURL != "" {
		if maxPages > 0 && fetched >= maxPages {
			break
		}

		page, err := fetcher.FetchPage(ctx, nextURL)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		nextURL = page.NextURL
		fetched++
	}

	return items, nil
}

// PageResult is one delivery of StreamPages: a page of items or a terminal
// error.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages pushes pages to a channel as they are fetched. The channel is
// closed after the last page, after the first error, or when ctx is
// canceled. Fetches remain strictly sequential.
func StreamPages[T any](ctx context.Context, fetcher PageFetcher[T], startURL string, opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	maxPages := 0
	if opts != nil {
		maxPages = opts.MaxPages
	}

	go func() {
		defer close(results)

		nextURL := startURL
		fetched := 0

		for nextURL != "" {
			if maxPages > 0 && fetched >= maxPages {
				return
			}

			page, err := fetcher.FetchPage(ctx, nextURL)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items}:
			case <-ctx.Done():
				return
			}

			nextURL = page.NextURL
			fetched++
		}
	}()

	return results
}

// ParseLinkHeader extracts the URL for the given relation from a Link
// response header of the form `<url>; rel="next", <url>; rel="last"`.
// It returns the empty string when the relation is absent or the header is
// malformed.
func ParseLinkHeader(header, rel string) string {
	for _, entry := range strings.Split(header, ",") {
		segments := strings.Split(entry, ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}

		target = strings.Trim(target, "<>")

		for _, param := range segments[1:] {
			param = strings.TrimSpace(param)
			if param == `rel="`+rel+`"` || param == "rel="+rel {
				return target
			}
		}
	}

	return ""
}
