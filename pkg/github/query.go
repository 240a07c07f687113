package github

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions expresses the query parameters recognized by list endpoints.
// The Filters accumulator carries resource-specific parameters (assignee,
// creator, labels, since, ...) without the options type needing to know
// about any one resource.
type ListOptions struct {
	Page      int
	PerPage   int
	State     string
	Sort      string
	Direction string
	Filters   map[string][]string
}

// NewListOptions creates an empty ListOptions.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithPerPage sets the page size.
func (o *ListOptions) WithPerPage(perPage int) *ListOptions {
	o.PerPage = perPage

	return o
}

// WithState sets the state filter (open, closed, all).
func (o *ListOptions) WithState(state string) *ListOptions {
	o.State = state

	return o
}

// WithSort sets the sort key.
func (o *ListOptions) WithSort(sort string) *ListOptions {
	o.Sort = sort

	return o
}

// WithDirection sets the sort direction (asc, desc).
func (o *ListOptions) WithDirection(direction string) *ListOptions {
	o.Direction = direction

	return o
}

// Asc sorts ascending.
func (o *ListOptions) Asc() *ListOptions {
	return o.WithDirection("asc")
}

// Desc sorts descending.
func (o *ListOptions) Desc() *ListOptions {
	return o.WithDirection("desc")
}

// WithFilter appends values to a named filter.
func (o *ListOptions) WithFilter(key string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[key] = append(o.Filters[key], values...)

	return o
}

// WithLabels filters by label names (comma-joined on the wire).
func (o *ListOptions) WithLabels(labels ...string) *ListOptions {
	return o.WithFilter("labels", labels...)
}

// WithSince filters by an ISO 8601 timestamp.
func (o *ListOptions) WithSince(since string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters["since"] = []string{since}

	return o
}

// ToValues converts the options to URL query values. Multi-valued filters
// are comma-joined, matching the API's list parameter convention.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(o.PerPage))
	}

	if o.State != "" {
		values.Set("state", o.State)
	}

	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}

	if o.Direction != "" {
		values.Set("direction", o.Direction)
	}

	for key, filterValues := range o.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
