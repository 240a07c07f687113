// Package github provides types, interfaces, and helpers for working with
// the GitHub v3 REST API.
//
// # Overview
//
// The github package defines the domain types (e.g., Repo, Issue, Pull,
// Label, Gist) and the interfaces for resource-oriented clients (e.g.,
// RepositoriesClient, IssuesClient). A concrete implementation of these
// clients is provided by the ghclient package, which wires configuration,
// transport, and credential attachment. Most consumers should import
// ghclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/forgeapi-io/gh3/pkg/ghclient"
//	  "github.com/forgeapi-io/gh3/pkg/github"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ghclient.New(&github.Config{Token: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  repo, err := cli.Repositories().Get(ctx, "rust-lang", "cargo")
//	  if err != nil { log.Fatal(err) }
//	  _ = repo
//	}
//
// # Queries and pagination
//
// Use ListOptions to express common list parameters (page, per_page, state,
// sort, direction, filters). List endpoints paginate through opaque cursors
// carried in Link response headers; the PaginationIterator follows them
// lazily:
//
//	it := cli.Labels().Iter(ctx, "rust-lang", "cargo")
//	for it.HasNext() {
//	  label, err := it.Next()
//	  if err != nil { break }
//	  _ = label
//	}
//
// or collect everything at once:
//
//	all, err := cli.Labels().All(ctx, "rust-lang", "cargo")
//	if err != nil { /* handle error */ }
//	_ = all
//
// # Errors
//
// Every failure surfaces as a typed error value: APIError for structured
// API faults, RateLimitError for exhausted quotas, DecodeError for
// malformed bodies. Helpers such as IsNotFound, IsRateLimited, and
// IsUnprocessable make it easy to branch on common cases. Nothing is
// retried or swallowed inside this layer.
package github
