// Package ghclient provides the primary entry point for constructing a
// GitHub V3 API client that implements the github.Client interface.
//
// It layers configuration, HTTP transport, and credential attachment on top
// of the resource interfaces and types defined in the github package. Most
// applications should import ghclient to build a client, then use the
// returned github.Client to access resource-specific clients, for example
// Repositories(), Issues(), Pulls(), etc.
//
// Quick start
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
//
//	  // Minimal: public endpoint, no auth.
//	  cli, err := ghclient.New(&github.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a personal access token:
//	  cli, err = ghclient.NewWithToken("ghp_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with OAuth application credentials:
//	  cli, err = ghclient.NewWithClientCredentials("client-id", "client-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the github.Client interface
//	  repos, err := cli.Repositories().List(ctx, github.NewListOptions().WithPerPage(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = repos
//	}
//
// # Enterprise endpoints
//
// Set Config.BaseURL to point the client at a GitHub Enterprise installation.
// A bare host is accepted and upgraded to https automatically.
package ghclient
