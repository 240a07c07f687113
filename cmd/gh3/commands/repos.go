package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/spf13/cobra"
)

// NewReposCommand creates the repos command group
func NewReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos",
		Aliases: []string{"repo", "repositories"},
		Short:   "Manage repositories",
		Long:    "List, inspect, create, and delete repositories",
	}

	cmd.AddCommand(newReposListCommand())
	cmd.AddCommand(newReposGetCommand())
	cmd.AddCommand(newReposCreateCommand())
	cmd.AddCommand(newReposDeleteCommand())

	return cmd
}

func newReposListCommand() *cobra.Command {
	var (
		org     string
		perPage int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long:  "List the authenticated user's repositories, or an organization's with --org",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := github.NewListOptions()

			if perPage > 0 {
				opts.WithPerPage(perPage)
			}

			var repos []github.Repo

			switch {
			case org != "":
				page, err := client.Repositories().ListByOrg(ctx, org, opts)
				if err != nil {
					return fmt.Errorf("failed to list repositories: %w", err)
				}

				repos = page.Items
			case all:
				repos, err = client.Repositories().All(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list repositories: %w", err)
				}
			default:
				page, err := client.Repositories().List(ctx, opts)
				if err != nil {
					return fmt.Errorf("failed to list repositories: %w", err)
				}

				repos = page.Items
			}

			rows := make([][]string, 0, len(repos))
			for _, repo := range repos {
				visibility := "public"
				if repo.Private {
					visibility = "private"
				}

				rows = append(rows, []string{
					repo.FullName,
					visibility,
					derefString(repo.Language),
					strconv.Itoa(repo.StargazersCount),
					strconv.Itoa(repo.OpenIssuesCount),
				})
			}

			return renderOutput(repos,
				[]string{"Repository", "Visibility", "Language", "Stars", "Open Issues"}, rows)
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "list an organization's repositories")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newReposGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER/REPO",
		Short: "Show a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			repository, err := client.Repositories().Get(context.Background(), owner, repo)
			if err != nil {
				return fmt.Errorf("failed to get repository: %w", err)
			}

			return renderOutput(repository,
				[]string{"Property", "Value"},
				[][]string{
					{"Name", repository.FullName},
					{"Description", derefString(repository.Description)},
					{"Default Branch", repository.DefaultBranch},
					{"Stars", strconv.Itoa(repository.StargazersCount)},
					{"Forks", strconv.Itoa(repository.ForksCount)},
					{"Open Issues", strconv.Itoa(repository.OpenIssuesCount)},
				})
		},
	}
}

func newReposCreateCommand() *cobra.Command {
	var (
		description string
		private     bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &github.RepoRequest{Name: args[0]}

			if description != "" {
				request.Description = &description
			}

			if private {
				request.Private = &private
			}

			repository, err := client.Repositories().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create repository: %w", err)
			}

			fmt.Printf("Created repository %s\n", repository.FullName)

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "repository description")
	cmd.Flags().BoolVar(&private, "private", false, "create a private repository")

	return cmd
}

func newReposDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OWNER/REPO",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Repositories().Delete(context.Background(), owner, repo); err != nil {
				return fmt.Errorf("failed to delete repository: %w", err)
			}

			fmt.Printf("Deleted repository %s/%s\n", owner, repo)

			return nil
		},
	}
}
