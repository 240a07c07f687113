package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command group
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search GitHub",
		Long:  "Search issues and pull requests",
	}

	cmd.AddCommand(newSearchIssuesCommand())

	return cmd
}

func newSearchIssuesCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "issues QUERY...",
		Short: "Search issues and pull requests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" {
				return ErrQueryRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			opts := github.NewListOptions()
			if perPage > 0 {
				opts.WithPerPage(perPage)
			}

			result, err := client.Search().Issues(context.Background(), query, opts)
			if err != nil {
				return fmt.Errorf("failed to search issues: %w", err)
			}

			rows := make([][]string, 0, len(result.Items))
			for _, item := range result.Items {
				kind := "issue"
				if item.PullRequest != nil {
					kind = "pull"
				}

				rows = append(rows, []string{
					strconv.Itoa(item.Number),
					kind,
					item.State,
					item.Title,
				})
			}

			return renderOutput(result,
				[]string{"Number", "Type", "State", "Title"}, rows)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size")

	return cmd
}

// NewRateLimitCommand creates the rate-limit command
func NewRateLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rate-limit",
		Short: "Show the current rate limit quota",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			status, err := client.RateLimit(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get rate limit: %w", err)
			}

			reset := time.Unix(status.Rate.Reset, 0).Local().Format(time.RFC1123)

			return renderOutput(status,
				[]string{"Resource", "Limit", "Remaining", "Resets"},
				[][]string{
					{"core", strconv.Itoa(status.Resources.Core.Limit),
						strconv.Itoa(status.Resources.Core.Remaining),
						time.Unix(status.Resources.Core.Reset, 0).Local().Format(time.RFC1123)},
					{"search", strconv.Itoa(status.Resources.Search.Limit),
						strconv.Itoa(status.Resources.Search.Remaining),
						time.Unix(status.Resources.Search.Reset, 0).Local().Format(time.RFC1123)},
					{"rate", strconv.Itoa(status.Rate.Limit),
						strconv.Itoa(status.Rate.Remaining), reset},
				})
		},
	}
}
