package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/spf13/cobra"
)

// NewIssuesCommand creates the issues command group
func NewIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue"},
		Short:   "Manage issues",
		Long:    "List, inspect, create, and label issues",
	}

	cmd.AddCommand(newIssuesListCommand())
	cmd.AddCommand(newIssuesGetCommand())
	cmd.AddCommand(newIssuesCreateCommand())
	cmd.AddCommand(newIssuesCloseCommand())
	cmd.AddCommand(newIssuesLabelCommand())

	return cmd
}

func issueRows(issues []github.Issue) [][]string {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		labels := make([]string, 0, len(issue.Labels))
		for _, label := range issue.Labels {
			labels = append(labels, label.Name)
		}

		rows = append(rows, []string{
			strconv.Itoa(issue.Number),
			issue.State,
			issue.Title,
			strings.Join(labels, ","),
			issue.User.Login,
		})
	}

	return rows
}

func newIssuesListCommand() *cobra.Command {
	var (
		state  string
		labels []string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list OWNER/REPO",
		Short: "List issues",
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

			ctx := context.Background()
			opts := github.NewListOptions().WithState(state)

			if len(labels) > 0 {
				opts.WithLabels(labels...)
			}

			var issues []github.Issue

			if all {
				issues, err = client.Issues().Iter(ctx, owner, repo, opts).All()
				if err != nil {
					return fmt.Errorf("failed to list issues: %w", err)
				}
			} else {
				page, err := client.Issues().List(ctx, owner, repo, opts)
				if err != nil {
					return fmt.Errorf("failed to list issues: %w", err)
				}

				issues = page.Items
			}

			return renderOutput(issues,
				[]string{"Number", "State", "Title", "Labels", "Author"}, issueRows(issues))
		},
	}

	cmd.Flags().StringVar(&state, "state", "open", "filter by state (open, closed, all)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "filter by label (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newIssuesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER/REPO NUMBER",
		Short: "Show an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid issue number %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			issue, err := client.Issues().Get(context.Background(), owner, repo, number)
			if err != nil {
				return fmt.Errorf("failed to get issue: %w", err)
			}

			return renderOutput(issue,
				[]string{"Property", "Value"},
				[][]string{
					{"Number", strconv.Itoa(issue.Number)},
					{"Title", issue.Title},
					{"State", issue.State},
					{"Author", issue.User.Login},
					{"Comments", strconv.Itoa(issue.Comments)},
				})
		},
	}
}

func newIssuesCreateCommand() *cobra.Command {
	var (
		title  string
		body   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "create OWNER/REPO",
		Short: "Create an issue",
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

			request := &github.IssueRequest{Title: &title}

			if body != "" {
				request.Body = &body
			}

			if len(labels) > 0 {
				request.Labels = &labels
			}

			issue, err := client.Issues().Create(context.Background(), owner, repo, request)
			if err != nil {
				return fmt.Errorf("failed to create issue: %w", err)
			}

			fmt.Printf("Created issue #%d\n", issue.Number)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "issue title")
	cmd.Flags().StringVar(&body, "body", "", "issue body")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "attach a label (repeatable)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newIssuesCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close OWNER/REPO NUMBER",
		Short: "Close an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid issue number %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			closed := "closed"

			_, err = client.Issues().Update(context.Background(), owner, repo, number,
				&github.IssueRequest{State: &closed})
			if err != nil {
				return fmt.Errorf("failed to close issue: %w", err)
			}

			fmt.Printf("Closed issue #%d\n", number)

			return nil
		},
	}
}

func newIssuesLabelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "label OWNER/REPO NUMBER LABEL...",
		Short: "Attach labels to an issue",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid issue number %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			labels, err := client.Issues().AddLabels(context.Background(), owner, repo, number, args[2:])
			if err != nil {
				return fmt.Errorf("failed to add labels: %w", err)
			}

			names := make([]string, 0, len(labels))
			for _, label := range labels {
				names = append(names, label.Name)
			}

			fmt.Printf("Labels on #%d: %s\n", number, strings.Join(names, ", "))

			return nil
		},
	}
}
