package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/spf13/cobra"
)

// NewPullsCommand creates the pulls command group
func NewPullsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pulls",
		Aliases: []string{"pull", "pr"},
		Short:   "Manage pull requests",
		Long:    "List, inspect, create, and label pull requests",
	}

	cmd.AddCommand(newPullsListCommand())
	cmd.AddCommand(newPullsGetCommand())
	cmd.AddCommand(newPullsCreateCommand())
	cmd.AddCommand(newPullsFilesCommand())
	cmd.AddCommand(newPullsLabelCommand())

	return cmd
}

func newPullsListCommand() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "list OWNER/REPO",
		Short: "List pull requests",
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

			opts := github.NewListOptions().WithState(state)

			page, err := client.Pulls().List(context.Background(), owner, repo, opts)
			if err != nil {
				return fmt.Errorf("failed to list pull requests: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, pull := range page.Items {
				rows = append(rows, []string{
					strconv.Itoa(pull.Number),
					pull.State,
					pull.Title,
					pull.Head.Ref,
					pull.Base.Ref,
				})
			}

			return renderOutput(page.Items,
				[]string{"Number", "State", "Title", "Head", "Base"}, rows)
		},
	}

	cmd.Flags().StringVar(&state, "state", "open", "filter by state (open, closed, all)")

	return cmd
}

func newPullsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER/REPO NUMBER",
		Short: "Show a pull request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid pull request number %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			pull, err := client.Pulls().Get(ctx, owner, repo, number)
			if err != nil {
				return fmt.Errorf("failed to get pull request: %w", err)
			}

			merged, err := client.Pulls().IsMerged(ctx, owner, repo, number)
			if err != nil {
				return fmt.Errorf("failed to check merge status: %w", err)
			}

			return renderOutput(pull,
				[]string{"Property", "Value"},
				[][]string{
					{"Number", strconv.Itoa(pull.Number)},
					{"Title", pull.Title},
					{"State", pull.State},
					{"Merged", strconv.FormatBool(merged)},
					{"Head", pull.Head.Ref},
					{"Base", pull.Base.Ref},
					{"Author", pull.User.Login},
				})
		},
	}
}

func newPullsCreateCommand() *cobra.Command {
	var (
		title string
		head  string
		base  string
		body  string
	)

	cmd := &cobra.Command{
		Use:   "create OWNER/REPO",
		Short: "Open a pull request",
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

			request := &github.PullRequest{Title: title, Head: head, Base: base}

			if body != "" {
				request.Body = &body
			}

			pull, err := client.Pulls().Create(context.Background(), owner, repo, request)
			if err != nil {
				return fmt.Errorf("failed to create pull request: %w", err)
			}

			fmt.Printf("Opened pull request #%d\n", pull.Number)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "pull request title")
	cmd.Flags().StringVar(&head, "head", "", "branch with the changes")
	cmd.Flags().StringVar(&base, "base", "", "branch to merge into")
	cmd.Flags().StringVar(&body, "body", "", "pull request body")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("head")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}

func newPullsFilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "files OWNER/REPO NUMBER",
		Short: "List the files changed by a pull request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid pull request number %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			page, err := client.Pulls().ListFiles(context.Background(), owner, repo, number)
			if err != nil {
				return fmt.Errorf("failed to list files: %w", err)
			}

			rows := make([][]string, 0, len(page.Items))
			for _, file := range page.Items {
				rows = append(rows, []string{
					file.Filename,
					file.Status,
					strconv.Itoa(file.Additions),
					strconv.Itoa(file.Deletions),
				})
			}

			return renderOutput(page.Items,
				[]string{"File", "Status", "Additions", "Deletions"}, rows)
		},
	}
}

func newPullsLabelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "label OWNER/REPO NUMBER LABEL...",
		Short: "Attach labels to a pull request",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			number, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid pull request number %q: %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			labels, err := client.Pulls().AddLabels(context.Background(), owner, repo, number, args[2:])
			if err != nil {
				return fmt.Errorf("failed to add labels: %w", err)
			}

			fmt.Printf("Added %d label(s) to #%d\n", len(labels), number)

			return nil
		},
	}
}
