package commands

import (
	"context"
	"fmt"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/spf13/cobra"
)

// NewLabelsCommand creates the labels command group
func NewLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labels",
		Aliases: []string{"label"},
		Short:   "Manage labels",
		Long:    "List, create, update, and delete repository labels",
	}

	cmd.AddCommand(newLabelsListCommand())
	cmd.AddCommand(newLabelsCreateCommand())
	cmd.AddCommand(newLabelsUpdateCommand())
	cmd.AddCommand(newLabelsDeleteCommand())

	return cmd
}

func newLabelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list OWNER/REPO",
		Short: "List every label of a repository",
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

			labels, err := client.Labels().All(context.Background(), owner, repo)
			if err != nil {
				return fmt.Errorf("failed to list labels: %w", err)
			}

			rows := make([][]string, 0, len(labels))
			for _, label := range labels {
				rows = append(rows, []string{label.Name, label.Color})
			}

			return renderOutput(labels, []string{"Name", "Color"}, rows)
		},
	}
}

func newLabelsCreateCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "create OWNER/REPO NAME",
		Short: "Create a label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			label, err := client.Labels().Create(context.Background(), owner, repo,
				&github.LabelRequest{Name: args[1], Color: color})
			if err != nil {
				return fmt.Errorf("failed to create label: %w", err)
			}

			fmt.Printf("Created label %s (#%s)\n", label.Name, label.Color)

			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "ededed", "label color (6-digit hex, no #)")

	return cmd
}

func newLabelsUpdateCommand() *cobra.Command {
	var (
		newName string
		color   string
	)

	cmd := &cobra.Command{
		Use:   "update OWNER/REPO NAME",
		Short: "Rename or recolor a label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &github.LabelRequest{Name: args[1], Color: color}
			if newName != "" {
				request.Name = newName
			}

			label, err := client.Labels().Update(context.Background(), owner, repo, args[1], request)
			if err != nil {
				return fmt.Errorf("failed to update label: %w", err)
			}

			fmt.Printf("Updated label %s (#%s)\n", label.Name, label.Color)

			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "new label name")
	cmd.Flags().StringVar(&color, "color", "", "new label color")

	return cmd
}

func newLabelsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OWNER/REPO NAME",
		Short: "Delete a label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Labels().Delete(context.Background(), owner, repo, args[1]); err != nil {
				return fmt.Errorf("failed to delete label: %w", err)
			}

			fmt.Printf("Deleted label %s\n", args[1])

			return nil
		},
	}
}
