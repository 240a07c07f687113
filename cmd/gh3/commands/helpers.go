package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/forgeapi-io/gh3/pkg/ghclient"
	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrRepoRequired      = errors.New("repository is required (owner/repo)")
	ErrInvalidRepoFormat = errors.New("invalid repository format, expected owner/repo")
	ErrQueryRequired     = errors.New("search query is required")
	ErrTokenRequired     = errors.New("authentication token is required")
)

// createClient builds an API client from the effective CLI configuration.
func createClient() (github.Client, error) {
	config := &github.Config{
		BaseURL: viper.GetString("api"),
		Token:   viper.GetString("token"),
	}

	client, err := ghclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// splitRepo splits an owner/repo argument.
func splitRepo(arg string) (string, string, error) {
	if arg == "" {
		return "", "", ErrRepoRequired
	}

	for i := 0; i < len(arg); i++ {
		if arg[i] == '/' {
			owner, repo := arg[:i], arg[i+1:]
			if owner == "" || repo == "" {
				return "", "", ErrInvalidRepoFormat
			}

			return owner, repo, nil
		}
	}

	return "", "", ErrInvalidRepoFormat
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// renderTable writes rows to stdout with the given header.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(toAnySlice(header)...)

	for _, row := range rows {
		_ = table.Append(toAnySlice(row)...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// renderOutput dispatches on the configured output format, falling back to
// the table renderer.
func renderOutput(v interface{}, header []string, rows [][]string) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(v)
	case OutputFormatYAML:
		return renderYAML(v)
	default:
		return renderTable(header, rows)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
