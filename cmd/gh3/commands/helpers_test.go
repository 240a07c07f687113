package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		arg       string
		owner     string
		repo      string
		expectErr error
	}{
		{name: "valid", arg: "acme/widgets", owner: "acme", repo: "widgets"},
		{name: "nested slash keeps remainder", arg: "acme/widgets/extra", owner: "acme", repo: "widgets/extra"},
		{name: "empty", arg: "", expectErr: ErrRepoRequired},
		{name: "missing repo", arg: "acme/", expectErr: ErrInvalidRepoFormat},
		{name: "missing owner", arg: "/widgets", expectErr: ErrInvalidRepoFormat},
		{name: "no slash", arg: "acme", expectErr: ErrInvalidRepoFormat},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			owner, repo, err := splitRepo(testCase.arg)

			if testCase.expectErr != nil {
				require.ErrorIs(t, err, testCase.expectErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.owner, owner)
			assert.Equal(t, testCase.repo, repo)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")

	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
