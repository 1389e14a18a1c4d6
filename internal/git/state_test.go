package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Decide(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		state State
		want  Action
	}{
		"clean workspace": {
			state: State{},
			want:  ActionNothingToCommit,
		},
		"untracked only": {
			state: State{HasUntracked: true},
			want:  ActionPromptUntracked,
		},
		"unstaged only": {
			state: State{HasUnstaged: true},
			want:  ActionPromptUnstaged,
		},
		"unstaged and untracked": {
			state: State{HasUnstaged: true, HasUntracked: true},
			want:  ActionPromptUnstaged,
		},
		"staged only": {
			state: State{HasStaged: true},
			want:  ActionProceed,
		},
		"staged and unstaged": {
			state: State{HasStaged: true, HasUnstaged: true},
			want:  ActionPromptRemaining,
		},
		"staged and untracked": {
			state: State{HasStaged: true, HasUntracked: true},
			want:  ActionPromptRemaining,
		},
		"everything dirty": {
			state: State{HasStaged: true, HasUnstaged: true, HasUntracked: true},
			want:  ActionPromptRemaining,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.state.Decide())
		})
	}
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	tests := map[Action]string{
		ActionProceed:         "proceed",
		ActionPromptUntracked: "prompt-untracked",
		ActionPromptUnstaged:  "prompt-unstaged",
		ActionPromptRemaining: "prompt-remaining",
		ActionNothingToCommit: "nothing-to-commit",
	}
	for action, want := range tests {
		assert.Equal(t, want, action.String())
	}
}

// stateClient is a minimal Client for exercising Snapshot.
type stateClient struct {
	Client

	staged, unstaged bool
	untracked        []string
	stagedErr        error
}

func (c *stateClient) HasStagedChanges(ctx context.Context) (bool, error) {
	return c.staged, c.stagedErr
}

func (c *stateClient) HasUnstagedChanges(ctx context.Context) (bool, error) {
	return c.unstaged, nil
}

func (c *stateClient) UntrackedFiles(ctx context.Context) ([]string, error) {
	return c.untracked, nil
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("collects all three probes", func(t *testing.T) {
		t.Parallel()
		client := &stateClient{staged: true, untracked: []string{"new.txt"}}

		state, err := Snapshot(context.Background(), client)
		require.NoError(t, err)
		assert.True(t, state.HasStaged)
		assert.False(t, state.HasUnstaged)
		assert.True(t, state.HasUntracked)
	})

	t.Run("propagates probe errors", func(t *testing.T) {
		t.Parallel()
		client := &stateClient{stagedErr: errors.New("index locked")}

		_, err := Snapshot(context.Background(), client)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index locked")
	})
}
