package git

import "context"

// State captures the three independent change dimensions of a workspace.
// It is derived, never stored: callers must take a fresh Snapshot after any
// staging mutation rather than reuse an earlier value.
type State struct {
	HasStaged    bool
	HasUnstaged  bool
	HasUntracked bool
}

// Action is the single path the decision table selects for a State.
type Action int

const (
	// ActionProceed: staged changes only, commit without prompting.
	ActionProceed Action = iota
	// ActionPromptUntracked: nothing staged, only untracked files exist.
	ActionPromptUntracked
	// ActionPromptUnstaged: nothing staged, unstaged changes exist
	// (untracked files may also exist).
	ActionPromptUnstaged
	// ActionPromptRemaining: staged changes exist alongside unstaged or
	// untracked ones. Declining here proceeds with the staged subset.
	ActionPromptRemaining
	// ActionNothingToCommit: the workspace is fully clean.
	ActionNothingToCommit
)

// String returns the action name for logs and test failures.
func (a Action) String() string {
	switch a {
	case ActionProceed:
		return "proceed"
	case ActionPromptUntracked:
		return "prompt-untracked"
	case ActionPromptUnstaged:
		return "prompt-unstaged"
	case ActionPromptRemaining:
		return "prompt-remaining"
	case ActionNothingToCommit:
		return "nothing-to-commit"
	default:
		return "unknown"
	}
}

// Snapshot probes the workspace and returns its current State.
func Snapshot(ctx context.Context, c Client) (State, error) {
	staged, err := c.HasStagedChanges(ctx)
	if err != nil {
		return State{}, err
	}
	unstaged, err := c.HasUnstagedChanges(ctx)
	if err != nil {
		return State{}, err
	}
	untracked, err := c.UntrackedFiles(ctx)
	if err != nil {
		return State{}, err
	}
	return State{
		HasStaged:    staged,
		HasUnstaged:  unstaged,
		HasUntracked: len(untracked) > 0,
	}, nil
}

// Decide classifies the state into exactly one action path.
//
// Checked in priority order:
//  1. nothing staged, untracked only       -> prompt to stage all
//  2. nothing staged, unstaged present     -> prompt to stage all
//  3. nothing staged, workspace clean      -> nothing to commit
//  4. staged plus unstaged or untracked    -> prompt to stage the remainder
//  5. staged only                          -> proceed without prompting
func (s State) Decide() Action {
	if !s.HasStaged {
		switch {
		case s.HasUntracked && !s.HasUnstaged:
			return ActionPromptUntracked
		case s.HasUnstaged:
			return ActionPromptUnstaged
		default:
			return ActionNothingToCommit
		}
	}
	if s.HasUnstaged || s.HasUntracked {
		return ActionPromptRemaining
	}
	return ActionProceed
}
