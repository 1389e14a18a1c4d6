// Package git provides the git workspace operations gencommit depends on:
// repository detection, change-state probes, staging, staged diff retrieval,
// and commit creation. It uses go-git for repository-level queries (detection,
// branch) and the git CLI for worktree probes and mutations, where behavior
// must match the user's hooks and configuration exactly.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Client exposes the git operations the commit workflow requires.
// Implementations must re-read workspace state on every call; the
// workflow re-probes after staging mutations and relies on fresh answers.
type Client interface {
	// IsRepository reports whether the working directory is inside a git repository.
	IsRepository() bool

	// HasStagedChanges reports whether the index differs from HEAD.
	HasStagedChanges(ctx context.Context) (bool, error)

	// HasUnstagedChanges reports whether tracked files differ from the index.
	HasUnstagedChanges(ctx context.Context) (bool, error)

	// UntrackedFiles lists files unknown to git, honoring ignore rules.
	UntrackedFiles(ctx context.Context) ([]string, error)

	// StageAll stages every change in the worktree, including untracked files.
	StageAll(ctx context.Context) error

	// StagedDiff returns the full diff of the index against HEAD.
	StagedDiff(ctx context.Context) (string, error)

	// StagedFiles lists the paths with staged changes.
	StagedFiles(ctx context.Context) ([]string, error)

	// UnstagedFiles lists tracked paths with unstaged modifications.
	UnstagedFiles(ctx context.Context) ([]string, error)

	// CurrentBranch returns the checked-out branch name, or "" when detached.
	CurrentBranch() (string, error)

	// ConfiguredEditor returns git's core.editor setting, or "" when unset.
	ConfiguredEditor(ctx context.Context) string

	// Commit creates a commit using the given file as the literal message
	// source. The file content is not reinterpreted; embedded newlines and
	// '#'-prefixed lines are preserved as written.
	Commit(ctx context.Context, messageFile string) error
}

// CLIClient executes git operations through the local git binary, with
// repository-level queries served by go-git. The Exec factory is injectable
// for tests.
type CLIClient struct {
	// Dir is the working directory for git commands. Empty means the
	// process working directory.
	Dir string

	// Exec builds the command to run. Defaults to exec.CommandContext.
	Exec func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewCLIClient returns a Client backed by the system git binary.
func NewCLIClient() *CLIClient {
	return &CLIClient{
		Exec: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, name, args...)
		},
	}
}

// openRepo opens the repository containing Dir (or the working directory),
// traversing up the directory tree to find the .git directory.
func (c *CLIClient) openRepo() (*gogit.Repository, error) {
	path := c.Dir
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository checks if the working directory is within a git repository.
func (c *CLIClient) IsRepository() bool {
	_, err := c.openRepo()
	return err == nil
}

// CurrentBranch returns the name of the current git branch.
// Returns empty string if in detached HEAD state.
func (c *CLIClient) CurrentBranch() (string, error) {
	repo, err := c.openRepo()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		// An unborn branch (fresh repo, no commits) has no HEAD yet.
		return "", nil
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// HasStagedChanges reports whether the index differs from HEAD.
// Uses `git diff --cached --quiet`, which exits 1 when differences exist.
func (c *CLIClient) HasStagedChanges(ctx context.Context) (bool, error) {
	return c.quietDiff(ctx, "diff", "--cached", "--quiet")
}

// HasUnstagedChanges reports whether tracked files differ from the index.
func (c *CLIClient) HasUnstagedChanges(ctx context.Context) (bool, error) {
	return c.quietDiff(ctx, "diff", "--quiet")
}

// quietDiff runs a --quiet diff variant and maps its exit status:
// 0 = no differences, 1 = differences, anything else is an error.
func (c *CLIClient) quietDiff(ctx context.Context, args ...string) (bool, error) {
	cmd := c.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return false, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("git %s: %v\n%s", strings.Join(args, " "), err, stderr.String())
}

// UntrackedFiles lists files unknown to git, honoring .gitignore.
func (c *CLIClient) UntrackedFiles(ctx context.Context) ([]string, error) {
	return c.fileList(ctx, "ls-files", "--others", "--exclude-standard")
}

// StagedFiles lists the paths with staged changes.
func (c *CLIClient) StagedFiles(ctx context.Context) ([]string, error) {
	return c.fileList(ctx, "diff", "--cached", "--name-only")
}

// UnstagedFiles lists tracked paths with unstaged modifications.
func (c *CLIClient) UnstagedFiles(ctx context.Context) ([]string, error) {
	return c.fileList(ctx, "diff", "--name-only")
}

// fileList runs a git command that prints one path per line.
func (c *CLIClient) fileList(ctx context.Context, args ...string) ([]string, error) {
	out, err := c.output(ctx, args...)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

// StageAll stages every change in the worktree.
func (c *CLIClient) StageAll(ctx context.Context) error {
	cmd := c.command(ctx, "add", "-A")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git add -A: %v\n%s", err, out.String())
	}
	return nil
}

// StagedDiff returns the full diff of the index against HEAD.
func (c *CLIClient) StagedDiff(ctx context.Context) (string, error) {
	return c.output(ctx, "diff", "--cached")
}

// ConfiguredEditor returns git's core.editor setting, or "" when unset.
func (c *CLIClient) ConfiguredEditor(ctx context.Context) string {
	out, err := c.output(ctx, "config", "core.editor")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// Commit creates a commit with the given file as the message source.
// Hook and git output pass through to the user's terminal.
func (c *CLIClient) Commit(ctx context.Context, messageFile string) error {
	cmd := c.command(ctx, "commit", "-F", messageFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// command builds a git command with the client's working directory applied.
func (c *CLIClient) command(ctx context.Context, args ...string) *exec.Cmd {
	execFn := c.Exec
	if execFn == nil {
		execFn = func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, name, args...)
		}
	}
	cmd := execFn(ctx, "git", args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	return cmd
}

// output runs a git command and returns stdout, with stderr folded into the error.
func (c *CLIClient) output(ctx context.Context, args ...string) (string, error) {
	cmd := c.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %v\n%s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
