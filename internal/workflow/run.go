// Package workflow drives a full gencommit run: inspect the workspace,
// optionally capture user context, generate a commit message from the staged
// diff, let the user review it in their editor, and create the commit.
package workflow

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/gencommit/internal/config"
	"github.com/ariel-frischer/gencommit/internal/errors"
	"github.com/ariel-frischer/gencommit/internal/generator"
	"github.com/ariel-frischer/gencommit/internal/git"
	"github.com/ariel-frischer/gencommit/internal/output"
	"github.com/ariel-frischer/gencommit/internal/progress"
	"github.com/ariel-frischer/gencommit/internal/prompt"
	"github.com/ariel-frischer/gencommit/internal/scratch"
)

// ErrContextAbandoned signals the user walked out of interactive context
// capture without providing anything. Not an error condition: the CLI layer
// turns it into an informational message and a clean exit.
var ErrContextAbandoned = stderrors.New("context capture abandoned")

var contextInstructions = []string{
	"Describe the intent behind this change. What problem does it solve,",
	"and why now? The description guides the generated commit message.",
	"",
	"Lines starting with the comment marker are ignored. Save an empty",
	"file, or close without saving, to continue without extra context.",
}

var reviewInstructions = []string{
	"Review the generated commit message below. Edit freely, then save",
	"and close to create the commit.",
	"",
	"Commented and blank lines are removed from the final message.",
	"Close without saving to abort. Save an emptied file to abort.",
}

// Options carries per-invocation inputs that are not configuration.
type Options struct {
	// Context is literal user context for the prompt. Mutually exclusive
	// with CaptureContext.
	Context string

	// CaptureContext opens an editor session to collect context before
	// anything else runs.
	CaptureContext bool
}

// Runner wires the collaborators for one gencommit invocation. Every field
// is an interface or injectable so tests can run the whole flow with fakes.
type Runner struct {
	Git       git.Client
	Editor    scratch.Editor
	Generator generator.Generator
	Prompter  Prompter
	Config    *config.Configuration
	Caps      progress.TerminalCapabilities

	// Out receives user-facing progress and status lines.
	Out io.Writer
}

// Run executes the full workflow. Returned errors are either CLIErrors ready
// for display or ErrContextAbandoned.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if r.Out == nil {
		r.Out = os.Stdout
	}

	if !r.Git.IsRepository() {
		return errors.NewNotARepository()
	}

	userContext := opts.Context
	if opts.CaptureContext {
		captured, err := r.captureContext()
		if err != nil {
			return err
		}
		userContext = captured
	}

	if err := r.ensureStaged(ctx); err != nil {
		return err
	}

	diff, err := r.Git.StagedDiff(ctx)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "reading staged diff")
	}
	diff = prompt.TrimDiff(diff, r.Config.MaxDiffBytes)

	promptText := prompt.Build(diff, userContext)

	raw, err := r.generate(ctx, promptText)
	if err != nil {
		return err
	}

	message, err := r.review(ctx, raw)
	if err != nil {
		return err
	}

	return r.commit(ctx, message)
}

// captureContext runs the free-form context scratch session. An untouched or
// emptied file means the user has nothing to add and the run stops cleanly.
func (r *Runner) captureContext() (string, error) {
	content, err := scratch.Run(r.Editor, scratch.Session{
		Instructions:  contextInstructions,
		CommentPrefix: r.Config.CommentPrefix,
		JoinLines:     true,
	})
	if err != nil {
		if stderrors.Is(err, scratch.ErrUnmodified) || stderrors.Is(err, scratch.ErrEmpty) {
			return "", ErrContextAbandoned
		}
		return "", errors.WrapWithMessage(err, errors.Runtime, "capturing context")
	}
	return content, nil
}

// ensureStaged brings the workspace to a state with staged changes, prompting
// for staging where the decision table calls for it. State is re-read from
// git after every mutation rather than assumed.
func (r *Runner) ensureStaged(ctx context.Context) error {
	state, err := git.Snapshot(ctx, r.Git)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "inspecting workspace")
	}

	switch state.Decide() {
	case git.ActionProceed:
		return nil

	case git.ActionNothingToCommit:
		return errors.NewNothingToCommit()

	case git.ActionPromptUntracked:
		if !r.Prompter.Confirm("Only untracked files found. Stage all files?") {
			return errors.NewStagingDeclined()
		}
		return r.stageAll(ctx)

	case git.ActionPromptUnstaged:
		if !r.Prompter.Confirm("No staged changes yet. Stage all changes?") {
			return errors.NewStagingDeclined()
		}
		return r.stageAll(ctx)

	case git.ActionPromptRemaining:
		// Declining here is not an abort: the staged subset is a valid
		// commit on its own.
		if r.Prompter.Confirm("You have staged and unstaged changes. Stage the remaining changes too?") {
			return r.stageAll(ctx)
		}
		output.PrintInfo(r.Out, "Committing only the already-staged changes.")
		return nil
	}

	return errors.WrapWithMessage(fmt.Errorf("unhandled workspace state %+v", state), errors.Runtime, "inspecting workspace")
}

func (r *Runner) stageAll(ctx context.Context) error {
	if err := r.Git.StageAll(ctx); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "staging changes")
	}
	state, err := git.Snapshot(ctx, r.Git)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "inspecting workspace")
	}
	if !state.HasStaged {
		return errors.NewNothingToCommit()
	}
	return nil
}

// generate runs the external generator with a spinner when configured. The
// returned message is whitespace-trimmed but otherwise verbatim.
func (r *Runner) generate(ctx context.Context, promptText string) (string, error) {
	var spin *progress.Spinner
	if r.Config.ShowProgress {
		spin = progress.NewSpinner(r.Caps, "Generating commit message...")
		spin.Start()
	}
	raw, err := r.Generator.Generate(ctx, promptText)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return "", err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.NewGenerationFailed(r.Config.GeneratorCmd, stderrors.New("produced no output"), "")
	}
	return raw, nil
}

// review opens the generated message in the user's editor, seeded with a
// commented workspace summary so the user sees what the commit will contain.
func (r *Runner) review(ctx context.Context, generated string) (string, error) {
	output.PrintStep(r.Out, "Opening editor to review the message", "save to commit, quit to abort")
	message, err := scratch.Run(r.Editor, scratch.Session{
		Instructions:  reviewInstructions,
		StatusLines:   r.statusLines(ctx),
		CommentPrefix: r.Config.CommentPrefix,
		Seed:          generated,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, scratch.ErrUnmodified):
			return "", errors.NewReviewAborted("message left unmodified, not saved")
		case stderrors.Is(err, scratch.ErrEmpty):
			return "", errors.NewEmptyMessage()
		default:
			return "", errors.WrapWithMessage(err, errors.Runtime, "reviewing message")
		}
	}
	return message, nil
}

// statusLines summarizes the workspace for the review scratch file. Failures
// here degrade the summary instead of failing the run.
func (r *Runner) statusLines(ctx context.Context) []string {
	var lines []string
	if branch, err := r.Git.CurrentBranch(); err == nil && branch != "" {
		lines = append(lines, "On branch "+branch)
	}
	if staged, err := r.Git.StagedFiles(ctx); err == nil && len(staged) > 0 {
		lines = append(lines, "Changes to be committed:")
		for _, f := range staged {
			lines = append(lines, "  "+f)
		}
	}
	if unstaged, err := r.Git.UnstagedFiles(ctx); err == nil && len(unstaged) > 0 {
		lines = append(lines, "Not staged:")
		for _, f := range unstaged {
			lines = append(lines, "  "+f)
		}
	}
	if untracked, err := r.Git.UntrackedFiles(ctx); err == nil && len(untracked) > 0 {
		lines = append(lines, "Untracked:")
		for _, f := range untracked {
			lines = append(lines, "  "+f)
		}
	}
	return lines
}

// commit writes the reviewed message to a temp file and runs git commit with
// it as the literal message source. Runs at most once per invocation.
func (r *Runner) commit(ctx context.Context, message string) error {
	f, err := os.CreateTemp("", "gencommit-msg-*.txt")
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "creating commit message file")
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(message + "\n"); err != nil {
		f.Close()
		return errors.WrapWithMessage(err, errors.Runtime, "writing commit message file")
	}
	if err := f.Close(); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing commit message file")
	}

	if err := r.Git.Commit(ctx, path); err != nil {
		return errors.NewCommitFailed(err)
	}

	subject := message
	if i := strings.IndexByte(subject, '\n'); i >= 0 {
		subject = subject[:i]
	}
	output.PrintSuccess(r.Out, "Committed: "+subject)
	return nil
}
