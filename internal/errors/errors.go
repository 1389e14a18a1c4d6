// Package errors provides structured error handling for the gencommit CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration.
	Configuration
	// Prerequisite errors occur when required tools or workspace state are missing.
	Prerequisite
	// Runtime errors occur during command execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// Kind identifies the specific failure mode of a commit-generation run.
// Every kind is terminal for the current invocation; there is no retry.
type Kind int

const (
	// KindUnknown is the zero value for errors without a specific kind.
	KindUnknown Kind = iota
	// KindNotARepository: the working directory is not inside a git repository.
	KindNotARepository
	// KindNothingToCommit: no staged, unstaged, or untracked changes exist.
	KindNothingToCommit
	// KindStagingDeclined: the user answered no to a staging prompt when
	// nothing was staged yet.
	KindStagingDeclined
	// KindGeneratorUnavailable: the generator binary is not installed or not in PATH.
	KindGeneratorUnavailable
	// KindGenerationFailed: the generator exited non-zero or could not be run.
	KindGenerationFailed
	// KindEmptyMessage: the reviewed message was emptied by the user.
	KindEmptyMessage
	// KindReviewAborted: the review scratch file was left unmodified or
	// contained only comments.
	KindReviewAborted
	// KindCommitFailed: git commit itself failed after a reviewed message existed.
	KindCommitFailed
)

// CLIError is a structured error with category, kind, and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Configuration, etc.)
	Category ErrorCategory
	// Kind is the specific failure mode, used for exit-code mapping.
	Kind Kind
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Detail carries raw diagnostic output from an external tool, shown
	// verbatim after the message. Only generation failures populate this.
	Detail string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNotARepository reports that the current directory is outside any git repository.
func NewNotARepository() *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Kind:     KindNotARepository,
		Message:  "not a git repository (or any parent directory)",
		Remediation: []string{
			"Run gencommit from inside a git repository",
			"Initialize one with: git init",
		},
	}
}

// NewNothingToCommit reports a fully clean workspace.
func NewNothingToCommit() *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Kind:     KindNothingToCommit,
		Message:  "nothing to commit, working tree clean",
	}
}

// NewStagingDeclined reports that the user declined to stage and nothing was staged.
func NewStagingDeclined() *CLIError {
	return &CLIError{
		Category: Runtime,
		Kind:     KindStagingDeclined,
		Message:  "no changes staged for commit",
		Remediation: []string{
			"Stage the changes you want committed: git add <paths>",
			"Then run gencommit again",
		},
	}
}

// NewGeneratorUnavailable reports a missing generator binary.
func NewGeneratorUnavailable(cmd string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Kind:     KindGeneratorUnavailable,
		Message:  fmt.Sprintf("generator command %q not found in PATH", cmd),
		Remediation: []string{
			fmt.Sprintf("Install %s or check your PATH", cmd),
			"Set a different generator: export GENCOMMIT_GENERATOR_CMD=<command>",
		},
	}
}

// NewGenerationFailed reports a generator run that exited non-zero. The
// captured output is carried verbatim since its cause is opaque to gencommit.
func NewGenerationFailed(cmd string, err error, output string) *CLIError {
	return &CLIError{
		Category: Runtime,
		Kind:     KindGenerationFailed,
		Message:  fmt.Sprintf("generator %q failed: %v", cmd, err),
		Detail:   output,
	}
}

// NewEmptyMessage reports a reviewed message that was emptied during editing.
func NewEmptyMessage() *CLIError {
	return &CLIError{
		Category: Runtime,
		Kind:     KindEmptyMessage,
		Message:  "commit message is empty after editing, aborting commit",
	}
}

// NewReviewAborted reports a review session the user did not accept.
func NewReviewAborted(reason string) *CLIError {
	return &CLIError{
		Category: Runtime,
		Kind:     KindReviewAborted,
		Message:  fmt.Sprintf("commit aborted: %s", reason),
	}
}

// NewCommitFailed reports a git commit failure after review succeeded.
// No automatic unstaging is attempted; the staged state is left as-is.
func NewCommitFailed(err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Kind:     KindCommitFailed,
		Message:  fmt.Sprintf("git commit failed: %v", err),
		Remediation: []string{
			"Check git hooks and repository state with: git status",
		},
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// IsCLIError checks if an error is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}

// KindOf returns the Kind of an error, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr.Kind
	}
	return KindUnknown
}
