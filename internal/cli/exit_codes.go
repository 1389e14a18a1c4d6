package cli

import "github.com/ariel-frischer/gencommit/internal/errors"

// Exit codes for the gencommit CLI
// These codes support scripting and git-alias composition
const (
	// ExitSuccess indicates a commit was created, or a clean informational stop
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure or user abort
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfiguration indicates invalid or unloadable configuration
	ExitConfiguration = 3

	// ExitPrerequisite indicates a missing prerequisite: no repository,
	// no generator binary, or nothing to commit
	ExitPrerequisite = 4
)

// ExitCodeFor maps an error to its process exit code by error category.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitFailure
	}
	switch cliErr.Category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfiguration
	case errors.Prerequisite:
		return ExitPrerequisite
	default:
		return ExitFailure
	}
}
