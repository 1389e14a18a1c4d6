// Package generator invokes the external AI CLI that turns a prompt into a
// candidate commit message. The generator is treated as an opaque
// text-to-text function: prompt on stdin, message on stdout, failure via
// exit status.
package generator

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/ariel-frischer/gencommit/internal/errors"
)

// Generator produces a candidate commit message from a prompt.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// CLIGenerator runs an external command with the prompt as its sole stdin
// payload. Both command and exec factory are injectable for tests.
type CLIGenerator struct {
	// Cmd is the generator binary name (config generator_cmd).
	Cmd string

	// Args are extra arguments passed before the prompt is piped in.
	Args []string

	// Exec builds the command. Defaults to exec.CommandContext.
	Exec func(ctx context.Context, name string, args ...string) *exec.Cmd

	// LookPath is injectable for tests. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// NewCLIGenerator returns a generator backed by the named external command.
func NewCLIGenerator(cmd string, args []string) *CLIGenerator {
	return &CLIGenerator{Cmd: cmd, Args: args}
}

// Generate sends the prompt to the external command and returns its stdout.
// A missing binary maps to GeneratorUnavailable; a non-zero exit maps to
// GenerationFailed with the combined output carried verbatim, since the
// tool's own diagnostics are the only clue the user gets. Never retried.
func (g *CLIGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	lookPath := g.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath(g.Cmd); err != nil {
		return "", errors.NewGeneratorUnavailable(g.Cmd)
	}

	execFn := g.Exec
	if execFn == nil {
		execFn = func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, name, args...)
		}
	}

	cmd := execFn(ctx, g.Cmd, g.Args...)
	cmd.Stdin = strings.NewReader(promptText)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		combined := stdout.String() + stderr.String()
		return "", errors.NewGenerationFailed(g.Cmd, err, combined)
	}
	return stdout.String(), nil
}
