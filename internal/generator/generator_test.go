package generator

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/gencommit/internal/errors"
)

func found(file string) (string, error) { return "/usr/bin/" + file, nil }

func shellExec(script string) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
}

func TestCLIGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns stdout on success", func(t *testing.T) {
		t.Parallel()
		gen := &CLIGenerator{
			Cmd:      "claude",
			LookPath: found,
			Exec:     shellExec(`printf 'feat: add widget cache\n'`),
		}

		got, err := gen.Generate(context.Background(), "prompt text")
		require.NoError(t, err)
		assert.Equal(t, "feat: add widget cache\n", got)
	})

	t.Run("prompt is delivered on stdin", func(t *testing.T) {
		t.Parallel()
		// The fake generator echoes its stdin back.
		gen := &CLIGenerator{
			Cmd:      "claude",
			LookPath: found,
			Exec:     shellExec("cat"),
		}

		got, err := gen.Generate(context.Background(), "the whole prompt")
		require.NoError(t, err)
		assert.Equal(t, "the whole prompt", got)
	})

	t.Run("missing binary is GeneratorUnavailable", func(t *testing.T) {
		t.Parallel()
		gen := &CLIGenerator{
			Cmd: "definitely-not-installed",
			LookPath: func(string) (string, error) {
				return "", exec.ErrNotFound
			},
		}

		_, err := gen.Generate(context.Background(), "prompt")
		require.Error(t, err)
		assert.Equal(t, errors.KindGeneratorUnavailable, errors.KindOf(err))
		assert.Contains(t, err.Error(), "definitely-not-installed")
	})

	t.Run("non-zero exit is GenerationFailed with output", func(t *testing.T) {
		t.Parallel()
		gen := &CLIGenerator{
			Cmd:      "claude",
			LookPath: found,
			Exec:     shellExec("echo 'partial answer'; echo 'rate limit exceeded' >&2; exit 1"),
		}

		_, err := gen.Generate(context.Background(), "prompt")
		require.Error(t, err)
		assert.Equal(t, errors.KindGenerationFailed, errors.KindOf(err))

		cliErr := errors.AsCLIError(err)
		require.NotNil(t, cliErr)
		assert.Contains(t, cliErr.Detail, "partial answer")
		assert.Contains(t, cliErr.Detail, "rate limit exceeded")
	})
}
