package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_CategoryAndKind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
		wantKind     Kind
	}{
		"not a repository": {
			err:          NewNotARepository(),
			wantCategory: Prerequisite,
			wantKind:     KindNotARepository,
		},
		"nothing to commit": {
			err:          NewNothingToCommit(),
			wantCategory: Prerequisite,
			wantKind:     KindNothingToCommit,
		},
		"staging declined": {
			err:          NewStagingDeclined(),
			wantCategory: Runtime,
			wantKind:     KindStagingDeclined,
		},
		"generator unavailable": {
			err:          NewGeneratorUnavailable("claude"),
			wantCategory: Prerequisite,
			wantKind:     KindGeneratorUnavailable,
		},
		"generation failed": {
			err:          NewGenerationFailed("claude", stderrors.New("exit status 1"), "quota"),
			wantCategory: Runtime,
			wantKind:     KindGenerationFailed,
		},
		"empty message": {
			err:          NewEmptyMessage(),
			wantCategory: Runtime,
			wantKind:     KindEmptyMessage,
		},
		"review aborted": {
			err:          NewReviewAborted("left unmodified"),
			wantCategory: Runtime,
			wantKind:     KindReviewAborted,
		},
		"commit failed": {
			err:          NewCommitFailed(stderrors.New("hook rejected")),
			wantCategory: Runtime,
			wantKind:     KindCommitFailed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCategory, tt.err.Category)
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestGenerationFailed_CarriesOutputVerbatim(t *testing.T) {
	t.Parallel()

	err := NewGenerationFailed("claude", stderrors.New("exit status 2"), "Error: 429 Too Many Requests\n")
	assert.Equal(t, "Error: 429 Too Many Requests\n", err.Detail)
	assert.Contains(t, err.Message, "claude")
	assert.Contains(t, err.Message, "exit status 2")
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindNothingToCommit, KindOf(NewNothingToCommit()))
	assert.Equal(t, KindUnknown, KindOf(stderrors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("preserves message", func(t *testing.T) {
		t.Parallel()
		err := Wrap(stderrors.New("disk full"), Runtime, "Free some space")
		require.NotNil(t, err)
		assert.Equal(t, "disk full", err.Message)
		assert.Equal(t, Runtime, err.Category)
		assert.Equal(t, []string{"Free some space"}, err.Remediation)
	})

	t.Run("nil in, nil out", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Wrap(nil, Runtime))
		assert.Nil(t, WrapWithMessage(nil, Runtime, "context"))
	})

	t.Run("with message prefixes", func(t *testing.T) {
		t.Parallel()
		err := WrapWithMessage(stderrors.New("denied"), Configuration, "loading configuration")
		require.NotNil(t, err)
		assert.Equal(t, "loading configuration: denied", err.Message)
	})
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	t.Run("category message and remediation", func(t *testing.T) {
		t.Parallel()
		out := FormatErrorPlain(NewStagingDeclined())

		assert.Contains(t, out, "Error [Runtime Error]: no changes staged for commit")
		assert.Contains(t, out, "To fix this:")
		assert.Contains(t, out, "git add <paths>")
	})

	t.Run("detail is rendered between message and remediation", func(t *testing.T) {
		t.Parallel()
		err := NewGenerationFailed("claude", stderrors.New("exit status 1"), "upstream 503\n")
		out := FormatErrorPlain(err)

		assert.Contains(t, out, "upstream 503")
	})

	t.Run("usage line for argument errors", func(t *testing.T) {
		t.Parallel()
		err := NewArgumentErrorWithUsage("too many arguments", "gencommit [context]")
		out := FormatErrorPlain(err)

		assert.Contains(t, out, "Usage: gencommit [context]")
	})

	t.Run("nil error formats empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, FormatErrorPlain(nil))
	})
}
