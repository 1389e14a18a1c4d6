package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariel-frischer/gencommit/internal/errors"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil is success": {
			err:  nil,
			want: ExitSuccess,
		},
		"plain error is generic failure": {
			err:  stderrors.New("boom"),
			want: ExitFailure,
		},
		"argument errors": {
			err:  errors.NewArgumentError("bad flag"),
			want: ExitInvalidArguments,
		},
		"configuration errors": {
			err:  errors.NewConfigError("bad yaml"),
			want: ExitConfiguration,
		},
		"not a repository is a prerequisite": {
			err:  errors.NewNotARepository(),
			want: ExitPrerequisite,
		},
		"missing generator is a prerequisite": {
			err:  errors.NewGeneratorUnavailable("claude"),
			want: ExitPrerequisite,
		},
		"nothing to commit is a prerequisite": {
			err:  errors.NewNothingToCommit(),
			want: ExitPrerequisite,
		},
		"review abort is a runtime failure": {
			err:  errors.NewReviewAborted("unmodified"),
			want: ExitFailure,
		},
		"commit failure is a runtime failure": {
			err:  errors.NewCommitFailed(stderrors.New("hook")),
			want: ExitFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}
