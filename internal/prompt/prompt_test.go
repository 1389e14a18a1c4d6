package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_EmbedsDiffVerbatim(t *testing.T) {
	t.Parallel()

	diff := "diff --git a/x.go b/x.go\n--- a/x.go\n+++ b/x.go\n@@ -1 +1 @@\n-old # line\n+new \"quoted\" line\n"

	got := Build(diff, "")

	// The diff must survive as a contiguous, unescaped substring.
	assert.Contains(t, got, diff)
	assert.True(t, strings.HasSuffix(got, diff))
}

func TestBuild_ContextBlockPresence(t *testing.T) {
	t.Parallel()

	t.Run("included when context is non-empty", func(t *testing.T) {
		t.Parallel()
		got := Build("some diff", "migrating to the v2 billing API")
		assert.Contains(t, got, "Context from the developer")
		assert.Contains(t, got, "migrating to the v2 billing API")
	})

	t.Run("omitted when context is empty", func(t *testing.T) {
		t.Parallel()
		got := Build("some diff", "")
		assert.NotContains(t, got, "Context from the developer")
	})

	t.Run("context precedes the diff", func(t *testing.T) {
		t.Parallel()
		got := Build("THE-DIFF", "THE-CONTEXT")
		assert.Less(t, strings.Index(got, "THE-CONTEXT"), strings.Index(got, "THE-DIFF"))
	})
}

func TestBuild_ContainsInstructionTemplate(t *testing.T) {
	t.Parallel()

	got := Build("", "")
	assert.Contains(t, got, "Format rules:")
	assert.Contains(t, got, "Gitmoji legend:")
	assert.Contains(t, got, "Staged diff:")
}

func TestTrimDiff(t *testing.T) {
	t.Parallel()

	t.Run("under the limit passes through", func(t *testing.T) {
		t.Parallel()
		diff := "short diff\n"
		assert.Equal(t, diff, TrimDiff(diff, 1000))
	})

	t.Run("zero disables trimming", func(t *testing.T) {
		t.Parallel()
		diff := strings.Repeat("x", 100000)
		assert.Equal(t, diff, TrimDiff(diff, 0))
	})

	t.Run("cuts on a line boundary with marker", func(t *testing.T) {
		t.Parallel()
		diff := "line one\nline two\nline three\n"
		got := TrimDiff(diff, len("line one\nline tw"))

		assert.Equal(t, "line one"+truncationMarker, got)
	})

	t.Run("result never exceeds limit plus marker", func(t *testing.T) {
		t.Parallel()
		diff := strings.Repeat("a line of diff text\n", 100)
		limit := 150
		got := TrimDiff(diff, limit)

		assert.LessOrEqual(t, len(got), limit+len(truncationMarker))
		assert.True(t, strings.HasSuffix(got, truncationMarker))
	})
}
