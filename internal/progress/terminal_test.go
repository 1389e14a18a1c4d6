package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	t.Run("unicode terminal", func(t *testing.T) {
		t.Parallel()
		syms := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})
		assert.Equal(t, "✓", syms.Checkmark)
		assert.Equal(t, "✗", syms.Failure)
		assert.Equal(t, 14, syms.SpinnerSet)
	})

	t.Run("ascii fallback", func(t *testing.T) {
		t.Parallel()
		syms := SelectSymbols(TerminalCapabilities{SupportsUnicode: false})
		assert.Equal(t, "[OK]", syms.Checkmark)
		assert.Equal(t, "[FAIL]", syms.Failure)
		assert.Equal(t, 9, syms.SpinnerSet)
	})
}

func TestSpinner_NoopWithoutTTY(t *testing.T) {
	t.Parallel()

	s := NewSpinner(TerminalCapabilities{IsTTY: false}, "working")

	// Start and Stop must be safe without a terminal.
	s.Start()
	s.Stop()
}
