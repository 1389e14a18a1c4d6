package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the terminal spinner shown during long external calls.
// It is a no-op when the terminal is not interactive, so the workflow can
// call it unconditionally.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner creates a spinner for the given message, enabled only when the
// terminal supports it.
func NewSpinner(caps TerminalCapabilities, message string) *Spinner {
	if !caps.IsTTY {
		return &Spinner{}
	}
	syms := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[syms.SpinnerSet], 100*time.Millisecond)
	s.Suffix = " " + message
	return &Spinner{inner: s}
}

// Start begins the animation. No-op on non-interactive terminals.
func (s *Spinner) Start() {
	if s.inner != nil {
		s.inner.Start()
	}
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	if s.inner != nil {
		s.inner.Stop()
	}
}
