package scratch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TerminalEditor resolves and launches an interactive editor attached to
// the controlling terminal. Resolution order: explicit override, vim when
// installed, git's core.editor, $VISUAL, $EDITOR, then vi as last resort.
type TerminalEditor struct {
	// Override short-circuits resolution when non-empty (config `editor`).
	Override string

	// GitEditor is git's configured core.editor, supplied by the caller.
	GitEditor string

	// LookPath is injectable for tests. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// Resolve returns the editor command to launch. The returned string may
// contain arguments (core.editor and $EDITOR frequently do).
func (t *TerminalEditor) Resolve() string {
	if t.Override != "" {
		return t.Override
	}

	lookPath := t.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("vim"); err == nil {
		return "vim"
	}
	if t.GitEditor != "" {
		return t.GitEditor
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return "vi"
}

// Edit launches the resolved editor on path, attached to the terminal, and
// blocks until it exits. The editor's exit code is deliberately ignored;
// the scratch protocol decides success from the file itself.
func (t *TerminalEditor) Edit(path string) error {
	editor := t.Resolve()

	// core.editor and $EDITOR may carry arguments ("code --wait").
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor available")
	}
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting editor %q: %w", parts[0], err)
	}
	_ = cmd.Wait()
	return nil
}
