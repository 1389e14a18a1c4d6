package workflow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter answers yes/no staging questions.
type Prompter interface {
	Confirm(question string) bool
}

// TerminalPrompter reads answers from the interactive terminal.
// Non-interactive stdin answers no, so scripted runs never hang on a prompt.
type TerminalPrompter struct {
	// In defaults to os.Stdin; injectable for tests.
	In io.Reader

	// Out receives the question text. Defaults to os.Stdout.
	Out io.Writer

	// AssumeYes answers every question positively without prompting
	// (config skip_confirmations / GENCOMMIT_YES).
	AssumeYes bool
}

// Confirm asks a [y/N] question and returns the answer.
func (p *TerminalPrompter) Confirm(question string) bool {
	if p.AssumeYes {
		return true
	}

	in := p.In
	if in == nil {
		in = os.Stdin
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return false
		}
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s [y/N] ", question)

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
