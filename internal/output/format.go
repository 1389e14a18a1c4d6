// Package output provides terminal output formatting utilities for gencommit.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintSuccess prints a green checkmark line for a completed step.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintInfo prints a neutral informational line.
func PrintInfo(out io.Writer, message string) {
	fmt.Fprintf(out, "%s\n", message)
}

// PrintNotice prints a yellow notice line for non-error early exits,
// such as an abandoned context-capture session.
func PrintNotice(out io.Writer, message string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("→"), message)
}

// PrintStep prints a step announcement with dim detail text.
func PrintStep(out io.Writer, step, detail string) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	if detail == "" {
		fmt.Fprintf(out, "%s %s\n", magenta("→"), step)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", magenta("→"), step, dim(detail))
}
