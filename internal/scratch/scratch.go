// Package scratch implements the temporary-file editing protocol gencommit
// uses for both free-form context capture and commit-message review: populate
// a fresh temp file with commented instructions, hand it to the user's editor,
// and recover the real content afterwards, distinguishing "quit without
// saving" from "edited and accepted".
package scratch

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrUnmodified signals the user left the scratch file untouched
	// (identical content and modification time). Content is irrelevant:
	// an unchanged file means the session was never actively saved.
	ErrUnmodified = errors.New("scratch file left unmodified")

	// ErrEmpty signals the file was edited but held nothing besides
	// comments and blank lines after stripping.
	ErrEmpty = errors.New("scratch file empty after stripping comments")
)

// Session describes one round of scratch-file editing.
type Session struct {
	// Instructions are shown at the top of the file, each line prefixed
	// with CommentPrefix.
	Instructions []string

	// StatusLines are appended after the content zone, also commented.
	// The commit-review variant uses these for the workspace summary.
	StatusLines []string

	// CommentPrefix marks instructional lines. Must be non-empty.
	CommentPrefix string

	// JoinLines collapses the recovered content to a single
	// whitespace-normalized line (context-capture mode). When false the
	// content keeps its internal newlines (commit-review mode).
	JoinLines bool

	// Seed is pre-filled content placed in the content zone, such as the
	// generated commit message awaiting review.
	Seed string
}

// Editor launches an interactive editor on a file and blocks until it exits.
// The editor's exit code is not interpreted; only the file content matters.
type Editor interface {
	Edit(path string) error
}

// fingerprint pairs file content with its modification time. Both channels
// are compared: equal content alone does not prove an untouched file, and
// a touched timestamp alone does not prove an edit.
type fingerprint struct {
	content string
	modTime time.Time
}

func takeFingerprint(path string) (fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fingerprint{}, fmt.Errorf("reading scratch file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}, fmt.Errorf("stating scratch file: %w", err)
	}
	return fingerprint{content: string(data), modTime: info.ModTime()}, nil
}

func (f fingerprint) equal(other fingerprint) bool {
	return f.content == other.content && f.modTime.Equal(other.modTime)
}

// Run executes one editing session: write the template, open the editor,
// and recover the user's content. Returns ErrUnmodified when the file was
// never touched and ErrEmpty when stripping leaves nothing. The temp file
// is removed on every path.
func Run(ed Editor, s Session) (string, error) {
	if s.CommentPrefix == "" {
		return "", errors.New("scratch session requires a comment prefix")
	}

	f, err := os.CreateTemp("", "gencommit-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(s.render()); err != nil {
		f.Close()
		return "", fmt.Errorf("writing scratch template: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing scratch file: %w", err)
	}

	before, err := takeFingerprint(path)
	if err != nil {
		return "", err
	}

	if err := ed.Edit(path); err != nil {
		return "", fmt.Errorf("launching editor: %w", err)
	}

	after, err := takeFingerprint(path)
	if err != nil {
		return "", err
	}

	if before.equal(after) {
		return "", ErrUnmodified
	}

	content := Strip(after.content, s.CommentPrefix)
	if content == "" {
		return "", ErrEmpty
	}
	if s.JoinLines {
		content = JoinLines(content)
	}
	return content, nil
}

// render assembles the scratch file template: commented instructions, the
// content zone (seed or a blank line to edit), then commented status lines.
func (s Session) render() string {
	var sb strings.Builder
	for _, line := range s.Instructions {
		sb.WriteString(s.CommentPrefix)
		if line != "" {
			sb.WriteString(" ")
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if s.Seed != "" {
		sb.WriteString(strings.TrimRight(s.Seed, "\n"))
		sb.WriteString("\n")
	}
	if len(s.StatusLines) > 0 {
		sb.WriteString("\n")
		for _, line := range s.StatusLines {
			sb.WriteString(s.CommentPrefix)
			if line != "" {
				sb.WriteString(" ")
				sb.WriteString(line)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Strip removes every line whose first non-space character begins the
// comment prefix, and every blank line. A prefix appearing mid-line is
// preserved. Stripping is idempotent: applying it to its own output
// yields the same string.
func Strip(content, prefix string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" || strings.HasPrefix(trimmed, prefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// JoinLines collapses multi-line content into one line with single spaces.
func JoinLines(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
