// Package prompt assembles the instruction document sent to the external
// generator: fixed formatting rules, a gitmoji legend, worked examples, an
// optional developer-supplied context block, and the literal staged diff.
package prompt

import "strings"

// header holds the fixed instruction template. The diff is appended verbatim
// after it; no escaping is applied.
const header = `You are an expert developer writing a git commit message for the staged
changes below. Respond with the commit message only: no preamble, no
code fences, no commentary.

Format rules:
- First line: <gitmoji> <type>(<scope>): <description>
- Keep the first line under 72 characters, imperative mood, no trailing period
- Scope is optional; omit the parentheses when no single component fits
- When the change is non-trivial, add a blank line and then a short body
  with one bullet per meaningful change
- Never invent changes that are not in the diff

Gitmoji legend:
- ✨ feat      a new feature
- 🐛 fix       a bug fix
- 📝 docs      documentation only
- ♻️ refactor  restructuring without behavior change
- ⚡ perf      performance improvement
- ✅ test      adding or correcting tests
- 🔧 chore     tooling, configs, maintenance
- 🚀 ci        CI and deployment changes
- 🎨 style     formatting, whitespace, naming

Examples:
✨ feat(auth): add session token refresh

- refresh tokens 5 minutes before expiry
- surface a re-login prompt when refresh fails

🐛 fix(parser): handle empty attribute lists

📝 docs: document the retry policy for webhook delivery
`

const contextHeader = `
Context from the developer (use it to understand intent, never quote it
verbatim):
`

const diffHeader = `
Staged diff:
`

// truncationMarker is appended when the diff exceeds the configured limit.
const truncationMarker = "\n…[diff truncated]"

// Build renders the full prompt. The context block is present iff
// userContext is non-empty; the diff is embedded literally and unmodified.
func Build(diff, userContext string) string {
	var sb strings.Builder
	sb.WriteString(header)
	if userContext != "" {
		sb.WriteString(contextHeader)
		sb.WriteString(userContext)
		sb.WriteString("\n")
	}
	sb.WriteString(diffHeader)
	sb.WriteString(diff)
	return sb.String()
}

// TrimDiff limits a diff to maxBytes, cutting on a line boundary and
// appending a visible truncation marker. maxBytes <= 0 disables the limit.
func TrimDiff(diff string, maxBytes int) string {
	if maxBytes <= 0 || len(diff) <= maxBytes {
		return diff
	}
	head := diff[:maxBytes]
	if idx := strings.LastIndex(head, "\n"); idx > 0 {
		head = head[:idx]
	}
	return head + truncationMarker
}
