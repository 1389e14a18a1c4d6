package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# gencommit Configuration

# Generator settings
generator_cmd: claude                 # External AI CLI; receives the prompt on stdin
generator_args: ["-p"]                # Extra arguments for the generator command

# Editor settings
editor: ""                            # Editor override (empty = vim, git core.editor, $VISUAL, $EDITOR, vi)

# Message review settings
comment_prefix: "#"                   # Marker for instructional lines in scratch files

# Prompt settings
max_diff_bytes: 64000                 # Max staged diff bytes forwarded to the generator (0 = unlimited)

# UX settings
show_progress: true                   # Spinner while the generator runs (TTY only)
skip_confirmations: false             # Answer yes to staging prompts (alias: GENCOMMIT_YES=1)
`
}

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"generator_cmd":  "claude",
		"generator_args": []string{"-p"},
		"editor":         "",
		"comment_prefix": "#",
		// max_diff_bytes: diffs beyond this are cut on a line boundary with a
		// visible truncation marker. Large diffs routinely exceed generator
		// input limits; forwarding them unbounded fails opaquely mid-generation.
		"max_diff_bytes":     64000,
		"show_progress":      true,
		"skip_confirmations": false,
	}
}
