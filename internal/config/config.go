// Package config provides hierarchical configuration management for gencommit
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.gencommit.yml) > user config (~/.config/gencommit/config.yml)
// > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the gencommit CLI tool configuration.
type Configuration struct {
	// GeneratorCmd is the external AI CLI invoked with the prompt on stdin.
	GeneratorCmd string `koanf:"generator_cmd" validate:"required"`

	// GeneratorArgs are extra arguments passed to the generator command.
	GeneratorArgs []string `koanf:"generator_args"`

	// Editor overrides editor resolution when set. When empty, resolution
	// tries vim, git core.editor, $VISUAL, $EDITOR, then vi.
	Editor string `koanf:"editor"`

	// CommentPrefix marks instructional lines in scratch files. Lines whose
	// first non-space character starts with this prefix are stripped from
	// the final message, exactly once, before committing.
	CommentPrefix string `koanf:"comment_prefix" validate:"required"`

	// MaxDiffBytes bounds the staged diff forwarded to the generator.
	// The diff is cut on a line boundary and a truncation marker appended.
	// 0 disables truncation and forwards the full diff.
	MaxDiffBytes int `koanf:"max_diff_bytes" validate:"min=0"`

	// ShowProgress enables the spinner while the generator runs.
	ShowProgress bool `koanf:"show_progress"`

	// SkipConfirmations answers yes to staging prompts without asking.
	// Can also be set via the GENCOMMIT_YES env var.
	SkipConfirmations bool `koanf:"skip_confirmations"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// Missing config files are not an error; defaults apply.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if userPath, err := UserConfigPath(); err == nil {
		if err := loadFileIfExists(k, userPath); err != nil {
			return nil, err
		}
	}

	if projectConfigPath == "" {
		projectConfigPath = ProjectConfigPath()
	}
	if err := loadFileIfExists(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("GENCOMMIT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// GENCOMMIT_YES is an alias for skip_confirmations
	if os.Getenv("GENCOMMIT_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file into k when it exists,
// validating syntax first so the user gets a positioned error.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: GENCOMMIT_MAX_DIFF_BYTES -> max_diff_bytes
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "GENCOMMIT_"))
}
