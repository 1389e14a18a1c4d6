package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/gencommit/internal/config"
	"github.com/ariel-frischer/gencommit/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a commented starter configuration file with every setting at its
default value.

By default the file is created at .gencommit.yml in the current
directory. Use --global to write the user-level config instead.

Examples:
  gencommit init             # Create .gencommit.yml here
  gencommit init --global    # Create ~/.config/gencommit/config.yml
  gencommit init --force     # Overwrite an existing file`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("global", "g", false, "Write the user-level config")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	path := config.ProjectConfigPath()
	if global {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "resolving user config path")
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewConfigError(
			fmt.Sprintf("config file already exists: %s", path),
			"Use --force to overwrite it",
		)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "creating config directory")
		}
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Config created: %s\n", path)
	return nil
}
