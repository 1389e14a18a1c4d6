// Package cli defines the gencommit command-line surface: the root command
// that runs the generate-review-commit workflow and the init command that
// writes a starter configuration file.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/gencommit/internal/build"
	"github.com/ariel-frischer/gencommit/internal/config"
	"github.com/ariel-frischer/gencommit/internal/errors"
	"github.com/ariel-frischer/gencommit/internal/generator"
	"github.com/ariel-frischer/gencommit/internal/git"
	"github.com/ariel-frischer/gencommit/internal/output"
	"github.com/ariel-frischer/gencommit/internal/progress"
	"github.com/ariel-frischer/gencommit/internal/scratch"
	"github.com/ariel-frischer/gencommit/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "gencommit [context]",
	Short: "AI-generated commit messages with editor review",
	Long: `gencommit generates a commit message for your staged changes with an
external AI CLI, opens it in your editor for review, and commits once
you save.

With no arguments the staged diff alone drives the message. A positional
argument is passed to the generator as extra context. The -c flag opens
your editor first to collect context interactively.`,
	Example: `  # Generate a message from the staged diff
  gencommit

  # Give the generator extra context inline
  gencommit "refactor ahead of the v2 API work"

  # Describe the change in your editor first
  gencommit -c

  # Stage everything without asking
  gencommit -y`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       build.Info(),
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("context")
		assumeYes, _ := cmd.Flags().GetBool("yes")
		configPath, _ := cmd.Flags().GetString("config")

		if interactive && len(args) > 0 {
			return errors.NewArgumentErrorWithUsage(
				"cannot combine -c with a positional context argument",
				"gencommit [context] | gencommit -c",
			)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "loading configuration")
		}

		// Resolve skip confirmations (flag > env > config)
		if assumeYes || os.Getenv("GENCOMMIT_YES") != "" {
			cfg.SkipConfirmations = true
		}

		ctx := cmd.Context()
		gitClient := git.NewCLIClient()

		runner := &workflow.Runner{
			Git: gitClient,
			Editor: &scratch.TerminalEditor{
				Override:  cfg.Editor,
				GitEditor: gitClient.ConfiguredEditor(ctx),
			},
			Generator: generator.NewCLIGenerator(cfg.GeneratorCmd, cfg.GeneratorArgs),
			Prompter:  &workflow.TerminalPrompter{AssumeYes: cfg.SkipConfirmations},
			Config:    cfg,
			Caps:      progress.DetectTerminalCapabilities(),
			Out:       os.Stdout,
		}

		opts := workflow.Options{CaptureContext: interactive}
		if len(args) > 0 {
			opts.Context = args[0]
		}

		if err := runner.Run(ctx, opts); err != nil {
			if err == workflow.ErrContextAbandoned {
				output.PrintNotice(os.Stdout, "No context provided, nothing generated.")
				return nil
			}
			return err
		}
		return nil
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return ExitCodeFor(err)
}

func init() {
	rootCmd.Flags().BoolP("context", "c", false, "Collect context in your editor before generating")
	rootCmd.Flags().BoolP("yes", "y", false, "Answer yes to staging prompts")
	rootCmd.Flags().String("config", config.ProjectConfigPath(), "Path to project config file")
}
