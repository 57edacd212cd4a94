// Package commands implements the CLI commands for mdvars.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mdvars/internal/config"
	"github.com/thoreinstein/mdvars/internal/engine"
	"github.com/thoreinstein/mdvars/internal/errors"
	"github.com/thoreinstein/mdvars/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
var version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfgFile holds the value of the --config flag.
var cfgFile string

// loadedConfig and configLoadErr capture the result of config loading for
// later reporting; loading runs before flags are fully validated.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/mdvars/config.yaml)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mdvars version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "mdvars",
	Short: "Resolve frontmatter variables in text documents",
	Long: `mdvars resolves {{placeholder}} references in a document body against
the YAML frontmatter block at the top of the document.

Placeholders support nested paths ({{server.ip}}), sequence indexing
({{ports[0]}}), and inline defaults ({{user:guest}}). Resolution is
on demand: documents are re-read for every operation, never watched.

Delimiters, lookup behavior and missing-value policy are configurable
via config.yaml or MDVARS_* environment variables.`,
	Example: `  # Substitute placeholders and print the document
  mdvars render note.md

  # List every variable with its status
  mdvars list note.md --data-only

  # Read or write a single frontmatter value
  mdvars get note.md server.ip
  mdvars set note.md server.ip 10.0.0.2`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "check the --config path or run without it")
		}
		if loadedConfig != nil && !loadedConfig.TokensValid() {
			slog.Warn("configured delimiters are unusable, falling back to {{ }} :")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)
	return nil
}

// engineOptions returns the engine options derived from the loaded config,
// falling back to the defaults when no config was loaded.
func engineOptions() engine.Options {
	if loadedConfig == nil {
		return engine.DefaultOptions()
	}
	return loadedConfig.EngineOptions()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
