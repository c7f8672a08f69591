// Package main is the keyscript command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/keyscript/internal/app"
	"github.com/dshills/keyscript/internal/config"
	"github.com/dshills/keyscript/internal/inject"
	"github.com/dshills/keyscript/internal/inject/desktop"
)

// Version information (set via ldflags during build).
var version = "dev"

var (
	dataPath   string
	configPath string
	delimiter  string
	dryRun     bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "keyscript",
	Short:   "keyscript replays keyboard macro scripts",
	Version: version,
	Long: `keyscript turns a small line-oriented macro language into keyboard
activity: typing text, pressing keys and chords, pausing, and typing
values bound from a data table. With a data table the whole procedure
replays once per row.

Procedure lines look like:

  print <value>[, <width>]
  press <key>[ + <key> ...][, <count>]
  pause[(<seconds>)]
  input <fieldName>[, <width>]
  # comment`,
}

var runCmd = &cobra.Command{
	Use:   "run <procedure>",
	Short: "Execute a procedure",
	Long: `Execute a procedure against the desktop session. The procedure
argument is a file path, or inline procedure text if no such file
exists. With --dry-run the planned actions are printed instead of
injected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		var inj inject.Injector = desktop.New()
		if dryRun {
			inj = inject.NewTrace(cmd.OutOrStdout())
		}

		a := app.New(opts, app.WithInjector(inj), app.WithLogger(logger))
		return a.Run(args[0], dataPath)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <procedure>",
	Short: "Parse and expand a procedure without executing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}

		a := app.New(opts)
		plan, err := a.Plan(args[0], dataPath)
		if err != nil {
			return err
		}

		for i, line := range plan {
			fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", i, line)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d actions\n", len(plan))
		return nil
	},
}

// loadOptions merges the config file, if any, with command line flags.
// Flags win.
func loadOptions() (config.Options, error) {
	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}
	if delimiter != "" {
		opts.Delimiter = delimiter
	}
	return opts, nil
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "data table file or inline text")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "options file (YAML)")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "", "data table field delimiter (default \",\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print actions instead of injecting them")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
