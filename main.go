package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

// rootCmd runs the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "basics",
	Short: "Interactive tour of basic Go syntax",
	Long: `basics prints a numbered menu of topics and runs the one you pick.

Type the number and press Enter. 8 (or end of input) quits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug events to stderr")
}

// newLogger logs to stderr only, so the lesson text on stdout stays clean.
// Warnings and up by default, everything with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	return config.Build()
}

// A menu of short demos of basic syntax: variables and shadowing, the numeric
// types, booleans, runes, tuples and arrays.
//
// Run:
//
//	go run .
//	go run . -v   # debug logs on stderr
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "━━━ %s ━━━\n", title)
}
