// Package cmd implements the lox command-line driver: a cobra command tree
// wrapping the scan/parse/resolve/evaluate core in internal/lexer,
// internal/parser, internal/semantic, and internal/interp.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nwidger/lox/internal/config"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "lox [script]",
	Short:         "lox is a tree-walking interpreter for the Lox language",
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(".")
		if err != nil {
			return newExitError(74, fmt.Errorf("failed to read .loxrc.yaml: %w", err))
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoxArgs(args)
	},
}

// Execute runs the root command and returns an error carrying the process
// exit code the caller should use (see ExitCodeFor).
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && ExitCodeFor(err) == 1 {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
