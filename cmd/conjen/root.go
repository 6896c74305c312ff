package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/conjen/internal/logger"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile string
	verbose    bool
	jsonLogs   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "conjen",
		Short: "Generate Go value types, builders and enums from IDL definitions",
		Long: `conjen reads IR JSON or YAML definition files and writes one Go file per
object, enum and alias: immutable value types with builders that check
required fields, forward-compatible enums with visitors, and JSON codecs.

Settings come from flags, CONJEN_* environment variables and conjen.yaml,
in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ./conjen.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every written file")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "log as JSON")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newWatchCmd(opts),
		newFeaturesCmd(),
		newVersionCmd(),
	)
	return cmd
}

// settings merges the flags of cmd with the environment and config file.
func (o *rootOptions) settings(cmd *cobra.Command) (*settings, error) {
	v, err := newViper(o.configFile)
	if err != nil {
		return nil, err
	}
	return loadSettings(v, cmd.Flags())
}

func (o *rootOptions) logger(w io.Writer) *zap.Logger {
	return logger.New(logger.Options{Verbose: o.verbose, JSON: o.jsonLogs, Output: w})
}
