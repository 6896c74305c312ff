package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/compiler/gen/golang"
	"github.com/syssam/conjen/compiler/load"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <file or directory>",
		Short: "Generate Go code from definition files",
		Example: `  conjen generate --out ./api --package github.com/acme/app/api api.yml
  conjen generate --strict-objects --features msgpack defs/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.settings(cmd)
			if err != nil {
				return err
			}
			log := root.logger(cmd.ErrOrStderr())
			defer func() { _ = log.Sync() }()

			report, err := run(cmd.Context(), args[0], s, log)
			printReport(cmd.OutOrStdout(), report)
			return err
		},
	}
	addGenerateFlags(cmd.Flags())
	return cmd
}

// addGenerateFlags declares the flags shared by generate and watch. Their
// names are the keys of conjen.yaml.
func addGenerateFlags(fs *pflag.FlagSet) {
	fs.StringP("out", "o", "", "output directory")
	fs.StringP("package", "p", "", "import path of the output directory")
	fs.String("package-prefix", "", "dotted prefix placed in front of every definition package")
	fs.String("header", "", "header comment of generated files")
	fs.Bool("strict-objects", false, "reject unknown fields when decoding")
	fs.Bool("non-null-collections", false, "reject nil collection elements in setters")
	fs.Bool("immutable-bytes", false, "represent binary fields as conjen.Bytes")
	fs.StringSlice("features", nil, "features to enable (see conjen features)")
	fs.Int("workers", 0, "definitions generated concurrently (default GOMAXPROCS)")
	fs.StringSlice("external-types", nil, "Go types of external imports, as name=import/path.Type")
}

// run loads input and generates it with s.
func run(ctx context.Context, input string, s *settings, log *zap.Logger) (*gen.Report, error) {
	opts, err := s.options(log)
	if err != nil {
		return nil, err
	}
	defs, err := load.Load(input)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", input)
	}
	log.Debug("definitions loaded", zap.String("input", input), zap.Int("count", len(defs)))
	report, err := golang.Generate(ctx, defs, opts...)
	if err != nil {
		return report, errors.Wrap(err, "generate")
	}
	return report, nil
}

func printReport(w io.Writer, r *gen.Report) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "%d files written, %d definitions skipped, %d failed\n", len(r.Files), len(r.Skipped), len(r.Failures))
}
