package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/syssam/conjen/compiler/gen"
)

// configName is the file looked up in the working directory when --config
// is not given.
const configName = "conjen"

// settings is the merged configuration of flags, CONJEN_* environment
// variables and the config file, in that order of precedence.
type settings struct {
	Out                string   `mapstructure:"out"`
	Package            string   `mapstructure:"package"`
	PackagePrefix      string   `mapstructure:"package-prefix"`
	Header             string   `mapstructure:"header"`
	StrictObjects      bool     `mapstructure:"strict-objects"`
	NonNullCollections bool     `mapstructure:"non-null-collections"`
	ImmutableBytes     bool     `mapstructure:"immutable-bytes"`
	Features           []string `mapstructure:"features"`
	Workers            int      `mapstructure:"workers"`
	ExternalTypes      []string `mapstructure:"external-types"`
}

// newViper returns a viper instance reading file, or conjen.yaml from the
// working directory when file is empty, with environment overrides.
func newViper(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("CONJEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("workers", 0)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
		return v, nil
	}
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read conjen.yaml")
		}
	}
	return v, nil
}

// loadSettings binds flags to v and decodes the merged result.
func loadSettings(v *viper.Viper, flags *pflag.FlagSet) (*settings, error) {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = errors.Wrapf(err, "bind flag %s", f.Name)
		}
	})
	if bindErr != nil {
		return nil, bindErr
	}
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "decode settings")
	}
	return &s, nil
}

// options converts s to generator options.
func (s *settings) options(log *zap.Logger) ([]gen.Option, error) {
	if s.Out == "" {
		return nil, errors.WithHint(errors.New("no output directory"), "pass --out or set out in conjen.yaml")
	}
	if s.Package == "" {
		return nil, errors.WithHint(errors.New("no package path"), "pass --package with the import path of the output directory")
	}
	opts := []gen.Option{
		gen.WithTarget(s.Out),
		gen.WithPackage(s.Package),
		gen.WithPackagePrefix(s.PackagePrefix),
		gen.WithStrictObjects(s.StrictObjects),
		gen.WithNonNullCollections(s.NonNullCollections),
		gen.WithUseImmutableBytes(s.ImmutableBytes),
		gen.WithFeatureNames(s.Features...),
		gen.WithLogger(log),
	}
	if s.Header != "" {
		opts = append(opts, gen.WithHeader(s.Header))
	}
	if s.Workers > 0 {
		opts = append(opts, gen.WithWorkers(s.Workers))
	}
	for _, mapping := range s.ExternalTypes {
		name, goType, ok := strings.Cut(mapping, "=")
		if !ok {
			return nil, errors.WithHintf(errors.Newf("bad external type mapping %q", mapping),
				"expected name=import/path.Type, e.g. java.lang.Long=int64")
		}
		opts = append(opts, gen.WithExternalType(strings.TrimSpace(name), strings.TrimSpace(goType)))
	}
	return opts, nil
}
