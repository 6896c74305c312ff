package gen

import (
	"errors"
	"regexp"

	"go.uber.org/zap"
)

// Option configures code generation.
type Option func(*Config) error

var dottedPackage = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the import path of the target directory.
// For example: "github.com/org/project/internal/api".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackagePrefix sets a dotted prefix placed in front of every
// definition package, e.g. "com.acme" turns package "product" into
// "<Package>/com/acme/product".
func WithPackagePrefix(prefix string) Option {
	return func(c *Config) error {
		if prefix != "" && !dottedPackage.MatchString(prefix) {
			return NewConfigError("PackagePrefix", prefix, "expected lower-case dotted identifiers")
		}
		c.PackagePrefix = prefix
		return nil
	}
}

// WithStrictObjects makes generated decoders reject unknown keys.
func WithStrictObjects(strict bool) Option {
	return func(c *Config) error {
		c.StrictObjects = strict
		return nil
	}
}

// WithNonNullCollections makes setters reject nil collection elements.
func WithNonNullCollections(nonNull bool) Option {
	return func(c *Config) error {
		c.NonNullCollections = nonNull
		return nil
	}
}

// WithUseImmutableBytes represents binary fields as conjen.Bytes.
func WithUseImmutableBytes(immutable bool) Option {
	return func(c *Config) error {
		c.UseImmutableBytes = immutable
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, err := FeatureByName(name)
			if err != nil {
				return err
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithWorkers bounds the number of definitions generated concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger used during generation.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithExternalType maps the external type name ("package.Name") to a Go
// type given as "import/path.Name".
func WithExternalType(name, goType string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("ExternalType", nil, "external name cannot be empty")
		}
		t, err := ParseGoType(goType)
		if err != nil {
			return err
		}
		if c.ExternalTypes == nil {
			c.ExternalTypes = make(map[string]GoType)
		}
		c.ExternalTypes[name] = t
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
