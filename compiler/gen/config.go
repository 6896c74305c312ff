package gen

import (
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/syssam/conjen/schema"
)

// RuntimePackage is the import path of the support package that generated
// code depends on.
const RuntimePackage = "github.com/syssam/conjen"

// DefaultHeader is written at the top of every generated file.
const DefaultHeader = "Code generated by conjen. DO NOT EDIT."

// Config holds the global codegen configuration shared by all definitions.
type Config struct {
	// Target is the directory generated packages are written under.
	Target string
	// Package is the import path that corresponds to Target.
	Package string
	// Header is the comment placed at the top of generated files.
	Header string
	// PackagePrefix is a dotted prefix inserted between Package and each
	// definition's own package, e.g. "com.acme".
	PackagePrefix string

	// StrictObjects makes generated decoders reject unknown keys.
	StrictObjects bool
	// NonNullCollections makes setters reject nil collection elements and
	// map values.
	NonNullCollections bool
	// UseImmutableBytes represents binary as conjen.Bytes instead of []byte.
	UseImmutableBytes bool

	// Features enabled on top of the defaults.
	Features []Feature
	// Workers bounds the number of definitions generated concurrently.
	Workers int
	// ExternalTypes maps an external type name ("package.Name") to the Go
	// type that represents it. Unmapped externals use their fallback.
	ExternalTypes map[string]GoType

	// Logger receives progress and per-definition failures.
	Logger *zap.Logger
}

// GoType names a Go type. PkgPath is empty for predeclared types.
type GoType struct {
	PkgPath string
	Name    string
}

// ParseGoType parses "import/path.Name" or a predeclared type name such as
// "int64".
func ParseGoType(s string) (GoType, error) {
	if s == "" {
		return GoType{}, NewConfigError("ExternalType", nil, "go type cannot be empty")
	}
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return GoType{Name: s}, nil
	}
	if i == 0 || i == len(s)-1 {
		return GoType{}, NewConfigError("ExternalType", s, "expected import/path.Name")
	}
	return GoType{PkgPath: s[:i], Name: s[i+1:]}, nil
}

// String returns the qualified name.
func (t GoType) String() string {
	if t.PkgPath == "" {
		return t.Name
	}
	return t.PkgPath + "." + t.Name
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the target packages.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range allFeatures {
		if name == f.Name {
			return f.Default || slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == name }), nil
		}
	}
	return false, NewConfigError("Features", name, "unexpected feature name")
}

// PackagePath returns the import path of the package a definition is
// generated into.
func (c *Config) PackagePath(n schema.TypeName) string {
	return path.Join(c.Package, dottedPath(c.PackagePrefix), dottedPath(n.Package))
}

// PackageDir returns the directory, relative to Target, of the package a
// definition is generated into.
func (c *Config) PackageDir(n schema.TypeName) string {
	return filepath.Join(filepath.FromSlash(dottedPath(c.PackagePrefix)), filepath.FromSlash(dottedPath(n.Package)))
}

// PackageName returns the Go package name of the package a definition is
// generated into.
func (c *Config) PackageName(n schema.TypeName) string {
	return PackageName(c.PackagePath(n))
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if c.Package == "" {
		return NewConfigError("Package", nil, "missing package path in config")
	}
	if c.Workers < 1 {
		return NewConfigError("Workers", c.Workers, "must be at least 1")
	}
	return nil
}

// log returns the configured logger or a no-op one.
func (c *Config) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func dottedPath(pkg string) string {
	return strings.ReplaceAll(strings.Trim(pkg, "."), ".", "/")
}

func defaultConfig() *Config {
	return &Config{
		Header:  DefaultHeader,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}
