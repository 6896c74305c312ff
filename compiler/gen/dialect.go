package gen

import (
	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	"github.com/syssam/conjen/schema"
)

// =============================================================================
// Interface Segregation: a target implements one interface per definition kind
// =============================================================================

// ObjectGenerator generates the value type, builder and codecs of an object.
type ObjectGenerator interface {
	GenObject(h GeneratorHelper, d *schema.ObjectDefinition) (*jen.File, error)
}

// EnumGenerator generates the wrapper type of an enum.
type EnumGenerator interface {
	GenEnum(h GeneratorHelper, d *schema.EnumDefinition) (*jen.File, error)
}

// AliasGenerator generates a named alias. It is optional: when a target
// does not implement it, alias definitions are skipped.
type AliasGenerator interface {
	GenAlias(h GeneratorHelper, d *schema.AliasDefinition) (*jen.File, error)
}

// MinimalTarget is the minimum interface a target must implement.
type MinimalTarget interface {
	// Name returns the target name (e.g., "go").
	Name() string
	ObjectGenerator
	EnumGenerator
}

// Target is a MinimalTarget that also generates aliases.
type Target interface {
	MinimalTarget
	AliasGenerator
}

// GeneratorHelper provides target packages with access to the run's shared,
// read-only state. Generator implements this interface.
type GeneratorHelper interface {
	// Config returns the codegen configuration.
	Config() *Config
	// Registry returns the definitions of the run.
	Registry() *Registry
	// Mapper returns the type mapper bound to Registry.
	Mapper() *Mapper
	// NewFile returns a file for the package a definition belongs to, with
	// the standard header comment.
	NewFile(name schema.TypeName) *jen.File
	// FeatureEnabled reports if the given feature name is enabled.
	FeatureEnabled(name string) bool
	// Logger returns the run logger.
	Logger() *zap.Logger
}
