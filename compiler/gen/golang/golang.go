// Package golang implements the gen.Target interface for Go.
//
// Every definition is generated into its own file inside the package
// derived from the definition's IDL package:
//
//	{target}/{package}/
//	├── {object}.go   # value type, accessors, builder, JSON (and msgpack) codec
//	├── {enum}.go     # forward-compatible enum wrapper and visitors
//	└── {alias}.go    # named alias
//
// Usage:
//
//	import (
//	    "github.com/syssam/conjen/compiler/gen"
//	    "github.com/syssam/conjen/compiler/gen/golang"
//	)
//
//	report, err := golang.Generate(ctx, defs,
//	    gen.WithTarget("./api"),
//	    gen.WithPackage("github.com/acme/app/api"),
//	)
package golang

import (
	"context"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/schema"
)

const (
	runtimePkg = gen.RuntimePackage
	jsonPkg    = "encoding/json"
	msgpackPkg = "github.com/vmihailenco/msgpack/v5"
)

// Generate is a convenience function that generates Go code for defs. It
// is the recommended entry point for code generation.
func Generate(ctx context.Context, defs []schema.TypeDefinition, opts ...gen.Option) (*gen.Report, error) {
	return gen.Generate(ctx, NewTarget(), defs, opts...)
}

// Target implements gen.Target for Go.
type Target struct{}

// NewTarget creates a new Go target.
func NewTarget() *Target {
	return &Target{}
}

// Name returns the target name.
func (t *Target) Name() string {
	return "go"
}

// GenObject generates the value type, the builder and the codecs of an
// object.
func (t *Target) GenObject(h gen.GeneratorHelper, d *schema.ObjectDefinition) (*jen.File, error) {
	return genObject(h, d)
}

// GenEnum generates the enum wrapper type, its values, parser and
// visitors.
func (t *Target) GenEnum(h gen.GeneratorHelper, d *schema.EnumDefinition) (*jen.File, error) {
	return genEnum(h, d)
}

// GenAlias generates a named alias.
func (t *Target) GenAlias(h gen.GeneratorHelper, d *schema.AliasDefinition) (*jen.File, error) {
	return genAlias(h, d)
}

// Verify Target implements gen.Target at compile time.
var _ gen.Target = (*Target)(nil)

// commenter is implemented by *jen.File and *jen.Group.
type commenter interface {
	Comment(string) *jen.Statement
}

// docs writes text as line comments, followed by a deprecation paragraph
// when deprecated is set.
func docs(c commenter, text, deprecated string) {
	text = strings.TrimSpace(text)
	if text != "" {
		for _, line := range strings.Split(text, "\n") {
			c.Comment(strings.TrimRight(line, " \t"))
		}
	}
	if deprecated != "" {
		if text != "" {
			c.Comment("")
		}
		c.Comment("Deprecated: " + strings.TrimSpace(deprecated))
	}
}

// rt returns a qualified identifier from the runtime package.
func rt(name string) *jen.Statement {
	return jen.Qual(runtimePkg, name)
}
