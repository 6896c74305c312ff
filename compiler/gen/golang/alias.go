package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/schema"
)

// genAlias emits a defined type when the aliased type is built from
// predeclared types only, and a type alias otherwise so the methods of
// the aliased type stay available.
func genAlias(h gen.GeneratorHelper, d *schema.AliasDefinition) (*jen.File, error) {
	if err := checkNoUnion(h.Registry(), d.Name, schema.FieldDefinition{Name: "alias", Type: d.Alias}); err != nil {
		return nil, err
	}
	rep, err := h.Mapper().Represent(d.Alias)
	if err != nil {
		return nil, gen.NewSchemaError(d.Name.String(), "", "cannot map aliased type", err)
	}
	f := h.NewFile(d.Name)
	name := gen.GoName(d.Name.Name)

	text := d.Docs
	if text == "" {
		text = name + " is an alias of " + d.Alias.String() + "."
	}
	docs(f, text, "")

	target := jen.Add(rep.Type)
	if rep.Category == gen.CategoryReference {
		// Fields referencing the alias add the pointer themselves.
		target = h.Mapper().GoName(schema.References(d.Alias)[0])
	}
	if rep.Builtin {
		f.Type().Id(name).Add(target)
	} else {
		f.Type().Id(name).Op("=").Add(target)
	}
	return f, nil
}
