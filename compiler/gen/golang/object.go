package golang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/schema"
)

// object is an ObjectDefinition resolved for emission.
type object struct {
	h      gen.GeneratorHelper
	def    *schema.ObjectDefinition
	name   string // Go type name
	wire   string // IDL name used in runtime errors
	recv   string
	fields []*objectField
}

// objectField is one field of an object with its Go names.
type objectField struct {
	def      schema.FieldDefinition
	rep      *gen.Representation
	name     string // exported suffix of setters
	accessor string
	member   string // struct field of the value type and the builder
	flag     string // initialized flag of tracked fields
	element  string // suffix of the single-element adder
}

func newObject(h gen.GeneratorHelper, d *schema.ObjectDefinition) (*object, error) {
	o := &object{
		h:    h,
		def:  d,
		name: gen.GoName(d.Name.Name),
		wire: d.Name.Name,
		recv: gen.Receiver(d.Name.Name),
	}
	var errs []error
	for _, fd := range d.Fields {
		if err := checkNoUnion(h.Registry(), d.Name, fd); err != nil {
			errs = append(errs, err)
			continue
		}
		rep, err := h.Mapper().RepresentField(d.Name, fd)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		f := &objectField{
			def:      fd,
			rep:      rep,
			name:     gen.GoName(fd.Name),
			accessor: gen.AccessorName(fd.Name),
			member:   gen.BuilderField(fd.Name),
		}
		if rep.Tracked() {
			f.flag = gen.LowerName(fd.Name) + "Initialized"
		}
		o.fields = append(o.fields, f)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	o.assignElementNames()
	return o, nil
}

// checkNoUnion rejects fields that reference a union, which has no Go
// representation.
func checkNoUnion(reg *gen.Registry, owner schema.TypeName, fd schema.FieldDefinition) error {
	for _, n := range schema.References(fd.Type) {
		if d, ok := reg.Lookup(n); ok && d.Kind() == schema.KindUnion {
			return gen.NewSchemaError(owner.String(), fd.Name, "unions are not generated; cannot reference "+n.String(), nil)
		}
	}
	return nil
}

// assignElementNames picks the singular adder suffix of every collection
// field, falling back to the field name when the singular form collides
// with another builder method.
func (o *object) assignElementNames() {
	used := map[string]bool{"Build": true, "CopyFrom": true, "Err": true}
	for _, f := range o.fields {
		used["Set"+f.name] = true
		switch f.rep.Category {
		case gen.CategoryList, gen.CategorySet:
			used["AddAll"+f.name] = true
		case gen.CategoryMap:
			used["PutAll"+f.name] = true
		case gen.CategoryOptional:
			used["Set"+f.name+"Value"] = true
		}
	}
	for _, f := range o.fields {
		var prefix string
		switch f.rep.Category {
		case gen.CategoryList, gen.CategorySet:
			prefix = "Add"
		case gen.CategoryMap:
			prefix = "Put"
		default:
			continue
		}
		singular := gen.ElementName(f.def.Name)
		for _, candidate := range []string{singular, f.name, f.name + "Element"} {
			if !used[prefix+candidate] {
				f.element = candidate
				break
			}
		}
		if f.element != singular {
			o.h.Logger().Debug("element adder renamed",
				zap.String("type", o.def.Name.String()),
				zap.String("field", f.def.Name),
				zap.String("taken", prefix+singular),
				zap.String("method", prefix+f.element),
			)
		}
		used[prefix+f.element] = true
	}
}

// builderName returns the name of the builder type.
func (o *object) builderName() string {
	return o.name + "Builder"
}

// required reports whether f must be present when decoding and set before
// Build.
func (f *objectField) required() bool {
	return !f.rep.Defaultable()
}

// nullAtBuild reports whether Build rejects f while it still holds its
// zero value: nil for nillable fields without an empty default, the unset
// wrapper for enums.
func (f *objectField) nullAtBuild() bool {
	if f.rep.Defaultable() {
		return false
	}
	return f.rep.Nillable || f.rep.Enum
}

func genObject(h gen.GeneratorHelper, d *schema.ObjectDefinition) (*jen.File, error) {
	o, err := newObject(h, d)
	if err != nil {
		return nil, err
	}
	f := h.NewFile(d.Name)

	genValueType(f, o)
	genAccessors(f, o)
	genEqual(f, o)
	if h.FeatureEnabled(gen.FeatureStringer.Name) {
		genStringer(f, o)
	}
	genBuilder(f, o)
	genJSON(f, o)
	if h.FeatureEnabled(gen.FeatureMsgpack.Name) {
		genMsgpack(f, o)
	}
	return f, nil
}

func genValueType(f *jen.File, o *object) {
	if o.def.Docs != "" {
		docs(f, o.def.Docs, "")
		f.Comment("")
	}
	f.Commentf("%s values are immutable; create them with %s.", o.name, o.builderName())
	f.Type().Id(o.name).StructFunc(func(grp *jen.Group) {
		for _, fd := range o.fields {
			grp.Id(fd.member).Add(fd.rep.Type)
		}
	})
}

func genAccessors(f *jen.File, o *object) {
	for _, fd := range o.fields {
		text := fd.def.Docs
		if text == "" {
			text = fmt.Sprintf("%s returns the %s field.", fd.accessor, fd.def.Name)
		}
		docs(f, text, fd.def.Deprecated)
		value := jen.Id(o.recv).Dot(fd.member)
		switch fd.rep.Category {
		case gen.CategoryList, gen.CategorySet, gen.CategoryBinary:
			value = rt("CopySlice").Call(value)
		case gen.CategoryMap:
			value = rt("CopyMap").Call(value)
		}
		f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id(fd.accessor).Params().Add(fd.rep.Type).Block(
			jen.Return(value),
		)
	}
}

func genEqual(f *jen.File, o *object) {
	f.Commentf("Equal reports whether %s and other hold equal field values.", o.recv)
	f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id("Equal").Params(
		jen.Id("other").Op("*").Id(o.name),
	).Bool().BlockFunc(func(grp *jen.Group) {
		grp.If(jen.Id(o.recv).Op("==").Nil().Op("||").Id("other").Op("==").Nil()).Block(
			jen.Return(jen.Id(o.recv).Op("==").Id("other")),
		)
		if len(o.fields) == 0 {
			grp.Return(jen.True())
			return
		}
		conds := make([]jen.Code, 0, len(o.fields))
		for _, fd := range o.fields {
			mine, theirs := jen.Id(o.recv).Dot(fd.member), jen.Id("other").Dot(fd.member)
			switch {
			case fd.rep.Comparable:
				conds = append(conds, mine.Op("==").Add(theirs))
			case fd.rep.Category == gen.CategoryReference:
				conds = append(conds, mine.Dot("Equal").Call(theirs))
			default:
				conds = append(conds, jen.Add(fd.rep.EqualFunc()).Call(mine, theirs))
			}
		}
		expr := jen.Add(conds[0])
		for _, c := range conds[1:] {
			expr = expr.Op("&&").Line().Add(c)
		}
		grp.Return(expr)
	})
}

func genStringer(f *jen.File, o *object) {
	parts := make([]string, len(o.fields))
	args := []jen.Code{nil}
	for i, fd := range o.fields {
		parts[i] = fd.def.Name + ": %v"
		args = append(args, jen.Id(o.recv).Dot(fd.member))
	}
	args[0] = jen.Lit(o.name + "{" + strings.Join(parts, ", ") + "}")

	f.Comment("String implements fmt.Stringer.")
	f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id("String").Params().String().BlockFunc(func(grp *jen.Group) {
		if len(o.fields) == 0 {
			grp.Return(jen.Lit(o.name + "{}"))
			return
		}
		grp.Return(jen.Qual("fmt", "Sprintf").Call(args...))
	})
}
