package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/compiler/gen"
)

func genJSON(f *jen.File, o *object) {
	genMarshalJSON(f, o)
	genUnmarshalJSON(f, o)
}

// wireStruct returns the anonymous struct mirroring the wire shape of o,
// with exported fields tagged by IDL name.
func wireStruct(o *object) *jen.Statement {
	return jen.StructFunc(func(grp *jen.Group) {
		for _, fd := range o.fields {
			tag := fd.def.Name
			if fd.rep.Category == gen.CategoryOptional {
				tag += ",omitzero"
			}
			grp.Id(fd.name).Add(fd.rep.Type).Tag(map[string]string{"json": tag})
		}
	})
}

func genMarshalJSON(f *jen.File, o *object) {
	f.Comment("MarshalJSON implements json.Marshaler. Empty optional fields are")
	f.Comment("omitted.")
	f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id("MarshalJSON").Params().Params(
		jen.Index().Byte(), jen.Error(),
	).Block(
		jen.Return(jen.Qual(jsonPkg, "Marshal").Call(
			wireStruct(o).Values(jen.DictFunc(func(d jen.Dict) {
				for _, fd := range o.fields {
					d[jen.Id(fd.name)] = jen.Id(o.recv).Dot(fd.member)
				}
			})),
		)),
	)
}

func genUnmarshalJSON(f *jen.File, o *object) {
	strict := o.h.Config().StrictObjects
	f.Comment("UnmarshalJSON implements json.Unmarshaler. Every required field must be")
	f.Comment("present and not null; null optional and collection fields are left empty.")
	if strict {
		f.Comment("Unknown fields are rejected.")
	} else {
		f.Comment("Unknown fields are ignored.")
	}
	f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id("UnmarshalJSON").Params(
		jen.Id("data").Index().Byte(),
	).Error().BlockFunc(func(grp *jen.Group) {
		grp.Var().Id("fields").Map(jen.String()).Qual(jsonPkg, "RawMessage")
		grp.If(
			jen.Id("err").Op(":=").Qual(jsonPkg, "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("fields")),
			jen.Id("err").Op("!=").Nil(),
		).Block(
			jen.Return(rt("NewDecodeError").Call(jen.Lit(o.wire), jen.Lit(""), jen.Id("err"))),
		)
		if strict {
			grp.Add(unknownKeyLoop(o))
		}
		addAll(grp, missingKeys(o, func(name string) jen.Code {
			return rt("HasKey").Call(jen.Id("fields"), jen.Lit(name))
		}))

		grp.Id("builder").Op(":=").Id("New" + o.builderName()).Call()
		for _, fd := range o.fields {
			lookup := jen.List(jen.Id("raw"), jen.Id("ok")).Op(":=").Id("fields").Index(jen.Lit(fd.def.Name))
			if !fd.required() {
				grp.If(lookup, jen.Id("ok").Op("&&").Op("!").Add(rt("IsJSONNull")).Call(jen.Id("raw"))).Block(
					decodeField(o, fd)...,
				)
				continue
			}
			grp.If(lookup, jen.Id("ok")).Block(append([]jen.Code{
				jen.If(rt("IsJSONNull").Call(jen.Id("raw"))).Block(
					jen.Return(rt("NewNullArgumentError").Call(jen.Lit(o.wire), jen.Lit(fd.def.Name))),
				),
			}, decodeField(o, fd)...)...)
		}
		addAll(grp, finishDecode(o))
	})
}

// decodeField unmarshals raw into the field type and passes it to the
// setter.
func decodeField(o *object, fd *objectField) []jen.Code {
	return []jen.Code{
		jen.Var().Id("decoded").Add(fd.rep.Type),
		jen.If(
			jen.Id("err").Op(":=").Qual(jsonPkg, "Unmarshal").Call(jen.Id("raw"), jen.Op("&").Id("decoded")),
			jen.Id("err").Op("!=").Nil(),
		).Block(
			jen.Return(rt("NewDecodeError").Call(jen.Lit(o.wire), jen.Lit(fd.def.Name), jen.Id("err"))),
		),
		jen.Id("builder").Dot("Set" + fd.name).Call(jen.Id("decoded")),
	}
}

// unknownKeyLoop rejects keys that name no field, in sorted order so the
// reported field is deterministic.
func unknownKeyLoop(o *object) jen.Code {
	return jen.For(
		jen.List(jen.Id("_"), jen.Id("key")).Op(":=").Range().Qual("slices", "Sorted").Call(
			jen.Qual("maps", "Keys").Call(jen.Id("fields")),
		),
	).Block(knownKeySwitch(o, jen.Return(rt("NewUnknownFieldError").Call(jen.Lit(o.wire), jen.Id("key")))))
}

// knownKeySwitch switches on key, running onUnknown for keys that name no
// field.
func knownKeySwitch(o *object, onUnknown jen.Code) jen.Code {
	return jen.Switch(jen.Id("key")).BlockFunc(func(grp *jen.Group) {
		if len(o.fields) > 0 {
			names := make([]jen.Code, len(o.fields))
			for i, fd := range o.fields {
				names[i] = jen.Lit(fd.def.Name)
			}
			grp.Case(names...)
		}
		grp.Default().Block(onUnknown)
	})
}

// missingKeys reports every required field whose key is absent, in
// declaration order.
func missingKeys(o *object, present func(name string) jen.Code) []jen.Code {
	var required []*objectField
	for _, fd := range o.fields {
		if fd.required() {
			required = append(required, fd)
		}
	}
	if len(required) == 0 {
		return nil
	}
	code := []jen.Code{jen.Var().Id("missing").Index().String()}
	for _, fd := range required {
		code = append(code, jen.Id("missing").Op("=").Add(rt("AddFieldIfMissing")).Call(
			jen.Id("missing"), present(fd.def.Name), jen.Lit(fd.def.Name),
		))
	}
	return append(code, jen.If(jen.Len(jen.Id("missing")).Op(">").Lit(0)).Block(
		jen.Return(rt("NewMissingRequiredFieldError").Call(jen.Lit(o.wire), jen.Id("missing"))),
	))
}

// finishDecode builds the decoded value and stores it in the receiver.
func finishDecode(o *object) []jen.Code {
	return []jen.Code{
		jen.List(jen.Id("built"), jen.Id("err")).Op(":=").Id("builder").Dot("Build").Call(),
		jen.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(jen.Id("err"))),
		jen.Op("*").Id(o.recv).Op("=").Op("*").Id("built"),
		jen.Return(jen.Nil()),
	}
}

// addAll appends each of code to grp as its own statement.
func addAll(grp *jen.Group, code []jen.Code) {
	for _, c := range code {
		grp.Add(c)
	}
}
