package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/schema"
)

// enum is an EnumDefinition resolved for emission.
type enum struct {
	def    *schema.EnumDefinition
	name   string
	recv   string
	kind   string // unexported ordinal type
	values []enumValue
}

type enumValue struct {
	def     schema.EnumValueDefinition
	exposed string // exported variable, e.g. ColorRed
	ordinal string // unexported constant, e.g. colorRed
	visit   string // visitor method, e.g. VisitRed
}

func newEnum(d *schema.EnumDefinition) (*enum, error) {
	e := &enum{
		def:  d,
		name: gen.GoName(d.Name.Name),
		recv: gen.Receiver(d.Name.Name),
		kind: gen.LowerName(d.Name.Name) + "Value",
	}
	seen := make(map[string]string, len(d.Values))
	for _, v := range d.Values {
		suffix := gen.EnumValueName(v.Value)
		if suffix == "Unknown" {
			return nil, gen.NewSchemaError(d.Name.String(), "", "enum value "+v.Value+" collides with the unknown variant", nil)
		}
		if prev, ok := seen[suffix]; ok {
			return nil, gen.NewSchemaError(d.Name.String(), "", "enum values "+prev+" and "+v.Value+" map to the same Go name", nil)
		}
		seen[suffix] = v.Value
		e.values = append(e.values, enumValue{
			def:     v,
			exposed: e.name + suffix,
			ordinal: gen.LowerName(d.Name.Name) + suffix,
			visit:   "Visit" + suffix,
		})
	}
	return e, nil
}

func (e *enum) unknown() string {
	return gen.LowerName(e.def.Name.Name) + "Unknown"
}

func (e *enum) visitor() string {
	return e.name + "Visitor"
}

func genEnum(h gen.GeneratorHelper, d *schema.EnumDefinition) (*jen.File, error) {
	e, err := newEnum(d)
	if err != nil {
		return nil, err
	}
	f := h.NewFile(d.Name)

	genEnumType(f, e)
	genEnumValues(f, e)
	genEnumParse(f, e)
	genEnumMethods(f, e)
	if h.FeatureEnabled(gen.FeatureMsgpack.Name) {
		genEnumMsgpack(f, e)
	}
	genEnumVisitor(f, e)
	if h.FeatureEnabled(gen.FeatureGenericVisitor.Name) {
		genEnumVisitorWithT(f, e)
	}
	return f, nil
}

func genEnumType(f *jen.File, e *enum) {
	if e.def.Docs != "" {
		docs(f, e.def.Docs, "")
		f.Comment("")
	}
	f.Commentf("%s is forward compatible: values this version does not know parse", e.name)
	f.Comment("to an unknown variant that keeps the raw string.")
	f.Type().Id(e.name).Struct(
		jen.Id("value").Id(e.kind),
		jen.Id("str").String(),
	)
	f.Type().Id(e.kind).Int()
}

func genEnumValues(f *jen.File, e *enum) {
	f.Const().DefsFunc(func(grp *jen.Group) {
		grp.Id(e.unknown()).Id(e.kind).Op("=").Iota()
		for _, v := range e.values {
			grp.Id(v.ordinal)
		}
	})
	if len(e.values) > 0 {
		f.Var().DefsFunc(func(grp *jen.Group) {
			for _, v := range e.values {
				docs(grp, v.def.Docs, v.def.Deprecated)
				grp.Id(v.exposed).Op("=").Id(e.name).Values(jen.Dict{
					jen.Id("value"): jen.Id(v.ordinal),
					jen.Id("str"):   jen.Lit(v.def.Value),
				})
			}
		})
	}

	f.Commentf("%sValues returns every known %s in declaration order.", e.name, e.name)
	f.Func().Id(e.name + "Values").Params().Index().Id(e.name).Block(
		jen.Return(jen.Index().Id(e.name).ValuesFunc(func(grp *jen.Group) {
			for _, v := range e.values {
				grp.Id(v.exposed)
			}
		})),
	)
}

func genEnumParse(f *jen.File, e *enum) {
	f.Commentf("Parse%s returns the %s named by raw, ignoring case. Unrecognized", e.name, e.name)
	f.Comment("input yields an unknown value that preserves raw.")
	f.Func().Id("Parse"+e.name).Params(jen.Id("raw").String()).Id(e.name).BlockFunc(func(grp *jen.Group) {
		if len(e.values) > 0 {
			grp.Switch(jen.Qual("strings", "ToUpper").Call(jen.Id("raw"))).BlockFunc(func(sw *jen.Group) {
				for _, v := range e.values {
					sw.Case(jen.Lit(v.def.Value)).Block(jen.Return(jen.Id(v.exposed)))
				}
			})
		}
		grp.Return(jen.Id(e.name).Values(jen.Dict{
			jen.Id("value"): jen.Id(e.unknown()),
			jen.Id("str"):   jen.Id("raw"),
		}))
	})
}

func genEnumMethods(f *jen.File, e *enum) {
	r := e.recv
	f.Comment("String returns the wire value.")
	f.Func().Params(jen.Id(r).Id(e.name)).Id("String").Params().String().Block(
		jen.Return(jen.Id(r).Dot("str")),
	)

	f.Commentf("IsUnknown reports whether %s is not one of the known values.", r)
	f.Func().Params(jen.Id(r).Id(e.name)).Id("IsUnknown").Params().Bool().Block(
		jen.Return(jen.Id(r).Dot("value").Op("==").Id(e.unknown())),
	)

	f.Commentf("Equal reports whether %s and other have the same wire value.", r)
	f.Func().Params(jen.Id(r).Id(e.name)).Id("Equal").Params(jen.Id("other").Id(e.name)).Bool().Block(
		jen.Return(jen.Id(r).Dot("str").Op("==").Id("other").Dot("str")),
	)

	f.Comment("MarshalText implements encoding.TextMarshaler.")
	f.Func().Params(jen.Id(r).Id(e.name)).Id("MarshalText").Params().Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Index().Byte().Call(jen.Id(r).Dot("str")), jen.Nil()),
	)

	f.Comment("UnmarshalText implements encoding.TextUnmarshaler. It never fails;")
	f.Comment("unrecognized input decodes to an unknown value.")
	f.Func().Params(jen.Id(r).Op("*").Id(e.name)).Id("UnmarshalText").Params(jen.Id("data").Index().Byte()).Error().Block(
		jen.Op("*").Id(r).Op("=").Id("Parse"+e.name).Call(jen.String().Call(jen.Id("data"))),
		jen.Return(jen.Nil()),
	)
}

func genEnumMsgpack(f *jen.File, e *enum) {
	r := e.recv
	f.Comment("EncodeMsgpack implements msgpack.CustomEncoder.")
	f.Func().Params(jen.Id(r).Id(e.name)).Id("EncodeMsgpack").Params(
		jen.Id("enc").Op("*").Qual(msgpackPkg, "Encoder"),
	).Error().Block(
		jen.Return(jen.Id("enc").Dot("EncodeString").Call(jen.Id(r).Dot("str"))),
	)

	f.Comment("DecodeMsgpack implements msgpack.CustomDecoder.")
	f.Func().Params(jen.Id(r).Op("*").Id(e.name)).Id("DecodeMsgpack").Params(
		jen.Id("dec").Op("*").Qual(msgpackPkg, "Decoder"),
	).Error().Block(
		jen.List(jen.Id("raw"), jen.Id("err")).Op(":=").Id("dec").Dot("DecodeString").Call(),
		jen.If(jen.Id("err").Op("!=").Nil()).Block(
			jen.Return(rt("NewDecodeError").Call(jen.Lit(e.def.Name.Name), jen.Lit(""), jen.Id("err"))),
		),
		jen.Op("*").Id(r).Op("=").Id("Parse"+e.name).Call(jen.Id("raw")),
		jen.Return(jen.Nil()),
	)
}

// visitorMethods declares one method per value plus VisitUnknown, each
// returning results.
func visitorMethods(e *enum, results func() *jen.Statement) func(*jen.Group) {
	return func(grp *jen.Group) {
		for _, v := range e.values {
			if v.def.Deprecated != "" {
				grp.Comment("Deprecated: " + v.def.Deprecated)
			}
			grp.Id(v.visit).Params().Add(results())
		}
		grp.Id("VisitUnknown").Params(jen.Id("raw").String()).Add(results())
	}
}

// acceptSwitch dispatches on the ordinal of subject.
func acceptSwitch(e *enum, subject string) jen.Code {
	return jen.Switch(jen.Id(subject).Dot("value")).BlockFunc(func(sw *jen.Group) {
		for _, v := range e.values {
			sw.Case(jen.Id(v.ordinal)).Block(jen.Return(jen.Id("visitor").Dot(v.visit).Call()))
		}
		sw.Default().Block(jen.Return(jen.Id("visitor").Dot("VisitUnknown").Call(jen.Id(subject).Dot("str"))))
	})
}

func genEnumVisitor(f *jen.File, e *enum) {
	f.Commentf("%s handles each %s value. VisitUnknown receives the raw string of", e.visitor(), e.name)
	f.Comment("values added after this code was generated.")
	f.Type().Id(e.visitor()).InterfaceFunc(visitorMethods(e, func() *jen.Statement {
		return jen.Error()
	}))

	f.Commentf("Accept calls the method of visitor that matches %s.", e.recv)
	f.Func().Params(jen.Id(e.recv).Id(e.name)).Id("Accept").Params(jen.Id("visitor").Id(e.visitor())).Error().Block(
		acceptSwitch(e, e.recv),
	)
}

func genEnumVisitorWithT(f *jen.File, e *enum) {
	name := e.visitor() + "WithT"
	f.Commentf("%s is a %s whose methods return a value.", name, e.visitor())
	f.Type().Id(name).Types(jen.Id("T").Any()).InterfaceFunc(visitorMethods(e, func() *jen.Statement {
		return jen.Params(jen.Id("T"), jen.Error())
	}))

	f.Commentf("Accept%sWithT calls the method of visitor that matches %s and returns", e.name, e.recv)
	f.Comment("its result.")
	f.Func().Id("Accept"+e.name+"WithT").Types(jen.Id("T").Any()).Params(
		jen.Id(e.recv).Id(e.name),
		jen.Id("visitor").Id(name).Types(jen.Id("T")),
	).Params(jen.Id("T"), jen.Error()).Block(
		acceptSwitch(e, e.recv),
	)
}
