package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/compiler/gen"
)

// genMsgpack emits a msgpack codec with the same contract as the JSON one:
// a map keyed by IDL field name, empty optionals omitted.
func genMsgpack(f *jen.File, o *object) {
	genEncodeMsgpack(f, o)
	genDecodeMsgpack(f, o)
}

// returnIfErr emits `if err := call; err != nil { return wrap(err) }`.
func returnIfErr(call jen.Code, wrap func(err jen.Code) jen.Code) jen.Code {
	return jen.If(jen.Id("err").Op(":=").Add(call), jen.Id("err").Op("!=").Nil()).Block(
		jen.Return(wrap(jen.Id("err"))),
	)
}

func plainErr(err jen.Code) jen.Code { return err }

func genEncodeMsgpack(f *jen.File, o *object) {
	var optional int
	for _, fd := range o.fields {
		if fd.rep.Category == gen.CategoryOptional {
			optional++
		}
	}
	f.Comment("EncodeMsgpack implements msgpack.CustomEncoder.")
	f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id("EncodeMsgpack").Params(
		jen.Id("enc").Op("*").Qual(msgpackPkg, "Encoder"),
	).Error().BlockFunc(func(grp *jen.Group) {
		size := jen.Lit(len(o.fields))
		if optional > 0 {
			grp.Id("n").Op(":=").Lit(len(o.fields))
			for _, fd := range o.fields {
				if fd.rep.Category == gen.CategoryOptional {
					grp.If(jen.Op("!").Id(o.recv).Dot(fd.member).Dot("IsPresent").Call()).Block(jen.Id("n").Op("--"))
				}
			}
			size = jen.Id("n")
		}
		grp.Add(returnIfErr(jen.Id("enc").Dot("EncodeMapLen").Call(size), plainErr))
		for _, fd := range o.fields {
			entry := []jen.Code{
				returnIfErr(jen.Id("enc").Dot("EncodeString").Call(jen.Lit(fd.def.Name)), plainErr),
				returnIfErr(jen.Id("enc").Dot("Encode").Call(jen.Id(o.recv).Dot(fd.member)), plainErr),
			}
			if fd.rep.Category == gen.CategoryOptional {
				grp.If(jen.Id(o.recv).Dot(fd.member).Dot("IsPresent").Call()).Block(entry...)
				continue
			}
			addAll(grp, entry)
		}
		grp.Return(jen.Nil())
	})
}

func genDecodeMsgpack(f *jen.File, o *object) {
	strict := o.h.Config().StrictObjects
	decodeErr := func(field string) func(jen.Code) jen.Code {
		return func(err jen.Code) jen.Code {
			return rt("NewDecodeError").Call(jen.Lit(o.wire), jen.Lit(field), err)
		}
	}
	var tracked bool
	for _, fd := range o.fields {
		tracked = tracked || fd.required()
	}

	f.Comment("DecodeMsgpack implements msgpack.CustomDecoder with the rules of")
	f.Comment("UnmarshalJSON.")
	f.Func().Params(jen.Id(o.recv).Op("*").Id(o.name)).Id("DecodeMsgpack").Params(
		jen.Id("dec").Op("*").Qual(msgpackPkg, "Decoder"),
	).Error().BlockFunc(func(grp *jen.Group) {
		grp.List(jen.Id("n"), jen.Id("err")).Op(":=").Id("dec").Dot("DecodeMapLen").Call()
		grp.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(decodeErr("")(jen.Id("err"))))
		if tracked {
			grp.Id("seen").Op(":=").Make(jen.Map(jen.String()).Struct(), jen.Id("max").Call(jen.Id("n"), jen.Lit(0)))
		}
		grp.Id("builder").Op(":=").Id("New" + o.builderName()).Call()
		grp.For(jen.Range().Id("max").Call(jen.Id("n"), jen.Lit(0))).BlockFunc(func(loop *jen.Group) {
			loop.List(jen.Id("key"), jen.Id("err")).Op(":=").Id("dec").Dot("DecodeString").Call()
			loop.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(decodeErr("")(jen.Id("err"))))
			loop.Switch(jen.Id("key")).BlockFunc(func(sw *jen.Group) {
				for _, fd := range o.fields {
					sw.Case(jen.Lit(fd.def.Name)).BlockFunc(func(c *jen.Group) {
						if fd.required() {
							c.Id("seen").Index(jen.Id("key")).Op("=").Struct().Values()
						}
						c.List(jen.Id("null"), jen.Id("err")).Op(":=").Add(rt("DecodeMsgpackNil")).Call(jen.Id("dec"))
						c.If(jen.Id("err").Op("!=").Nil()).Block(jen.Return(decodeErr(fd.def.Name)(jen.Id("err"))))
						if fd.required() {
							c.If(jen.Id("null")).Block(
								jen.Return(rt("NewNullArgumentError").Call(jen.Lit(o.wire), jen.Lit(fd.def.Name))),
							)
						} else {
							c.If(jen.Id("null")).Block(jen.Continue())
						}
						c.Var().Id("decoded").Add(fd.rep.Type)
						c.Add(returnIfErr(jen.Id("dec").Dot("Decode").Call(jen.Op("&").Id("decoded")), decodeErr(fd.def.Name)))
						c.Id("builder").Dot("Set" + fd.name).Call(jen.Id("decoded"))
					})
				}
				if strict {
					sw.Default().Block(jen.Return(rt("NewUnknownFieldError").Call(jen.Lit(o.wire), jen.Id("key"))))
				} else {
					sw.Default().Block(returnIfErr(jen.Id("dec").Dot("Skip").Call(), decodeErr("")))
				}
			})
		})
		addAll(grp, missingKeys(o, func(name string) jen.Code {
			return rt("HasKey").Call(jen.Id("seen"), jen.Lit(name))
		}))
		addAll(grp, finishDecode(o))
	})
}
