package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/compiler/gen"
)

// builderRecv is the receiver of every builder method.
const builderRecv = "b"

func genBuilder(f *jen.File, o *object) {
	genBuilderType(f, o)
	genBuilderCheck(f, o)
	for _, fd := range o.fields {
		genSetter(f, o, fd)
		switch fd.rep.Category {
		case gen.CategoryOptional:
			genOptionalValueSetter(f, o, fd)
		case gen.CategoryList, gen.CategorySet:
			genAddAll(f, o, fd)
			genAdd(f, o, fd)
		case gen.CategoryMap:
			genPutAll(f, o, fd)
			genPut(f, o, fd)
		}
	}
	genCopyFrom(f, o)
	genBuilderErr(f, o)
	genBuild(f, o)
}

// builderMethod starts a method declaration on the builder that returns
// the builder for chaining.
func builderMethod(f *jen.File, o *object, name string, params ...jen.Code) *jen.Statement {
	return f.Func().Params(jen.Id(builderRecv).Op("*").Id(o.builderName())).Id(name).Params(params...).Op("*").Id(o.builderName())
}

func self() *jen.Statement {
	return jen.Id(builderRecv)
}

// guard is the first statement of every mutating builder method.
func guard(method string) jen.Code {
	return jen.If(jen.Op("!").Add(self()).Dot("check").Call(jen.Lit(method))).Block(jen.Return(self()))
}

// fail records a NullArgumentError for field and returns the builder.
func fail(o *object, field string) []jen.Code {
	return []jen.Code{
		self().Dot("err").Op("=").Add(rt("NewNullArgumentError")).Call(jen.Lit(o.wire), jen.Lit(field)),
		jen.Return(self()),
	}
}

// nilCheck rejects a nil value of a nillable type.
func nilCheck(o *object, v jen.Code, field string) jen.Code {
	return jen.If(jen.Add(v).Op("==").Nil()).Block(fail(o, field)...)
}

// elementCheck rejects nil elements (or map values) of a collection when
// the configuration forbids them.
func elementCheck(o *object, fd *objectField, collection jen.Code) jen.Code {
	if !o.h.Config().NonNullCollections || !fd.rep.ElementNillable() {
		return jen.Null()
	}
	loopVar := "item"
	if fd.rep.Category == gen.CategoryMap {
		loopVar = "value"
	}
	return jen.For(jen.List(jen.Id("_"), jen.Id(loopVar)).Op(":=").Range().Add(collection)).Block(
		nilCheck(o, jen.Id(loopVar), fd.def.Name),
	)
}

// itemCheck rejects a single nil element passed to an adder.
func itemCheck(o *object, fd *objectField, item string) jen.Code {
	if !o.h.Config().NonNullCollections || !fd.rep.ElementNillable() {
		return jen.Null()
	}
	return nilCheck(o, jen.Id(item), fd.def.Name)
}

// appendItems returns the expression adding items to dst, keeping set
// fields free of duplicates. A spread items is passed as items...
func appendItems(fd *objectField, dst, items jen.Code, spread bool) jen.Code {
	arg := jen.Add(items)
	if spread {
		arg = arg.Op("...")
	}
	if fd.rep.Category != gen.CategorySet {
		return jen.Append(dst, arg)
	}
	if fd.rep.Item.Comparable {
		return rt("AppendUnique").Call(dst, arg)
	}
	return rt("AppendUniqueFunc").Call(dst, fd.rep.Item.EqualFunc(), arg)
}

func genBuilderType(f *jen.File, o *object) {
	f.Commentf("%s builds %s values. Setters record the first invalid argument", o.builderName(), o.name)
	f.Comment("and Build reports it; a builder that has built a value rejects every")
	f.Comment("further call.")
	f.Type().Id(o.builderName()).StructFunc(func(grp *jen.Group) {
		grp.Id("state").Add(rt("BuilderState"))
		grp.Id("err").Error()
		for _, fd := range o.fields {
			grp.Id(fd.member).Add(fd.rep.Type)
		}
		for _, fd := range o.fields {
			if fd.flag != "" {
				grp.Id(fd.flag).Bool()
			}
		}
	})

	f.Commentf("New%s returns an empty builder. Optional and collection fields start", o.builderName())
	f.Comment("empty.")
	f.Func().Id("New" + o.builderName()).Params().Op("*").Id(o.builderName()).Block(
		jen.Return(jen.Op("&").Id(o.builderName()).Values(jen.DictFunc(func(d jen.Dict) {
			for _, fd := range o.fields {
				if def := fd.rep.Default(); def != nil {
					d[jen.Id(fd.member)] = def
				}
			}
		}))),
	)
}

func genBuilderCheck(f *jen.File, o *object) {
	f.Comment("check reports whether a mutating call may proceed. Calls after Build")
	f.Comment("record an IllegalBuilderReuseError.")
	f.Func().Params(self().Op("*").Id(o.builderName())).Id("check").Params(jen.Id("method").String()).Bool().Block(
		jen.If(self().Dot("err").Op("!=").Nil()).Block(jen.Return(jen.False())),
		jen.If(
			jen.Id("err").Op(":=").Add(self()).Dot("state").Dot("Check").Call(jen.Lit(o.wire), jen.Id("method")),
			jen.Id("err").Op("!=").Nil(),
		).Block(
			self().Dot("err").Op("=").Id("err"),
			jen.Return(jen.False()),
		),
		jen.Return(jen.True()),
	)
}

func genSetter(f *jen.File, o *object, fd *objectField) {
	method := "Set" + fd.name
	f.Commentf("%s sets the %s field.", method, fd.def.Name)
	if fd.def.Deprecated != "" {
		f.Comment("")
		f.Comment("Deprecated: " + fd.def.Deprecated)
	}
	builderMethod(f, o, method, jen.Id("v").Add(fd.rep.Type)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard(method))
		if fd.rep.Nillable {
			grp.Add(nilCheck(o, jen.Id("v"), fd.def.Name))
		}
		if fd.rep.Category == gen.CategoryOptional && fd.rep.Item.Nillable {
			grp.If(
				jen.List(jen.Id("item"), jen.Id("ok")).Op(":=").Id("v").Dot("Get").Call(),
				jen.Id("ok").Op("&&").Id("item").Op("==").Nil(),
			).Block(fail(o, fd.def.Name)...)
		}
		grp.Add(elementCheck(o, fd, jen.Id("v")))

		target := self().Dot(fd.member)
		switch fd.rep.Category {
		case gen.CategoryList, gen.CategoryBinary:
			grp.Add(target).Op("=").Add(rt("CopySlice")).Call(jen.Id("v"))
		case gen.CategorySet:
			grp.Add(target).Op("=").Add(appendItems(fd, fd.rep.Default(), jen.Id("v"), true))
		case gen.CategoryMap:
			grp.Add(target).Op("=").Add(rt("CopyMap")).Call(jen.Id("v"))
		default:
			grp.Add(target).Op("=").Id("v")
		}
		if fd.flag != "" {
			grp.Add(self()).Dot(fd.flag).Op("=").True()
		}
		grp.Return(self())
	})
}

func genOptionalValueSetter(f *jen.File, o *object, fd *objectField) {
	method := "Set" + fd.name + "Value"
	f.Commentf("%s sets the %s field to a present value.", method, fd.def.Name)
	builderMethod(f, o, method, jen.Id("v").Add(fd.rep.Item.Type)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard(method))
		if fd.rep.Item.Nillable {
			grp.Add(nilCheck(o, jen.Id("v"), fd.def.Name))
		}
		grp.Add(self()).Dot(fd.member).Op("=").Add(rt("Some")).Call(jen.Id("v"))
		grp.Return(self())
	})
}

func genAddAll(f *jen.File, o *object, fd *objectField) {
	method := "AddAll" + fd.name
	f.Commentf("%s appends items to the %s field.", method, fd.def.Name)
	builderMethod(f, o, method, jen.Id("items").Op("...").Add(fd.rep.Item.Type)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard(method))
		grp.Add(elementCheck(o, fd, jen.Id("items")))
		grp.Add(self()).Dot(fd.member).Op("=").Add(appendItems(fd, self().Dot(fd.member), jen.Id("items"), true))
		grp.Return(self())
	})
}

func genAdd(f *jen.File, o *object, fd *objectField) {
	method := "Add" + fd.element
	f.Commentf("%s appends item to the %s field.", method, fd.def.Name)
	builderMethod(f, o, method, jen.Id("item").Add(fd.rep.Item.Type)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard(method))
		grp.Add(itemCheck(o, fd, "item"))
		grp.Add(self()).Dot(fd.member).Op("=").Add(appendItems(fd, self().Dot(fd.member), jen.Id("item"), false))
		grp.Return(self())
	})
}

func genPutAll(f *jen.File, o *object, fd *objectField) {
	method := "PutAll" + fd.name
	f.Commentf("%s copies every entry of entries into the %s field.", method, fd.def.Name)
	builderMethod(f, o, method, jen.Id("entries").Add(fd.rep.Type)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard(method))
		grp.Add(nilCheck(o, jen.Id("entries"), fd.def.Name))
		grp.Add(elementCheck(o, fd, jen.Id("entries")))
		grp.Qual("maps", "Copy").Call(self().Dot(fd.member), jen.Id("entries"))
		grp.Return(self())
	})
}

func genPut(f *jen.File, o *object, fd *objectField) {
	method := "Put" + fd.element
	f.Commentf("%s sets one entry of the %s field.", method, fd.def.Name)
	builderMethod(f, o, method, jen.Id("key").Add(fd.rep.Key.Type), jen.Id("value").Add(fd.rep.Value.Type)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard(method))
		grp.Add(itemCheck(o, fd, "value"))
		grp.Add(self()).Dot(fd.member).Index(jen.Id("key")).Op("=").Id("value")
		grp.Return(self())
	})
}

func genCopyFrom(f *jen.File, o *object) {
	f.Comment("CopyFrom sets every field of the builder from other.")
	builderMethod(f, o, "CopyFrom", jen.Id("other").Op("*").Id(o.name)).BlockFunc(func(grp *jen.Group) {
		grp.Add(guard("CopyFrom"))
		grp.Add(nilCheck(o, jen.Id("other"), "other"))
		for _, fd := range o.fields {
			grp.Add(self()).Dot("Set" + fd.name).Call(jen.Id("other").Dot(fd.member))
		}
		grp.Return(self())
	})
}

func genBuilderErr(f *jen.File, o *object) {
	f.Comment("Err returns the error recorded by the first rejected call, if any.")
	f.Func().Params(self().Op("*").Id(o.builderName())).Id("Err").Params().Error().Block(
		jen.Return(self().Dot("err")),
	)
}

func genBuild(f *jen.File, o *object) {
	var tracked, nullable []*objectField
	for _, fd := range o.fields {
		switch {
		case fd.rep.Tracked():
			tracked = append(tracked, fd)
		case fd.nullAtBuild():
			nullable = append(nullable, fd)
		}
	}

	f.Commentf("Build returns the %s. It fails with the error recorded by a setter,", o.name)
	f.Comment("with a MissingRequiredFieldError listing every required primitive that")
	f.Comment("was never set, or with a NullFieldsError listing every field still nil.")
	if hasEnum(nullable) {
		f.Comment("An enum field that was never set counts as nil.")
	}
	f.Comment("After a successful Build the builder rejects every call.")
	f.Func().Params(self().Op("*").Id(o.builderName())).Id("Build").Params().Params(
		jen.Op("*").Id(o.name), jen.Error(),
	).BlockFunc(func(grp *jen.Group) {
		grp.If(
			jen.Id("err").Op(":=").Add(self()).Dot("state").Dot("Check").Call(jen.Lit(o.wire), jen.Lit("Build")),
			jen.Id("err").Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Id("err")))
		grp.If(self().Dot("err").Op("!=").Nil()).Block(jen.Return(jen.Nil(), self().Dot("err")))

		if len(tracked) > 0 {
			grp.Var().Id("missing").Index().String()
			for _, fd := range tracked {
				grp.Id("missing").Op("=").Add(rt("AddFieldIfMissing")).Call(jen.Id("missing"), self().Dot(fd.flag), jen.Lit(fd.def.Name))
			}
			grp.If(jen.Len(jen.Id("missing")).Op(">").Lit(0)).Block(
				jen.Return(jen.Nil(), rt("NewMissingRequiredFieldError").Call(jen.Lit(o.wire), jen.Id("missing"))),
			)
		}
		if len(nullable) > 0 {
			grp.Var().Id("unset").Index().String()
			for _, fd := range nullable {
				zero := jen.Nil()
				if fd.rep.Enum {
					zero = jen.Parens(jen.Add(fd.rep.Type).Values())
				}
				set := self().Dot(fd.member).Op("!=").Add(zero)
				grp.Id("unset").Op("=").Add(rt("AddFieldIfMissing")).Call(jen.Id("unset"), set, jen.Lit(fd.def.Name))
			}
			grp.If(jen.Len(jen.Id("unset")).Op(">").Lit(0)).Block(
				jen.Return(jen.Nil(), rt("NewNullFieldsError").Call(jen.Lit(o.wire), jen.Id("unset"))),
			)
		}

		grp.Add(self()).Dot("state").Dot("MarkBuilt").Call()
		grp.Return(jen.Op("&").Id(o.name).Values(jen.DictFunc(func(d jen.Dict) {
			for _, fd := range o.fields {
				d[jen.Id(fd.member)] = self().Dot(fd.member)
			}
		})), jen.Nil())
	})
}

func hasEnum(fields []*objectField) bool {
	for _, fd := range fields {
		if fd.rep.Enum {
			return true
		}
	}
	return false
}
