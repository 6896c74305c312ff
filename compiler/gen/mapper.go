package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/conjen/schema"
)

const uuidPkg = "github.com/google/uuid"

// Category classifies how a builder stores, defaults, copies and
// null-checks a field.
type Category uint8

// Representation categories.
const (
	// CategoryValue is a non-nillable value assigned directly.
	CategoryValue Category = iota + 1
	// CategoryRequired is a bool, int or float64 tracked by an initialized
	// flag because its zero value is indistinguishable from "unset".
	CategoryRequired
	// CategoryOptional is conjen.Optional[T], defaulting to empty.
	CategoryOptional
	// CategoryList is []T, defaulting to empty and copied on assignment.
	CategoryList
	// CategorySet is []T without duplicates, in insertion order.
	CategorySet
	// CategoryMap is map[K]V, defaulting to empty and copied on assignment.
	CategoryMap
	// CategoryBinary is []byte, copied on assignment and on access.
	CategoryBinary
	// CategoryReference is a pointer to another generated object.
	CategoryReference
	// CategoryAny is the empty interface.
	CategoryAny
)

var categoryNames = [...]string{
	CategoryValue:     "value",
	CategoryRequired:  "required",
	CategoryOptional:  "optional",
	CategoryList:      "list",
	CategorySet:       "set",
	CategoryMap:       "map",
	CategoryBinary:    "binary",
	CategoryReference: "reference",
	CategoryAny:       "any",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) && categoryNames[c] != "" {
		return categoryNames[c]
	}
	return "unknown"
}

// Representation is the Go rendering of an IDL type together with the
// policies a builder applies to it.
type Representation struct {
	Category Category
	// Type is the declared Go type. Wrap it with jen.Add before chaining.
	Type jen.Code
	// Item is the element of an optional, list or set.
	Item *Representation
	// Key and Value are the entry types of a map.
	Key, Value *Representation
	// Nillable reports whether a value of Type can be nil. Setters reject
	// nil for nillable fields.
	Nillable bool
	// Comparable reports whether == is a correct equality for Type.
	Comparable bool
	// Builtin reports whether Type is built only from predeclared Go types,
	// so an alias of it may be a defined type without losing methods.
	Builtin bool
	// Alias reports whether the type was reached through an alias.
	Alias bool
	// Enum reports whether the type is a generated enum.
	Enum bool
	// Kind is the primitive kind, when the type is (or aliases) a primitive.
	Kind schema.PrimitiveKind

	equal jen.Code
}

// Defaultable reports whether a builder starts the field at an empty value
// and a decoder skips explicit nulls for it.
func (r *Representation) Defaultable() bool {
	switch r.Category {
	case CategoryOptional, CategoryList, CategorySet, CategoryMap:
		return true
	}
	return false
}

// Default returns the initial builder value, or nil when the field has
// none.
func (r *Representation) Default() jen.Code {
	switch r.Category {
	case CategoryOptional:
		return jen.Qual(RuntimePackage, "Empty").Types(r.Item.Type).Call()
	case CategoryList, CategorySet, CategoryMap:
		return jen.Add(r.Type).Values()
	}
	return nil
}

// Tracked reports whether the field needs an initialized flag.
func (r *Representation) Tracked() bool {
	return r.Category == CategoryRequired
}

// ElementNillable reports whether the elements (or map values) of a
// collection can be nil.
func (r *Representation) ElementNillable() bool {
	switch r.Category {
	case CategoryList, CategorySet:
		return r.Item.Nillable
	case CategoryMap:
		return r.Value.Nillable
	}
	return false
}

// EqualFunc returns an equality function usable with
// conjen.AppendUniqueFunc for values of this type.
func (r *Representation) EqualFunc() jen.Code {
	if r.equal != nil {
		return r.equal
	}
	return jen.Qual(RuntimePackage, "DeepEqual").Types(r.Type)
}

// Mapper resolves IDL types against a Registry.
type Mapper struct {
	cfg *Config
	reg *Registry
}

// NewMapper returns a Mapper over reg.
func NewMapper(cfg *Config, reg *Registry) *Mapper {
	return &Mapper{cfg: cfg, reg: reg}
}

// Represent maps t to its Go representation.
func (m *Mapper) Represent(t schema.Type) (*Representation, error) {
	if t == nil {
		return nil, NewSchemaError("", "", "nil type", nil)
	}
	return schema.Visit[*Representation](t, m)
}

// RepresentField is Represent with failures attributed to owner.field.
func (m *Mapper) RepresentField(owner schema.TypeName, f schema.FieldDefinition) (*Representation, error) {
	rep, err := m.Represent(f.Type)
	if err == nil {
		return rep, nil
	}
	switch e := err.(type) {
	case *UnresolvedTypeReferenceError:
		return nil, NewUnresolvedTypeReferenceError(owner.String(), f.Name, e.Reference)
	case *SchemaError:
		return nil, NewSchemaError(owner.String(), f.Name, e.Message, e.Cause)
	}
	return nil, err
}

// GoName returns the qualified Go identifier of a named definition.
func (m *Mapper) GoName(n schema.TypeName) *jen.Statement {
	return jen.Qual(m.cfg.PackagePath(n), GoName(n.Name))
}

// VisitPrimitive implements schema.TypeVisitor.
func (m *Mapper) VisitPrimitive(p schema.Primitive) (*Representation, error) {
	r := &Representation{Category: CategoryValue, Kind: p.Kind, Comparable: true}
	switch p.Kind {
	case schema.String:
		r.Type, r.Builtin = jen.String(), true
	case schema.Integer:
		r.Category, r.Type, r.Builtin = CategoryRequired, jen.Int(), true
	case schema.Double:
		r.Category, r.Type, r.Builtin = CategoryRequired, jen.Float64(), true
	case schema.Boolean:
		r.Category, r.Type, r.Builtin = CategoryRequired, jen.Bool(), true
	case schema.SafeLong:
		r.Type = jen.Qual(RuntimePackage, "SafeLong")
	case schema.Binary:
		if m.cfg.UseImmutableBytes {
			r.Type = jen.Qual(RuntimePackage, "Bytes")
			break
		}
		r.Category, r.Type = CategoryBinary, jen.Index().Byte()
		r.Nillable, r.Comparable, r.Builtin = true, false, true
		r.equal = jen.Qual(RuntimePackage, "BytesEqual").Types(jen.Index().Byte())
	case schema.DateTime:
		r.Type, r.Comparable = jen.Qual("time", "Time"), false
		r.equal = jen.Qual(RuntimePackage, "TimeEqual")
	case schema.UUID:
		r.Type = jen.Qual(uuidPkg, "UUID")
	case schema.RID:
		r.Type = jen.Qual(RuntimePackage, "RID")
	case schema.BearerToken:
		r.Type = jen.Qual(RuntimePackage, "BearerToken")
	case schema.Any:
		r.Category, r.Type = CategoryAny, jen.Any()
		r.Nillable, r.Comparable, r.Builtin = true, false, true
	default:
		return nil, NewSchemaError("", "", "unknown primitive "+p.Kind.String(), nil)
	}
	return r, nil
}

// VisitOptional implements schema.TypeVisitor.
func (m *Mapper) VisitOptional(o schema.Optional) (*Representation, error) {
	item, err := m.Represent(o.Item)
	if err != nil {
		return nil, err
	}
	return &Representation{
		Category:   CategoryOptional,
		Type:       jen.Qual(RuntimePackage, "Optional").Types(item.Type),
		Item:       item,
		Comparable: item.Comparable,
	}, nil
}

// VisitList implements schema.TypeVisitor.
func (m *Mapper) VisitList(l schema.List) (*Representation, error) {
	item, err := m.Represent(l.Item)
	if err != nil {
		return nil, err
	}
	return &Representation{
		Category: CategoryList,
		Type:     jen.Index().Add(item.Type),
		Item:     item,
		Nillable: true,
		Builtin:  true,
	}, nil
}

// VisitSet implements schema.TypeVisitor.
func (m *Mapper) VisitSet(s schema.Set) (*Representation, error) {
	item, err := m.Represent(s.Item)
	if err != nil {
		return nil, err
	}
	return &Representation{
		Category: CategorySet,
		Type:     jen.Index().Add(item.Type),
		Item:     item,
		Nillable: true,
		Builtin:  true,
	}, nil
}

// VisitMap implements schema.TypeVisitor.
func (m *Mapper) VisitMap(mt schema.Map) (*Representation, error) {
	key, err := m.Represent(mt.Key)
	if err != nil {
		return nil, err
	}
	if !key.Comparable {
		return nil, NewSchemaError("", "", "map key "+mt.Key.String()+" is not comparable", nil)
	}
	value, err := m.Represent(mt.Value)
	if err != nil {
		return nil, err
	}
	return &Representation{
		Category: CategoryMap,
		Type:     jen.Map(key.Type).Add(value.Type),
		Key:      key,
		Value:    value,
		Nillable: true,
		Builtin:  true,
	}, nil
}

// VisitReference implements schema.TypeVisitor.
func (m *Mapper) VisitReference(ref schema.Reference) (*Representation, error) {
	def, ok := m.reg.Lookup(ref.Name)
	if !ok {
		return nil, NewUnresolvedTypeReferenceError("", "", ref.Name.String())
	}
	switch def := def.(type) {
	case *schema.EnumDefinition:
		return &Representation{Category: CategoryValue, Type: m.GoName(ref.Name), Comparable: true, Enum: true}, nil
	case *schema.ObjectDefinition, *schema.UnionDefinition:
		return &Representation{Category: CategoryReference, Type: jen.Op("*").Add(m.GoName(ref.Name)), Nillable: true}, nil
	case *schema.AliasDefinition:
		if _, err := m.reg.Dealias(ref); err != nil {
			return nil, err
		}
		inner, err := m.Represent(def.Alias)
		if err != nil {
			return nil, err
		}
		r := *inner
		r.Alias = true
		r.equal = nil
		switch inner.Category {
		case CategoryReference:
			r.Type = jen.Op("*").Add(m.GoName(ref.Name))
		default:
			r.Type = m.GoName(ref.Name)
		}
		if !r.Comparable && inner.equal != nil && !r.Builtin {
			r.equal = inner.equal
		}
		return &r, nil
	default:
		return nil, NewSchemaError(ref.Name.String(), "", "unsupported definition kind", nil)
	}
}

// VisitExternal implements schema.TypeVisitor.
func (m *Mapper) VisitExternal(ext schema.External) (*Representation, error) {
	if gt, ok := m.cfg.ExternalTypes[ext.Name.String()]; ok {
		typ := jen.Id(gt.Name)
		if gt.PkgPath != "" {
			typ = jen.Qual(gt.PkgPath, gt.Name)
		}
		return &Representation{Category: CategoryValue, Type: typ}, nil
	}
	if ext.Fallback == nil {
		return nil, NewSchemaError(ext.Name.String(), "", "external type has no fallback and no configured Go type", nil)
	}
	return m.Represent(ext.Fallback)
}

var _ schema.TypeVisitor[*Representation] = (*Mapper)(nil)
