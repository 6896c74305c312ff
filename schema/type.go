package schema

import (
	"fmt"
	"strings"
)

// PrimitiveKind enumerates the built-in scalar types.
type PrimitiveKind uint8

// Primitive kinds.
const (
	_ PrimitiveKind = iota
	String
	Integer
	Double
	Boolean
	SafeLong
	Binary
	DateTime
	UUID
	RID
	BearerToken
	Any
)

var primitiveNames = [...]string{
	String:      "string",
	Integer:     "integer",
	Double:      "double",
	Boolean:     "boolean",
	SafeLong:    "safelong",
	Binary:      "binary",
	DateTime:    "datetime",
	UUID:        "uuid",
	RID:         "rid",
	BearerToken: "bearertoken",
	Any:         "any",
}

// String returns the lower-case IDL spelling of the kind.
func (k PrimitiveKind) String() string {
	if int(k) < len(primitiveNames) && primitiveNames[k] != "" {
		return primitiveNames[k]
	}
	return fmt.Sprintf("primitive(%d)", k)
}

// ParsePrimitiveKind parses a primitive name case-insensitively.
func ParsePrimitiveKind(s string) (PrimitiveKind, bool) {
	s = strings.ToLower(s)
	for k, name := range primitiveNames {
		if name != "" && name == s {
			return PrimitiveKind(k), true
		}
	}
	return 0, false
}

// TypeName identifies a named definition.
type TypeName struct {
	Package string
	Name    string
}

// String returns "package.Name", or just the name when the package is empty.
func (n TypeName) String() string {
	if n.Package == "" {
		return n.Name
	}
	return n.Package + "." + n.Name
}

// Type is a field type. The set of implementations is closed.
type Type interface {
	fmt.Stringer
	isType()
}

// Primitive is a built-in scalar.
type Primitive struct {
	Kind PrimitiveKind
}

// Optional is a value that may be absent.
type Optional struct {
	Item Type
}

// List is an ordered sequence that permits duplicates.
type List struct {
	Item Type
}

// Set is an insertion-ordered sequence without duplicates.
type Set struct {
	Item Type
}

// Map associates keys with values.
type Map struct {
	Key   Type
	Value Type
}

// Reference names another definition.
type Reference struct {
	Name TypeName
}

// External is a type defined outside the schema. Fallback is used when no
// target-specific type has been configured for Name.
type External struct {
	Name     TypeName
	Fallback Type
}

func (Primitive) isType() {}
func (Optional) isType()  {}
func (List) isType()      {}
func (Set) isType()       {}
func (Map) isType()       {}
func (Reference) isType() {}
func (External) isType()  {}

func (t Primitive) String() string { return t.Kind.String() }
func (t Optional) String() string  { return "optional<" + t.Item.String() + ">" }
func (t List) String() string      { return "list<" + t.Item.String() + ">" }
func (t Set) String() string       { return "set<" + t.Item.String() + ">" }
func (t Map) String() string       { return "map<" + t.Key.String() + ", " + t.Value.String() + ">" }
func (t Reference) String() string { return t.Name.String() }
func (t External) String() string  { return "external<" + t.Name.String() + ">" }

// Ref returns a Reference to pkg.name.
func Ref(pkg, name string) Reference {
	return Reference{Name: TypeName{Package: pkg, Name: name}}
}

// TypeVisitor dispatches on the concrete Type.
type TypeVisitor[T any] interface {
	VisitPrimitive(Primitive) (T, error)
	VisitOptional(Optional) (T, error)
	VisitList(List) (T, error)
	VisitSet(Set) (T, error)
	VisitMap(Map) (T, error)
	VisitReference(Reference) (T, error)
	VisitExternal(External) (T, error)
}

// Visit calls the visitor method matching t.
func Visit[T any](t Type, v TypeVisitor[T]) (T, error) {
	switch t := t.(type) {
	case Primitive:
		return v.VisitPrimitive(t)
	case Optional:
		return v.VisitOptional(t)
	case List:
		return v.VisitList(t)
	case Set:
		return v.VisitSet(t)
	case Map:
		return v.VisitMap(t)
	case Reference:
		return v.VisitReference(t)
	case External:
		return v.VisitExternal(t)
	default:
		var zero T
		return zero, fmt.Errorf("schema: unknown type %T", t)
	}
}

// IsCollection reports whether t is a list, set or map.
func IsCollection(t Type) bool {
	switch t.(type) {
	case List, Set, Map:
		return true
	}
	return false
}

// IsOptional reports whether t is an optional.
func IsOptional(t Type) bool {
	_, ok := t.(Optional)
	return ok
}

// References returns the names referenced anywhere inside t, in the order
// they appear.
func References(t Type) []TypeName {
	var out []TypeName
	var walk func(Type)
	walk = func(t Type) {
		switch t := t.(type) {
		case Optional:
			walk(t.Item)
		case List:
			walk(t.Item)
		case Set:
			walk(t.Item)
		case Map:
			walk(t.Key)
			walk(t.Value)
		case Reference:
			out = append(out, t.Name)
		case External:
			if t.Fallback != nil {
				walk(t.Fallback)
			}
		}
	}
	walk(t)
	return out
}
