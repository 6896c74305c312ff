package schema

import "strings"

// Safety classifies whether a value may be logged.
type Safety uint8

// Safety levels.
const (
	SafetyUnspecified Safety = iota
	SafetySafe
	SafetyUnsafe
)

// String returns the upper-case IDL spelling.
func (s Safety) String() string {
	switch s {
	case SafetySafe:
		return "SAFE"
	case SafetyUnsafe:
		return "UNSAFE"
	default:
		return ""
	}
}

// ParseSafety parses "safe" or "unsafe" case-insensitively. Any other input
// yields SafetyUnspecified.
func ParseSafety(s string) Safety {
	switch strings.ToLower(s) {
	case "safe":
		return SafetySafe
	case "unsafe":
		return SafetyUnsafe
	default:
		return SafetyUnspecified
	}
}

// DefinitionKind discriminates TypeDefinition implementations.
type DefinitionKind uint8

// Definition kinds.
const (
	KindObject DefinitionKind = iota + 1
	KindEnum
	KindAlias
	KindUnion
)

// String returns the lower-case IDL spelling.
func (k DefinitionKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindEnum:
		return "enum"
	case KindAlias:
		return "alias"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// TypeDefinition is a named entry of a schema.
type TypeDefinition interface {
	TypeName() TypeName
	Kind() DefinitionKind
	Documentation() string
}

// FieldDefinition is a member of an object or a union. Deprecated holds the
// deprecation notice; empty means not deprecated.
type FieldDefinition struct {
	Name       string
	Type       Type
	Docs       string
	Deprecated string
	Safety     Safety
}

// ObjectDefinition is a record type. Field order drives declaration and
// constructor order.
type ObjectDefinition struct {
	Name   TypeName
	Fields []FieldDefinition
	Docs   string
}

// EnumValueDefinition is one value of an enum. Value is the upper-snake wire
// token.
type EnumValueDefinition struct {
	Value      string
	Docs       string
	Deprecated string
}

// EnumDefinition is a closed set of values.
type EnumDefinition struct {
	Name   TypeName
	Values []EnumValueDefinition
	Docs   string
}

// AliasDefinition gives a new name to Alias.
type AliasDefinition struct {
	Name   TypeName
	Alias  Type
	Docs   string
	Safety Safety
}

// UnionDefinition is a tagged union of its members.
type UnionDefinition struct {
	Name    TypeName
	Members []FieldDefinition
	Docs    string
}

func (d *ObjectDefinition) TypeName() TypeName    { return d.Name }
func (d *ObjectDefinition) Kind() DefinitionKind  { return KindObject }
func (d *ObjectDefinition) Documentation() string { return d.Docs }

func (d *EnumDefinition) TypeName() TypeName    { return d.Name }
func (d *EnumDefinition) Kind() DefinitionKind  { return KindEnum }
func (d *EnumDefinition) Documentation() string { return d.Docs }

func (d *AliasDefinition) TypeName() TypeName    { return d.Name }
func (d *AliasDefinition) Kind() DefinitionKind  { return KindAlias }
func (d *AliasDefinition) Documentation() string { return d.Docs }

func (d *UnionDefinition) TypeName() TypeName    { return d.Name }
func (d *UnionDefinition) Kind() DefinitionKind  { return KindUnion }
func (d *UnionDefinition) Documentation() string { return d.Docs }

// Field returns the field with the given name.
func (d *ObjectDefinition) Field(name string) (FieldDefinition, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDefinition{}, false
}
