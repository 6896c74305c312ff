// Package schema is the IDL type model consumed by the code generator.
//
// A schema is a set of named definitions:
//
//   - [ObjectDefinition]: an ordered list of typed fields
//   - [EnumDefinition]: an ordered, closed set of upper-snake values
//   - [AliasDefinition]: a new name for another type
//   - [UnionDefinition]: named members, of which exactly one is set
//
// Field types are built from the [Type] algebra:
//
//	schema.Optional{Item: schema.Primitive{Kind: schema.String}}
//	schema.List{Item: schema.Primitive{Kind: schema.Integer}}
//	schema.Map{Key: schema.Primitive{Kind: schema.String}, Value: schema.Ref("product", "Widget")}
//
// Every Type renders back to its IDL spelling through String, e.g.
// "map<string, list<integer>>".
//
// The package does no validation beyond parsing primitive names. Name
// uniqueness and reference resolution belong to the generator's registry.
package schema
