package load

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/syssam/conjen/schema"
)

// irDocument is the JSON intermediate representation. Only type
// definitions are read; services and errors are ignored.
type irDocument struct {
	Version int                `json:"version"`
	Types   []irTypeDefinition `json:"types"`
}

type irTypeDefinition struct {
	Type   string    `json:"type"`
	Object *irObject `json:"object,omitempty"`
	Enum   *irEnum   `json:"enum,omitempty"`
	Alias  *irAlias  `json:"alias,omitempty"`
	Union  *irUnion  `json:"union,omitempty"`
}

type irTypeName struct {
	Name    string `json:"name"`
	Package string `json:"package"`
}

func (n irTypeName) typeName() schema.TypeName {
	return schema.TypeName{Package: n.Package, Name: n.Name}
}

type irField struct {
	FieldName  string  `json:"fieldName"`
	Type       *irType `json:"type"`
	Docs       string  `json:"docs,omitempty"`
	Deprecated string  `json:"deprecated,omitempty"`
	Safety     string  `json:"safety,omitempty"`
}

type irObject struct {
	TypeName irTypeName `json:"typeName"`
	Fields   []irField  `json:"fields"`
	Docs     string     `json:"docs,omitempty"`
}

type irEnumValue struct {
	Value      string `json:"value"`
	Docs       string `json:"docs,omitempty"`
	Deprecated string `json:"deprecated,omitempty"`
}

type irEnum struct {
	TypeName irTypeName    `json:"typeName"`
	Values   []irEnumValue `json:"values"`
	Docs     string        `json:"docs,omitempty"`
}

type irAlias struct {
	TypeName irTypeName `json:"typeName"`
	Alias    *irType    `json:"alias"`
	Docs     string     `json:"docs,omitempty"`
	Safety   string     `json:"safety,omitempty"`
}

type irUnion struct {
	TypeName irTypeName `json:"typeName"`
	Union    []irField  `json:"union"`
	Docs     string     `json:"docs,omitempty"`
}

type irType struct {
	Type      string      `json:"type"`
	Primitive string      `json:"primitive,omitempty"`
	Optional  *irItem     `json:"optional,omitempty"`
	List      *irItem     `json:"list,omitempty"`
	Set       *irItem     `json:"set,omitempty"`
	Map       *irMap      `json:"map,omitempty"`
	Reference *irTypeName `json:"reference,omitempty"`
	External  *irExternal `json:"external,omitempty"`
}

type irItem struct {
	ItemType *irType `json:"itemType"`
}

type irMap struct {
	KeyType   *irType `json:"keyType"`
	ValueType *irType `json:"valueType"`
}

type irExternal struct {
	ExternalReference irTypeName `json:"externalReference"`
	Fallback          *irType    `json:"fallback"`
}

// ParseIR decodes a JSON IR document.
func ParseIR(data []byte) ([]schema.TypeDefinition, error) {
	var doc irDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode IR")
	}
	defs := make([]schema.TypeDefinition, 0, len(doc.Types))
	for i, td := range doc.Types {
		def, err := td.definition()
		if err != nil {
			return nil, errors.Wrapf(err, "types[%d]", i)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (td irTypeDefinition) definition() (schema.TypeDefinition, error) {
	switch td.Type {
	case "object":
		if td.Object == nil {
			return nil, errors.New(`object definition without "object"`)
		}
		fields, err := irFields(td.Object.Fields)
		if err != nil {
			return nil, errors.Wrapf(err, "object %s", td.Object.TypeName.Name)
		}
		return &schema.ObjectDefinition{Name: td.Object.TypeName.typeName(), Fields: fields, Docs: td.Object.Docs}, nil
	case "enum":
		if td.Enum == nil {
			return nil, errors.New(`enum definition without "enum"`)
		}
		values := make([]schema.EnumValueDefinition, len(td.Enum.Values))
		for i, v := range td.Enum.Values {
			values[i] = schema.EnumValueDefinition{Value: v.Value, Docs: v.Docs, Deprecated: v.Deprecated}
		}
		return &schema.EnumDefinition{Name: td.Enum.TypeName.typeName(), Values: values, Docs: td.Enum.Docs}, nil
	case "alias":
		if td.Alias == nil {
			return nil, errors.New(`alias definition without "alias"`)
		}
		t, err := td.Alias.Alias.schemaType()
		if err != nil {
			return nil, errors.Wrapf(err, "alias %s", td.Alias.TypeName.Name)
		}
		return &schema.AliasDefinition{
			Name:   td.Alias.TypeName.typeName(),
			Alias:  t,
			Docs:   td.Alias.Docs,
			Safety: schema.ParseSafety(td.Alias.Safety),
		}, nil
	case "union":
		if td.Union == nil {
			return nil, errors.New(`union definition without "union"`)
		}
		members, err := irFields(td.Union.Union)
		if err != nil {
			return nil, errors.Wrapf(err, "union %s", td.Union.TypeName.Name)
		}
		return &schema.UnionDefinition{Name: td.Union.TypeName.typeName(), Members: members, Docs: td.Union.Docs}, nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown definition type %q", td.Type),
			"definitions are one of object, enum, alias or union",
		)
	}
}

func irFields(in []irField) ([]schema.FieldDefinition, error) {
	out := make([]schema.FieldDefinition, len(in))
	for i, f := range in {
		t, err := f.Type.schemaType()
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.FieldName)
		}
		out[i] = schema.FieldDefinition{
			Name:       f.FieldName,
			Type:       t,
			Docs:       f.Docs,
			Deprecated: f.Deprecated,
			Safety:     schema.ParseSafety(f.Safety),
		}
	}
	return out, nil
}

func (t *irType) schemaType() (schema.Type, error) {
	if t == nil {
		return nil, errors.New("missing type")
	}
	item := func(it *irItem) (schema.Type, error) {
		if it == nil {
			return nil, errors.Newf("%s type without %q", t.Type, t.Type)
		}
		return it.ItemType.schemaType()
	}
	switch t.Type {
	case "primitive":
		kind, ok := schema.ParsePrimitiveKind(t.Primitive)
		if !ok {
			return nil, errors.Newf("unknown primitive %q", t.Primitive)
		}
		return schema.Primitive{Kind: kind}, nil
	case "optional":
		it, err := item(t.Optional)
		if err != nil {
			return nil, err
		}
		return schema.Optional{Item: it}, nil
	case "list":
		it, err := item(t.List)
		if err != nil {
			return nil, err
		}
		return schema.List{Item: it}, nil
	case "set":
		it, err := item(t.Set)
		if err != nil {
			return nil, err
		}
		return schema.Set{Item: it}, nil
	case "map":
		if t.Map == nil {
			return nil, errors.New(`map type without "map"`)
		}
		key, err := t.Map.KeyType.schemaType()
		if err != nil {
			return nil, errors.Wrap(err, "map key")
		}
		value, err := t.Map.ValueType.schemaType()
		if err != nil {
			return nil, errors.Wrap(err, "map value")
		}
		return schema.Map{Key: key, Value: value}, nil
	case "reference":
		if t.Reference == nil {
			return nil, errors.New(`reference type without "reference"`)
		}
		return schema.Reference{Name: t.Reference.typeName()}, nil
	case "external":
		if t.External == nil {
			return nil, errors.New(`external type without "external"`)
		}
		ext := schema.External{Name: t.External.ExternalReference.typeName()}
		if t.External.Fallback != nil {
			fallback, err := t.External.Fallback.schemaType()
			if err != nil {
				return nil, errors.Wrap(err, "external fallback")
			}
			ext.Fallback = fallback
		}
		return ext, nil
	default:
		return nil, errors.Newf("unknown type kind %q", t.Type)
	}
}
