package load

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/syssam/conjen/schema"
)

// yamlDocument is the hand-written definition format:
//
//	types:
//	  imports:
//	    Long:
//	      base-type: string
//	      external:
//	        java: java.lang.Long
//	  definitions:
//	    default-package: com.acme.product
//	    objects:
//	      Widget:
//	        fields:
//	          a: optional<string>
//	          b:
//	            type: list<integer>
//	            docs: Bar values.
//	      Color:
//	        values: [RED, GREEN]
//	      StringList:
//	        alias: list<string>
//
// Definition and field order follow the document.
type yamlDocument struct {
	Types struct {
		Imports     map[string]yamlImport `yaml:"imports"`
		Definitions struct {
			DefaultPackage string    `yaml:"default-package"`
			Objects        yaml.Node `yaml:"objects"`
		} `yaml:"definitions"`
	} `yaml:"types"`
}

type yamlImport struct {
	BaseType string            `yaml:"base-type"`
	External map[string]string `yaml:"external"`
}

type yamlDefinition struct {
	Package string          `yaml:"package"`
	Docs    string          `yaml:"docs"`
	Fields  yaml.Node       `yaml:"fields"`
	Values  []yamlEnumValue `yaml:"values"`
	Alias   string          `yaml:"alias"`
	Union   yaml.Node       `yaml:"union"`
	Safety  string          `yaml:"safety"`
}

// yamlField is either a bare type reference or a mapping.
type yamlField struct {
	Type       string `yaml:"type"`
	Docs       string `yaml:"docs"`
	Deprecated string `yaml:"deprecated"`
	Safety     string `yaml:"safety"`
}

func (f *yamlField) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		f.Type = n.Value
		return nil
	}
	type plain yamlField
	return n.Decode((*plain)(f))
}

// yamlEnumValue is either a bare value or a mapping.
type yamlEnumValue struct {
	Value      string `yaml:"value"`
	Docs       string `yaml:"docs"`
	Deprecated string `yaml:"deprecated"`
}

func (v *yamlEnumValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		v.Value = n.Value
		return nil
	}
	type plain yamlEnumValue
	return n.Decode((*plain)(v))
}

// ParseYAML decodes a YAML definition document.
func ParseYAML(data []byte) ([]schema.TypeDefinition, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode YAML")
	}
	objects := &doc.Types.Definitions.Objects
	if objects.Kind == 0 {
		return nil, nil
	}
	if objects.Kind != yaml.MappingNode {
		return nil, errors.Newf("line %d: objects must be a mapping", objects.Line)
	}

	defaultPkg := doc.Types.Definitions.DefaultPackage
	type entry struct {
		name schema.TypeName
		line int
		def  yamlDefinition
	}
	entries := make([]entry, 0, len(objects.Content)/2)
	local := make(map[string]string, len(objects.Content)/2)
	for i := 0; i+1 < len(objects.Content); i += 2 {
		key, value := objects.Content[i], objects.Content[i+1]
		var def yamlDefinition
		if err := value.Decode(&def); err != nil {
			return nil, errors.Wrapf(err, "definition %s", key.Value)
		}
		pkg := def.Package
		if pkg == "" {
			pkg = defaultPkg
		}
		local[key.Value] = pkg
		entries = append(entries, entry{name: schema.TypeName{Package: pkg, Name: key.Value}, line: key.Line, def: def})
	}

	resolve := func(name string) schema.Type {
		if imp, ok := doc.Types.Imports[name]; ok {
			return imp.external(name)
		}
		if strings.Contains(name, ".") {
			return schema.Reference{Name: splitQualified(name)}
		}
		if pkg, ok := local[name]; ok {
			return schema.Ref(pkg, name)
		}
		return schema.Ref(defaultPkg, name)
	}

	defs := make([]schema.TypeDefinition, 0, len(entries))
	for _, e := range entries {
		def, err := e.def.definition(e.name, resolve)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: definition %s", e.line, e.name.Name)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (imp yamlImport) external(name string) schema.Type {
	ext := schema.External{Name: schema.TypeName{Name: name}}
	if len(imp.External) > 0 {
		langs := make([]string, 0, len(imp.External))
		for lang := range imp.External {
			langs = append(langs, lang)
		}
		slices.Sort(langs)
		ext.Name = splitQualified(imp.External[langs[0]])
	}
	if imp.BaseType != "" {
		if kind, ok := schema.ParsePrimitiveKind(imp.BaseType); ok {
			ext.Fallback = schema.Primitive{Kind: kind}
		}
	}
	return ext
}

func (d yamlDefinition) definition(name schema.TypeName, resolve Resolver) (schema.TypeDefinition, error) {
	var kinds []string
	if d.Fields.Kind != 0 {
		kinds = append(kinds, "fields")
	}
	if d.Values != nil {
		kinds = append(kinds, "values")
	}
	if d.Alias != "" {
		kinds = append(kinds, "alias")
	}
	if d.Union.Kind != 0 {
		kinds = append(kinds, "union")
	}
	if len(kinds) != 1 {
		return nil, errors.WithHint(
			errors.Newf("expected exactly one of fields, values, alias or union, got %v", kinds),
			"objects declare fields, enums declare values, aliases declare alias and unions declare union",
		)
	}

	switch kinds[0] {
	case "fields":
		fields, err := yamlFields(&d.Fields, resolve)
		if err != nil {
			return nil, err
		}
		return &schema.ObjectDefinition{Name: name, Fields: fields, Docs: d.Docs}, nil
	case "values":
		values := make([]schema.EnumValueDefinition, len(d.Values))
		for i, v := range d.Values {
			values[i] = schema.EnumValueDefinition{Value: v.Value, Docs: v.Docs, Deprecated: v.Deprecated}
		}
		return &schema.EnumDefinition{Name: name, Values: values, Docs: d.Docs}, nil
	case "alias":
		t, err := ParseTypeRef(d.Alias, resolve)
		if err != nil {
			return nil, err
		}
		return &schema.AliasDefinition{Name: name, Alias: t, Docs: d.Docs, Safety: schema.ParseSafety(d.Safety)}, nil
	default:
		members, err := yamlFields(&d.Union, resolve)
		if err != nil {
			return nil, err
		}
		return &schema.UnionDefinition{Name: name, Members: members, Docs: d.Docs}, nil
	}
}

func yamlFields(n *yaml.Node, resolve Resolver) ([]schema.FieldDefinition, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errors.Newf("line %d: fields must be a mapping", n.Line)
	}
	fields := make([]schema.FieldDefinition, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		var f yamlField
		if err := value.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "field %s", key.Value)
		}
		t, err := ParseTypeRef(f.Type, resolve)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: field %s", key.Line, key.Value)
		}
		fields = append(fields, schema.FieldDefinition{
			Name:       key.Value,
			Type:       t,
			Docs:       f.Docs,
			Deprecated: f.Deprecated,
			Safety:     schema.ParseSafety(f.Safety),
		})
	}
	return fields, nil
}
