package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/conjen/schema"
)

func TestLoadYAML(t *testing.T) {
	defs, err := Load("testdata/product.yml")
	require.NoError(t, err)
	require.Len(t, defs, 5)

	color, ok := defs[0].(*schema.EnumDefinition)
	require.True(t, ok)
	assert.Equal(t, schema.TypeName{Package: "product", Name: "Color"}, color.Name)
	assert.Equal(t, "Color of a widget.", color.Docs)
	require.Len(t, color.Values, 3)
	assert.Equal(t, "BLUE", color.Values[2].Value)
	assert.Equal(t, "Use GREEN.", color.Values[2].Deprecated)

	widget, ok := defs[1].(*schema.ObjectDefinition)
	require.True(t, ok)
	var names []string
	for _, f := range widget.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names, "field order follows the document")
	assert.Equal(t, schema.Optional{Item: schema.Primitive{Kind: schema.String}}, widget.Fields[0].Type)
	assert.Equal(t, schema.SafetySafe, widget.Fields[2].Safety)
	assert.Equal(t, "Whether the widget is active.", widget.Fields[2].Docs)

	alias, ok := defs[2].(*schema.AliasDefinition)
	require.True(t, ok)
	assert.Equal(t, schema.List{Item: schema.Primitive{Kind: schema.String}}, alias.Alias)

	ledger, ok := defs[3].(*schema.ObjectDefinition)
	require.True(t, ok)
	assert.Equal(t, "accounting", ledger.Name.Package)
	assert.Equal(t, schema.External{
		Name:     schema.TypeName{Package: "java.lang", Name: "Long"},
		Fallback: schema.Primitive{Kind: schema.String},
	}, ledger.Fields[0].Type)
	assert.Equal(t, schema.Map{
		Key:   schema.Primitive{Kind: schema.String},
		Value: schema.Ref("product", "Widget"),
	}, ledger.Fields[1].Type)

	shape, ok := defs[4].(*schema.UnionDefinition)
	require.True(t, ok)
	assert.Equal(t, schema.Ref("product", "Widget"), shape.Members[1].Type)
}

func TestLoadIRMatchesYAML(t *testing.T) {
	fromYAML, err := Load("testdata/product.yml")
	require.NoError(t, err)
	fromIR, err := Load("testdata/product.json")
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromIR)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"product.yml", "product.json", "notes.txt"} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	defs, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, defs, 10, "both definition files are read and notes.txt is ignored")

	_, err = Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), ".json, .yml or .yaml")
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("testdata/missing.yml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := Load("testdata/notes.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown file format")
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("ambiguous definition", func(t *testing.T) {
		_, err := Load("testdata/invalid.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "definition Confused")
		assert.Contains(t, err.Error(), "expected exactly one of")
	})
}

func TestParseIRErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"malformed", `{"types": [`, "decode IR"},
		{"unknown definition", `{"types": [{"type": "service"}]}`, `unknown definition type "service"`},
		{"object without body", `{"types": [{"type": "object"}]}`, `without "object"`},
		{"unknown primitive", `{"types": [{"type": "alias", "alias": {"typeName": {"name": "X"}, "alias": {"type": "primitive", "primitive": "DECIMAL"}}}]}`, `unknown primitive "DECIMAL"`},
		{"missing field type", `{"types": [{"type": "object", "object": {"typeName": {"name": "X"}, "fields": [{"fieldName": "a"}]}}]}`, "field a: missing type"},
		{"list without item", `{"types": [{"type": "alias", "alias": {"typeName": {"name": "X"}, "alias": {"type": "list"}}}]}`, `list type without "list"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIR([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseYAMLEdgeCases(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		defs, err := ParseYAML([]byte("types: {}\n"))
		require.NoError(t, err)
		assert.Empty(t, defs)
	})

	t.Run("object without fields", func(t *testing.T) {
		defs, err := ParseYAML([]byte("types:\n  definitions:\n    objects:\n      Empty:\n        fields:\n"))
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Empty(t, defs[0].(*schema.ObjectDefinition).Fields)
	})

	t.Run("unknown names default to the default package", func(t *testing.T) {
		doc := "types:\n  definitions:\n    default-package: shop\n    objects:\n      Cart:\n        fields:\n          items: list<Item>\n"
		defs, err := ParseYAML([]byte(doc))
		require.NoError(t, err)
		cart := defs[0].(*schema.ObjectDefinition)
		assert.Equal(t, schema.List{Item: schema.Ref("shop", "Item")}, cart.Fields[0].Type)
	})

	t.Run("bad type reference reports the line", func(t *testing.T) {
		doc := "types:\n  definitions:\n    objects:\n      Cart:\n        fields:\n          items: list<Item\n"
		_, err := ParseYAML([]byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 6: field items")
	})
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatIR, FormatOf("api.JSON"))
	assert.Equal(t, FormatYAML, FormatOf("api.yml"))
	assert.Equal(t, FormatYAML, FormatOf("dir/api.yaml"))
	assert.Equal(t, FormatUnknown, FormatOf("api.conjure"))
	assert.Equal(t, "ir", FormatIR.String())

	_, err := Parse(nil, FormatUnknown)
	assert.Error(t, err)
}
