package gen

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/conjen/schema"
)

func render(c jen.Code) string {
	if c == nil {
		return ""
	}
	return jen.Add(c).GoString()
}

func newTestMapper(t *testing.T, cfg *Config, defs ...schema.TypeDefinition) *Mapper {
	t.Helper()
	if cfg == nil {
		cfg = &Config{Package: "github.com/acme/api"}
	}
	reg, err := NewRegistry(defs...)
	require.NoError(t, err)
	return NewMapper(cfg, reg)
}

func TestMapperPrimitives(t *testing.T) {
	tests := []struct {
		kind       schema.PrimitiveKind
		category   Category
		goType     string
		nillable   bool
		comparable bool
	}{
		{schema.String, CategoryValue, "string", false, true},
		{schema.Integer, CategoryRequired, "int", false, true},
		{schema.Double, CategoryRequired, "float64", false, true},
		{schema.Boolean, CategoryRequired, "bool", false, true},
		{schema.SafeLong, CategoryValue, "conjen.SafeLong", false, true},
		{schema.Binary, CategoryBinary, "[]byte", true, false},
		{schema.DateTime, CategoryValue, "time.Time", false, false},
		{schema.UUID, CategoryValue, "uuid.UUID", false, true},
		{schema.RID, CategoryValue, "conjen.RID", false, true},
		{schema.BearerToken, CategoryValue, "conjen.BearerToken", false, true},
		{schema.Any, CategoryAny, "any", true, false},
	}
	m := newTestMapper(t, nil)
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			rep, err := m.Represent(schema.Primitive{Kind: tt.kind})
			require.NoError(t, err)
			assert.Equal(t, tt.category, rep.Category)
			assert.Contains(t, render(rep.Type), tt.goType)
			assert.Equal(t, tt.nillable, rep.Nillable)
			assert.Equal(t, tt.comparable, rep.Comparable)
			assert.False(t, rep.Defaultable())
			assert.Nil(t, rep.Default())
		})
	}
}

func TestMapperRequiredPrimitivesOnly(t *testing.T) {
	m := newTestMapper(t, nil, &schema.AliasDefinition{Name: name("Count"), Alias: tInteger})
	for _, typ := range []schema.Type{tInteger, tBoolean, schema.Primitive{Kind: schema.Double}, schema.Ref("product", "Count")} {
		rep, err := m.Represent(typ)
		require.NoError(t, err)
		assert.True(t, rep.Tracked(), typ.String())
	}
	for _, typ := range []schema.Type{
		tString,
		schema.Primitive{Kind: schema.SafeLong},
		schema.Optional{Item: tInteger},
		schema.List{Item: tBoolean},
	} {
		rep, err := m.Represent(typ)
		require.NoError(t, err)
		assert.False(t, rep.Tracked(), typ.String())
	}
}

func TestMapperImmutableBytes(t *testing.T) {
	m := newTestMapper(t, &Config{Package: "p", UseImmutableBytes: true})
	rep, err := m.Represent(schema.Primitive{Kind: schema.Binary})
	require.NoError(t, err)
	assert.Equal(t, CategoryValue, rep.Category)
	assert.Contains(t, render(rep.Type), "conjen.Bytes")
	assert.False(t, rep.Nillable)
}

func TestMapperContainers(t *testing.T) {
	m := newTestMapper(t, nil, &schema.ObjectDefinition{Name: name("Widget")})

	t.Run("optional", func(t *testing.T) {
		rep, err := m.Represent(schema.Optional{Item: tString})
		require.NoError(t, err)
		assert.Equal(t, CategoryOptional, rep.Category)
		assert.Contains(t, render(rep.Type), "conjen.Optional[string]")
		assert.Contains(t, render(rep.Default()), "conjen.Empty[string]()")
		assert.True(t, rep.Defaultable())
		assert.False(t, rep.Nillable)
	})

	t.Run("list", func(t *testing.T) {
		rep, err := m.Represent(schema.List{Item: tInteger})
		require.NoError(t, err)
		assert.Equal(t, CategoryList, rep.Category)
		assert.Contains(t, render(rep.Type), "[]int")
		assert.Contains(t, render(rep.Default()), "[]int{}")
		assert.True(t, rep.Nillable)
		assert.False(t, rep.ElementNillable())
	})

	t.Run("set of objects", func(t *testing.T) {
		rep, err := m.Represent(schema.Set{Item: schema.Ref("product", "Widget")})
		require.NoError(t, err)
		assert.Equal(t, CategorySet, rep.Category)
		assert.True(t, rep.ElementNillable())
		assert.False(t, rep.Item.Comparable)
		assert.Contains(t, render(rep.Item.EqualFunc()), "conjen.DeepEqual[*product.Widget]")
	})

	t.Run("set of datetimes", func(t *testing.T) {
		rep, err := m.Represent(schema.Set{Item: schema.Primitive{Kind: schema.DateTime}})
		require.NoError(t, err)
		assert.Contains(t, render(rep.Item.EqualFunc()), "conjen.TimeEqual")
	})

	t.Run("map", func(t *testing.T) {
		rep, err := m.Represent(schema.Map{Key: tString, Value: schema.Ref("product", "Widget")})
		require.NoError(t, err)
		assert.Equal(t, CategoryMap, rep.Category)
		assert.Contains(t, render(rep.Type), "map[string]*product.Widget")
		assert.True(t, rep.ElementNillable())
	})

	t.Run("map with non-comparable key", func(t *testing.T) {
		_, err := m.Represent(schema.Map{Key: schema.List{Item: tString}, Value: tString})
		assert.True(t, IsSchemaError(err))
	})
}

func TestMapperReferences(t *testing.T) {
	m := newTestMapper(t, nil,
		&schema.ObjectDefinition{Name: name("Widget")},
		&schema.UnionDefinition{Name: name("Shape")},
		&schema.EnumDefinition{Name: name("Color"), Values: []schema.EnumValueDefinition{{Value: "RED"}}},
		&schema.AliasDefinition{Name: name("Names"), Alias: schema.List{Item: tString}},
		&schema.AliasDefinition{Name: name("MaybeName"), Alias: schema.Optional{Item: tString}},
		&schema.AliasDefinition{Name: name("WidgetAlias"), Alias: schema.Ref("product", "Widget")},
		&schema.AliasDefinition{Name: name("When"), Alias: schema.Primitive{Kind: schema.DateTime}},
	)

	t.Run("object", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "Widget"))
		require.NoError(t, err)
		assert.Equal(t, CategoryReference, rep.Category)
		assert.Contains(t, render(rep.Type), "*product.Widget")
		assert.True(t, rep.Nillable)
	})

	t.Run("union", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "Shape"))
		require.NoError(t, err)
		assert.Equal(t, CategoryReference, rep.Category)
	})

	t.Run("enum", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "Color"))
		require.NoError(t, err)
		assert.Equal(t, CategoryValue, rep.Category)
		assert.True(t, rep.Enum)
		assert.True(t, rep.Comparable)
	})

	t.Run("alias of list", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "Names"))
		require.NoError(t, err)
		assert.Equal(t, CategoryList, rep.Category)
		assert.True(t, rep.Alias)
		assert.True(t, rep.Builtin)
		assert.Contains(t, render(rep.Type), "product.Names")
		assert.Contains(t, render(rep.Default()), "product.Names{}")
	})

	t.Run("alias of optional", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "MaybeName"))
		require.NoError(t, err)
		assert.Equal(t, CategoryOptional, rep.Category)
		assert.True(t, rep.Defaultable())
		assert.Contains(t, render(rep.Default()), "conjen.Empty[string]()")
	})

	t.Run("alias of object", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "WidgetAlias"))
		require.NoError(t, err)
		assert.Equal(t, CategoryReference, rep.Category)
		assert.Contains(t, render(rep.Type), "*product.WidgetAlias")
	})

	t.Run("alias of datetime keeps time equality", func(t *testing.T) {
		rep, err := m.Represent(schema.Ref("product", "When"))
		require.NoError(t, err)
		assert.False(t, rep.Builtin)
		assert.Contains(t, render(rep.EqualFunc()), "conjen.TimeEqual")
	})

	t.Run("unresolved", func(t *testing.T) {
		_, err := m.Represent(schema.Optional{Item: schema.Ref("product", "Missing")})
		require.Error(t, err)
		assert.True(t, IsUnresolvedReference(err))
	})

	t.Run("unresolved attributed to field", func(t *testing.T) {
		_, err := m.RepresentField(name("Widget"), schema.FieldDefinition{Name: "owner", Type: schema.Ref("product", "Missing")})
		require.Error(t, err)
		var refErr *UnresolvedTypeReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "product.Widget", refErr.Type)
		assert.Equal(t, "owner", refErr.Field)
		assert.Equal(t, "product.Missing", refErr.Reference)
	})
}

func TestMapperAliasCycle(t *testing.T) {
	m := newTestMapper(t, nil,
		&schema.AliasDefinition{Name: name("Tree"), Alias: schema.List{Item: schema.Ref("product", "Tree")}},
		&schema.AliasDefinition{Name: name("Forest"), Alias: schema.Optional{Item: schema.Ref("product", "Tree")}},
	)
	tests := []struct {
		name string
		typ  schema.Type
	}{
		{"self through list", schema.Ref("product", "Tree")},
		{"alias reaching a cycle", schema.Ref("product", "Forest")},
		{"container of a cycle", schema.Map{Key: tString, Value: schema.Ref("product", "Tree")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Represent(tt.typ)
			require.Error(t, err)
			assert.True(t, IsSchemaError(err))
			assert.Contains(t, err.Error(), "product.Tree")
		})
	}

	t.Run("attributed to field", func(t *testing.T) {
		_, err := m.RepresentField(name("Widget"), schema.FieldDefinition{Name: "tree", Type: schema.Ref("product", "Tree")})
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "product.Widget", schemaErr.Type)
		assert.Equal(t, "tree", schemaErr.Field)
		assert.Equal(t, "alias cycle", schemaErr.Message)
	})
}

func TestMapperExternal(t *testing.T) {
	ext := schema.External{Name: schema.TypeName{Package: "java.lang", Name: "Long"}, Fallback: tString}

	t.Run("fallback", func(t *testing.T) {
		m := newTestMapper(t, nil)
		rep, err := m.Represent(ext)
		require.NoError(t, err)
		assert.Contains(t, render(rep.Type), "string")
	})

	t.Run("configured", func(t *testing.T) {
		cfg := &Config{Package: "p"}
		require.NoError(t, WithExternalType("java.lang.Long", "int64")(cfg))
		m := newTestMapper(t, cfg)
		rep, err := m.Represent(ext)
		require.NoError(t, err)
		assert.Equal(t, "int64", render(rep.Type))
	})

	t.Run("no fallback", func(t *testing.T) {
		m := newTestMapper(t, nil)
		_, err := m.Represent(schema.External{Name: ext.Name})
		assert.True(t, IsSchemaError(err))
	})
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "set", CategorySet.String())
	assert.Equal(t, "unknown", Category(0).String())
}
