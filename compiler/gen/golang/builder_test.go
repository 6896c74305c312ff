package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/schema"
)

func TestGenBuilder(t *testing.T) {
	defs := fixtures()
	f, err := NewTarget().GenObject(newHelper(t, defs), lookup[*schema.ObjectDefinition](t, defs, "Widget"))
	require.NoError(t, err)
	out := source(t, f)

	t.Run("type and constructor", func(t *testing.T) {
		assert.Contains(t, out, "type WidgetBuilder struct {")
		assert.Contains(t, out, "state        conjen.BuilderState")
		assert.Contains(t, out, "cInitialized bool")
		assert.Contains(t, out, "func NewWidgetBuilder() *WidgetBuilder {")
		assert.Contains(t, out, "a: conjen.Empty[string](),")
		assert.Contains(t, out, "b: []int{},")
	})

	t.Run("reuse check", func(t *testing.T) {
		assert.Contains(t, out, "func (b *WidgetBuilder) check(method string) bool {")
		assert.Contains(t, out, `if err := b.state.Check("Widget", method); err != nil {`)
	})

	t.Run("setters", func(t *testing.T) {
		assert.Contains(t, out, "func (b *WidgetBuilder) SetA(v conjen.Optional[string]) *WidgetBuilder {\n\tif !b.check(\"SetA\") {\n\t\treturn b\n\t}")
		assert.Contains(t, out, "func (b *WidgetBuilder) SetAValue(v string) *WidgetBuilder {")
		assert.Contains(t, out, "b.a = conjen.Some(v)")
		assert.Contains(t, out, "b.b = conjen.CopySlice(v)")
		assert.Contains(t, out, "b.c = v\n\tb.cInitialized = true")
	})

	t.Run("list adders", func(t *testing.T) {
		assert.Contains(t, out, "func (b *WidgetBuilder) AddAllB(items ...int) *WidgetBuilder {")
		assert.Contains(t, out, "b.b = append(b.b, items...)")
		assert.Contains(t, out, "func (b *WidgetBuilder) AddB(item int) *WidgetBuilder {")
		assert.Contains(t, out, "b.b = append(b.b, item)")
	})

	t.Run("copy from", func(t *testing.T) {
		assert.Contains(t, out, "func (b *WidgetBuilder) CopyFrom(other *Widget) *WidgetBuilder {")
		assert.Contains(t, out, `b.err = conjen.NewNullArgumentError("Widget", "other")`)
		assert.Contains(t, out, "b.SetA(other.a)\n\tb.SetB(other.b)\n\tb.SetC(other.c)")
	})

	t.Run("build", func(t *testing.T) {
		assert.Contains(t, out, "func (b *WidgetBuilder) Build() (*Widget, error) {")
		assert.Contains(t, out, `if err := b.state.Check("Widget", "Build"); err != nil {`)
		assert.Contains(t, out, "if b.err != nil {\n\t\treturn nil, b.err\n\t}")
		assert.Contains(t, out, `missing = conjen.AddFieldIfMissing(missing, b.cInitialized, "c")`)
		assert.Contains(t, out, `return nil, conjen.NewMissingRequiredFieldError("Widget", missing)`)
		assert.Contains(t, out, "b.state.MarkBuilt()")
		assert.Contains(t, out, "func (b *WidgetBuilder) Err() error {")
	})
}

func TestGenBuilderCollections(t *testing.T) {
	defs := fixtures()
	inventory := lookup[*schema.ObjectDefinition](t, defs, "Inventory")

	t.Run("default", func(t *testing.T) {
		f, err := NewTarget().GenObject(newHelper(t, defs), inventory)
		require.NoError(t, err)
		out := source(t, f)

		assert.Contains(t, out, "b.tags = conjen.AppendUnique([]string{}, v...)")
		assert.Contains(t, out, "b.tags = conjen.AppendUnique(b.tags, items...)")
		assert.Contains(t, out, "func (b *InventoryBuilder) AddTag(item string) *InventoryBuilder {")
		assert.Contains(t, out, "b.labels = conjen.CopyMap(v)")
		assert.Contains(t, out, "func (b *InventoryBuilder) PutAllLabels(entries map[string]*Widget) *InventoryBuilder {")
		assert.Contains(t, out, "maps.Copy(b.labels, entries)")
		assert.Contains(t, out, "func (b *InventoryBuilder) PutLabel(key string, value *Widget) *InventoryBuilder {")
		assert.Contains(t, out, "b.labels[key] = value")
		assert.Contains(t, out, "func (b *InventoryBuilder) AddRelated(item *Widget) *InventoryBuilder {")
		assert.Contains(t, out, "func (b *InventoryBuilder) SetOwnerValue(v *Widget) *InventoryBuilder {")

		assert.Contains(t, out, `b.err = conjen.NewNullArgumentError("Inventory", "primary")`)
		assert.Contains(t, out, `b.err = conjen.NewNullArgumentError("Inventory", "payload")`)
		assert.NotContains(t, out, "for _, item := range v {", "element checks need nonNullCollections")

		assert.Contains(t, out, "func (b *InventoryBuilder) SetOwner(v conjen.Optional[*Widget]) *InventoryBuilder {\n\tif !b.check(\"SetOwner\") {\n\t\treturn b\n\t}\n\tif item, ok := v.Get(); ok && item == nil {\n\t\tb.err = conjen.NewNullArgumentError(\"Inventory\", \"owner\")")
	})

	t.Run("non-null collections", func(t *testing.T) {
		f, err := NewTarget().GenObject(newHelper(t, defs, gen.WithNonNullCollections(true)), inventory)
		require.NoError(t, err)
		out := source(t, f)

		assert.Contains(t, out, "for _, item := range v {\n\t\tif item == nil {")
		assert.Contains(t, out, "for _, value := range v {\n\t\tif value == nil {")
		assert.Contains(t, out, "for _, item := range items {")
		assert.Contains(t, out, "if value == nil {")
		assert.Contains(t, out, `b.err = conjen.NewNullArgumentError("Inventory", "related")`)
		assert.NotContains(t, out, "for _, item := range v {\n\t\tif item == nil {\n\t\t\tb.err = conjen.NewNullArgumentError(\"Inventory\", \"tags\")", "string elements cannot be nil")
		assert.NotContains(t, out, "for _, item := range items {\n\t\tif item == nil {\n\t\t\tb.err = conjen.NewNullArgumentError(\"Inventory\", \"tags\")")
	})

	t.Run("immutable bytes", func(t *testing.T) {
		f, err := NewTarget().GenObject(newHelper(t, defs, gen.WithUseImmutableBytes(true)), inventory)
		require.NoError(t, err)
		out := source(t, f)

		assert.Contains(t, out, "func (i *Inventory) Payload() conjen.Bytes {\n\treturn i.payload\n}")
		assert.NotContains(t, out, `b.payload != nil`)
	})
}

func TestGenBuild(t *testing.T) {
	defs := fixtures()
	f, err := NewTarget().GenObject(newHelper(t, defs), lookup[*schema.ObjectDefinition](t, defs, "Inventory"))
	require.NoError(t, err)
	out := source(t, f)

	assert.NotContains(t, out, "var missing", "Inventory has no required primitives")
	assert.Contains(t, out, "var unset []string\n"+
		"\tunset = conjen.AddFieldIfMissing(unset, b.color != (Color{}), \"color\")\n"+
		"\tunset = conjen.AddFieldIfMissing(unset, b.primary != nil, \"primary\")\n"+
		"\tunset = conjen.AddFieldIfMissing(unset, b.payload != nil, \"payload\")\n"+
		"\tif len(unset) > 0 {\n"+
		"\t\treturn nil, conjen.NewNullFieldsError(\"Inventory\", unset)")
	assert.NotContains(t, out, `b.name != nil`)
	assert.Contains(t, out, "// An enum field that was never set counts as nil.")

	t.Run("primitives are checked first", func(t *testing.T) {
		defs := append(fixtures(), &schema.ObjectDefinition{
			Name: name("Gauge"),
			Fields: []schema.FieldDefinition{
				{Name: "blob", Type: schema.Primitive{Kind: schema.Binary}},
				{Name: "level", Type: tInteger},
			},
		})
		f, err := NewTarget().GenObject(newHelper(t, defs), lookup[*schema.ObjectDefinition](t, defs, "Gauge"))
		require.NoError(t, err)
		out := source(t, f)
		assert.Contains(t, out, "var missing []string\n"+
			"\tmissing = conjen.AddFieldIfMissing(missing, b.levelInitialized, \"level\")\n"+
			"\tif len(missing) > 0 {\n"+
			"\t\treturn nil, conjen.NewMissingRequiredFieldError(\"Gauge\", missing)\n"+
			"\t}\n"+
			"\tvar unset []string\n"+
			"\tunset = conjen.AddFieldIfMissing(unset, b.blob != nil, \"blob\")")
		assert.NotContains(t, out, "An enum field")
	})
}

func TestGenBuilderSetOfObjects(t *testing.T) {
	defs := append(fixtures(), &schema.ObjectDefinition{
		Name:   name("Bundle"),
		Fields: []schema.FieldDefinition{{Name: "widgets", Type: schema.Set{Item: schema.Ref("product", "Widget")}}},
	})
	f, err := NewTarget().GenObject(newHelper(t, defs), lookup[*schema.ObjectDefinition](t, defs, "Bundle"))
	require.NoError(t, err)
	out := source(t, f)

	assert.Contains(t, out, "b.widgets = conjen.AppendUniqueFunc([]*Widget{}, conjen.DeepEqual[*Widget], v...)")
	assert.Contains(t, out, "func (b *BundleBuilder) AddWidget(item *Widget) *BundleBuilder {")
	assert.NotContains(t, out, "var missing", "collections are never missing")
}
