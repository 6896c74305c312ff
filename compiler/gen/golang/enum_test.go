package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/conjen/compiler/gen"
	"github.com/syssam/conjen/schema"
)

func TestGenEnum(t *testing.T) {
	defs := fixtures()
	color := lookup[*schema.EnumDefinition](t, defs, "Color")
	f, err := NewTarget().GenEnum(newHelper(t, defs), color)
	require.NoError(t, err)
	out := source(t, f)

	t.Run("type and values", func(t *testing.T) {
		assert.Contains(t, out, "// Color of a widget.\n//\n// Color is forward compatible")
		assert.Contains(t, out, "type Color struct {")
		assert.Contains(t, out, "type colorValue int")
		assert.Contains(t, out, "colorUnknown colorValue = iota")
		assert.Contains(t, out, "// The default.\n\tColorGreen")
		assert.Contains(t, out, "// Deprecated: Use GREEN.\n\tColorBlue")
		assert.Contains(t, out, `str:   "RED",`)
		assert.Contains(t, out, "func ColorValues() []Color {\n\treturn []Color{ColorRed, ColorGreen, ColorBlue}\n}")
	})

	t.Run("parse", func(t *testing.T) {
		assert.Contains(t, out, "func ParseColor(raw string) Color {")
		assert.Contains(t, out, "switch strings.ToUpper(raw) {")
		assert.Contains(t, out, "case \"GREEN\":\n\t\treturn ColorGreen")
		assert.Contains(t, out, "value: colorUnknown,")
	})

	t.Run("methods", func(t *testing.T) {
		assert.Contains(t, out, "func (c Color) String() string {\n\treturn c.str\n}")
		assert.Contains(t, out, "func (c Color) IsUnknown() bool {\n\treturn c.value == colorUnknown\n}")
		assert.Contains(t, out, "func (c Color) Equal(other Color) bool {\n\treturn c.str == other.str\n}")
		assert.Contains(t, out, "func (c Color) MarshalText() ([]byte, error) {")
		assert.Contains(t, out, "func (c *Color) UnmarshalText(data []byte) error {\n\t*c = ParseColor(string(data))")
		assert.NotContains(t, out, "EncodeMsgpack")
	})

	t.Run("visitor", func(t *testing.T) {
		assert.Contains(t, out, "type ColorVisitor interface {")
		assert.Contains(t, out, "VisitRed() error")
		assert.Contains(t, out, "// Deprecated: Use GREEN.\n\tVisitBlue() error")
		assert.Contains(t, out, "VisitUnknown(raw string) error")
		assert.Contains(t, out, "func (c Color) Accept(visitor ColorVisitor) error {")
		assert.Contains(t, out, "case colorRed:\n\t\treturn visitor.VisitRed()")
		assert.Contains(t, out, "default:\n\t\treturn visitor.VisitUnknown(c.str)")
	})

	t.Run("generic visitor", func(t *testing.T) {
		assert.Contains(t, out, "type ColorVisitorWithT[T any] interface {")
		assert.Contains(t, out, "VisitGreen() (T, error)")
		assert.Contains(t, out, "VisitUnknown(raw string) (T, error)")
		assert.Contains(t, out, "func AcceptColorWithT[T any](c Color, visitor ColorVisitorWithT[T]) (T, error) {")
	})
}

func TestGenEnumFeatures(t *testing.T) {
	defs := fixtures()
	color := lookup[*schema.EnumDefinition](t, defs, "Color")
	f, err := NewTarget().GenEnum(newHelper(t, defs, gen.WithFeatures(gen.FeatureMsgpack)), color)
	require.NoError(t, err)
	out := source(t, f)

	assert.Contains(t, out, "func (c Color) EncodeMsgpack(enc *msgpack.Encoder) error {\n\treturn enc.EncodeString(c.str)\n}")
	assert.Contains(t, out, "func (c *Color) DecodeMsgpack(dec *msgpack.Decoder) error {")
	assert.Contains(t, out, `return conjen.NewDecodeError("Color", "", err)`)
	assert.Contains(t, out, "*c = ParseColor(raw)")
}

func TestGenEnumEmpty(t *testing.T) {
	defs := []schema.TypeDefinition{&schema.EnumDefinition{Name: name("Nothing")}}
	f, err := NewTarget().GenEnum(newHelper(t, defs), lookup[*schema.EnumDefinition](t, defs, "Nothing"))
	require.NoError(t, err)
	out := source(t, f)

	assert.Contains(t, out, "func NothingValues() []Nothing {\n\treturn []Nothing{}\n}")
	assert.NotContains(t, out, "strings.ToUpper")
	assert.Contains(t, out, "VisitUnknown(raw string) error")
}

func TestGenEnumErrors(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		wantErr string
	}{
		{"unknown value", []string{"KNOWN", "UNKNOWN"}, "collides with the unknown variant"},
		{"same Go name", []string{"A1", "A_1"}, "map to the same Go name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &schema.EnumDefinition{Name: name("Bad")}
			for _, v := range tt.values {
				d.Values = append(d.Values, schema.EnumValueDefinition{Value: v})
			}
			_, err := NewTarget().GenEnum(newHelper(t, []schema.TypeDefinition{d}), d)
			require.Error(t, err)
			assert.True(t, gen.IsSchemaError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
