package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "A"},
		{"fooBar", "FooBar"},
		{"foo_bar", "FooBar"},
		{"max-count", "MaxCount"},
		{"userId", "UserID"},
		{"userID", "UserID"},
		{"HTTPServer", "HTTPServer"},
		{"uuidList", "UUIDList"},
		{"field1Name", "Field1Name"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.in))
		})
	}
}

func TestLowerName(t *testing.T) {
	assert.Equal(t, "fooBar", LowerName("FooBar"))
	assert.Equal(t, "id", LowerName("ID"))
	assert.Equal(t, "uuidList", LowerName("uuidList"))
	assert.Equal(t, "createdAt", LowerName("created_at"))
}

func TestEnumValueName(t *testing.T) {
	assert.Equal(t, "Red", EnumValueName("RED"))
	assert.Equal(t, "DarkBlue", EnumValueName("DARK_BLUE"))
	assert.Equal(t, "V2", EnumValueName("2"))
}

func TestAccessorName(t *testing.T) {
	assert.Equal(t, "Name", AccessorName("name"))
	assert.Equal(t, "GetString", AccessorName("string"))
	assert.Equal(t, "GetEqual", AccessorName("equal"))
}

func TestBuilderField(t *testing.T) {
	assert.Equal(t, "name", BuilderField("name"))
	assert.Equal(t, "_type", BuilderField("type"))
	assert.Equal(t, "_state", BuilderField("state"))
	assert.Equal(t, "_json", BuilderField("json"))
	assert.Equal(t, "createdAt", BuilderField("CreatedAt"))
}

func TestReceiver(t *testing.T) {
	assert.Equal(t, "w", Receiver("Widget"))
	assert.Equal(t, "i", Receiver("ID"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "string_alias_one.go", FileName("StringAliasOne"))
	assert.Equal(t, "http_server.go", FileName("HTTPServer"))
	assert.Equal(t, "widget.go", FileName("Widget"))
}

func TestElementName(t *testing.T) {
	assert.Equal(t, "Tag", ElementName("tags"))
	assert.Equal(t, "RelatedItem", ElementName("relatedItems"))
	assert.Equal(t, "B", ElementName("b"))
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "product", PackageName("github.com/acme/api/product"))
	assert.Equal(t, "myapi", PackageName("github.com/acme/my-api"))
	assert.Equal(t, "pkg2", PackageName("github.com/acme/2"))
	assert.Equal(t, "pkgtype", PackageName("github.com/acme/type"))
}
