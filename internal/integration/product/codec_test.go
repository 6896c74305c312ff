package product_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/conjen"
	"github.com/syssam/conjen/internal/integration/product"
)

func fullInventory(t *testing.T) *product.Inventory {
	t.Helper()
	inv, err := inventory(t).
		SetCount(3).
		SetRatio(0.25).
		SetActive(true).
		SetColor(product.ParseColor("Teal")).
		SetOwnerValue(widget(t, "owner")).
		AddAllTags("a", "b").
		AddPart(widget(t, "part")).
		PutLabel("x", widget(t, "label")).
		AddAllAliases("one", "two").
		Build()
	require.NoError(t, err)
	return inv
}

func TestJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		inv := fullInventory(t)
		data, err := json.Marshal(inv)
		require.NoError(t, err)

		var got product.Inventory
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, inv.Equal(&got))
		assert.Equal(t, "Teal", got.Color().String())
	})

	t.Run("empty optionals are omitted", func(t *testing.T) {
		data, err := json.Marshal(widget(t, "w"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"w","count":1,"sizes":[1.5,2.5]}`, string(data))
	})

	t.Run("absent and null collections decode empty", func(t *testing.T) {
		var w product.Widget
		require.NoError(t, json.Unmarshal([]byte(`{"name":"w","count":0,"note":null,"sizes":null,"extra":true}`), &w))
		assert.Equal(t, 0, w.Count())
		assert.NotNil(t, w.Sizes())
		assert.Empty(t, w.Sizes())
		assert.False(t, w.Note().IsPresent())
	})

	t.Run("missing required keys", func(t *testing.T) {
		var w product.Widget
		err := json.Unmarshal([]byte(`{"sizes":[]}`), &w)
		var missing *conjen.MissingRequiredFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"name", "count"}, missing.Fields)
	})

	t.Run("null required value", func(t *testing.T) {
		var w product.Widget
		err := json.Unmarshal([]byte(`{"name":null,"count":1}`), &w)
		var null *conjen.NullArgumentError
		require.ErrorAs(t, err, &null)
		assert.Equal(t, "name", null.Field)
	})

	t.Run("null list element", func(t *testing.T) {
		data, err := json.Marshal(fullInventory(t))
		require.NoError(t, err)
		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		fields["parts"] = []any{nil}
		data, err = json.Marshal(fields)
		require.NoError(t, err)

		var got product.Inventory
		err = json.Unmarshal(data, &got)
		assert.True(t, conjen.IsNullArgument(err))
	})

	t.Run("empty enum string", func(t *testing.T) {
		data, err := json.Marshal(fullInventory(t))
		require.NoError(t, err)
		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		fields["color"] = ""
		data, err = json.Marshal(fields)
		require.NoError(t, err)

		var got product.Inventory
		err = json.Unmarshal(data, &got)
		var null *conjen.NullFieldsError
		require.ErrorAs(t, err, &null)
		assert.Equal(t, []string{"color"}, null.Fields)
	})

	t.Run("bad field value", func(t *testing.T) {
		var w product.Widget
		err := json.Unmarshal([]byte(`{"name":"w","count":"one"}`), &w)
		var decodeErr *conjen.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "count", decodeErr.Field)
		assert.ErrorIs(t, err, conjen.ErrDecode)
	})

	t.Run("not an object", func(t *testing.T) {
		var w product.Widget
		err := json.Unmarshal([]byte(`[1]`), &w)
		assert.ErrorIs(t, err, conjen.ErrDecode)
	})

	t.Run("failed decode leaves the receiver untouched", func(t *testing.T) {
		w := widget(t, "keep")
		require.Error(t, json.Unmarshal([]byte(`{"name":"x"}`), w))
		assert.Equal(t, "keep", w.Name())
	})
}

func TestMsgpack(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		inv := fullInventory(t)
		data, err := msgpack.Marshal(inv)
		require.NoError(t, err)

		var got product.Inventory
		require.NoError(t, msgpack.Unmarshal(data, &got))
		assert.True(t, inv.Equal(&got))
		assert.Equal(t, inv.ID(), got.ID())
	})

	t.Run("empty optionals are omitted", func(t *testing.T) {
		data, err := msgpack.Marshal(widget(t, "w"))
		require.NoError(t, err)
		var fields map[string]any
		require.NoError(t, msgpack.Unmarshal(data, &fields))
		assert.NotContains(t, fields, "note")
		assert.Len(t, fields, 3)
	})

	t.Run("unknown keys are skipped", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{
			"name":  "w",
			"count": 2,
			"extra": map[string]any{"nested": []int{1, 2}},
		})
		require.NoError(t, err)
		var w product.Widget
		require.NoError(t, msgpack.Unmarshal(data, &w))
		assert.Equal(t, 2, w.Count())
	})

	t.Run("missing required keys", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{"note": "n"})
		require.NoError(t, err)
		var w product.Widget
		err = msgpack.Unmarshal(data, &w)
		var missing *conjen.MissingRequiredFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"name", "count"}, missing.Fields)
	})

	t.Run("null required value", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{"name": "w", "count": nil})
		require.NoError(t, err)
		var w product.Widget
		err = msgpack.Unmarshal(data, &w)
		assert.True(t, conjen.IsNullArgument(err))
	})

	t.Run("null optional value", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{"name": "w", "count": 1, "note": nil, "sizes": nil})
		require.NoError(t, err)
		var w product.Widget
		require.NoError(t, msgpack.Unmarshal(data, &w))
		assert.False(t, w.Note().IsPresent())
		assert.Empty(t, w.Sizes())
	})
}
