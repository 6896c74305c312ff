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

func TestToggle(t *testing.T) {
	t.Run("unset boolean is reported", func(t *testing.T) {
		_, err := product.NewToggleBuilder().AddAllB(1, 2, 3).Build()
		var missing *conjen.MissingRequiredFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"c"}, missing.Fields)
	})

	t.Run("defaults", func(t *testing.T) {
		v, err := product.NewToggleBuilder().SetC(true).Build()
		require.NoError(t, err)
		assert.False(t, v.A().IsPresent())
		assert.Equal(t, []int{}, v.B())
		assert.True(t, v.C())
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		items := []int{1, 2}
		v, err := product.NewToggleBuilder().SetB(items).SetC(false).Build()
		require.NoError(t, err)
		items[0] = 9
		assert.Equal(t, []int{1, 2}, v.B())
	})

	t.Run("copy is idempotent", func(t *testing.T) {
		v, err := product.NewToggleBuilder().SetAValue("x").AddB(4).SetC(true).Build()
		require.NoError(t, err)
		dup, err := product.NewToggleBuilder().CopyFrom(v).Build()
		require.NoError(t, err)
		assert.True(t, v.Equal(dup))
	})

	t.Run("every call after build fails", func(t *testing.T) {
		calls := map[string]func(b *product.ToggleBuilder){
			"SetA":      func(b *product.ToggleBuilder) { b.SetA(conjen.Empty[string]()) },
			"SetAValue": func(b *product.ToggleBuilder) { b.SetAValue("x") },
			"SetB":      func(b *product.ToggleBuilder) { b.SetB(nil) },
			"AddAllB":   func(b *product.ToggleBuilder) { b.AddAllB(1) },
			"AddB":      func(b *product.ToggleBuilder) { b.AddB(1) },
			"SetC":      func(b *product.ToggleBuilder) { b.SetC(true) },
			"CopyFrom":  func(b *product.ToggleBuilder) { b.CopyFrom(nil) },
		}
		for method, call := range calls {
			t.Run(method, func(t *testing.T) {
				b := product.NewToggleBuilder().SetC(true)
				_, err := b.Build()
				require.NoError(t, err)
				call(b)
				var reuse *conjen.IllegalBuilderReuseError
				require.ErrorAs(t, b.Err(), &reuse)
				assert.Equal(t, method, reuse.Method)
			})
		}
	})

	t.Run("codecs round trip", func(t *testing.T) {
		v, err := product.NewToggleBuilder().SetAValue("x").AddAllB(1, 2).SetC(true).Build()
		require.NoError(t, err)

		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"x","b":[1,2],"c":true}`, string(data))
		var fromJSON product.Toggle
		require.NoError(t, json.Unmarshal(data, &fromJSON))
		assert.True(t, v.Equal(&fromJSON))

		data, err = msgpack.Marshal(v)
		require.NoError(t, err)
		var fromMsgpack product.Toggle
		require.NoError(t, msgpack.Unmarshal(data, &fromMsgpack))
		assert.True(t, v.Equal(&fromMsgpack))
	})
}
