package conjen_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/conjen"
)

func TestOptional(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		o := conjen.Empty[string]()
		v, ok := o.Get()
		assert.False(t, ok)
		assert.Equal(t, "", v)
		assert.False(t, o.IsPresent())
		assert.True(t, o.IsZero())
		assert.Equal(t, "fallback", o.OrElse("fallback"))
		assert.Equal(t, "Optional.empty", o.String())
		assert.Panics(t, func() { o.MustGet() })
	})

	t.Run("present", func(t *testing.T) {
		o := conjen.Some("x")
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, "x", v)
		assert.Equal(t, "x", o.OrElse("fallback"))
		assert.Equal(t, "x", o.MustGet())
		assert.Equal(t, "Optional[x]", o.String())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		var o conjen.Optional[int]
		assert.Equal(t, conjen.Empty[int](), o)
	})

	t.Run("present zero value is not empty", func(t *testing.T) {
		o := conjen.Some(0)
		assert.True(t, o.IsPresent())
		assert.NotEqual(t, conjen.Empty[int](), o)
	})
}

func TestOptionalJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		out, err := json.Marshal(conjen.Some(3))
		require.NoError(t, err)
		assert.JSONEq(t, `3`, string(out))

		out, err = json.Marshal(conjen.Empty[int]())
		require.NoError(t, err)
		assert.Equal(t, `null`, string(out))
	})

	t.Run("omitzero drops empty", func(t *testing.T) {
		out, err := json.Marshal(struct {
			A conjen.Optional[string] `json:"a,omitzero"`
		}{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(out))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var o conjen.Optional[string]
		require.NoError(t, json.Unmarshal([]byte(`"hi"`), &o))
		assert.Equal(t, conjen.Some("hi"), o)

		require.NoError(t, json.Unmarshal([]byte(` null `), &o))
		assert.False(t, o.IsPresent())
	})

	t.Run("unmarshal type mismatch", func(t *testing.T) {
		var o conjen.Optional[int]
		assert.Error(t, json.Unmarshal([]byte(`"hi"`), &o))
	})
}

func TestOptionalMsgpack(t *testing.T) {
	tests := []struct {
		name string
		in   conjen.Optional[string]
	}{
		{"present", conjen.Some("hello")},
		{"empty", conjen.Empty[string]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(tt.in)
			require.NoError(t, err)

			var out conjen.Optional[string]
			require.NoError(t, msgpack.Unmarshal(data, &out))
			assert.Equal(t, tt.in, out)
		})
	}
}
