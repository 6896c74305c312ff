package strict_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/conjen"
	"github.com/syssam/conjen/internal/integration/strict"
)

func gadget(t *testing.T) *strict.Gadget {
	t.Helper()
	g, err := strict.NewGadgetBuilder().SetLabel("dial").SetLevel(3).SetNoteValue("n").Build()
	require.NoError(t, err)
	return g
}

func TestStrictJSON(t *testing.T) {
	t.Run("known fields decode", func(t *testing.T) {
		data, err := json.Marshal(gadget(t))
		require.NoError(t, err)
		var got strict.Gadget
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, gadget(t).Equal(&got))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		var got strict.Gadget
		err := json.Unmarshal([]byte(`{"label":"dial","level":1,"zeta":true,"extra":null}`), &got)
		var unknown *conjen.UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Gadget", unknown.Type)
		assert.Equal(t, "extra", unknown.Field, "keys are checked in sorted order")
		assert.ErrorIs(t, err, conjen.ErrUnknownField)
	})

	t.Run("unknown fields win over missing ones", func(t *testing.T) {
		var got strict.Gadget
		err := json.Unmarshal([]byte(`{"other":1}`), &got)
		assert.ErrorIs(t, err, conjen.ErrUnknownField)
	})

	t.Run("rejection leaves the receiver untouched", func(t *testing.T) {
		g := gadget(t)
		require.Error(t, json.Unmarshal([]byte(`{"label":"x","level":9,"bogus":1}`), g))
		assert.Equal(t, "dial", g.Label())
		assert.Equal(t, 3, g.Level())
	})
}

func TestStrictMsgpack(t *testing.T) {
	t.Run("known fields decode", func(t *testing.T) {
		data, err := msgpack.Marshal(gadget(t))
		require.NoError(t, err)
		var got strict.Gadget
		require.NoError(t, msgpack.Unmarshal(data, &got))
		assert.True(t, gadget(t).Equal(&got))
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		data, err := msgpack.Marshal(map[string]any{"label": "dial", "level": 1, "extra": []int{1}})
		require.NoError(t, err)
		var got strict.Gadget
		err = msgpack.Unmarshal(data, &got)
		var unknown *conjen.UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "extra", unknown.Field)
	})
}
