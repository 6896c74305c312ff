package conjen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/conjen"
)

type names []string

func TestCopySlice(t *testing.T) {
	t.Run("independent copy", func(t *testing.T) {
		src := []int{1, 2}
		dst := conjen.CopySlice(src)
		src[0] = 9
		assert.Equal(t, []int{1, 2}, dst)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		dst := conjen.CopySlice([]int(nil))
		assert.NotNil(t, dst)
		assert.Empty(t, dst)
	})

	t.Run("keeps named type", func(t *testing.T) {
		dst := conjen.CopySlice(names{"a"})
		assert.IsType(t, names{}, dst)
	})
}

func TestCopyMap(t *testing.T) {
	src := map[string]int{"a": 1}
	dst := conjen.CopyMap(src)
	src["a"] = 2
	src["b"] = 3
	assert.Equal(t, map[string]int{"a": 1}, dst)
	assert.NotNil(t, conjen.CopyMap(map[string]int(nil)))
}

func TestAppendUnique(t *testing.T) {
	s := conjen.AppendUnique([]string{}, "b", "a", "b")
	s = conjen.AppendUnique(s, "a", "c")
	assert.Equal(t, []string{"b", "a", "c"}, s)
}

func TestAppendUniqueFunc(t *testing.T) {
	t.Run("deep equal", func(t *testing.T) {
		s := conjen.AppendUniqueFunc([][]int{}, conjen.DeepEqual[[]int], []int{1}, []int{1}, []int{2})
		assert.Equal(t, [][]int{{1}, {2}}, s)
	})

	t.Run("time equal ignores location", func(t *testing.T) {
		utc := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		local := utc.In(time.FixedZone("X", 3600))
		s := conjen.AppendUniqueFunc([]time.Time{}, conjen.TimeEqual, utc, local)
		assert.Len(t, s, 1)
	})

	t.Run("bytes equal", func(t *testing.T) {
		s := conjen.AppendUniqueFunc([][]byte{}, conjen.BytesEqual[[]byte], []byte("x"), []byte("x"))
		assert.Len(t, s, 1)
	})
}

func TestHasKey(t *testing.T) {
	m := map[string]int{"a": 0}
	assert.True(t, conjen.HasKey(m, "a"))
	assert.False(t, conjen.HasKey(m, "b"))
}
