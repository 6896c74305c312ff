package conjen

import (
	"bytes"
	"maps"
	"reflect"
	"slices"
	"time"
)

// CopySlice returns a fresh, non-nil copy of s.
func CopySlice[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}

// CopyMap returns a fresh, non-nil copy of m.
func CopyMap[M ~map[K]V, K comparable, V any](m M) M {
	out := make(M, len(m))
	maps.Copy(out, m)
	return out
}

// AppendUnique appends each item not already present in s, keeping
// insertion order. It backs set-typed fields.
func AppendUnique[S ~[]E, E comparable](s S, items ...E) S {
	for _, item := range items {
		if !slices.Contains(s, item) {
			s = append(s, item)
		}
	}
	return s
}

// AppendUniqueFunc is like AppendUnique for element types that are not
// comparable with ==.
func AppendUniqueFunc[S ~[]E, E any](s S, eq func(a, b E) bool, items ...E) S {
	for _, item := range items {
		if !slices.ContainsFunc(s, func(e E) bool { return eq(e, item) }) {
			s = append(s, item)
		}
	}
	return s
}

// DeepEqual is reflect.DeepEqual specialized to T, for use with
// AppendUniqueFunc.
func DeepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// TimeEqual reports whether two instants are the same regardless of location.
func TimeEqual(a, b time.Time) bool {
	return a.Equal(b)
}

// BytesEqual reports whether two byte slices hold the same contents.
func BytesEqual[S ~[]byte](a, b S) bool {
	return bytes.Equal(a, b)
}

// HasKey reports whether m contains k.
func HasKey[M ~map[K]V, K comparable, V any](m M, k K) bool {
	_, ok := m[k]
	return ok
}
