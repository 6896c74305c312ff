package conjen

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Optional holds a value that may be absent. The zero Optional is empty.
// On the wire an empty Optional is JSON null or msgpack nil.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an absent Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value or panics if the Optional is empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("conjen: MustGet on empty Optional")
	}
	return o.value
}

// OrElse returns the value if present and def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsZero reports whether the Optional is empty. encoding/json uses it for
// the omitzero tag option.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null decodes to empty.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if IsJSONNull(data) {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (o Optional[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !o.present {
		return enc.EncodeNil()
	}
	return enc.Encode(o.value)
}

// DecodeMsgpack implements msgpack.CustomDecoder. A nil decodes to empty.
func (o *Optional[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	isNil, err := DecodeMsgpackNil(dec)
	if err != nil {
		return err
	}
	if isNil {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// DecodeMsgpackNil consumes the next value if it is nil and reports whether
// it did so.
func DecodeMsgpackNil(dec *msgpack.Decoder) (bool, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return false, err
	}
	if c != msgpcode.Nil {
		return false, nil
	}
	return true, dec.DecodeNil()
}
