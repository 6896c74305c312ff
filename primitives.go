package conjen

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Range of integers that survive a round trip through an IEEE 754 double.
const (
	MinSafeLong = -(1<<53 - 1)
	MaxSafeLong = 1<<53 - 1
)

// SafeLong is an integer restricted to the range a JSON number can carry
// without loss of precision.
type SafeLong int64

// NewSafeLong returns v as a SafeLong, or an error if it is out of range.
func NewSafeLong(v int64) (SafeLong, error) {
	if v < MinSafeLong || v > MaxSafeLong {
		return 0, fmt.Errorf("conjen: %d is outside the safe long range [%d, %d]", v, int64(MinSafeLong), int64(MaxSafeLong))
	}
	return SafeLong(v), nil
}

// Int64 returns the underlying integer.
func (s SafeLong) Int64() int64 {
	return int64(s)
}

// UnmarshalJSON rejects values outside the safe range.
func (s *SafeLong) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	safe, err := NewSafeLong(v)
	if err != nil {
		return err
	}
	*s = safe
	return nil
}

// DecodeMsgpack rejects values outside the safe range.
func (s *SafeLong) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}
	safe, err := NewSafeLong(v)
	if err != nil {
		return err
	}
	*s = safe
	return nil
}

// RID is a resource identifier of the form ri.service.instance.type.locator.
type RID string

// String returns the identifier.
func (r RID) String() string {
	return string(r)
}

// BearerToken is a credential. Formatting it with fmt never prints the
// token; use Token to read it.
type BearerToken string

// Token returns the raw token.
func (t BearerToken) Token() string {
	return string(t)
}

// String implements fmt.Stringer without revealing the token.
func (t BearerToken) String() string {
	return "BearerToken{REDACTED}"
}

// GoString implements fmt.GoStringer without revealing the token.
func (t BearerToken) GoString() string {
	return t.String()
}

// IsJSONNull reports whether data is the JSON literal null, ignoring
// surrounding whitespace.
func IsJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
