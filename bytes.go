package conjen

import (
	"encoding/base64"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Bytes is an immutable byte sequence. Generated code uses it for binary
// fields when immutable bytes are enabled, so values can be shared without
// defensive copies. The zero Bytes is empty.
type Bytes struct {
	s string
}

// NewBytes copies b into a new Bytes.
func NewBytes(b []byte) Bytes {
	return Bytes{s: string(b)}
}

// Bytes returns a fresh copy of the contents.
func (b Bytes) Bytes() []byte {
	return []byte(b.s)
}

// Len returns the number of bytes.
func (b Bytes) Len() int {
	return len(b.s)
}

// Equal reports whether b and other hold the same contents.
func (b Bytes) Equal(other Bytes) bool {
	return b.s == other.s
}

// String returns the standard base64 encoding of the contents.
func (b Bytes) String() string {
	return base64.StdEncoding.EncodeToString([]byte(b.s))
}

// MarshalJSON encodes the contents as a base64 string, like []byte.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a base64 string.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var raw []byte
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = NewBytes(raw)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b Bytes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes([]byte(b.s))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Bytes) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*b = NewBytes(raw)
	return nil
}
