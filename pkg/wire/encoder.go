package wire

import (
	"encoding/binary"
	"math"

	"github.com/dnaka91/mabo/pkg/varint"
)

// Encoder accumulates the wire encoding of a value into an in-memory buffer.
// It has no notion of struct/enum shape — callers invoke these primitives in
// field order (nothing in this module generates such callers), matching the
// teacher's own binfile.Header.MarshalBinary pattern of building up a byte
// slice directly rather than through an io.Writer.
type Encoder struct {
	buf []byte
}

// NewEncoder constructs an empty encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Bytes returns the accumulated encoding.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.buf) }

// FieldHeader writes a field header for the given id/class.
func (e *Encoder) FieldHeader(id uint32, class Class) {
	e.buf = AppendFieldHeader(e.buf, id, class)
}

// VariantID writes a bare variant id.
func (e *Encoder) VariantID(id uint32) {
	e.buf = AppendVariantID(e.buf, id)
}

// Bool writes a single raw byte: 1 for true, 0 for false.
func (e *Encoder) Bool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

// U8 writes a single raw byte.
func (e *Encoder) U8(v uint8) { e.buf = append(e.buf, v) }

// I8 writes a single raw byte (two's complement).
func (e *Encoder) I8(v int8) { e.buf = append(e.buf, byte(v)) }

// U16 writes a varint-encoded u16.
func (e *Encoder) U16(v uint16) { e.buf = varint.EncodeUint16(e.buf, v) }

// I16 writes a zig-zag varint-encoded i16.
func (e *Encoder) I16(v int16) { e.buf = varint.EncodeInt16(e.buf, v) }

// U32 writes a varint-encoded u32.
func (e *Encoder) U32(v uint32) { e.buf = varint.EncodeUint32(e.buf, v) }

// I32 writes a zig-zag varint-encoded i32.
func (e *Encoder) I32(v int32) { e.buf = varint.EncodeInt32(e.buf, v) }

// U64 writes a varint-encoded u64.
func (e *Encoder) U64(v uint64) { e.buf = varint.EncodeUint64(e.buf, v) }

// I64 writes a zig-zag varint-encoded i64.
func (e *Encoder) I64(v int64) { e.buf = varint.EncodeInt64(e.buf, v) }

// U128 writes a varint-encoded u128.
func (e *Encoder) U128(v varint.Uint128) { e.buf = varint.AppendUint128(e.buf, v) }

// I128 writes a zig-zag varint-encoded i128.
func (e *Encoder) I128(v varint.Int128) { e.buf = varint.EncodeInt128(e.buf, v) }

// F32 writes four raw big-endian bytes.
func (e *Encoder) F32(v float32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
	e.buf = append(e.buf, tmp[:]...)
}

// F64 writes eight raw big-endian bytes.
func (e *Encoder) F64(v float64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	e.buf = append(e.buf, tmp[:]...)
}

// BytesValue writes a u64 length prefix followed by the raw bytes.
func (e *Encoder) BytesValue(v []byte) {
	e.buf = varint.EncodeUint64(e.buf, uint64(len(v)))
	e.buf = append(e.buf, v...)
}

// String writes a u64 length prefix followed by the UTF-8 bytes.
func (e *Encoder) String(v string) {
	e.BytesValue([]byte(v))
}

// CollectionLen writes the u64 length prefix shared by vec/hash_set/array.
func (e *Encoder) CollectionLen(n int) {
	e.buf = varint.EncodeUint64(e.buf, uint64(n))
}

// OptionTag writes the presence byte for an option<T>: 1 if present.
func (e *Encoder) OptionTag(present bool) {
	e.Bool(present)
}
