package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/dnaka91/mabo/pkg/varint"
)

// Decoder reads a wire-encoded value from an in-memory buffer, tracking its
// own cursor. Per spec §7, the cursor position after an error is
// unspecified, so callers should treat a Decoder as single-use once any
// method returns an error.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder constructs a decoder over data.
func NewDecoder(data []byte) *Decoder { return &Decoder{data: data} }

// Pos returns the current byte offset into the underlying buffer.
func (d *Decoder) Pos() int { return d.pos }

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int { return len(d.data) - d.pos }

// Done reports whether the decoder has consumed the entire buffer.
func (d *Decoder) Done() bool { return d.pos >= len(d.data) }

func (d *Decoder) truncated(msg string, args ...any) *DecodeError {
	return newDecodeError(TruncatedInput, d.pos, msg, args...)
}

func (d *Decoder) take(n int) ([]byte, error) {
	if d.pos+n > len(d.data) {
		return nil, d.truncated("need %d bytes, have %d", n, len(d.data)-d.pos)
	}

	b := d.data[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

// FieldHeader reads a field header, returning its id and encoding class.
func (d *Decoder) FieldHeader() (id uint32, class Class, err error) {
	raw, n, verr := varint.DecodeUint32(d.data[d.pos:])
	if verr != nil {
		return 0, 0, d.truncated("field header: %v", verr)
	}

	id, class = SplitFieldHeader(raw)
	if !class.IsValid() {
		err = newDecodeError(UnknownEncodingClass, d.pos, "class %d", uint32(class))
		return 0, 0, err
	}

	d.pos += n

	return id, class, nil
}

// VariantID reads a bare variant id.
func (d *Decoder) VariantID() (uint32, error) {
	v, n, err := varint.DecodeUint32(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("variant id: %v", err)
	}

	d.pos += n

	return v, nil
}

// Bool reads a single raw byte.
func (d *Decoder) Bool() (bool, error) {
	b, err := d.take(1)
	if err != nil {
		return false, err
	}

	return b[0] != 0, nil
}

// U8 reads a single raw byte.
func (d *Decoder) U8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// I8 reads a single raw byte as two's complement.
func (d *Decoder) I8() (int8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

// U16 reads a varint-encoded u16.
func (d *Decoder) U16() (uint16, error) {
	v, n, err := varint.DecodeUint16(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("u16: %v", err)
	}

	d.pos += n

	return v, nil
}

// I16 reads a zig-zag varint-encoded i16.
func (d *Decoder) I16() (int16, error) {
	v, n, err := varint.DecodeInt16(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("i16: %v", err)
	}

	d.pos += n

	return v, nil
}

// U32 reads a varint-encoded u32.
func (d *Decoder) U32() (uint32, error) {
	v, n, err := varint.DecodeUint32(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("u32: %v", err)
	}

	d.pos += n

	return v, nil
}

// I32 reads a zig-zag varint-encoded i32.
func (d *Decoder) I32() (int32, error) {
	v, n, err := varint.DecodeInt32(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("i32: %v", err)
	}

	d.pos += n

	return v, nil
}

// U64 reads a varint-encoded u64.
func (d *Decoder) U64() (uint64, error) {
	v, n, err := varint.DecodeUint64(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("u64: %v", err)
	}

	d.pos += n

	return v, nil
}

// I64 reads a zig-zag varint-encoded i64.
func (d *Decoder) I64() (int64, error) {
	v, n, err := varint.DecodeInt64(d.data[d.pos:])
	if err != nil {
		return 0, d.truncated("i64: %v", err)
	}

	d.pos += n

	return v, nil
}

// U128 reads a varint-encoded u128.
func (d *Decoder) U128() (varint.Uint128, error) {
	v, n, err := varint.DecodeUint128(d.data[d.pos:])
	if err != nil {
		return varint.Uint128{}, d.truncated("u128: %v", err)
	}

	d.pos += n

	return v, nil
}

// I128 reads a zig-zag varint-encoded i128.
func (d *Decoder) I128() (varint.Int128, error) {
	v, n, err := varint.DecodeInt128(d.data[d.pos:])
	if err != nil {
		return varint.Int128{}, d.truncated("i128: %v", err)
	}

	d.pos += n

	return v, nil
}

// F32 reads four raw big-endian bytes.
func (d *Decoder) F32() (float32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

// F64 reads eight raw big-endian bytes.
func (d *Decoder) F64() (float64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// BytesValue reads a u64 length prefix followed by that many raw bytes.
func (d *Decoder) BytesValue() ([]byte, error) {
	n, err := d.U64()
	if err != nil {
		return nil, err
	}

	return d.take(int(n))
}

// String reads a u64 length prefix followed by that many UTF-8 bytes.
func (d *Decoder) String() (string, error) {
	b, err := d.BytesValue()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", newDecodeError(InvalidUTF8, d.pos-len(b), "string field is not valid UTF-8")
	}

	return string(b), nil
}

// CollectionLen reads the u64 length prefix shared by vec/hash_set/array.
func (d *Decoder) CollectionLen() (int, error) {
	n, err := d.U64()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// ArrayLen reads a collection length and verifies it equals the declared
// array size N, per spec §9 (reject-on-first-mismatch).
func (d *Decoder) ArrayLen(declaredN int) (int, error) {
	n, err := d.CollectionLen()
	if err != nil {
		return 0, err
	}

	if n != declaredN {
		return 0, newDecodeError(ArrayLengthMismatch, d.pos,
			"array length %d does not match declared size %d", n, declaredN)
	}

	return n, nil
}

// OptionTag reads the presence byte for an option<T>.
func (d *Decoder) OptionTag() (bool, error) { return d.Bool() }

// ============================================================================
// non_zero<T> enforcement.
//
// non_zero<T> is wire-identical to T (spec §4.C): the wrapped value is read
// with T's ordinary decode method, then checked against T's zero value.
// These helpers pair that read with the check so every non_zero<T> caller
// gets ZeroValueViolation reporting for free, attributed to the offset the
// wrapped value started at rather than where the check itself ran.
// ============================================================================

func (d *Decoder) zeroValueErr(start int, msg string, args ...any) *DecodeError {
	return newDecodeError(ZeroValueViolation, start, msg, args...)
}

// NonZeroU8 reads a u8, failing if it decodes to 0.
func (d *Decoder) NonZeroU8() (uint8, error) {
	start := d.pos

	v, err := d.U8()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<u8> decoded to 0")
	}

	return v, nil
}

// NonZeroU16 reads a u16, failing if it decodes to 0.
func (d *Decoder) NonZeroU16() (uint16, error) {
	start := d.pos

	v, err := d.U16()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<u16> decoded to 0")
	}

	return v, nil
}

// NonZeroU32 reads a u32, failing if it decodes to 0.
func (d *Decoder) NonZeroU32() (uint32, error) {
	start := d.pos

	v, err := d.U32()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<u32> decoded to 0")
	}

	return v, nil
}

// NonZeroU64 reads a u64, failing if it decodes to 0.
func (d *Decoder) NonZeroU64() (uint64, error) {
	start := d.pos

	v, err := d.U64()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<u64> decoded to 0")
	}

	return v, nil
}

// NonZeroU128 reads a u128, failing if it decodes to 0.
func (d *Decoder) NonZeroU128() (varint.Uint128, error) {
	start := d.pos

	v, err := d.U128()
	if err != nil {
		return varint.Uint128{}, err
	}

	if v.IsZero() {
		return varint.Uint128{}, d.zeroValueErr(start, "non_zero<u128> decoded to 0")
	}

	return v, nil
}

// NonZeroI8 reads an i8, failing if it decodes to 0.
func (d *Decoder) NonZeroI8() (int8, error) {
	start := d.pos

	v, err := d.I8()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<i8> decoded to 0")
	}

	return v, nil
}

// NonZeroI16 reads an i16, failing if it decodes to 0.
func (d *Decoder) NonZeroI16() (int16, error) {
	start := d.pos

	v, err := d.I16()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<i16> decoded to 0")
	}

	return v, nil
}

// NonZeroI32 reads an i32, failing if it decodes to 0.
func (d *Decoder) NonZeroI32() (int32, error) {
	start := d.pos

	v, err := d.I32()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<i32> decoded to 0")
	}

	return v, nil
}

// NonZeroI64 reads an i64, failing if it decodes to 0.
func (d *Decoder) NonZeroI64() (int64, error) {
	start := d.pos

	v, err := d.I64()
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, d.zeroValueErr(start, "non_zero<i64> decoded to 0")
	}

	return v, nil
}

// NonZeroI128 reads an i128, failing if it decodes to 0.
func (d *Decoder) NonZeroI128() (varint.Int128, error) {
	start := d.pos

	v, err := d.I128()
	if err != nil {
		return varint.Int128{}, err
	}

	if v.IsZero() {
		return varint.Int128{}, d.zeroValueErr(start, "non_zero<i128> decoded to 0")
	}

	return v, nil
}

// NonZeroString reads a string, failing if it decodes to the empty string
// (spec §4.C "non-empty ... string").
func (d *Decoder) NonZeroString() (string, error) {
	start := d.pos

	v, err := d.String()
	if err != nil {
		return "", err
	}

	if v == "" {
		return "", d.zeroValueErr(start, "non_zero<string> decoded to an empty string")
	}

	return v, nil
}

// NonZeroBytesValue reads a bytes value, failing if it decodes to zero
// bytes (spec §4.C "non-empty ... string", applied to bytes identically).
func (d *Decoder) NonZeroBytesValue() ([]byte, error) {
	start := d.pos

	v, err := d.BytesValue()
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return nil, d.zeroValueErr(start, "non_zero<bytes> decoded to empty bytes")
	}

	return v, nil
}

// NonZeroCollectionLen reads a collection length prefix, failing if it is 0
// (spec §4.C "non-empty collection"; used for non_zero<vec<T>>,
// non_zero<hash_set<T>>, and non_zero<hash_map<K,V>>).
func (d *Decoder) NonZeroCollectionLen() (int, error) {
	start := d.pos

	n, err := d.CollectionLen()
	if err != nil {
		return 0, err
	}

	if n == 0 {
		return 0, d.zeroValueErr(start, "non_zero collection decoded to empty")
	}

	return n, nil
}

// SkipField consumes the bytes of a field whose id is not recognised by the
// current schema, using only its encoding class — the core evolvability
// mechanism of spec §4.C. It never inspects the value itself.
func (d *Decoder) SkipField(class Class) error {
	switch class {
	case ClassVarint:
		_, n, err := varint.ReadUvarint(d.data[d.pos:], varint.MaxBytesU128)
		if err != nil {
			return d.truncated("skip varint: %v", err)
		}

		d.pos += n

		return nil
	case ClassFixed1:
		_, err := d.take(1)
		return err
	case ClassFixed4:
		_, err := d.take(4)
		return err
	case ClassFixed8:
		_, err := d.take(8)
		return err
	case ClassLengthPrefixed:
		n, err := d.U64()
		if err != nil {
			return err
		}

		_, err = d.take(int(n))

		return err
	default:
		return newDecodeError(UnknownEncodingClass, d.pos, "class %d", uint32(class))
	}
}
