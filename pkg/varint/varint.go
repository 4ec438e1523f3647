// Package varint implements mabo's variable-length integer codec (spec
// §4.B): little-endian groups of 7 bits with a continuation high bit, and a
// zig-zag mapping for signed values. It has no notion of fields, schemas or
// framing — that belongs to pkg/wire, which is built on top of it.
package varint

import (
	"errors"
	"math/bits"
)

// ErrTruncated is returned when a varint's terminating byte (high bit
// clear) does not appear within the width-specific maximum byte count.
var ErrTruncated = errors.New("varint: truncated")

// Maximum encoded byte counts per width, per spec §4.B: ceil(bits/7).
const (
	MaxBytesU16  = 3
	MaxBytesU32  = 5
	MaxBytesU64  = 10
	MaxBytesU128 = 19
)

// ============================================================================
// Core unsigned varint, shared by the u16/u32/u64 widths.
// ============================================================================

// AppendUvarint appends the varint encoding of v to buf, returning the
// extended slice.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// SizeUvarint returns the number of bytes AppendUvarint would produce for v.
func SizeUvarint(v uint64) int {
	if v == 0 {
		return 1
	}

	used := 64 - bits.LeadingZeros64(v)

	return max(1, (used+6)/7)
}

// ReadUvarint decodes a varint from the front of data, scanning at most
// maxBytes bytes. It returns the decoded value and the number of bytes
// consumed, or ErrTruncated if no terminating byte is found in time.
func ReadUvarint(data []byte, maxBytes int) (uint64, int, error) {
	var result uint64

	for i := 0; i < maxBytes; i++ {
		if i >= len(data) {
			return 0, 0, ErrTruncated
		}

		b := data[i]
		result |= uint64(b&0x7f) << (7 * i)

		if b&0x80 == 0 {
			return result, i + 1, nil
		}
	}

	return 0, 0, ErrTruncated
}

// ============================================================================
// Width-specific encode/decode/size, u16/u32/u64.
// ============================================================================

// EncodeUint16 appends the varint encoding of v.
func EncodeUint16(buf []byte, v uint16) []byte { return AppendUvarint(buf, uint64(v)) }

// SizeUint16 returns the encoded byte count of v.
func SizeUint16(v uint16) int { return SizeUvarint(uint64(v)) }

// DecodeUint16 decodes a u16 varint of at most MaxBytesU16 bytes. A value
// wider than 16 bits is not an error: only its low 16 bits are returned.
func DecodeUint16(data []byte) (uint16, int, error) {
	v, n, err := ReadUvarint(data, MaxBytesU16)
	if err != nil {
		return 0, 0, err
	}

	return uint16(v), n, nil
}

// EncodeUint32 appends the varint encoding of v.
func EncodeUint32(buf []byte, v uint32) []byte { return AppendUvarint(buf, uint64(v)) }

// SizeUint32 returns the encoded byte count of v.
func SizeUint32(v uint32) int { return SizeUvarint(uint64(v)) }

// DecodeUint32 decodes a u32 varint.
func DecodeUint32(data []byte) (uint32, int, error) {
	v, n, err := ReadUvarint(data, MaxBytesU32)
	if err != nil {
		return 0, 0, err
	}

	return uint32(v), n, nil
}

// EncodeUint64 appends the varint encoding of v.
func EncodeUint64(buf []byte, v uint64) []byte { return AppendUvarint(buf, v) }

// SizeUint64 returns the encoded byte count of v.
func SizeUint64(v uint64) int { return SizeUvarint(v) }

// DecodeUint64 decodes a u64 varint.
func DecodeUint64(data []byte) (uint64, int, error) {
	return ReadUvarint(data, MaxBytesU64)
}

// ============================================================================
// Signed widths: zig-zag to unsigned, then the same codec.
// ============================================================================

func zigZagEncode16(n int16) uint16 { return uint16(n<<1) ^ uint16(n>>15) }
func zigZagDecode16(v uint16) int16 { return int16(v>>1) ^ -int16(v&1) }

func zigZagEncode32(n int32) uint32 { return uint32(n<<1) ^ uint32(n>>31) }
func zigZagDecode32(v uint32) int32 { return int32(v>>1) ^ -int32(v&1) }

func zigZagEncode64(n int64) uint64 { return uint64(n<<1) ^ uint64(n>>63) }
func zigZagDecode64(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// EncodeInt16 zig-zag encodes and appends the varint encoding of v.
func EncodeInt16(buf []byte, v int16) []byte { return EncodeUint16(buf, zigZagEncode16(v)) }

// SizeInt16 returns the encoded byte count of v.
func SizeInt16(v int16) int { return SizeUint16(zigZagEncode16(v)) }

// DecodeInt16 decodes a zig-zag-encoded i16 varint.
func DecodeInt16(data []byte) (int16, int, error) {
	v, n, err := DecodeUint16(data)
	if err != nil {
		return 0, 0, err
	}

	return zigZagDecode16(v), n, nil
}

// EncodeInt32 zig-zag encodes and appends the varint encoding of v.
func EncodeInt32(buf []byte, v int32) []byte { return EncodeUint32(buf, zigZagEncode32(v)) }

// SizeInt32 returns the encoded byte count of v.
func SizeInt32(v int32) int { return SizeUint32(zigZagEncode32(v)) }

// DecodeInt32 decodes a zig-zag-encoded i32 varint.
func DecodeInt32(data []byte) (int32, int, error) {
	v, n, err := DecodeUint32(data)
	if err != nil {
		return 0, 0, err
	}

	return zigZagDecode32(v), n, nil
}

// EncodeInt64 zig-zag encodes and appends the varint encoding of v.
func EncodeInt64(buf []byte, v int64) []byte { return EncodeUint64(buf, zigZagEncode64(v)) }

// SizeInt64 returns the encoded byte count of v.
func SizeInt64(v int64) int { return SizeUint64(zigZagEncode64(v)) }

// DecodeInt64 decodes a zig-zag-encoded i64 varint.
func DecodeInt64(data []byte) (int64, int, error) {
	v, n, err := DecodeUint64(data)
	if err != nil {
		return 0, 0, err
	}

	return zigZagDecode64(v), n, nil
}

// ============================================================================
// u128/i128
// ============================================================================

// AppendUint128 appends the varint encoding of v.
func AppendUint128(buf []byte, v Uint128) []byte {
	for {
		low7 := v.Lo & 0x7f
		v = v.shiftRight7()

		if v.IsZero() {
			return append(buf, byte(low7))
		}

		buf = append(buf, byte(low7)|0x80)
	}
}

// SizeUint128 returns the encoded byte count of v.
func SizeUint128(v Uint128) int {
	if v.IsZero() {
		return 1
	}

	used := 128 - v.leadingZeros()

	return max(1, (used+6)/7)
}

// DecodeUint128 decodes a u128 varint.
func DecodeUint128(data []byte) (Uint128, int, error) {
	groups := make([]byte, 0, MaxBytesU128)

	for i := 0; i < MaxBytesU128; i++ {
		if i >= len(data) {
			return Uint128{}, 0, ErrTruncated
		}

		b := data[i]
		groups = append(groups, b&0x7f)

		if b&0x80 == 0 {
			var result Uint128
			for j := len(groups) - 1; j >= 0; j-- {
				result = result.shiftLeft7(uint64(groups[j]))
			}

			return result, i + 1, nil
		}
	}

	return Uint128{}, 0, ErrTruncated
}

// EncodeInt128 zig-zag encodes and appends the varint encoding of v.
func EncodeInt128(buf []byte, v Int128) []byte {
	return AppendUint128(buf, zigZagEncode128(v))
}

// SizeInt128 returns the encoded byte count of v.
func SizeInt128(v Int128) int { return SizeUint128(zigZagEncode128(v)) }

// DecodeInt128 decodes a zig-zag-encoded i128 varint.
func DecodeInt128(data []byte) (Int128, int, error) {
	v, n, err := DecodeUint128(data)
	if err != nil {
		return Int128{}, 0, err
	}

	return zigZagDecode128(v), n, nil
}
