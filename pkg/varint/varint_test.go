package varint

import (
	"math"
	"testing"

	"github.com/dnaka91/mabo/pkg/util/assert"
)

func TestSizeUint32_Boundaries(t *testing.T) {
	tests := []struct {
		v    uint32
		want int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{math.MaxUint32, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeUint32(tt.v), "size(%d)", tt.v)
	}
}

func TestUint32_RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 127, 128, 16383, 16384, math.MaxUint32} {
		buf := EncodeUint32(nil, v)
		assert.Equal(t, SizeUint32(v), len(buf))

		got, n, err := DecodeUint32(buf)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}
}

func TestInt32_SignedEndpoints(t *testing.T) {
	for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
		buf := EncodeInt32(nil, v)
		got, n, err := DecodeInt32(buf)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, MaxBytesU32, SizeInt32(math.MinInt32))
	assert.Equal(t, 1, SizeInt32(0))
}

func TestInt16_SignedEndpoints(t *testing.T) {
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		buf := EncodeInt16(nil, v)
		got, n, err := DecodeInt16(buf)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, MaxBytesU16, SizeInt16(math.MinInt16))
	assert.Equal(t, 1, SizeInt16(0))
}

func TestInt64_SignedEndpoints(t *testing.T) {
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		buf := EncodeInt64(nil, v)
		got, n, err := DecodeInt64(buf)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, MaxBytesU64, SizeInt64(math.MinInt64))
	assert.Equal(t, 1, SizeInt64(0))
}

func TestUint128_RoundTrip(t *testing.T) {
	tests := []Uint128{
		{0, 0},
		{0, 1},
		{0, 127},
		{0, 128},
		{0, math.MaxUint64},
		{1, 0},
		{math.MaxUint64, math.MaxUint64},
	}

	for _, v := range tests {
		buf := AppendUint128(nil, v)
		assert.Equal(t, SizeUint128(v), len(buf))

		got, n, err := DecodeUint128(buf)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, 1, SizeUint128(Uint128{0, 0}))
	assert.Equal(t, MaxBytesU128, SizeUint128(Uint128{math.MaxUint64, math.MaxUint64}))
}

func TestInt128_SignedEndpoints(t *testing.T) {
	minI128 := Int128{0x8000000000000000, 0}
	maxI128 := Int128{0x7fffffffffffffff, math.MaxUint64}
	negOne := Int128{math.MaxUint64, math.MaxUint64}
	zero := Int128{0, 0}
	one := Int128{0, 1}

	for _, v := range []Int128{minI128, negOne, zero, one, maxI128} {
		buf := EncodeInt128(nil, v)
		got, n, err := DecodeInt128(buf)
		assert.Equal(t, nil, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, MaxBytesU128, SizeInt128(minI128))
	assert.Equal(t, 1, SizeInt128(zero))
}

func TestReadUvarint_Truncated(t *testing.T) {
	_, _, err := ReadUvarint([]byte{0x80, 0x80}, MaxBytesU32)
	if err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeUint128_Truncated(t *testing.T) {
	_, _, err := DecodeUint128([]byte{0x80, 0x80, 0x80})
	if err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
