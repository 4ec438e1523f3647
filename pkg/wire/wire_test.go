package wire

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/util/assert"
	"github.com/dnaka91/mabo/pkg/varint"
)

// TestMinimalStruct covers spec §8 scenario 1: struct Sample { value: u32 @1 }.
func TestMinimalStruct(t *testing.T) {
	enc := NewEncoder()
	enc.FieldHeader(1, ClassVarint)
	enc.U32(5)

	assert.Equal(t, []byte{0x08, 0x05}, enc.Bytes())
	assert.Equal(t, 2, enc.Len())
}

// TestEnumWithVariants covers spec §8 scenario 2: enum E { A @1, B(u32 @1) @2 }.
func TestEnumWithVariants(t *testing.T) {
	enc := NewEncoder()
	enc.VariantID(2)
	enc.FieldHeader(1, ClassVarint)
	enc.U32(7)

	assert.Equal(t, []byte{0x02, 0x08, 0x07}, enc.Bytes())
}

// TestOptionalFieldOmission covers spec §8 scenario 3.
func TestOptionalFieldOmission(t *testing.T) {
	// {a: None} encodes to nothing at all: the field header itself is omitted.
	enc := NewEncoder()
	assert.Equal(t, 0, enc.Len())

	// {a: Some(0)} writes the field header, then the presence tag, then 0.
	enc2 := NewEncoder()
	enc2.FieldHeader(1, ClassVarint)
	enc2.OptionTag(true)
	enc2.U32(0)

	assert.Equal(t, []byte{0x08, 0x01, 0x00}, enc2.Bytes())
}

func TestFieldHeaderRoundTrip(t *testing.T) {
	enc := NewEncoder()
	enc.FieldHeader(42, ClassLengthPrefixed)

	dec := NewDecoder(enc.Bytes())
	id, class, err := dec.FieldHeader()
	assert.Equal(t, nil, err)
	assert.Equal(t, uint32(42), id)
	assert.Equal(t, ClassLengthPrefixed, class)
	assert.Equal(t, true, dec.Done())
}

func TestStringRoundTrip(t *testing.T) {
	enc := NewEncoder()
	enc.String("hello, mabo")

	dec := NewDecoder(enc.Bytes())
	got, err := dec.String()
	assert.Equal(t, nil, err)
	assert.Equal(t, "hello, mabo", got)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	enc := NewEncoder()
	enc.BytesValue([]byte{0xff, 0xfe})

	dec := NewDecoder(enc.Bytes())
	_, err := dec.String()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != InvalidUTF8 {
		t.Fatalf("expected InvalidUTF8 decode error, got %v", err)
	}
}

func TestArrayLengthMismatch(t *testing.T) {
	enc := NewEncoder()
	enc.CollectionLen(3)

	dec := NewDecoder(enc.Bytes())
	_, err := dec.ArrayLen(4)

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ArrayLengthMismatch {
		t.Fatalf("expected ArrayLengthMismatch decode error, got %v", err)
	}
}

func TestSkipFieldAllClasses(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		write func(*Encoder)
	}{
		{"varint", ClassVarint, func(e *Encoder) { e.U64(123456789) }},
		{"fixed1", ClassFixed1, func(e *Encoder) { e.U8(7) }},
		{"fixed4", ClassFixed4, func(e *Encoder) { e.F32(1.5) }},
		{"fixed8", ClassFixed8, func(e *Encoder) { e.F64(2.5) }},
		{"length-prefixed", ClassLengthPrefixed, func(e *Encoder) { e.String("skip me") }},
	}

	for _, tt := range tests {
		enc := NewEncoder()
		enc.FieldHeader(9, tt.class)
		tt.write(enc)
		// Trailing field that must still be reachable after the skip.
		enc.FieldHeader(10, ClassFixed1)
		enc.U8(0xAB)

		dec := NewDecoder(enc.Bytes())
		id, class, err := dec.FieldHeader()
		assert.Equal(t, nil, err, tt.name)
		assert.Equal(t, uint32(9), id, tt.name)

		assert.Equal(t, nil, dec.SkipField(class), tt.name)

		id2, _, err := dec.FieldHeader()
		assert.Equal(t, nil, err, tt.name)
		assert.Equal(t, uint32(10), id2, tt.name)

		v, err := dec.U8()
		assert.Equal(t, nil, err, tt.name)
		assert.Equal(t, uint8(0xAB), v, tt.name)
		assert.Equal(t, true, dec.Done(), tt.name)
	}
}

// TestNonZeroRejectsZero covers spec §4.C non_zero<T> semantics: a decoded
// zero value of the wrapped type fails with ZeroValueViolation.
func TestNonZeroRejectsZero(t *testing.T) {
	enc := NewEncoder()
	enc.U32(0)

	dec := NewDecoder(enc.Bytes())
	_, err := dec.NonZeroU32()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ZeroValueViolation {
		t.Fatalf("expected ZeroValueViolation decode error, got %v", err)
	}
}

// TestNonZeroAcceptsNonZero covers the accepting side of the same
// invariant: a non-zero u32 passes NonZeroU32 unchanged.
func TestNonZeroAcceptsNonZero(t *testing.T) {
	enc := NewEncoder()
	enc.U32(5)

	dec := NewDecoder(enc.Bytes())
	v, err := dec.NonZeroU32()
	assert.Equal(t, nil, err)
	assert.Equal(t, uint32(5), v)
}

func TestNonZeroU128RejectsZero(t *testing.T) {
	enc := NewEncoder()
	enc.U128(varint.Uint128{})

	dec := NewDecoder(enc.Bytes())
	_, err := dec.NonZeroU128()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ZeroValueViolation {
		t.Fatalf("expected ZeroValueViolation decode error, got %v", err)
	}
}

func TestNonZeroI64RejectsZero(t *testing.T) {
	enc := NewEncoder()
	enc.I64(0)

	dec := NewDecoder(enc.Bytes())
	_, err := dec.NonZeroI64()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ZeroValueViolation {
		t.Fatalf("expected ZeroValueViolation decode error, got %v", err)
	}
}

func TestNonZeroStringRejectsEmpty(t *testing.T) {
	enc := NewEncoder()
	enc.String("")

	dec := NewDecoder(enc.Bytes())
	_, err := dec.NonZeroString()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ZeroValueViolation {
		t.Fatalf("expected ZeroValueViolation decode error, got %v", err)
	}
}

func TestNonZeroBytesValueRejectsEmpty(t *testing.T) {
	enc := NewEncoder()
	enc.BytesValue(nil)

	dec := NewDecoder(enc.Bytes())
	_, err := dec.NonZeroBytesValue()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ZeroValueViolation {
		t.Fatalf("expected ZeroValueViolation decode error, got %v", err)
	}
}

func TestNonZeroCollectionLenRejectsEmpty(t *testing.T) {
	enc := NewEncoder()
	enc.CollectionLen(0)

	dec := NewDecoder(enc.Bytes())
	_, err := dec.NonZeroCollectionLen()

	var derr *DecodeError
	if !assignErr(err, &derr) || derr.Kind != ZeroValueViolation {
		t.Fatalf("expected ZeroValueViolation decode error, got %v", err)
	}

	enc2 := NewEncoder()
	enc2.CollectionLen(3)

	dec2 := NewDecoder(enc2.Bytes())
	n, err := dec2.NonZeroCollectionLen()
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, n)
}

func assignErr(err error, target **DecodeError) bool {
	de, ok := err.(*DecodeError)
	if ok {
		*target = de
	}

	return ok
}
