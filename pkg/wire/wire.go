// Package wire implements mabo's tagged field/variant framing on top of the
// pkg/varint codec (spec §4.C): field headers whose low 3 bits name an
// encoding class so a decoder can skip unknown fields without knowing their
// type, and the struct/enum/container encodings built from them.
package wire

import "github.com/dnaka91/mabo/pkg/varint"

// Class is the 3-bit encoding class carried in a field header's low bits. It
// tells a decoder how many bytes to skip for a field it doesn't recognise,
// which is the load-bearing mechanism behind schema evolution: a reader
// built from an older or newer schema can always skip past fields it
// doesn't know about.
type Class uint32

const (
	// ClassVarint covers the multi-byte integers: u16..u128 and i16..i128.
	ClassVarint Class = 0
	// ClassLengthPrefixed covers string, bytes, and the container types
	// (vec, hash_set, hash_map, array), all framed as a u64 length prefix
	// followed by the payload.
	ClassLengthPrefixed Class = 1
	// ClassFixed1 covers bool, u8, i8: exactly one raw byte.
	ClassFixed1 Class = 2
	// ClassFixed4 covers f32: four raw big-endian bytes.
	ClassFixed4 Class = 3
	// ClassFixed8 covers f64: eight raw big-endian bytes.
	ClassFixed8 Class = 4
)

// IsValid reports whether c is one of the five defined encoding classes.
func (c Class) IsValid() bool {
	return c <= ClassFixed8
}

func (c Class) String() string {
	switch c {
	case ClassVarint:
		return "varint"
	case ClassLengthPrefixed:
		return "length-prefixed"
	case ClassFixed1:
		return "fixed1"
	case ClassFixed4:
		return "fixed4"
	case ClassFixed8:
		return "fixed8"
	default:
		return "invalid"
	}
}

// classBits is the number of low bits of a field header reserved for the
// encoding class.
const classBits = 3

// FieldHeader packs a field id and its encoding class into the u32 header
// written immediately before a struct field's value (spec §4.C).
func FieldHeader(id uint32, class Class) uint32 {
	return (id << classBits) | uint32(class)
}

// SplitFieldHeader unpacks a field header into its id and encoding class.
func SplitFieldHeader(header uint32) (id uint32, class Class) {
	return header >> classBits, Class(header & 0x7)
}

// AppendFieldHeader appends the varint encoding of a field header.
func AppendFieldHeader(buf []byte, id uint32, class Class) []byte {
	return varint.EncodeUint32(buf, FieldHeader(id, class))
}

// AppendVariantID appends a plain (unclassed) varint-encoded variant id.
func AppendVariantID(buf []byte, id uint32) []byte {
	return varint.EncodeUint32(buf, id)
}
