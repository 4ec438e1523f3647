// Package meta implements the metadata utilities of spec §4.H: computing
// the next available field/variant id for a Fields list, and estimating the
// on-wire byte budget of a Type without encoding a concrete value.
package meta

import (
	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/ir"
	"github.com/dnaka91/mabo/pkg/util"
)

// NextID returns the id a newly appended field/variant would receive if no
// id is written explicitly: one past the largest explicit id already present,
// or 1 if none are. The result is util.None for ast.UnitFields, which has no
// id space (spec §4.H "returns absent for Unit").
func NextID(fields ast.Fields) util.Option[uint32] {
	switch f := fields.(type) {
	case *ast.NamedFields:
		return util.Some(nextIDFromExplicit(namedIDs(f.Fields)))
	case *ast.UnnamedFields:
		return util.Some(nextIDFromExplicit(unnamedIDs(f.Fields)))
	case *ast.UnitFields:
		return util.None[uint32]()
	default:
		return util.None[uint32]()
	}
}

// NextVariantID mirrors NextID for an enum's Variant list.
func NextVariantID(variants []ast.Variant) uint32 {
	ids := make([]*ast.ID, len(variants))
	for i, v := range variants {
		ids[i] = v.ID
	}

	return nextIDFromExplicit(ids)
}

func namedIDs(fields []ast.NamedField) []*ast.ID {
	ids := make([]*ast.ID, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
	}

	return ids
}

func unnamedIDs(fields []ast.UnnamedField) []*ast.ID {
	ids := make([]*ast.ID, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
	}

	return ids
}

func nextIDFromExplicit(ids []*ast.ID) uint32 {
	var max uint32

	seen := false

	for _, id := range ids {
		if id == nil || !id.Explicit {
			continue
		}

		if !seen || id.Value > max {
			max = id.Value
			seen = true
		}
	}

	if !seen {
		return 1
	}

	return max + 1
}

// EffectiveIDs resolves the full id sequence for an ordered list of
// optional explicit ids, applying the id-generator of spec §3: each absent
// id receives one past the previous (explicit or generated) id, starting
// at 1.
func EffectiveIDs(ids []*ast.ID) []uint32 {
	out := make([]uint32, len(ids))
	next := uint32(1)

	for i, id := range ids {
		if id != nil {
			out[i] = id.Value
			next = id.Value + 1

			continue
		}

		out[i] = next
		next++
	}

	return out
}

// WireSize describes the encoded byte budget of a type: Min/Max bound the
// size in bytes, Max is nil when the size is unbounded by structure alone
// (e.g. a string's content length). Children holds the per-element budgets
// that contributed to a container's bound, for introspection by tooling.
type WireSize struct {
	Min      int
	Max      *int
	Children []WireSize
}

func fixed(n int) WireSize { return WireSize{Min: n, Max: &n} }

func unbounded(min int) WireSize { return WireSize{Min: min} }

// maxVarintBytes gives the worst-case varint byte count for each integer
// width, per spec §4.B (ceil(bits/7), 3/5/10/19 for 16/32/64/128-bit).
func maxVarintBytes(p ast.Primitive) int {
	switch p {
	case ast.U16, ast.I16:
		return 3
	case ast.U32, ast.I32:
		return 5
	case ast.U64, ast.I64:
		return 10
	case ast.U128, ast.I128:
		return 19
	default:
		return 1
	}
}

// SizeOfType computes the WireSize of t per spec §4.H. t is an ir.Type: the
// simplifier has already run by the time anything needs a size estimate
// (spec's pipeline is text -> AST -> ... -> IR -> consumers, and WireSize
// is a consumer). External references cannot be sized without resolving
// them first, so they report an unbounded budget of zero minimum, matching
// "absent" from the spec prose.
func SizeOfType(t ir.Type) WireSize {
	switch v := t.(type) {
	case ir.PrimitiveType:
		return sizeOfPrimitive(v.Kind)
	case ir.VecType:
		el := SizeOfType(v.Element)
		return WireSize{Min: varintMin(0), Children: []WireSize{el}}
	case ir.HashSetType:
		el := SizeOfType(v.Element)
		return WireSize{Min: varintMin(0), Children: []WireSize{el}}
	case ir.OptionType:
		el := SizeOfType(v.Element)
		return WireSize{Min: 1, Children: []WireSize{el}}
	case ir.NonZeroType:
		return SizeOfType(v.Element)
	case ir.ArrayType:
		el := SizeOfType(v.Element)
		n := int(v.Size)
		size := WireSize{Min: varintLenSize(uint64(n)) + el.Min*n, Children: []WireSize{el}}
		if el.Max != nil {
			max := varintLenSize(uint64(n)) + *el.Max*n
			size.Max = &max
		}

		return size
	case ir.HashMapType:
		k := SizeOfType(v.Key)
		val := SizeOfType(v.Value)
		return WireSize{Min: varintMin(0), Children: []WireSize{k, val}}
	case ir.TupleType:
		children := make([]WireSize, len(v.Elements))
		min := 0
		max := 0
		bounded := true

		for i, el := range v.Elements {
			s := SizeOfType(el)
			children[i] = s
			min += s.Min

			if s.Max == nil {
				bounded = false
			} else {
				max += *s.Max
			}
		}

		size := WireSize{Min: min, Children: children}
		if bounded {
			size.Max = &max
		}

		return size
	case ir.ExternalType, ir.GenericType:
		return unbounded(0)
	default:
		return unbounded(0)
	}
}

func sizeOfPrimitive(p ast.Primitive) WireSize {
	switch p {
	case ast.Bool, ast.U8, ast.I8:
		return fixed(1)
	case ast.U16, ast.I16, ast.U32, ast.I32, ast.U64, ast.I64, ast.U128, ast.I128:
		return WireSize{Min: 1, Max: intPtr(maxVarintBytes(p))}
	case ast.F32:
		return fixed(4)
	case ast.F64:
		return fixed(8)
	case ast.String, ast.StringRef, ast.Bytes, ast.BytesRef:
		return unbounded(varintMin(0))
	case ast.BoxString, ast.BoxBytes:
		return unbounded(varintMin(0))
	default:
		return unbounded(0)
	}
}

// varintMin is the minimum byte count a length prefix can contribute: the
// length-prefix varint is at least 1 byte, and content length is unbounded.
func varintMin(contentMin int) int { return 1 + contentMin }

// varintLenSize returns the encoded size of a u64 length prefix holding n.
func varintLenSize(n uint64) int {
	size := 1
	for v := n >> 7; v > 0; v >>= 7 {
		size++
	}

	return size
}

func intPtr(v int) *int { return &v }
