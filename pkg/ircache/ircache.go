// Package ircache implements a compiled-IR cache file: a simplified
// ir.Schema is serialized keyed by a content hash of the source it was
// derived from, so re-running the toolchain over an unchanged schema can
// skip parsing/validating/resolving/simplifying it again. This mirrors the
// teacher's pkg/binfile.BinaryFile: a hand-rolled, versioned fixed-layout
// Header (so the magic identifier and version can be read without a full
// decode) followed by a gob-encoded body.
//
// gob is the right tool here — unlike pkg/wire (spec §4.C), this format is
// not a cross-version wire contract a reader must be able to partially
// understand; it is a same-binary cache that a version mismatch simply
// invalidates (see DESIGN.md for the full rationale).
package ircache

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/ir"
)

func init() {
	gob.Register(&ir.Module{})
	gob.Register(&ir.Struct{})
	gob.Register(&ir.Enum{})
	gob.Register(&ir.Alias{})
	gob.Register(&ir.Const{})
	gob.Register(&ir.Import{})

	gob.Register(&ir.NamedFields{})
	gob.Register(&ir.UnnamedFields{})
	gob.Register(&ir.UnitFields{})

	gob.Register(ir.PrimitiveType{})
	gob.Register(ir.VecType{})
	gob.Register(ir.HashSetType{})
	gob.Register(ir.OptionType{})
	gob.Register(ir.NonZeroType{})
	gob.Register(ir.ArrayType{})
	gob.Register(ir.HashMapType{})
	gob.Register(ir.TupleType{})
	gob.Register(ir.ExternalType{})
	gob.Register(ir.GenericType{})

	gob.Register(&ast.IntLiteral{})
	gob.Register(&ast.FloatLiteral{})
	gob.Register(&ast.BoolLiteral{})
	gob.Register(&ast.StringLiteral{})
	gob.Register(&ast.ByteArrayLiteral{})
}

// Identifier is the 8-byte magic constant marking an ircache file.
var Identifier = [8]byte{'m', 'a', 'b', 'o', 'i', 'r', 'c', '\x01'}

// MajorVersion must match exactly for a cache file to be considered
// compatible; bumping it invalidates every existing cache file, which is
// the correct behaviour for a derived artifact (just re-simplify).
const MajorVersion uint16 = 1

// Header is the fixed-layout prefix of a cache file.
type Header struct {
	Identifier  [8]byte
	MajorVersion uint16
	// ContentHash is the FNV-1a 64-bit hash of the source schema this cache
	// entry was derived from; Decode compares it against the hash of the
	// source actually on hand before trusting the cached body.
	ContentHash uint64
}

// MarshalBinary encodes the header the way the teacher's binfile.Header
// does: big-endian fixed fields, no gob.
func (h Header) MarshalBinary() []byte {
	buf := make([]byte, 0, 8+2+8)
	buf = append(buf, h.Identifier[:]...)

	var majorBytes [2]byte
	binary.BigEndian.PutUint16(majorBytes[:], h.MajorVersion)
	buf = append(buf, majorBytes[:]...)

	var hashBytes [8]byte
	binary.BigEndian.PutUint64(hashBytes[:], h.ContentHash)
	buf = append(buf, hashBytes[:]...)

	return buf
}

const headerLen = 8 + 2 + 8

// UnmarshalHeader decodes a Header from the front of buf.
func UnmarshalHeader(buf []byte) (Header, []byte, error) {
	if len(buf) < headerLen {
		return Header{}, nil, errors.New("ircache: truncated header")
	}

	var h Header
	copy(h.Identifier[:], buf[0:8])
	h.MajorVersion = binary.BigEndian.Uint16(buf[8:10])
	h.ContentHash = binary.BigEndian.Uint64(buf[10:18])

	return h, buf[headerLen:], nil
}

// ContentHash computes the cache key for a source buffer.
func ContentHash(source []byte) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	h := uint64(offset64)
	for _, b := range source {
		h ^= uint64(b)
		h *= prime64
	}

	return h
}

// Encode serializes schema into a cache-file byte slice keyed against
// source's content hash.
func Encode(source []byte, schema *ir.Schema) ([]byte, error) {
	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(schema); err != nil {
		return nil, fmt.Errorf("ircache: encode body: %w", err)
	}

	header := Header{Identifier: Identifier, MajorVersion: MajorVersion, ContentHash: ContentHash(source)}

	return append(header.MarshalBinary(), body.Bytes()...), nil
}

// Decode reads a cache-file byte slice, returning the cached schema only if
// the header identifies a compatible cache file and matches source's
// content hash; hit reports which of those held.
func Decode(data []byte, source []byte) (schema *ir.Schema, hit bool, err error) {
	header, rest, err := UnmarshalHeader(data)
	if err != nil {
		return nil, false, err
	}

	if header.Identifier != Identifier || header.MajorVersion != MajorVersion {
		return nil, false, nil
	}

	if header.ContentHash != ContentHash(source) {
		return nil, false, nil
	}

	var out ir.Schema
	if err := gob.NewDecoder(bytes.NewReader(rest)).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("ircache: decode body: %w", err)
	}

	return &out, true, nil
}
