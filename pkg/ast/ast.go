// Package ast defines the lossless parse tree produced by pkg/parser (spec
// §3). Every node carries a source.Span; nodes are immutable once built.
// Tagged variants (Definition, Fields, Type, Literal, AttributeValue) are
// modelled as small interfaces implemented by concrete pointer-receiver
// structs, with downstream passes dispatching on them via type switches
// rather than per-type virtual methods.
package ast

import "github.com/dnaka91/mabo/pkg/source"

// Node is implemented by every AST type; it exposes the byte span the node
// was parsed from.
type Node interface {
	Span() source.Span
}

// Schema is the root of one parsed .mabo file.
type Schema struct {
	// Path is the originating file path, empty if the schema was parsed
	// from an in-memory buffer (e.g. an LSP unsaved document).
	Path string
	Doc  []string
	Defs []Definition
}

// ID is an explicit or generator-assigned field/variant id (spec §3 "ID
// assignment"). Explicit carries the written @N span for diagnostics;
// generated ids have no span of their own.
type ID struct {
	Value    uint32
	Explicit bool
	Span     source.Span
}

// Generic is a single declared generic parameter name, e.g. the T in
// struct Box<T>.
type Generic struct {
	Name string
	Span source.Span
}
