// Package resolve implements the cross-schema resolver of spec §4.F: it
// binds every external type reference (`path::Name`) against a namespace
// tree built from an ordered list of parsed schemas, following imports and
// detecting alias cycles. Resolution is single-threaded, stops at the
// first failure (spec §7 "Resolver stops at first failure"), and never
// mutates the schemas it resolves.
package resolve

import (
	"fmt"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/diag"
)

// Named pairs a schema with the name it is resolved under — the first
// path segment other schemas use to refer to it (spec §4.F "Input").
type Named struct {
	Name   string
	Schema *ast.Schema
}

// declKind distinguishes what a declared name in a scope actually is, so
// generic-arity checks and alias-cycle detection can tell nominal types
// (struct/enum) apart from transparent ones (alias).
type declKind int

const (
	declModule declKind = iota
	declStruct
	declEnum
	declAlias
	declConst
)

type decl struct {
	kind     declKind
	generics int
	def      ast.Definition
	scope    *scope // for declModule: the child scope it opens
}

// scope is one namespace-tree node: the root scope of a schema, or a nested
// module within it. Declared names are looked up outward through parent;
// imports are scoped to the node they're written in (spec doesn't require
// imports to be visible to nested modules, so they are not inherited).
type scope struct {
	parent   *scope
	schemaNm string
	declared map[string]decl
	imports  []*ast.ImportDef
}

func newScope(parent *scope, schemaNm string) *scope {
	return &scope{parent: parent, schemaNm: schemaNm, declared: map[string]decl{}}
}

// resolver holds the whole-run state: one root scope per input schema, plus
// the alias declarations discovered while building scopes (for the
// cycle-detection pass that runs after all scopes exist).
type resolver struct {
	roots   map[string]*scope
	aliases map[string]aliasEntry
}

type aliasEntry struct {
	def   *ast.AliasDef
	scope *scope
}

// Resolve binds every type reference across schemas, returning the first
// diagnostic encountered, or nil if every reference and alias chain
// resolves cleanly (spec §4.F, §7 "Resolver stops at first failure").
func Resolve(schemas []Named) *diag.Diagnostic {
	r := &resolver{roots: map[string]*scope{}, aliases: map[string]aliasEntry{}}

	for _, n := range schemas {
		root := newScope(nil, n.Name)
		r.roots[n.Name] = root
		r.buildScope(root, n.Schema.Defs, n.Name)
	}

	for _, n := range schemas {
		if d := r.resolveDefs(n.Schema.Defs, r.roots[n.Name]); d != nil {
			return d
		}
	}

	return r.checkAliasCycles()
}

// buildScope populates sc.declared/imports from defs, recursing into
// nested modules eagerly so the whole namespace tree exists before any
// reference is resolved (spec §4.F.1).
func (r *resolver) buildScope(sc *scope, defs []ast.Definition, schemaNm string) {
	for _, d := range defs {
		switch def := d.(type) {
		case *ast.ModuleDef:
			child := newScope(sc, schemaNm)
			sc.declared[def.Name()] = decl{kind: declModule, def: def, scope: child}
			r.buildScope(child, def.Defs, schemaNm)
		case *ast.StructDef:
			sc.declared[def.Name()] = decl{kind: declStruct, generics: len(def.Generics), def: def}
		case *ast.EnumDef:
			sc.declared[def.Name()] = decl{kind: declEnum, generics: len(def.Generics), def: def}
		case *ast.AliasDef:
			sc.declared[def.Name()] = decl{kind: declAlias, generics: len(def.Generics), def: def}
			r.aliases[aliasKey(schemaNm, def)] = aliasEntry{def: def, scope: sc}
		case *ast.ConstDef:
			sc.declared[def.Name()] = decl{kind: declConst, def: def}
		case *ast.ImportDef:
			sc.imports = append(sc.imports, def)

			if def.TypeName == "" && len(def.Segments) > 0 {
				// A path import (`use a::b;`, no trailing type name) brings
				// the last segment into scope as a name that stands for the
				// path up to and including it.
				sc.declared[def.Segments[len(def.Segments)-1]] = decl{kind: declModule, def: def}
			}
		}
	}
}

func aliasKey(schemaNm string, def *ast.AliasDef) string {
	return fmt.Sprintf("%s::%p", schemaNm, def)
}

// resolveDefs walks defs looking for type references to resolve: struct
// fields, enum variant fields, alias targets, const types.
func (r *resolver) resolveDefs(defs []ast.Definition, sc *scope) *diag.Diagnostic {
	for _, d := range defs {
		switch def := d.(type) {
		case *ast.ModuleDef:
			child := sc.declared[def.Name()].scope
			if d := r.resolveDefs(def.Defs, child); d != nil {
				return d
			}
		case *ast.StructDef:
			if d := r.resolveFields(def.Fields, sc); d != nil {
				return d
			}
		case *ast.EnumDef:
			for _, v := range def.Variants {
				if d := r.resolveFields(v.Fields, sc); d != nil {
					return d
				}
			}
		case *ast.AliasDef:
			if d := r.resolveType(def.Target, sc); d != nil {
				return d
			}
		case *ast.ConstDef:
			if d := r.resolveType(def.Type, sc); d != nil {
				return d
			}
		}
	}

	return nil
}

func (r *resolver) resolveFields(fields ast.Fields, sc *scope) *diag.Diagnostic {
	switch f := fields.(type) {
	case *ast.NamedFields:
		for _, field := range f.Fields {
			if d := r.resolveType(field.Type, sc); d != nil {
				return d
			}
		}
	case *ast.UnnamedFields:
		for _, field := range f.Fields {
			if d := r.resolveType(field.Type, sc); d != nil {
				return d
			}
		}
	}

	return nil
}

// resolveType recurses into t, resolving every ast.ExternalType it finds.
func (r *resolver) resolveType(t ast.Type, sc *scope) *diag.Diagnostic {
	switch ty := t.(type) {
	case *ast.ExternalType:
		if _, d := r.resolveExternal(ty, sc); d != nil {
			return d
		}

		for _, g := range ty.Generics {
			if d := r.resolveType(g, sc); d != nil {
				return d
			}
		}
	case *ast.VecType:
		return r.resolveType(ty.Element, sc)
	case *ast.HashSetType:
		return r.resolveType(ty.Element, sc)
	case *ast.OptionType:
		return r.resolveType(ty.Element, sc)
	case *ast.NonZeroType:
		return r.resolveType(ty.Element, sc)
	case *ast.ArrayType:
		return r.resolveType(ty.Element, sc)
	case *ast.HashMapType:
		if d := r.resolveType(ty.Key, sc); d != nil {
			return d
		}

		return r.resolveType(ty.Value, sc)
	case *ast.TupleType:
		for _, el := range ty.Elements {
			if d := r.resolveType(el, sc); d != nil {
				return d
			}
		}
	}

	return nil
}

const maxImportHops = 16

// resolveExternal implements spec §4.F.2's resolution order (b)-(e); order
// (a), binding a bare name to an enclosing generic parameter, is already
// applied by the parser (it only emits ast.ExternalType for names that are
// not a declared generic in scope, see pkg/parser/types.go).
func (r *resolver) resolveExternal(ext *ast.ExternalType, sc *scope) (decl, *diag.Diagnostic) {
	return r.resolvePath(ext.Path, ext.Name, ext, sc, 0)
}

func (r *resolver) resolvePath(path []string, name string, ext *ast.ExternalType, sc *scope, hops int) (decl, *diag.Diagnostic) {
	if hops > maxImportHops {
		return decl{}, diag.New("mabo::resolve::unresolved_reference", ext.Span(),
			"import resolution for `%s` did not terminate", name).
			WithHelp("check for an import cycle")
	}

	if len(path) == 0 {
		// (b) walk outward through declaring scopes.
		for s := sc; s != nil; s = s.parent {
			if d, ok := s.declared[name]; ok {
				return r.checkArity(d, ext)
			}
		}

		// (d) match an import in scope.
		if d, found, diagErr := r.viaImport(nil, name, ext, sc, hops); found {
			return d, diagErr
		}

		return decl{}, r.unresolved(ext, name)
	}

	// (c) first segment names a schema in the input set.
	if root, ok := r.roots[path[0]]; ok {
		return r.resolveInScope(root, path[1:], name, ext)
	}

	// (d) first segment is an imported local alias for a path.
	if d, found, diagErr := r.viaImport(path, name, ext, sc, hops); found {
		return d, diagErr
	}

	return decl{}, r.unresolved(ext, name)
}

// resolveInScope descends through module segments within a single schema's
// namespace tree, then looks up name in the final scope.
func (r *resolver) resolveInScope(sc *scope, segments []string, name string, ext *ast.ExternalType) (decl, *diag.Diagnostic) {
	cur := sc

	for _, seg := range segments {
		next, ok := cur.declared[seg]
		if !ok || next.kind != declModule || next.scope == nil {
			return decl{}, r.unresolved(ext, name)
		}

		cur = next.scope
	}

	d, ok := cur.declared[name]
	if !ok {
		return decl{}, r.unresolved(ext, name)
	}

	return r.checkArity(d, ext)
}

// viaImport looks for an import in sc (and, per (d), only sc itself — an
// import is not inherited by nested modules) whose bound local name
// matches the unresolved head of the reference, substitutes its full path,
// and re-resolves. found is false if no import matches, letting the caller
// fall through to an unresolved-reference diagnostic.
func (r *resolver) viaImport(path []string, name string, ext *ast.ExternalType, sc *scope, hops int) (decl, bool, *diag.Diagnostic) {
	head := name
	rest := path

	if len(path) > 0 {
		head = path[0]
		rest = path[1:]
	}

	for _, imp := range sc.imports {
		if imp.TypeName != "" && len(rest) == 0 && imp.TypeName == head {
			d, diagErr := r.resolvePath(imp.Segments, imp.TypeName, ext, sc, hops+1)
			return d, true, diagErr
		}

		if imp.TypeName == "" && len(imp.Segments) > 0 && imp.Segments[len(imp.Segments)-1] == head {
			newPath := append(append([]string{}, imp.Segments...), rest...)
			d, diagErr := r.resolvePath(newPath, name, ext, sc, hops+1)

			return d, true, diagErr
		}
	}

	return decl{}, false, nil
}

func (r *resolver) checkArity(d decl, ext *ast.ExternalType) (decl, *diag.Diagnostic) {
	if d.generics != len(ext.Generics) {
		diagErr := diag.New("mabo::resolve::generic_arity_mismatch", ext.Span(),
			"`%s` takes %d generic argument(s), found %d", ext.Name, d.generics, len(ext.Generics)).
			WithHelp("pass exactly the declared number of generic arguments")

		return decl{}, diagErr
	}

	return d, nil
}

func (r *resolver) unresolved(ext *ast.ExternalType, name string) *diag.Diagnostic {
	return diag.New("mabo::resolve::unresolved_reference", ext.Span(),
		"cannot resolve `%s`", qualifiedDisplay(ext.Path, name)).
		WithHelp("check the spelling, or add a `use` import for it")
}

func qualifiedDisplay(path []string, name string) string {
	out := ""

	for _, seg := range path {
		out += seg + "::"
	}

	return out + name
}

// checkAliasCycles implements spec §4.F.4: a cycle through a chain of
// aliases that never passes through a nominal type (struct/enum) is an
// error. Only a direct, unwrapped alias-to-alias reference extends the
// chain; an alias target nested inside a container (vec<Alias>, etc.) is
// not followed, since the container itself is a concrete wire shape.
func (r *resolver) checkAliasCycles() *diag.Diagnostic {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)

	state := map[string]int{}

	var visit func(key string) *diag.Diagnostic

	visit = func(key string) *diag.Diagnostic {
		switch state[key] {
		case done:
			return nil
		case visiting:
			entry := r.aliases[key]
			d := diag.New("mabo::resolve::alias_cycle", entry.def.Span(),
				"alias `%s` forms a cycle with another alias", entry.def.Name())
			d.WithHelp("break the cycle by routing through a struct or enum")

			return d
		}

		state[key] = visiting

		entry := r.aliases[key]

		if nextKey, ok := r.directAliasTarget(entry); ok {
			if d := visit(nextKey); d != nil {
				return d
			}
		}

		state[key] = done

		return nil
	}

	for key := range r.aliases {
		if d := visit(key); d != nil {
			return d
		}
	}

	return nil
}

// directAliasTarget reports the key of another alias that entry's target
// directly (not through a container) refers to, if any.
func (r *resolver) directAliasTarget(entry aliasEntry) (string, bool) {
	ext, ok := entry.def.Target.(*ast.ExternalType)
	if !ok {
		return "", false
	}

	d, diagErr := r.resolveExternal(ext, entry.scope)
	if diagErr != nil || d.kind != declAlias {
		return "", false
	}

	aliasDef, ok := d.def.(*ast.AliasDef)
	if !ok {
		return "", false
	}

	for key, e := range r.aliases {
		if e.def == aliasDef {
			return key, true
		}
	}

	return "", false
}
