package resolve

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/parser"
	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/assert"
)

func parseNamed(t *testing.T, name, src string) Named {
	t.Helper()

	file, err := source.New(name+".mabo", []byte(src))
	assert.Equal(t, nil, err)

	schema, diags := parser.Parse(file)
	assert.Equal(t, 0, len(diags), "%v", diags)

	return Named{Name: name, Schema: schema}
}

func TestResolve_AliasAcrossSchemas(t *testing.T) {
	a := parseNamed(t, "a", "type Foo = u32;")
	b := parseNamed(t, "b", "use a::Foo;\nstruct S { x: Foo @1 }")

	d := Resolve([]Named{a, b})

	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
}

func TestResolve_UnresolvedReference(t *testing.T) {
	s := parseNamed(t, "s", "struct S { x: DoesNotExist @1 }")

	d := Resolve([]Named{s})
	if d == nil {
		t.Fatal("expected an unresolved-reference diagnostic")
	}

	assert.Equal(t, "mabo::resolve::unresolved_reference", d.Code)
}

func TestResolve_SameSchemaReference(t *testing.T) {
	s := parseNamed(t, "s", "struct Inner { value: u32 @1 }\nstruct Outer { inner: Inner @1 }")

	d := Resolve([]Named{s})
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
}

func TestResolve_GenericArityMismatch(t *testing.T) {
	s := parseNamed(t, "s", "struct Box<T> { value: T @1 }\nstruct User { b: Box @1 }")

	d := Resolve([]Named{s})
	if d == nil {
		t.Fatal("expected a generic-arity-mismatch diagnostic")
	}

	assert.Equal(t, "mabo::resolve::generic_arity_mismatch", d.Code)
}

func TestResolve_AliasCycle(t *testing.T) {
	s := parseNamed(t, "s", "type A = B;\ntype B = A;\n")

	d := Resolve([]Named{s})
	if d == nil {
		t.Fatal("expected an alias-cycle diagnostic")
	}

	assert.Equal(t, "mabo::resolve::alias_cycle", d.Code)
}

// Resolving a nested module's member from elsewhere in the same schema goes
// through an import qualified by the schema's own name, since the resolver
// only crosses a `::` boundary via a schema-name match (c) or an import (d)
// — a bare relative module path is not itself one of the resolution steps.
func TestResolve_ModulePathViaImport(t *testing.T) {
	s := parseNamed(t, "s", "mod inner {\n  struct Thing { value: u32 @1 }\n}\nuse s::inner::Thing;\nstruct Outer { t: Thing @1 }")

	d := Resolve([]Named{s})
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
}
