// Package codegen renders a simplified schema to a Go source file: one
// struct per mabo struct, a tagged-variant struct per enum (mirroring
// pkg/ir's own shape, spec §4.G), a type alias per alias, and a constant
// per const. Generation goes through github.com/consensys/bavard, the same
// templated-code-generation library the teacher uses for its field-element
// sources (pkg/util/field/internal/generator), so generated files carry the
// same "Code generated... DO NOT EDIT" banner and license header bavard
// stamps onto every file it produces there.
package codegen

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/bavard"

	"github.com/dnaka91/mabo/pkg/ast"
	"github.com/dnaka91/mabo/pkg/ir"
)

const (
	copyrightHolder = "the mabo authors"
	generatorName   = "mabo"
	templateName    = "schema.go.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Generate renders schema as packageName and writes the resulting Go
// source to out.
func Generate(schema *ir.Schema, packageName string, out io.Writer) error {
	data := buildTemplateData(schema, packageName)

	tmplDir, cleanup, err := extractTemplates()
	if err != nil {
		return fmt.Errorf("codegen: extract templates: %w", err)
	}
	defer cleanup()

	tmpFile, err := os.CreateTemp("", "mabo-codegen-*.go")
	if err != nil {
		return fmt.Errorf("codegen: create temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	tmpFile.Close()

	defer os.Remove(tmpPath)

	bgen := bavard.NewBatchGenerator(copyrightHolder, time.Now().Year(), generatorName)

	err = bgen.Generate(data, packageName, tmplDir, bavard.Entry{
		File:      tmpPath,
		Templates: []string{templateName},
	})
	if err != nil {
		return fmt.Errorf("codegen: generate: %w", err)
	}

	generated, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("codegen: read generated file: %w", err)
	}

	if _, err := out.Write(generated); err != nil {
		return fmt.Errorf("codegen: write output: %w", err)
	}

	return nil
}

// extractTemplates copies the embedded template set to a temp directory,
// since bavard.Generate reads templates from a plain filesystem path.
func extractTemplates() (dir string, cleanup func(), err error) {
	dir, err = os.MkdirTemp("", "mabo-codegen-templates-*")
	if err != nil {
		return "", nil, err
	}

	cleanup = func() { os.RemoveAll(dir) }

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		cleanup()
		return "", nil, err
	}

	for _, e := range entries {
		content, err := templateFS.ReadFile(filepath.Join("templates", e.Name()))
		if err != nil {
			cleanup()
			return "", nil, err
		}

		if err := os.WriteFile(filepath.Join(dir, e.Name()), content, 0o644); err != nil {
			cleanup()
			return "", nil, err
		}
	}

	return dir, cleanup, nil
}

type templateData struct {
	Package     string
	NeedsBigInt bool
	Consts      []constData
	Aliases     []aliasData
	Structs     []structData
	Enums       []enumData
}

type fieldData struct {
	GoName string
	GoType string
	ID     uint32
}

type structData struct {
	GoName string
	Fields []fieldData
}

type variantData struct {
	GoName string
	ID     uint32
	Fields []fieldData
}

type enumData struct {
	GoName   string
	Variants []variantData
}

type aliasData struct {
	GoName string
	GoType string
}

type constData struct {
	GoName    string
	GoType    string
	GoLiteral string
}

func buildTemplateData(schema *ir.Schema, packageName string) *templateData {
	data := &templateData{Package: packageName}

	var walk func(defs []ir.Definition)
	walk = func(defs []ir.Definition) {
		for _, d := range defs {
			switch def := d.(type) {
			case *ir.Module:
				walk(def.Defs)
			case *ir.Struct:
				data.Structs = append(data.Structs, structData{
					GoName: exportName(def.Name_),
					Fields: fieldsOf(def.Fields, &data.NeedsBigInt),
				})
			case *ir.Enum:
				variants := make([]variantData, len(def.Variants))
				for i, v := range def.Variants {
					variants[i] = variantData{
						GoName: exportName(v.Name),
						ID:     v.ID,
						Fields: fieldsOf(v.Fields, &data.NeedsBigInt),
					}
				}

				data.Enums = append(data.Enums, enumData{GoName: exportName(def.Name_), Variants: variants})
			case *ir.Alias:
				data.Aliases = append(data.Aliases, aliasData{
					GoName: exportName(def.Name_),
					GoType: goType(def.Target, &data.NeedsBigInt),
				})
			case *ir.Const:
				data.Consts = append(data.Consts, constData{
					GoName:    exportName(def.Name_),
					GoType:    goType(def.Type, &data.NeedsBigInt),
					GoLiteral: goLiteral(def.Value),
				})
			case *ir.Import:
				// nothing to generate; resolution already happened in pkg/resolve
			}
		}
	}

	walk(schema.Defs)

	return data
}

func fieldsOf(f ir.Fields, needsBigInt *bool) []fieldData {
	switch fields := f.(type) {
	case *ir.NamedFields:
		out := make([]fieldData, len(fields.Fields))
		for i, field := range fields.Fields {
			out[i] = fieldData{GoName: exportName(field.Name), GoType: goType(field.Type, needsBigInt), ID: field.ID}
		}

		return out
	case *ir.UnnamedFields:
		out := make([]fieldData, len(fields.Fields))
		for i, field := range fields.Fields {
			out[i] = fieldData{GoName: fmt.Sprintf("Field%d", i), GoType: goType(field.Type, needsBigInt), ID: field.ID}
		}

		return out
	default:
		return nil
	}
}

func goType(t ir.Type, needsBigInt *bool) string {
	switch v := t.(type) {
	case ir.PrimitiveType:
		return goPrimitive(v.Kind, needsBigInt)
	case ir.VecType:
		return "[]" + goType(v.Element, needsBigInt)
	case ir.HashSetType:
		return "map[" + goType(v.Element, needsBigInt) + "]struct{}"
	case ir.OptionType:
		return "*" + goType(v.Element, needsBigInt)
	case ir.NonZeroType:
		return goType(v.Element, needsBigInt)
	case ir.ArrayType:
		return fmt.Sprintf("[%d]%s", v.Size, goType(v.Element, needsBigInt))
	case ir.HashMapType:
		return "map[" + goType(v.Key, needsBigInt) + "]" + goType(v.Value, needsBigInt)
	case ir.TupleType:
		var b []byte

		b = append(b, "struct {"...)

		for i, el := range v.Elements {
			b = append(b, fmt.Sprintf(" Field%d %s;", i, goType(el, needsBigInt))...)
		}

		b = append(b, " }"...)

		return string(b)
	case ir.ExternalType:
		return exportName(v.Name)
	case ir.GenericType:
		return exportName(v.Name)
	default:
		return "any"
	}
}

func goPrimitive(p ast.Primitive, needsBigInt *bool) string {
	switch p {
	case ast.Bool:
		return "bool"
	case ast.U8:
		return "uint8"
	case ast.U16:
		return "uint16"
	case ast.U32:
		return "uint32"
	case ast.U64:
		return "uint64"
	case ast.U128, ast.I128:
		*needsBigInt = true
		return "*big.Int"
	case ast.I8:
		return "int8"
	case ast.I16:
		return "int16"
	case ast.I32:
		return "int32"
	case ast.I64:
		return "int64"
	case ast.F32:
		return "float32"
	case ast.F64:
		return "float64"
	case ast.String, ast.StringRef, ast.BoxString:
		return "string"
	case ast.Bytes, ast.BytesRef, ast.BoxBytes:
		return "[]byte"
	default:
		return "any"
	}
}

func goLiteral(l ast.Literal) string {
	switch v := l.(type) {
	case *ast.IntLiteral:
		return v.Value.String()
	case *ast.FloatLiteral:
		return fmt.Sprintf("%v", v.Value)
	case *ast.BoolLiteral:
		return fmt.Sprintf("%v", v.Value)
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", v.Value)
	case *ast.ByteArrayLiteral:
		return fmt.Sprintf("%#v", v.Value)
	default:
		return "nil"
	}
}

// exportName upper-cases the first rune so a mabo identifier becomes a
// legal exported Go identifier; mabo's own naming convention already
// requires PascalCase for types (pkg/validate enforces this), so this is
// normally a no-op.
func exportName(name string) string {
	if name == "" {
		return name
	}

	r := []rune(name)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - ('a' - 'A')
	}

	return string(r)
}
