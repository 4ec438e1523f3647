package diag

import (
	"fmt"
	"strings"

	"github.com/dnaka91/mabo/pkg/source"
)

// PlainRenderer formats diagnostics as grep-friendly, uncoloured text: one
// "path:line:col: severity[code]: message" line per diagnostic, followed by
// the offending source line and a caret, followed by help text and any
// chained causes.
type PlainRenderer struct{}

func (r PlainRenderer) Render(file *source.File, diags []*Diagnostic) string {
	var b strings.Builder

	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}

		renderPlainOne(&b, file, d)
	}

	return b.String()
}

func renderPlainOne(b *strings.Builder, file *source.File, d *Diagnostic) {
	lbl := primaryLabel(d)
	pos := file.PositionOf(lbl.Span.Start())

	fmt.Fprintf(b, "%s:%d:%d: %s[%s]: %s\n", displayPath(file), pos.Line, pos.Column, d.Severity, d.Code, d.Message)

	writeSnippet(b, file, lbl)

	for _, extra := range d.Labels[min(1, len(d.Labels)):] {
		epos := file.PositionOf(extra.Span.Start())
		fmt.Fprintf(b, "  also at %d:%d: %s\n", epos.Line, epos.Column, extra.Message)
	}

	if d.Help != "" {
		fmt.Fprintf(b, "help: %s\n", d.Help)
	}

	if d.Cause != nil {
		fmt.Fprintf(b, "caused by:\n")
		renderPlainOne(b, file, d.Cause)
	}
}

func writeSnippet(b *strings.Builder, file *source.File, lbl Label) {
	line := file.EnclosingLine(lbl.Span)

	fmt.Fprintf(b, "%5d | %s\n", line.Number, line.String())

	col := lbl.Span.Start() - line.Span.Start()
	if col < 0 {
		col = 0
	}

	width := lbl.Span.End() - lbl.Span.Start()
	if width < 1 {
		width = 1
	}

	if lbl.Span.End() > line.Span.End() {
		width = line.Span.End() - lbl.Span.Start()
	}

	fmt.Fprintf(b, "      | %s%s %s\n", strings.Repeat(" ", col), strings.Repeat("^", width), lbl.Message)
}

func displayPath(file *source.File) string {
	if file == nil || file.Path() == "" {
		return "<memory>"
	}

	return file.Path()
}
