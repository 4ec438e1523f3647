package diag

import (
	"fmt"
	"strings"

	"github.com/dnaka91/mabo/pkg/source"
	"github.com/dnaka91/mabo/pkg/util/termio"
)

// GraphicalRenderer renders diagnostics with ANSI colour: a red/yellow
// severity+code header, the source line, and a coloured caret underline.
// Colour is applied unconditionally; the renderer does not check whether
// its output goes to a terminal.
type GraphicalRenderer struct{}

func (r GraphicalRenderer) Render(file *source.File, diags []*Diagnostic) string {
	var b strings.Builder

	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}

		renderGraphicalOne(&b, file, d, 0)
	}

	return b.String()
}

func renderGraphicalOne(b *strings.Builder, file *source.File, d *Diagnostic, depth int) {
	severityColour := uint(termio.TERM_RED)
	if d.Severity == Warning {
		severityColour = termio.TERM_YELLOW
	}

	bold := termio.BoldAnsiEscape().Build()
	reset := termio.ResetAnsiEscape().Build()
	sev := termio.NewAnsiEscape().FgColour(severityColour).Build()

	lbl := primaryLabel(d)
	pos := file.PositionOf(lbl.Span.Start())
	indent := strings.Repeat("  ", depth)

	fmt.Fprintf(b, "%s%s%s%s%s[%s]%s: %s%s%s\n", indent, sev, d.Severity, reset, bold, d.Code, reset, bold, d.Message, reset)
	fmt.Fprintf(b, "%s  --> %s:%d:%d\n", indent, displayPath(file), pos.Line, pos.Column)

	line := file.EnclosingLine(lbl.Span)
	fmt.Fprintf(b, "%s%5d | %s\n", indent, line.Number, line.String())

	col := max(0, lbl.Span.Start()-line.Span.Start())
	width := max(1, lbl.Span.End()-lbl.Span.Start())

	if lbl.Span.End() > line.Span.End() {
		width = line.Span.End() - lbl.Span.Start()
	}

	fmt.Fprintf(b, "%s      | %s%s%s%s %s\n", indent, strings.Repeat(" ", col), sev, strings.Repeat("^", width), reset, lbl.Message)

	for _, extra := range d.Labels[min(1, len(d.Labels)):] {
		epos := file.PositionOf(extra.Span.Start())
		fmt.Fprintf(b, "%s  %salso at %d:%d%s: %s\n", indent, sev, epos.Line, epos.Column, reset, extra.Message)
	}

	if d.Help != "" {
		fmt.Fprintf(b, "%s  = help: %s\n", indent, d.Help)
	}

	if d.Cause != nil {
		renderGraphicalOne(b, file, d.Cause, depth+1)
	}
}
