package diag

import "github.com/dnaka91/mabo/pkg/source"

// Renderer formats diagnostics against the file they were raised against.
// Three backends are provided: Plain (no ANSI, for log files/CI), Graphical
// (caret-annotated source snippets with ANSI colour, for interactive
// terminals), and JSON (machine-readable, for editor/LSP consumption).
type Renderer interface {
	Render(file *source.File, diags []*Diagnostic) string
}

// primaryLabel returns the diagnostic's own span as a synthetic label when
// it carries no explicit labels of its own, so every renderer can assume at
// least one range to display.
func primaryLabel(d *Diagnostic) Label {
	if len(d.Labels) > 0 {
		return d.Labels[0]
	}

	return Label{Span: d.Span, Message: d.Message}
}
