package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/dnaka91/mabo/pkg/diag"
	"github.com/dnaka91/mabo/pkg/source"
)

// ToProtocolDiagnostics converts our internal diagnostics into the LSP
// wire shape, resolving byte-offset spans against file's line structure.
func ToProtocolDiagnostics(file *source.File, diags []*diag.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))

	for _, d := range diags {
		out = append(out, protocol.Diagnostic{
			Range:    ToRange(file, d.Span),
			Severity: severityOf(d),
			Code:     d.Code,
			Source:   "mabo",
			Message:  messageOf(d),
		})
	}

	return out
}

func severityOf(d *diag.Diagnostic) protocol.DiagnosticSeverity {
	if d.Severity == diag.Warning {
		return protocol.DiagnosticSeverityWarning
	}

	return protocol.DiagnosticSeverityError
}

// messageOf appends help text below the primary message, the way an
// editor's hover-over-diagnostic popup renders it; Cause chains are not
// flattened here, since LSP has no notion of "nested diagnostic" and the
// primary message is normally enough context for an inline squiggle.
func messageOf(d *diag.Diagnostic) string {
	if d.Help == "" {
		return d.Message
	}

	return d.Message + "\n" + d.Help
}
