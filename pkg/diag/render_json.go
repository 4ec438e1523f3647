package diag

import (
	"github.com/segmentio/encoding/json"

	"github.com/dnaka91/mabo/pkg/source"
)

// JSONRenderer formats diagnostics as a JSON array, for editor and
// language-server consumption; byte spans are reported alongside (line,
// column) so a consumer can pick whichever coordinate system it needs
// without re-scanning the source.
type JSONRenderer struct {
	// Indent, when non-empty, is passed to json.MarshalIndent (e.g. "  ").
	Indent string
}

type jsonLabel struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

type jsonDiagnostic struct {
	Code     string          `json:"code"`
	Severity string          `json:"severity"`
	Message  string          `json:"message"`
	Help     string          `json:"help,omitempty"`
	Labels   []jsonLabel     `json:"labels"`
	Cause    *jsonDiagnostic `json:"cause,omitempty"`
}

func toJSONLabel(file *source.File, l Label) jsonLabel {
	pos := file.PositionOf(l.Span.Start())

	return jsonLabel{
		Start:   l.Span.Start(),
		End:     l.Span.End(),
		Line:    pos.Line,
		Column:  pos.Column,
		Message: l.Message,
	}
}

func toJSONDiagnostic(file *source.File, d *Diagnostic) *jsonDiagnostic {
	if d == nil {
		return nil
	}

	labels := d.Labels
	if len(labels) == 0 {
		labels = []Label{primaryLabel(d)}
	}

	out := &jsonDiagnostic{
		Code:     d.Code,
		Severity: d.Severity.String(),
		Message:  d.Message,
		Help:     d.Help,
		Cause:    toJSONDiagnostic(file, d.Cause),
	}

	for _, l := range labels {
		out.Labels = append(out.Labels, toJSONLabel(file, l))
	}

	return out
}

func (r JSONRenderer) Render(file *source.File, diags []*Diagnostic) string {
	out := make([]*jsonDiagnostic, len(diags))
	for i, d := range diags {
		out[i] = toJSONDiagnostic(file, d)
	}

	var (
		data []byte
		err  error
	)

	if r.Indent != "" {
		data, err = json.MarshalIndent(out, "", r.Indent)
	} else {
		data, err = json.Marshal(out)
	}

	if err != nil {
		return "[]"
	}

	return string(data)
}
