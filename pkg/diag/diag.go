// Package diag implements the diagnostic engine of spec §4.I: diagnostics
// carry a stable code, a primary message, optional help text, one or more
// labeled source ranges, and chain via a cause pointer so nested parser
// failures can be peeled off one level at a time (spec §9 "Diagnostic
// chaining").
package diag

import (
	"fmt"

	"github.com/dnaka91/mabo/pkg/source"
)

// Severity distinguishes hard failures from advisory diagnostics. The core
// pipeline (parser/validator/resolver/decoder) only ever produces Error;
// Warning exists for future consumer-side lint facades.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}

	return "error"
}

// Label attaches a short message to a byte span, e.g. the narrow "inner
// cause" range pointing at the offending byte within a wider construct.
type Label struct {
	Span    source.Span
	Message string
}

// Diagnostic is one reported problem: a stable code (e.g.
// "mabo::parse::struct_def::invalid_name"), a primary message, zero or more
// labeled ranges, optional help text, and an optional cause chain.
type Diagnostic struct {
	Code     string
	Severity Severity
	Span     source.Span
	Message  string
	Help     string
	Labels   []Label
	Cause    *Diagnostic
}

// New constructs an Error-severity diagnostic with a primary span and
// message.
func New(code string, span source.Span, message string, args ...any) *Diagnostic {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	return &Diagnostic{Code: code, Severity: Error, Span: span, Message: message}
}

// WithHelp attaches help text showing the canonical shape of the construct.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// WithLabel appends a labeled range.
func (d *Diagnostic) WithLabel(span source.Span, message string, args ...any) *Diagnostic {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	d.Labels = append(d.Labels, Label{Span: span, Message: message})

	return d
}

// WithCause sets the next diagnostic down the chain.
func (d *Diagnostic) WithCause(cause *Diagnostic) *Diagnostic {
	d.Cause = cause
	return d
}

// Error implements the error interface so a Diagnostic can be returned
// wherever Go code expects one; Render should be preferred for user-facing
// output.
func (d *Diagnostic) Error() string {
	if d.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %s)", d.Code, d.Message, d.Cause.Error())
	}

	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Chain returns the diagnostic and its causes, outermost first.
func (d *Diagnostic) Chain() []*Diagnostic {
	var out []*Diagnostic

	for cur := d; cur != nil; cur = cur.Cause {
		out = append(out, cur)
	}

	return out
}
