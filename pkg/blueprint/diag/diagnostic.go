package diag

import (
	"fmt"

	"colony-hq/colony-ls/pkg/blueprint/ast"
)

// Severity classifies a diagnostic. The numeric values follow the language
// server protocol so they can be published without translation.
type Severity int

const (
	// SeverityError marks a violation the blueprint author must fix.
	SeverityError Severity = 1
	// SeverityWarning marks a finding that does not block deployment.
	SeverityWarning Severity = 2
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is one positioned finding produced by a validation pass.
// Diagnostics are advisory only: validation never rejects a document.
type Diagnostic struct {
	Range    ast.Range
	Message  string
	Severity Severity
}

// String returns a human-readable "range [severity] message" form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s", d.Range, d.Severity, d.Message)
}

// Collector is an ordered, append-only accumulator of diagnostics. It is the
// single side-effecting primitive the validation passes write through.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{diags: make([]Diagnostic, 0)}
}

// Record appends one diagnostic.
func (c *Collector) Record(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// Error appends an error-severity diagnostic at the given range.
func (c *Collector) Error(r ast.Range, message string) {
	c.Record(Diagnostic{Range: r, Message: message, Severity: SeverityError})
}

// Warning appends a warning-severity diagnostic at the given range.
func (c *Collector) Warning(r ast.Range, message string) {
	c.Record(Diagnostic{Range: r, Message: message, Severity: SeverityWarning})
}

// Extend appends a batch of diagnostics, preserving their order.
func (c *Collector) Extend(ds []Diagnostic) {
	c.diags = append(c.diags, ds...)
}

// All returns the accumulated diagnostics in insertion order.
func (c *Collector) All() []Diagnostic {
	return c.diags
}

// Len returns the number of accumulated diagnostics.
func (c *Collector) Len() int {
	return len(c.diags)
}
