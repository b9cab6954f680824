// Package diagnostic collects the non-fatal findings of a conversion so
// callers can inspect them instead of scraping console output.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Codes emitted by the mapping layer.
const (
	CodeProviderLocations = "provider.location.multiple"
	CodeInstanceLocations = "instance.location.multiple"
	CodeInstanceStarts    = "instance.start.multiple"
	CodeInstanceEnds      = "instance.end.multiple"
	CodeAlignmentEmpty    = "alignment.empty-target"

	CodeIdentifierOverridden = "identifier.url.overridden"
)

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding.
	Code    string
	Message string
	// Subject is the graph reference the finding is about (if any).
	Subject string
	// Field is the source element involved (if any).
	Field string
}

// Diagnostics holds everything reported during one conversion.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: Info,
		Code:     code,
		Message:  message,
		Subject:  subject,
		Field:    field,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// WithCode returns the warnings carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, w := range d.Warnings {
		if w.Code == code {
			out = append(out, w)
		}
	}
	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}
	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}
	return msg
}
