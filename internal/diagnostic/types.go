package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Codes used by document checks.
const (
	CodeDepthMismatch = "depth-mismatch"
	CodeRaggedDepth   = "ragged-depth"
	CodeUneven        = "uneven-lengths"
	CodeNonNumeric    = "non-numeric"
	CodeEmpty         = "empty"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Path locates the value in the document, e.g. "[0][2]" (if any).
	Path string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, path, format string, args ...any) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, path, format, args))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, path, format string, args ...any) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, path, format, args))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, path, format string, args ...any) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, path, format, args))
}

func newDiagnostic(sev Severity, code, path, format string, args []any) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Path != "" {
		return d.Path + ": " + msg
	}

	return msg
}
