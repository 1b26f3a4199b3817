// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package diag defines the diagnostic codes of the configuration engine
// and the reporting sink they are surfaced through.
package diag

// Code identifies one diagnostic kind.
type Code int

const (
	ExpectedMemoryModel      = Code(1)
	SyntaxError              = Code(2)
	ModelDeclaredAlready     = Code(3)
	InvalidModelParamForFlat = Code(4)
	CpuIncompatibleForFlat   = Code(5)
	CpuOptionInvalid         = Code(6)
)

// Severity separates the two handling tiers: an Error abandons the
// statement, a Warning lets processing continue.
type Severity int

const (
	Error   = Severity(0)
	Warning = Severity(1)
)

// Diagnostic is one reported event. Level is the warning level (warnings
// below the configured threshold may be suppressed by the sink); Arg is
// the offending source text, when the message carries one.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Level    int
	Arg      string
	Line     int
}

// Reporter is the external sink diagnostics are surfaced through.
type Reporter interface {
	Report(d Diagnostic)
}

// List is a collecting Reporter.
type List struct {
	All []Diagnostic
}

// Report appends the diagnostic. An exact duplicate of an already
// collected diagnostic is discarded: a statement that never reaches a
// committed state re-reports the same event on every pass, and the
// translation unit surfaces it once.
func (l *List) Report(d Diagnostic) {
	for _, prev := range l.All {
		if prev == d {
			return
		}
	}
	l.All = append(l.All, d)
}

// Errors counts collected hard errors.
func (l *List) Errors() (n int) {
	for _, d := range l.All {
		if d.Severity == Error {
			n++
		}
	}
	return
}

// Warnings counts collected warnings.
func (l *List) Warnings() (n int) {
	for _, d := range l.All {
		if d.Severity == Warning {
			n++
		}
	}
	return
}
