package diag

import (
	"github.com/ezrec/masm86/translate"
)

var f = translate.From

var messages = map[Code]string{
	ExpectedMemoryModel:      "expected memory model",
	SyntaxError:              "syntax error: %v",
	ModelDeclaredAlready:     "memory model declared already",
	InvalidModelParamForFlat: "invalid model parameter for FLAT",
	CpuIncompatibleForFlat:   "FLAT model requires .386 or higher",
	CpuOptionInvalid:         "CPU option %v is not valid for the current CPU",
}

// Error makes Diagnostic usable as the error value a directive handler
// returns on hard stop.
func (d Diagnostic) Error() (text string) {
	format, ok := messages[d.Code]
	if !ok {
		return f("diagnostic %d", int(d.Code))
	}
	if d.Arg != "" {
		return f(format, d.Arg)
	}
	return f(format)
}

// Is matches any two diagnostics with the same code, so callers can use
// errors.Is against a code-only Diagnostic.
func (d Diagnostic) Is(err error) (ok bool) {
	other, ok := err.(Diagnostic)
	if !ok {
		return false
	}
	return other.Code == d.Code
}
