// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/ezrec/masm86/cpu"
	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/model"
	"github.com/ezrec/masm86/segment"
	"github.com/ezrec/masm86/sym"
)

// Format is the output-target family hint supplied from the command line.
// The engine only reads it; header emission lives with the writers.
type Format int

const (
	FormatBin  = Format(0)
	FormatCoff = Format(1)
	FormatElf  = Format(2)
	FormatMach = Format(3)
)

var formatNames = map[string]Format{
	"bin":  FormatBin,
	"coff": FormatCoff,
	"elf":  FormatElf,
	"mach": FormatMach,
}

func (fm Format) String() (name string) {
	for text, val := range formatNames {
		if val == fm {
			return text
		}
	}
	return "bin"
}

// FormatFromName resolves a format name, case-insensitively.
func FormatFromName(name string) (fm Format, ok bool) {
	fm, ok = formatNames[strings.ToLower(name)]
	return
}

// Options are the per-translation-unit inputs the engine does not own.
type Options struct {
	// Name is the module name; far-code models derive their code segment
	// name from it.
	Name string
	// Format is the output-target family.
	Format Format
	// XMMArg enables the ".XMM n" argument form. Off by default.
	XMMArg bool
	// WarnLevel is the highest warning level still reported.
	WarnLevel int
}

// Module is the configuration of one translation unit. It is exclusively
// owned by the active pass; there is no process-wide instance.
type Module struct {
	Options Options
	Pass    int

	Cpu        *cpu.State
	Model      model.Model
	Language   model.Language
	Distance   model.Distance
	OS         model.OS
	Convention model.Convention

	// Win64Flags holds the frame-option bits of ".WIN64:n" and friends.
	Win64Flags int

	Symbols  *sym.Table
	Segments *segment.Manager

	reporter diag.Reporter
	line     int
}

// NewModule creates a translation unit in the NONE/8086 default state.
func NewModule(opts Options, reporter diag.Reporter) (m *Module) {
	if opts.Name == "" {
		opts.Name = "module"
	}
	if opts.WarnLevel == 0 {
		opts.WarnLevel = 2
	}
	m = &Module{
		Options:  opts,
		Cpu:      cpu.New(),
		Symbols:  sym.NewTable(),
		Segments: segment.NewManager(opts.Name),
		reporter: reporter,
	}
	return
}

// BeginPass starts pass n and republishes the capability word.
func (m *Module) BeginPass(n int) {
	m.Pass = n
	m.recomputeCpu()
}

// SetLine records the source line for diagnostics.
func (m *Module) SetLine(n int) {
	m.line = n
}

// errorf reports a hard diagnostic and returns it; the caller abandons the
// statement, leaving prior state in place.
func (m *Module) errorf(code diag.Code, arg string) error {
	d := diag.Diagnostic{Code: code, Severity: diag.Error, Arg: arg, Line: m.line}
	if m.reporter != nil {
		m.reporter.Report(d)
	}
	return d
}

// warn reports a recoverable diagnostic; processing continues.
func (m *Module) warn(level int, code diag.Code) {
	if level > m.Options.WarnLevel {
		return
	}
	d := diag.Diagnostic{Code: code, Severity: diag.Warning, Level: level, Line: m.line}
	if m.reporter != nil {
		m.reporter.Report(d)
	}
}

func (m *Module) publishConst(name string, value int) {
	s := m.Symbols.SetConst(name, value)
	s.Predefined = true
}

func (m *Module) publishText(name, text string) {
	s := m.Symbols.SetText(name, text)
	s.Predefined = true
}

// recomputeCpu republishes @Cpu and, while no memory model has been
// chosen, propagates the level-implied default address width to the
// segment manager.
func (m *Module) recomputeCpu() {
	m.publishConst("@Cpu", int(m.Cpu.Word()))

	if m.Model == model.None {
		switch m.Cpu.DefaultAddressWidth() {
		case 64:
			m.Segments.SetDefaultUse(segment.Use64)
		case 32:
			m.Segments.SetDefaultUse(segment.Use32)
		default:
			m.Segments.SetDefaultUse(segment.Use16)
		}
	}
}
