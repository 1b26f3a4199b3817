// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package model holds the memory-model, language-convention, stack-distance
// and OS token tables of the masm86 front end.
package model

import (
	"strings"
)

// Model is the memory model. The ordinal of each named model is its
// 1-based position in the directive token list; None marks "not yet set".
type Model int

const (
	None    = Model(0)
	Tiny    = Model(1)
	Small   = Model(2)
	Compact = Model(3)
	Medium  = Model(4)
	Large   = Model(5)
	Huge    = Model(6)
	Flat    = Model(7)
)

// Tokens lists the model names in ordinal order.
var Tokens = []string{
	"TINY", "SMALL", "COMPACT", "MEDIUM", "LARGE", "HUGE", "FLAT",
}

func (m Model) String() (name string) {
	if m == None {
		return "NONE"
	}
	return Tokens[int(m)-1]
}

// FromToken resolves a model name, case-insensitively.
func FromToken(tok string) (m Model, ok bool) {
	for n, name := range Tokens {
		if strings.EqualFold(tok, name) {
			return Model(n + 1), true
		}
	}
	return None, false
}

// FarCode reports whether the model's code pointer is far.
func (m Model) FarCode() bool {
	return m == Medium || m == Large || m == Huge
}

// FarData reports the model's data pointer tier: 0 near, 1 far,
// 2 huge-far.
func (m Model) FarData() (tier int) {
	switch m {
	case Compact, Large:
		tier = 1
	case Huge:
		tier = 2
	}
	return
}

// Language is a calling-convention token. The ordinal is the published
// @Interface value.
type Language int

//go:generate go tool stringer -linecomment -type=Language
const (
	LangNone       = Language(0)  // NONE
	LangC          = Language(1)  // C
	LangSyscall    = Language(2)  // SYSCALL
	LangStdcall    = Language(3)  // STDCALL
	LangPascal     = Language(4)  // PASCAL
	LangFortran    = Language(5)  // FORTRAN
	LangBasic      = Language(6)  // BASIC
	LangFastcall   = Language(7)  // FASTCALL
	LangVectorcall = Language(8)  // VECTORCALL
	LangSysVCall   = Language(9)  // SYSVCALL
	LangRegcall    = Language(10) // REGCALL
)

var langNames = map[string]Language{
	"C":          LangC,
	"SYSCALL":    LangSyscall,
	"STDCALL":    LangStdcall,
	"PASCAL":     LangPascal,
	"FORTRAN":    LangFortran,
	"BASIC":      LangBasic,
	"FASTCALL":   LangFastcall,
	"VECTORCALL": LangVectorcall,
	"SYSVCALL":   LangSysVCall,
	"REGCALL":    LangRegcall,
}

// LanguageFromToken resolves a calling-convention name, case-insensitively.
func LanguageFromToken(tok string) (l Language, ok bool) {
	l, ok = langNames[strings.ToUpper(tok)]
	return
}

// Distance is the stack segment policy.
type Distance int

const (
	DistNone = Distance(0)
	DistNear = Distance(1)
	DistFar  = Distance(2)
)

// OS is the target operating system of the OS_ model attribute.
type OS int

const (
	OSDos = OS(0)
	OSOS2 = OS(1)
)

// Convention is the 64-bit ABI chosen for FLAT code; Default leaves the
// output format's own assumption in place.
type Convention int

//go:generate go tool stringer -linecomment -type=Convention
const (
	ConvDefault = Convention(0) // default
	ConvWin64   = Convention(1) // WIN64
	ConvSysV64  = Convention(2) // SYSV64
)

// AttrKind is the category a model attribute belongs to. A category may
// appear at most once per .MODEL directive.
type AttrKind int

const (
	AttrLang  = AttrKind(0x1)
	AttrStack = AttrKind(0x2)
	AttrOS    = AttrKind(0x4)
)

// Attr is one recognized non-language model attribute.
type Attr struct {
	Kind     AttrKind
	Distance Distance
	OS       OS
}

// Attrs maps the stack-distance and OS attribute tokens.
var Attrs = map[string]Attr{
	"NEARSTACK": {Kind: AttrStack, Distance: DistNear},
	"FARSTACK":  {Kind: AttrStack, Distance: DistFar},
	"OS_DOS":    {Kind: AttrOS, OS: OSDos},
	"OS_OS2":    {Kind: AttrOS, OS: OSOS2},
}

// AttrFromToken resolves a model attribute, case-insensitively.
func AttrFromToken(tok string) (attr Attr, ok bool) {
	attr, ok = Attrs[strings.ToUpper(tok)]
	return
}
