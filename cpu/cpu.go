// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Level is the instruction-set target. Levels are cumulative: selecting a
// level implies every lower level is also present.
type Level int

//go:generate go tool stringer -linecomment -type=Level
const (
	Level8086 = Level(0) // 8086
	Level186  = Level(1) // 186
	Level286  = Level(2) // 286
	Level386  = Level(3) // 386
	Level486  = Level(4) // 486
	Level586  = Level(5) // 586
	Level686  = Level(6) // 686
	Level64   = Level(7) // X64
)

// Fpu is the floating-point coprocessor generation.
type Fpu int

//go:generate go tool stringer -linecomment -type=Fpu
const (
	FpuNone  = Fpu(0) // NO87
	Fpu8087  = Fpu(1) // 8087
	Fpu80287 = Fpu(2) // 287
	Fpu80387 = Fpu(3) // 387
)

// Extension is an independently togglable SIMD feature.
type Extension int

//go:generate go tool stringer -linecomment -type=Extension
const (
	ExtMMX   = Extension(0) // MMX
	ExtK3D   = Extension(1) // K3D
	ExtSSE1  = Extension(2) // SSE1
	ExtSSE2  = Extension(3) // SSE2
	ExtSSE3  = Extension(4) // SSE3
	ExtSSSE3 = Extension(5) // SSSE3
	ExtSSE4  = Extension(6) // SSE4
)

// AllExtensions lists every extension in ordinal order.
var AllExtensions = []Extension{
	ExtMMX, ExtK3D, ExtSSE1, ExtSSE2, ExtSSE3, ExtSSSE3, ExtSSE4,
}

// Word is the published MASM-compatible capability word (the @Cpu value).
type Word uint16

const (
	M8086      = Word(0x0001)
	M186       = Word(0x0002)
	M286       = Word(0x0004)
	M386       = Word(0x0008)
	M486       = Word(0x0010)
	M586       = Word(0x0020)
	M686       = Word(0x0040)
	MProtected = Word(0x0080)
	M8087      = Word(0x0100)
	M287       = Word(0x0400)
	M387       = Word(0x0800)
)

// levelBits maps a level to its cumulative word bits. The 64-bit level
// publishes the same bits as 686; the word has no lane for it.
var levelBits = map[Level]Word{
	Level8086: M8086,
	Level186:  M8086 | M186,
	Level286:  M8086 | M186 | M286,
	Level386:  M8086 | M186 | M286 | M386,
	Level486:  M8086 | M186 | M286 | M386 | M486,
	Level586:  M8086 | M186 | M286 | M386 | M486 | M586,
	Level686:  M8086 | M186 | M286 | M386 | M486 | M586 | M686,
	Level64:   M8086 | M186 | M286 | M386 | M486 | M586 | M686,
}

var fpuBits = map[Fpu]Word{
	FpuNone:  0,
	Fpu8087:  M8087,
	Fpu80287: M8087 | M287,
	Fpu80387: M8087 | M287 | M387,
}

// State is the CPU capability state of one translation unit.
type State struct {
	Level     Level
	Protected bool
	Fpu       Fpu
	No87      bool
	Ext       mapset.Set[Extension]

	fpuExplicit bool
}

// New creates a State in the 8086 default, with the FPU auto-derived for
// that level.
func New() *State {
	s := &State{
		Ext: mapset.NewSet[Extension](),
	}
	s.SetLevel(Level8086, false)
	return s
}

// SetLevel selects a new cumulative CPU level. The previous level,
// protected-mode flag and the whole extension set are discarded, except
// that the 64-bit level force-enables every extension. When no explicit
// FPU has been chosen and .NO87 is not active, the FPU is re-derived from
// the new level.
func (s *State) SetLevel(level Level, protected bool) {
	s.Level = level
	s.Protected = protected

	s.Ext.Clear()
	if level >= Level64 {
		s.Ext.Append(AllExtensions...)
		s.Protected = true
	}

	if !s.No87 && !s.fpuExplicit {
		switch {
		case level < Level286:
			s.Fpu = Fpu8087
		case level < Level386:
			s.Fpu = Fpu80287
		default:
			s.Fpu = Fpu80387
		}
	}
}

// SetFpu selects an explicit FPU generation. The CPU level and extension
// set are untouched.
func (s *State) SetFpu(fpu Fpu) {
	s.Fpu = fpu
	s.No87 = false
	s.fpuExplicit = true
}

// SetNo87 disables FPU code generation and blocks later auto-derivation.
func (s *State) SetNo87() {
	s.Fpu = FpuNone
	s.No87 = true
	s.fpuExplicit = true
}

// Enable adds one extension. Enabling an extension never raises the CPU
// level; the asymmetry with SetLevel's extension reset is deliberate.
func (s *State) Enable(ext Extension) {
	s.Ext.Add(ext)
}

// Has reports whether an extension is enabled.
func (s *State) Has(ext Extension) bool {
	return s.Ext.Contains(ext)
}

// Word derives the published capability word from the level, the
// protected-mode flag and the FPU generation. Extensions have no lane in
// the word; the instruction validator queries the set directly.
func (s *State) Word() (w Word) {
	w = levelBits[s.Level]
	if s.Protected {
		w |= MProtected
	}
	w |= fpuBits[s.Fpu]
	return
}

// DefaultAddressWidth is the default segment address width implied by the
// level alone: 16 below 386, 32 from 386, 64 at the 64-bit level.
func (s *State) DefaultAddressWidth() (width int) {
	switch {
	case s.Level >= Level64:
		width = 64
	case s.Level >= Level386:
		width = 32
	default:
		width = 16
	}
	return
}
