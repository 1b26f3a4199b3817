// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"github.com/ezrec/masm86/cpu"
	"github.com/ezrec/masm86/model"
	"github.com/ezrec/masm86/segment"
)

// setModel recomputes everything derived from the committed model, CPU,
// language, distance and format state, and republishes the predefined
// symbols. It runs at the end of model handling on every pass and must
// reproduce the pass-1 values exactly.
func (m *Module) setModel() {
	if m.Model == model.Flat {
		if m.Cpu.Level >= cpu.Level64 {
			m.Segments.SetDefaultUse(segment.Use64)
			m.selectConvention()
		} else {
			m.Segments.SetDefaultUse(segment.Use32)
		}
		m.Segments.DefineFlatGroup()
	}

	m.Segments.InitModel(m.Model)

	codeSize := 0
	if m.Model.FarCode() {
		codeSize = 1
	}
	if m.Model == model.Flat && m.Convention != model.ConvDefault {
		codeSize = 1
	}
	m.publishConst("@CodeSize", codeSize)
	m.publishText("@code", m.Segments.CodeName(m.Model))

	m.publishConst("@DataSize", m.Model.FarData())
	data := m.Segments.DataGroupName(m.Model)
	m.publishText("@data", data)

	stack := data
	if m.Distance == model.DistFar {
		stack = "STACK"
	}
	m.publishText("@stack", stack)

	m.publishConst("@Model", int(m.Model))
	m.publishConst("@Interface", int(m.Language))

	if m.Segments.DefaultUse == segment.Use64 {
		// Placeholder; the PROLOGUE generator rewrites it per procedure.
		m.publishConst("@ReservedStack", 0)
	} else {
		m.Symbols.Remove("@ReservedStack")
	}
}

// selectConvention is the narrow 64-bit ABI heuristic: for FLAT code at
// the 64-bit level, an ELF or Mach target with a SystemV-flavored language
// selects SYSV64, and a COFF target with a Microsoft-flavored language
// selects WIN64. Every other combination keeps whatever the output format
// already assumes. Do not widen the input combinations.
func (m *Module) selectConvention() {
	switch m.Options.Format {
	case FormatElf, FormatMach:
		switch m.Language {
		case model.LangSysVCall, model.LangRegcall, model.LangSyscall:
			m.Convention = model.ConvSysV64
		}
	case FormatCoff:
		switch m.Language {
		case model.LangFastcall, model.LangVectorcall, model.LangRegcall:
			m.Convention = model.ConvWin64
		}
	}
}
