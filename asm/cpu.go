// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/ezrec/masm86/cpu"
	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/model"
	"github.com/ezrec/masm86/token"
)

// abiDirectives names the explicit 64-bit calling-convention directives;
// everything else on the CPU surface is a plain setting from the cpu
// package table.
var abiDirectives = map[string]model.Convention{
	".WIN64":  model.ConvWin64,
	".SYSV64": model.ConvSysV64,
}

// IsCpuDirective reports whether a directive name belongs to the CPU
// dispatch surface.
func IsCpuDirective(name string) (ok bool) {
	if _, ok = abiDirectives[name]; ok {
		return
	}
	_, ok = cpu.SettingFor(name)
	return
}

// CpuDirective handles the CPU level, FPU, extension and 64-bit ABI
// directives. Unlike .MODEL these are pure functions of their own tokens
// and run identically on every pass.
func (m *Module) CpuDirective(toks []token.Token) (err error) {
	name := strings.ToUpper(toks[0].Text)
	i := 1

	if conv, ok := abiDirectives[name]; ok {
		return m.abiDirective(conv, toks)
	}

	set, ok := cpu.SettingFor(name)
	if !ok {
		return m.errorf(diag.CpuOptionInvalid, toks[0].Text)
	}

	switch name {
	case ".X64", ".AMD64":
		// An optional ":n" argument carries 64-bit frame flags.
		if toks[i].Kind == token.Colon {
			i++
			if i, err = m.frameFlags(toks, i); err != nil {
				return
			}
		}
	case ".XMM":
		if m.Options.XMMArg && toks[i].Kind != token.Final {
			var value int
			value, err = m.evalExpr(toks[i].Tail)
			if err != nil {
				return m.errorf(diag.SyntaxError, toks[i].Tail)
			}
			if m.Cpu.Level < cpu.Level686 {
				return m.errorf(diag.CpuOptionInvalid, toks[0].Text)
			}
			set.Ext = append([]cpu.Extension{cpu.ExtMMX}, cpu.SSESubset(value)...)
			i = len(toks) - 1
		}
	}

	if toks[i].Kind != token.Final {
		return m.errorf(diag.SyntaxError, toks[i].Tail)
	}

	m.Cpu.Apply(set)
	m.recomputeCpu()
	return nil
}

// abiDirective handles .WIN64 and .SYSV64: an explicit 64-bit calling
// convention selection, with the 64-bit CPU level implied.
func (m *Module) abiDirective(conv model.Convention, toks []token.Token) (err error) {
	i := 1
	if toks[i].Kind == token.Colon {
		i++
		if i, err = m.frameFlags(toks, i); err != nil {
			return
		}
	}
	if toks[i].Kind != token.Final {
		return m.errorf(diag.SyntaxError, toks[i].Tail)
	}

	m.Convention = conv
	set, _ := cpu.SettingFor(".X64")
	m.Cpu.Apply(set)
	m.recomputeCpu()
	return nil
}

// frameFlags evaluates the numeric tail after the ':' of a 64-bit ABI
// directive and consumes the rest of the statement.
func (m *Module) frameFlags(toks []token.Token, i int) (next int, err error) {
	if toks[i].Kind == token.Final {
		return i, m.errorf(diag.SyntaxError, toks[i-1].Tail)
	}
	value, err := m.evalExpr(toks[i].Tail)
	if err != nil {
		return i, m.errorf(diag.SyntaxError, toks[i].Tail)
	}
	m.Win64Flags = value
	return len(toks) - 1, nil
}
