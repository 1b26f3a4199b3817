// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"github.com/ezrec/masm86/cpu"
	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/model"
	"github.com/ezrec/masm86/token"
)

// ModelDirective handles
//
//	.MODEL <model>[, <language>][, NEARSTACK|FARSTACK][, OS_DOS|OS_OS2]
//
// On the first pass it validates and commits the model, the optional
// attributes, and the default segment names. On every later pass the
// committed state can no longer change, so the directive short-circuits
// straight into the derivation; downstream consumers cache the pass-1
// values and depend on the recomputation matching them exactly.
func (m *Module) ModelDirective(toks []token.Token) error {
	if m.Pass != 1 && m.Model != model.None {
		m.setModel()
		return nil
	}

	i := 1
	if toks[i].Kind == token.Final {
		return m.errorf(diag.ExpectedMemoryModel, "")
	}

	mod, ok := model.FromToken(toks[i].Text)
	if !ok {
		return m.errorf(diag.SyntaxError, toks[i].Tail)
	}
	if m.Model != model.None {
		m.warn(2, diag.ModelDeclaredAlready)
	}
	i++

	// Attribute scan. Each category may appear once; a second attribute
	// of a satisfied category stops the scan on the spot and leaves the
	// token for the trailing check below.
	var language model.Language
	var distance model.Distance
	var ostype model.OS
	var seen model.AttrKind
	for toks[i].Kind == token.Comma && toks[i+1].Kind != token.Final {
		i++
		if toks[i].Kind == token.Comma {
			continue
		}

		var kind model.AttrKind
		if lang, ok := model.LanguageFromToken(toks[i].Text); ok {
			kind = model.AttrLang
			language = lang
		} else if attr, ok := model.AttrFromToken(toks[i].Text); ok {
			kind = attr.Kind
			switch attr.Kind {
			case model.AttrStack:
				if mod == model.Flat {
					return m.errorf(diag.InvalidModelParamForFlat, "")
				}
				distance = attr.Distance
			case model.AttrOS:
				ostype = attr.OS
			}
		} else {
			break
		}
		i++

		if kind&seen != 0 {
			i--
			break
		}
		seen |= kind
	}

	if toks[i].Kind != token.Final {
		return m.errorf(diag.SyntaxError, toks[i].Tail)
	}

	if mod == model.Flat && m.Cpu.Level < cpu.Level386 {
		return m.errorf(diag.CpuIncompatibleForFlat, "")
	}

	m.Model = mod
	if seen&model.AttrLang != 0 {
		m.Language = language
	}
	if seen&model.AttrStack != 0 {
		m.Distance = distance
	}
	if seen&model.AttrOS != 0 {
		m.OS = ostype
	}

	m.setModel()
	return nil
}
