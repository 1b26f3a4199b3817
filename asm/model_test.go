package asm

import (
	"errors"
	"testing"

	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/model"
	"github.com/ezrec/masm86/segment"
	"github.com/ezrec/masm86/token"
	"github.com/stretchr/testify/assert"
)

func testModule(opts Options) (m *Module, diags *diag.List) {
	diags = &diag.List{}
	m = NewModule(opts, diags)
	m.BeginPass(1)
	return
}

func run(m *Module, lines ...string) (err error) {
	for _, line := range lines {
		toks := token.Scan(line)
		if toks[0].Text == ".MODEL" || toks[0].Text == ".model" {
			err = m.ModelDirective(toks)
		} else {
			err = m.CpuDirective(toks)
		}
		if err != nil {
			return
		}
	}
	return
}

func constValue(t *testing.T, m *Module, name string) int {
	s, ok := m.Symbols.Lookup(name)
	if !ok {
		t.Fatalf("symbol %v not published", name)
	}
	return s.Value
}

func textValue(t *testing.T, m *Module, name string) string {
	s, ok := m.Symbols.Lookup(name)
	if !ok {
		t.Fatalf("symbol %v not published", name)
	}
	return s.TextValue
}

func TestModelMissingToken(t *testing.T) {
	assert := assert.New(t)

	m, diags := testModule(Options{})
	err := run(m, ".MODEL")

	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.ExpectedMemoryModel}))
	assert.Equal(model.None, m.Model)
	assert.Equal(1, diags.Errors())
}

func TestModelUnknownToken(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".MODEL GIGANTIC")

	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
	assert.Equal(model.None, m.Model)
}

func TestModelOrdinals(t *testing.T) {
	assert := assert.New(t)

	for n, tok := range model.Tokens {
		if tok == "FLAT" {
			continue // needs .386; covered below
		}
		m, _ := testModule(Options{})
		err := run(m, ".MODEL "+tok)
		assert.NoError(err, tok)
		assert.Equal(n+1, constValue(t, m, "@Model"), tok)
	}
}

func TestFlatNeeds386(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".MODEL FLAT")

	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.CpuIncompatibleForFlat}))
	assert.Equal(model.None, m.Model)

	m, _ = testModule(Options{})
	err = run(m, ".286", ".MODEL FLAT")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.CpuIncompatibleForFlat}))
	assert.Equal(model.None, m.Model)
}

func TestFlat386(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".386", ".MODEL FLAT")
	assert.NoError(err)

	assert.Equal(model.Flat, m.Model)
	assert.Equal(segment.Use32, m.Segments.DefaultUse)
	assert.Equal(0, constValue(t, m, "@CodeSize"))
	assert.Equal(0, constValue(t, m, "@DataSize"))
	assert.Equal("FLAT", textValue(t, m, "@data"))
	assert.Equal("FLAT", textValue(t, m, "@stack"))
	assert.Equal("_TEXT", textValue(t, m, "@code"))
	assert.Equal(7, constValue(t, m, "@Model"))

	_, ok := m.Segments.Group(segment.FlatName)
	assert.True(ok)
	_, ok = m.Symbols.Lookup("@ReservedStack")
	assert.False(ok)
}

func TestFlatRejectsStackDistance(t *testing.T) {
	assert := assert.New(t)

	for _, dist := range []string{"NEARSTACK", "FARSTACK"} {
		m, _ := testModule(Options{})
		err := run(m, ".386", ".MODEL FLAT, "+dist)
		assert.True(errors.Is(err, diag.Diagnostic{Code: diag.InvalidModelParamForFlat}), dist)
		assert.Equal(model.None, m.Model, dist)
	}
}

func TestLargeCFarstack(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{Name: "demo"})
	err := run(m, ".MODEL LARGE, C, FARSTACK")
	assert.NoError(err)

	assert.Equal(model.Large, m.Model)
	assert.Equal(model.LangC, m.Language)
	assert.Equal(model.DistFar, m.Distance)
	assert.Equal(1, constValue(t, m, "@CodeSize"))
	assert.Equal(1, constValue(t, m, "@DataSize"))
	assert.Equal(1, constValue(t, m, "@Interface"))
	assert.Equal("demo_TEXT", textValue(t, m, "@code"))
	assert.Equal("DGROUP", textValue(t, m, "@data"))
	assert.Equal("STACK", textValue(t, m, "@stack"))
}

func TestDataSizeTiers(t *testing.T) {
	assert := assert.New(t)

	table := map[string]int{
		"TINY":    0,
		"SMALL":   0,
		"COMPACT": 1,
		"MEDIUM":  0,
		"LARGE":   1,
		"HUGE":    2,
	}

	for tok, tier := range table {
		m, _ := testModule(Options{})
		err := run(m, ".MODEL "+tok)
		assert.NoError(err, tok)
		assert.Equal(tier, constValue(t, m, "@DataSize"), tok)
	}
}

func TestModelRedeclareWarns(t *testing.T) {
	assert := assert.New(t)

	m, diags := testModule(Options{})
	err := run(m, ".MODEL HUGE", ".MODEL LARGE")
	assert.NoError(err)

	// Overwrite, not a hard stop.
	assert.Equal(model.Large, m.Model)
	assert.Equal(0, diags.Errors())
	assert.Equal(1, diags.Warnings())
	assert.Equal(diag.ModelDeclaredAlready, diags.All[0].Code)
}

func TestDuplicateAttributeStopsScan(t *testing.T) {
	assert := assert.New(t)

	// The second language attribute stops attribute scanning immediately;
	// the leftover token then fails the trailing check, and nothing is
	// committed.
	m, diags := testModule(Options{})
	err := run(m, ".MODEL SMALL, C, PASCAL")

	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
	assert.Equal("PASCAL", diags.All[0].Arg)
	assert.Equal(model.None, m.Model)
	assert.Equal(model.LangNone, m.Language)
}

func TestDuplicateStackAttribute(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".MODEL SMALL, NEARSTACK, FARSTACK")

	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
	assert.Equal(model.None, m.Model)
	assert.Equal(model.DistNone, m.Distance)
}

func TestAttributesInAnyOrder(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".MODEL MEDIUM, OS_OS2, PASCAL, NEARSTACK")
	assert.NoError(err)

	assert.Equal(model.Medium, m.Model)
	assert.Equal(model.LangPascal, m.Language)
	assert.Equal(model.DistNear, m.Distance)
	assert.Equal(model.OSOS2, m.OS)
}

func TestTrailingGarbage(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".MODEL SMALL EXTRA")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
	assert.Equal(model.None, m.Model)

	m, _ = testModule(Options{})
	err = run(m, ".MODEL SMALL,")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
	assert.Equal(model.None, m.Model)
}

func TestAbiHeuristic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		format Format
		lang   string
		conv   model.Convention
	}){
		{"elf_sysvcall", FormatElf, "SYSVCALL", model.ConvSysV64},
		{"elf_syscall", FormatElf, "SYSCALL", model.ConvSysV64},
		{"elf_regcall", FormatElf, "REGCALL", model.ConvSysV64},
		{"mach_sysvcall", FormatMach, "SYSVCALL", model.ConvSysV64},
		{"coff_fastcall", FormatCoff, "FASTCALL", model.ConvWin64},
		{"coff_vectorcall", FormatCoff, "VECTORCALL", model.ConvWin64},
		{"coff_regcall", FormatCoff, "REGCALL", model.ConvWin64},
		{"elf_fastcall", FormatElf, "FASTCALL", model.ConvDefault},
		{"coff_sysvcall", FormatCoff, "SYSVCALL", model.ConvDefault},
		{"bin_sysvcall", FormatBin, "SYSVCALL", model.ConvDefault},
		{"elf_c", FormatElf, "C", model.ConvDefault},
	}

	for _, entry := range table {
		m, _ := testModule(Options{Format: entry.format})
		err := run(m, ".X64", ".MODEL FLAT, "+entry.lang)
		assert.NoError(err, entry.name)
		assert.Equal(entry.conv, m.Convention, entry.name)

		// FLAT counts as far code once a 64-bit convention is in effect.
		far := 0
		if entry.conv != model.ConvDefault {
			far = 1
		}
		assert.Equal(far, constValue(t, m, "@CodeSize"), entry.name)
		assert.Equal(0, constValue(t, m, "@ReservedStack"), entry.name)
	}
}

func TestAbiHeuristicNeeds64(t *testing.T) {
	assert := assert.New(t)

	// A 32-bit FLAT model never triggers the override.
	m, _ := testModule(Options{Format: FormatElf})
	err := run(m, ".386", ".MODEL FLAT, SYSVCALL")
	assert.NoError(err)
	assert.Equal(model.ConvDefault, m.Convention)
	assert.Equal(0, constValue(t, m, "@CodeSize"))
}
