package asm

import (
	"errors"
	"testing"

	"github.com/ezrec/masm86/cpu"
	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/model"
	"github.com/ezrec/masm86/segment"
	"github.com/stretchr/testify/assert"
)

func TestCpuDirectivePublishesWord(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	assert.Equal(0x0101, constValue(t, m, "@Cpu"))

	err := run(m, ".386")
	assert.NoError(err)
	assert.Equal(0x0D0F, constValue(t, m, "@Cpu"))
	assert.Equal(segment.Use32, m.Segments.DefaultUse)

	err = run(m, ".X64")
	assert.NoError(err)
	assert.Equal(0x0DFF, constValue(t, m, "@Cpu"))
	assert.Equal(segment.Use64, m.Segments.DefaultUse)
}

func TestCpuWidthFrozenAfterModel(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".MODEL SMALL", ".386")
	assert.NoError(err)

	// The level-implied width only moves while no model is chosen.
	assert.Equal(segment.Use16, m.Segments.DefaultUse)
}

func TestCpuDirectiveTrailingGarbage(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".386 EXTRA")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))

	// State untouched by the failed statement.
	assert.Equal(cpu.Level8086, m.Cpu.Level)
}

func TestExtensionDirectives(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".586", ".MMX", ".K3D")
	assert.NoError(err)
	assert.True(m.Cpu.Has(cpu.ExtMMX))
	assert.True(m.Cpu.Has(cpu.ExtK3D))

	err = run(m, ".386")
	assert.NoError(err)
	assert.False(m.Cpu.Has(cpu.ExtMMX))
	assert.False(m.Cpu.Has(cpu.ExtK3D))
}

func TestXmmArgDisabledByDefault(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".686", ".XMM 2")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
}

func TestXmmArgSubset(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{XMMArg: true})
	err := run(m, ".686", ".XMM 2")
	assert.NoError(err)

	assert.True(m.Cpu.Has(cpu.ExtMMX))
	assert.True(m.Cpu.Has(cpu.ExtSSE1))
	assert.True(m.Cpu.Has(cpu.ExtSSE2))
	assert.False(m.Cpu.Has(cpu.ExtSSE3))
	assert.False(m.Cpu.Has(cpu.ExtSSE4))
}

func TestXmmArgNeeds686(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{XMMArg: true})
	err := run(m, ".586", ".XMM 2")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.CpuOptionInvalid}))
}

func TestXmmArgExpression(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{XMMArg: true})
	err := run(m, ".686", ".XMM 1 + 2")
	assert.NoError(err)
	assert.True(m.Cpu.Has(cpu.ExtSSE3))
	assert.False(m.Cpu.Has(cpu.ExtSSE4))

	// Out-of-range values select the full set.
	m, _ = testModule(Options{XMMArg: true})
	err = run(m, ".686", ".XMM 9")
	assert.NoError(err)
	assert.True(m.Cpu.Has(cpu.ExtSSE4))
}

func TestWin64Directive(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{Format: FormatCoff})
	err := run(m, ".WIN64:3")
	assert.NoError(err)

	assert.Equal(model.ConvWin64, m.Convention)
	assert.Equal(3, m.Win64Flags)
	assert.Equal(cpu.Level64, m.Cpu.Level)
	assert.Equal(segment.Use64, m.Segments.DefaultUse)
}

func TestSysV64Directive(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{Format: FormatElf})
	err := run(m, ".SYSV64")
	assert.NoError(err)

	assert.Equal(model.ConvSysV64, m.Convention)
	assert.Equal(cpu.Level64, m.Cpu.Level)
}

func TestX64FrameFlags(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{Format: FormatCoff})
	err := run(m, ".X64:7")
	assert.NoError(err)
	assert.Equal(7, m.Win64Flags)
	// The colon form carries frame flags only; it selects no convention.
	assert.Equal(model.ConvDefault, m.Convention)
}

func TestBareColonIsSyntaxError(t *testing.T) {
	assert := assert.New(t)

	m, _ := testModule(Options{})
	err := run(m, ".WIN64:")
	assert.True(errors.Is(err, diag.Diagnostic{Code: diag.SyntaxError}))
}
