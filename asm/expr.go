// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr evaluates a numeric directive argument. The committed numeric
// configuration is predeclared under plain names so flag arguments can be
// written relative to it.
func (m *Module) evalExpr(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"CPU":   starlark.MakeInt(int(m.Cpu.Word())),
		"MODEL": starlark.MakeInt(int(m.Model)),
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = int(st_int64)
	return
}
