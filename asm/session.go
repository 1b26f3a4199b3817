// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/token"
)

// Passes is the pass count of the front end. Two passes are the minimum;
// the configuration engine derives identical state on each.
const Passes = 2

// Session drives the sequential passes over one translation unit. One
// session owns one Module; passes never overlap.
type Session struct {
	Module  *Module
	Diags   *diag.List
	Verbose bool

	lines []string
}

// NewSession reads the source and prepares a translation unit.
func NewSession(opts Options, src io.Reader) (ses *Session, err error) {
	diags := &diag.List{}
	ses = &Session{
		Module: NewModule(opts, diags),
		Diags:  diags,
	}

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		ses.lines = append(ses.lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		ses = nil
	}
	return
}

// Assemble runs every pass to completion, in order. Hard directive errors
// abandon their statement and are collected; the session itself keeps
// going so one translation reports every diagnostic.
func (ses *Session) Assemble() (err error) {
	for pass := 1; pass <= Passes; pass++ {
		ses.Module.BeginPass(pass)
		err = ses.runPass()
		if err != nil {
			return
		}
	}

	if ses.Diags.Errors() > 0 {
		err = ErrAssembly
	}
	return
}

// runPass walks the token stream of the current pass in statement order.
func (ses *Session) runPass() (err error) {
	for n, line := range ses.lines {
		ses.Module.SetLine(n + 1)

		toks := token.Scan(line)
		first := toks[0]
		if first.Kind != token.ID || !strings.HasPrefix(first.Text, ".") {
			continue
		}

		name := strings.ToUpper(first.Text)
		var derr error
		switch {
		case name == ".MODEL":
			derr = ses.Module.ModelDirective(toks)
		case IsCpuDirective(name):
			derr = ses.Module.CpuDirective(toks)
		default:
			// Not a configuration directive; the parser proper owns it.
			continue
		}

		if ses.Verbose {
			if derr != nil {
				log.Printf("%v: %v: %v", ses.Module.Pass, n+1, derr)
			} else {
				log.Printf("%v: %v: %v", ses.Module.Pass, n+1, line)
			}
		}
	}
	return
}
