// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/masm86/asm"
	"github.com/ezrec/masm86/diag"
	"github.com/ezrec/masm86/sym"
	"github.com/ezrec/masm86/translate"
)

func main() {
	var format string
	var name string
	var xmmarg bool
	var warn int
	var verbose bool

	flag.StringVar(&format, "f", "bin", "Output format (bin, coff, elf, mach)")
	flag.StringVar(&name, "n", "", "Module name (default: source file base name)")
	flag.BoolVar(&xmmarg, "x", false, "Enable the .XMM argument form")
	flag.IntVar(&warn, "W", 2, "Warning level")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one source file", os.Args[0])
	}
	source := flag.Arg(0)

	fm, ok := asm.FormatFromName(format)
	if !ok {
		log.Fatalf("%v: unknown output format %q", os.Args[0], format)
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	ses, err := asm.NewSession(asm.Options{
		Name:      name,
		Format:    fm,
		XMMArg:    xmmarg,
		WarnLevel: warn,
	}, inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	ses.Verbose = verbose

	aerr := ses.Assemble()

	p := translate.Printer()
	for _, d := range ses.Diags.All {
		kind := "error"
		if d.Severity == diag.Warning {
			kind = "warning"
		}
		fmt.Fprintln(os.Stderr, p.Sprintf("%v(%d): %v: %v", source, d.Line, kind, d.Error()))
	}

	listSymbols(ses)

	if aerr != nil {
		os.Exit(1)
	}
}

// listSymbols prints the published configuration constants, the way the
// listing writer renders its symbol section.
func listSymbols(ses *asm.Session) {
	p := translate.Printer()
	for _, name := range ses.Module.Symbols.Names() {
		s, _ := ses.Module.Symbols.Lookup(name)
		if s.Kind == sym.Text {
			p.Printf("%-16v TEXT  %v\n", s.Name, s.TextValue)
		} else {
			p.Printf("%-16v CONST %04Xh\n", s.Name, s.Value)
		}
	}
}
