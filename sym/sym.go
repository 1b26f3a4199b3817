// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sym is the symbol table the configuration engine publishes its
// predefined "@" constants into.
package sym

import (
	"slices"
)

// Kind distinguishes numeric equates from text macros.
type Kind int

const (
	Const = Kind(0)
	Text  = Kind(1)
)

// Symbol is one table entry. Value is meaningful for Const symbols,
// TextValue for Text symbols.
type Symbol struct {
	Name       string
	Kind       Kind
	Value      int
	TextValue  string
	Predefined bool
}

// Table maps symbol names to entries. Symbol names are case-sensitive
// here; the front end publishes the "@" names in their canonical spelling.
type Table struct {
	syms map[string]*Symbol
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		syms: make(map[string]*Symbol, 16),
	}
}

// SetConst creates or redefines a numeric symbol.
func (t *Table) SetConst(name string, value int) (s *Symbol) {
	s = t.syms[name]
	if s == nil {
		s = &Symbol{Name: name}
		t.syms[name] = s
	}
	s.Kind = Const
	s.Value = value
	s.TextValue = ""
	return
}

// SetText creates or redefines a text symbol.
func (t *Table) SetText(name, text string) (s *Symbol) {
	s = t.syms[name]
	if s == nil {
		s = &Symbol{Name: name}
		t.syms[name] = s
	}
	s.Kind = Text
	s.Value = 0
	s.TextValue = text
	return
}

// Lookup finds a symbol by name.
func (t *Table) Lookup(name string) (s *Symbol, ok bool) {
	s, ok = t.syms[name]
	return
}

// Remove deletes a symbol, if present.
func (t *Table) Remove(name string) {
	delete(t.syms, name)
}

// Names returns all symbol names in sorted order, for deterministic
// listing output.
func (t *Table) Names() (names []string) {
	names = make([]string, 0, len(t.syms))
	for name := range t.syms {
		names = append(names, name)
	}
	slices.Sort(names)
	return
}
