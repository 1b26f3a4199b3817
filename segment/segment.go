// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package segment manages the simulated segments and groups created by the
// .MODEL directive, the FLAT pseudo-group, and the module's default
// address-width policy.
package segment

import (
	"github.com/ezrec/masm86/model"
)

// Dgroup is the default data group name published as @data for all
// non-FLAT models.
const Dgroup = "DGROUP"

// FlatName is the synthetic group every segment joins under the FLAT model.
const FlatName = "FLAT"

// Use is a segment address width.
type Use int

const (
	Use16 = Use(16)
	Use32 = Use(32)
	Use64 = Use(64)
)

// Segment is one (simulated) segment definition.
type Segment struct {
	Name  string
	Class string
	Group string
	Use   Use
}

// Group is a named collection of segments.
type Group struct {
	Name     string
	Segments []string
}

// Manager owns the segment and group tables of one translation unit.
type Manager struct {
	ModuleName string
	DefaultUse Use

	current  *Segment
	segments map[string]*Segment
	groups   map[string]*Group
	order    []string
}

// NewManager creates a segment manager with the 16-bit default width.
func NewManager(moduleName string) *Manager {
	return &Manager{
		ModuleName: moduleName,
		DefaultUse: Use16,
		segments:   make(map[string]*Segment, 8),
		groups:     make(map[string]*Group, 2),
	}
}

// SetDefaultUse changes the module default address width. The default only
// moves while no segment is open; inside a segment the request is dropped.
func (m *Manager) SetDefaultUse(use Use) (applied bool) {
	if m.current != nil {
		return false
	}
	m.DefaultUse = use
	return true
}

// Open makes a segment current, defining it first if needed.
func (m *Manager) Open(name, class string) (seg *Segment) {
	seg = m.define(name, class, "")
	m.current = seg
	return
}

// Close leaves the current segment.
func (m *Manager) Close() {
	m.current = nil
}

// Current returns the open segment, or nil outside any segment.
func (m *Manager) Current() *Segment {
	return m.current
}

// Lookup finds a segment by name.
func (m *Manager) Lookup(name string) (seg *Segment, ok bool) {
	seg, ok = m.segments[name]
	return
}

// Segments returns the segment names in definition order.
func (m *Manager) Segments() []string {
	return m.order
}

// Groups returns a group by name.
func (m *Manager) Group(name string) (g *Group, ok bool) {
	g, ok = m.groups[name]
	return
}

func (m *Manager) define(name, class, group string) (seg *Segment) {
	seg, ok := m.segments[name]
	if !ok {
		seg = &Segment{Name: name, Class: class, Use: m.DefaultUse}
		m.segments[name] = seg
		m.order = append(m.order, name)
	}
	if group != "" {
		m.addToGroup(group, seg)
	}
	return
}

func (m *Manager) addToGroup(name string, seg *Segment) {
	g, ok := m.groups[name]
	if !ok {
		g = &Group{Name: name}
		m.groups[name] = g
	}
	if seg.Group != name {
		seg.Group = name
		g.Segments = append(g.Segments, seg.Name)
	}
}

// DefineFlatGroup creates the FLAT pseudo-group. Safe to call on every
// pass; the group is created once.
func (m *Manager) DefineFlatGroup() {
	if _, ok := m.groups[FlatName]; !ok {
		m.groups[FlatName] = &Group{Name: FlatName}
	}
}

// CodeName returns the default code segment name for a model. Far-code
// models prefix the module name so every source module lands in its own
// code segment.
func (m *Manager) CodeName(mod model.Model) (name string) {
	name = "_TEXT"
	if mod.FarCode() {
		name = m.ModuleName + "_TEXT"
	}
	return
}

// DataGroupName returns the default data group name for a model.
func (m *Manager) DataGroupName(mod model.Model) (name string) {
	if mod == model.Flat {
		return FlatName
	}
	return Dgroup
}

// InitModel creates the simulated segments for a committed model. Creation
// happens once; later passes find the tables already populated.
func (m *Manager) InitModel(mod model.Model) {
	if mod == model.None {
		return
	}

	if mod == model.Flat {
		m.DefineFlatGroup()
		m.define("_TEXT", "CODE", FlatName)
		m.define("_DATA", "DATA", FlatName)
		m.define("_BSS", "BSS", FlatName)
		return
	}

	code := m.define(m.CodeName(mod), "CODE", "")
	if mod == model.Tiny {
		m.addToGroup(Dgroup, code)
	}
	m.define("_DATA", "DATA", Dgroup)
	m.define("CONST", "CONST", Dgroup)
	m.define("_BSS", "BSS", Dgroup)
	m.define("STACK", "STACK", Dgroup)
}
