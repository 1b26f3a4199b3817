// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Setting is the decoded effect of one CPU/FPU/extension directive.
type Setting struct {
	Level     Level
	Protected bool
	HasLevel  bool

	Fpu    Fpu
	HasFpu bool
	No87   bool

	Ext []Extension
}

// settings maps directive names (upper case, leading dot) to their effect.
// .MMX/.K3D/.XMM never raise the CPU level, even though Masm would; the
// asymmetry with the level directives' extension reset is intentional.
var settings = map[string]Setting{
	".8086": {Level: Level8086, HasLevel: true},
	".186":  {Level: Level186, HasLevel: true},
	".286":  {Level: Level286, HasLevel: true},
	".286P": {Level: Level286, Protected: true, HasLevel: true},
	".386":  {Level: Level386, HasLevel: true},
	".386P": {Level: Level386, Protected: true, HasLevel: true},
	".486":  {Level: Level486, HasLevel: true},
	".486P": {Level: Level486, Protected: true, HasLevel: true},
	".586":  {Level: Level586, HasLevel: true},
	".586P": {Level: Level586, Protected: true, HasLevel: true},
	".686":  {Level: Level686, HasLevel: true},
	".686P": {Level: Level686, Protected: true, HasLevel: true},
	".X64":  {Level: Level64, HasLevel: true},

	".8087": {Fpu: Fpu8087, HasFpu: true},
	".287":  {Fpu: Fpu80287, HasFpu: true},
	".387":  {Fpu: Fpu80387, HasFpu: true},
	".NO87": {No87: true, HasFpu: true},

	".MMX": {Ext: []Extension{ExtMMX}},
	".K3D": {Ext: []Extension{ExtMMX, ExtK3D}},
	".XMM": {Ext: []Extension{ExtMMX, ExtSSE1, ExtSSE2, ExtSSE3, ExtSSSE3, ExtSSE4}},
}

// SettingFor resolves a directive name. .AMD64 is an alias of .X64.
func SettingFor(name string) (set Setting, ok bool) {
	if name == ".AMD64" {
		name = ".X64"
	}
	set, ok = settings[name]
	return
}

// SSESubset returns the extensions selected by the ".XMM n" argument form:
// each generation includes every lower one. Values outside 1..4 select the
// full set.
func SSESubset(n int) (ext []Extension) {
	if n < 1 || n > 4 {
		n = 4
	}
	ext = []Extension{ExtSSE1}
	if n >= 2 {
		ext = append(ext, ExtSSE2)
	}
	if n >= 3 {
		ext = append(ext, ExtSSE3, ExtSSSE3)
	}
	if n >= 4 {
		ext = append(ext, ExtSSE4)
	}
	return
}

// Apply folds one directive effect into the state, in the same order the
// directive classes are exclusive in the source: level first, then FPU,
// then extensions.
func (s *State) Apply(set Setting) {
	if set.HasLevel {
		s.SetLevel(set.Level, set.Protected)
	}
	if set.HasFpu {
		if set.No87 {
			s.SetNo87()
		} else {
			s.SetFpu(set.Fpu)
		}
	}
	for _, ext := range set.Ext {
		s.Enable(ext)
	}
}
