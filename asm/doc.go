// Package asm is the configuration engine of the masm86 front end: it
// turns the .MODEL, CPU, FPU and extension directives of a translation
// unit into one consistent module configuration, and publishes the derived
// "@" constants the rest of the assembler reads as ground truth.
//
// The engine is multi-pass. Model state is committed exactly once, during
// the first pass; every later pass replays a pure re-derivation from the
// committed state, so the published constants are byte-identical across
// passes. CPU directives carry no cross-pass state and are reprocessed in
// full on every pass.
package asm
