// Package cpu implements the CPU capability state machine for the masm86
// front end.
//
// The state tracks four independent axes: the cumulative CPU level (8086
// through 64-bit), the FPU generation, the SIMD extension set, and the
// protected-mode flag. A pure derivation folds the first, second and fourth
// axes into the MASM-compatible @Cpu capability word; the exact bit layout
// of that word is load-bearing for downstream listings and must not change.
package cpu
