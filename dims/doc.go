// Package dims implements the index bookkeeping of composite quantum systems.
//
// A composite dimension vector [d1, d2, ..., dk] describes a Hilbert space
// H1⊗H2⊗...⊗Hk. A flat index into that space is a mixed-radix number whose
// digits are the per-subsystem indices. qinfo stores matrices row-major and
// treats subsystem 1 as the leftmost Kronecker factor, so digit 1 is the
// slowest and digit k the fastest:
//
//	index = ((i1*d2 + i2)*d3 + i3)... = Σ i_s * stride_s
//
// Subsystem selections are 1-based in the public API (subsystem 1 is the
// first declared factor). Subsystems normalizes them to sorted, de-duplicated
// 0-based positions; duplicates are accepted and collapse to one entry.
//
// Everything here is a pure function of its inputs.
package dims
