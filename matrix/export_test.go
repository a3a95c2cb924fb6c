// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the interleaved float views to matrix_test so the
// reinterpretation can be checked directly, without widening the API.
var (
	Floats64TestOnly = floats64
	Floats32TestOnly = floats32
)
