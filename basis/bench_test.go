package basis_test

import (
	"testing"

	"github.com/katalvlaran/qinfo/basis"
)

func BenchmarkRepresentHermitian8(b *testing.B) {
	hb, _ := basis.NewHermitian[complex128](8)
	m := randomHermitian[complex128](b, 8, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := basis.Represent64(hb, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChannelIterate3x3(b *testing.B) {
	cb, _ := basis.NewChannel[complex128](3, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range basis.All[complex128](cb) {
		}
	}
}
