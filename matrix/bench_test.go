// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ugraph/matrix"
)

const benchN = 256

// BenchmarkBoolResized measures the O(n²) grow-by-one rebuild.
func BenchmarkBoolResized(b *testing.B) {
	m, err := matrix.NewBoolDense(benchN, benchN)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Resized(benchN+1, benchN+1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBoolWithout measures the O(n²) drop-one rebuild.
func BenchmarkBoolWithout(b *testing.B) {
	m, err := matrix.NewBoolDense(benchN, benchN)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Without(benchN / 2); err != nil {
			b.Fatal(err)
		}
	}
}
