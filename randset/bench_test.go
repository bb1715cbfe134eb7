// SPDX-License-Identifier: MIT

package randset_test

import (
	"math/rand"
	"testing"

	"github.com/ctlab/rmwcs/randset"
)

// BenchmarkSet_ChurnAndDraw measures a steady insert/remove/draw mix.
func BenchmarkSet_ChurnAndDraw(b *testing.B) {
	const n = 1 << 16
	s := randset.New(n)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < n/2; i++ {
		s.Insert(r.Intn(n))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := r.Intn(n)
		if s.Contains(id) {
			s.Remove(id)
		} else {
			s.Insert(id)
		}
		if s.Len() > 0 {
			_ = s.Random(r)
		}
	}
}
