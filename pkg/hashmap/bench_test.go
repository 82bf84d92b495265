//go:build go1.18

package hashmap_test

import (
	"testing"

	"github.com/flier/memutil/pkg/hashmap"
)

var sink int

func BenchmarkMapPut(b *testing.B) {
	const n = 1 << 16

	m := hashmap.New[int, int](n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(i&(n-1), i)
	}
}

func BenchmarkMapGet(b *testing.B) {
	const n = 1 << 16

	m := hashmap.New[int, int](n)
	for i := 0; i < n; i++ {
		m.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := m.Get(i & (n - 1))
		sink = v
	}
}
