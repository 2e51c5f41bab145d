package pkdt_test

import (
	"math/rand"
	"testing"

	"github.com/cwramsey/captree/pkdt"
)

func BenchmarkQuery1(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	points := randomPoints(rng, 1<<14, 3)
	tree := pkdt.Build(points, 3)
	needle := randomPoint(rng, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Query1(needle)
	}
}

func BenchmarkQuery1Exact(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	points := randomPoints(rng, 1<<14, 3)
	tree := pkdt.Build(points, 3)
	needle := randomPoint(rng, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Query1Exact(needle)
	}
}

func BenchmarkQueryBatch(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	points := randomPoints(rng, 1<<14, 3)
	tree := pkdt.Build(points, 3)
	needles := randomPoints(rng, 16, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Query(needles)
	}
}
