package affordance_test

import (
	"math/rand"
	"testing"

	"github.com/cwramsey/captree/affordance"
)

func buildBenchTree(b *testing.B) (*affordance.Tree, *rand.Rand) {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	points := randomPoints(rng, 1<<14, 3)
	tree, err := affordance.Build(points, 3, [2]float32{0.0001, 0.001}, rng)
	if err != nil {
		b.Fatal(err)
	}

	return tree, rng
}

func BenchmarkCollides(b *testing.B) {
	tree, rng := buildBenchTree(b)
	center := randomPoint(rng, 3)
	rSquared := float32(0.0005)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Collides(center, rSquared)
	}
}

func BenchmarkCollidesBatch(b *testing.B) {
	tree, rng := buildBenchTree(b)
	centers := randomPoints(rng, 8, 3)
	radii := make([]float32, 8)
	for i := range radii {
		radii[i] = 0.0005
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.CollidesBatch(centers, radii)
	}
}

func BenchmarkAffordanceSize(b *testing.B) {
	tree, _ := buildBenchTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.AffordanceSize()
	}
}
