package pkdt

import (
	"math"
	"math/rand"

	"github.com/cwramsey/captree/partition"
)

// maxDim is the structural ceiling on dimension; Build rejects D >= 255,
// the same bound affordance.Build enforces, for consistency between the
// two structures.
const maxDim = 255

// buildSeed is the fixed seed for the internal quickselect RNG used during
// Build. Build's public signature takes no rng parameter, unlike
// affordance.Build. Callers never observe or control build-time randomness
// here, so determinism from a fixed seed is an internal implementation
// detail, not an externally observable contract.
const buildSeed = -0x61c8864680b583eb // int64 with bit pattern 0x9e3779b97f4a7c15

// Build constructs a Tree containing every point in points. Build changes
// the relative order it reads points in (via an internal working copy) but
// never mutates the slices passed in.
//
// Build panics if dim >= 255, if points is empty, or if any point does not
// have length dim. All three are caller contract violations, not runtime
// data conditions.
func Build(points [][]float32, dim int) *Tree {
	if dim >= maxDim {
		panic("pkdt: dim must be < 255")
	}
	if len(points) == 0 {
		panic("pkdt: points must be non-empty")
	}
	for _, p := range points {
		if len(p) != dim {
			panic("pkdt: point dimension mismatch")
		}
	}

	n := len(points)
	n2 := nextPow2(n)

	padPoint := make([]float32, dim)
	for i := range padPoint {
		padPoint[i] = float32(math.Inf(1))
	}

	working := make([][]float32, n2)
	copy(working, points)
	for i := n; i < n2; i++ {
		working[i] = padPoint
	}

	tests := make([]float32, n2-1)
	for i := range tests {
		tests[i] = float32(math.Inf(1))
	}

	rng := rand.New(rand.NewSource(buildSeed))
	buildRecur(working, tests, dim, 0, 0, rng)

	flat := make([]float32, n2*dim)
	for i, p := range working {
		for c := 0; c < dim; c++ {
			flat[c*n2+i] = p[c]
		}
	}

	return &Tree{Dim: dim, N2: n2, tests: tests, points: flat}
}

// buildRecur partitions points in place along cycling axes, writing
// split values into tests at breadth-first index idx, until every slice has
// shrunk to a single point (a leaf).
func buildRecur(points [][]float32, tests []float32, dim, depth, idx int, rng *rand.Rand) {
	if len(points) <= 1 {
		return
	}
	axis := depth % dim
	tests[idx] = partition.MedianPartition(points, axis, rng)

	half := len(points) / 2
	nextDepth := depth + 1
	buildRecur(points[:half], tests, dim, nextDepth, 2*idx+1, rng)
	buildRecur(points[half:], tests, dim, nextDepth, 2*idx+2, rng)
}

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
