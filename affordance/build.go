package affordance

import (
	"math"
	"math/rand"

	"github.com/cwramsey/captree/geom"
	"github.com/cwramsey/captree/partition"
)

// Build constructs an affordance Tree over points, sound for any query
// whose squared radius lies in rsqRange = [min, max]. rng supplies the
// randomness for the randomized quickselect used to pick split planes.
// Build never constructs its own random source, unlike pkdt.Build, so
// callers control and can reproduce build-time randomness directly.
//
// Build panics if dim >= 255 or if any point does not have length dim.
// It returns ErrInvalidRadiusRange if rsqRange is not 0 <= min <= max, and
// ErrDegenerateInput if two input points coincide exactly while min > 0.
// Both are properties of the input data, not of the caller's contract, so
// they are reported as an error rather than a panic.
func Build(points [][]float32, dim int, rsqRange [2]float32, rng *rand.Rand) (*Tree, error) {
	if dim >= maxDim {
		panic("affordance: dim must be < 255")
	}
	if len(points) == 0 {
		panic("affordance: points must be non-empty")
	}
	for _, p := range points {
		if len(p) != dim {
			panic("affordance: point dimension mismatch")
		}
	}
	if rsqRange[0] < 0 || rsqRange[0] > rsqRange[1] {
		return nil, ErrInvalidRadiusRange
	}
	if rsqRange[0] > 0 && hasCoincidentPoints(points) {
		return nil, ErrDegenerateInput
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

	// Root candidate set: every padded point could in principle afford a
	// collision with the root cell (the whole space).
	candidates := make([][]float32, n2)
	copy(candidates, working)

	b := &builder{dim: dim, rsqRange: rsqRange}
	rootVol := geom.NewUnboundedVolume(dim)
	b.recur(working, tests, 0, 0, candidates, rootVol, rng)
	b.starts = append(b.starts, len(b.points)/dim)

	return &Tree{
		Dim:       dim,
		N2:        n2,
		RsqRange:  rsqRange,
		tests:     tests,
		affStarts: b.starts,
		points:    b.points,
	}, nil
}

// builder accumulates the affordance buffer and leaf starts across the
// recursive build.
type builder struct {
	dim      int
	rsqRange [2]float32
	points   []float32
	starts   []int
}

// recur partitions points in place along cycling axes (mirroring
// pkdt's build), threading a shrinking candidate set and bounding volume
// down to each leaf, where the surviving candidates become that leaf's
// affordance list.
func (b *builder) recur(points [][]float32, tests []float32, depth, idx int, candidates [][]float32, vol geom.Volume, rng *rand.Rand) {
	if len(points) <= 1 {
		b.buildLeaf(points[0], candidates, vol)

		return
	}

	axis := depth % b.dim
	tests[idx] = partition.MedianPartition(points, axis, rng)
	half := len(points) / 2
	lowVol, highVol := vol.Split(tests[idx], axis)

	rsqMin, rsqMax := b.rsqRange[0], b.rsqRange[1]
	loAfford := make([][]float32, 0, len(candidates))
	hiAfford := make([][]float32, 0, len(candidates))
	for _, p := range candidates {
		// Low child candidates: exclude points so deep inside the child
		// cell (from every angle) that they would always be their own
		// closest point, and points too far to ever collide at rsq_max.
		if rsqMin < lowVol.FurthestDistSqTo(p) && lowVol.DistSqTo(p) < rsqMax {
			loAfford = append(loAfford, p)
		}
		if rsqMin < highVol.FurthestDistSqTo(p) && highVol.DistSqTo(p) < rsqMax {
			hiAfford = append(hiAfford, p)
		}
	}

	nextDepth := depth + 1
	b.recur(points[:half], tests, nextDepth, 2*idx+1, loAfford, lowVol, rng)
	b.recur(points[half:], tests, nextDepth, 2*idx+2, hiAfford, highVol, rng)
}

// buildLeaf filters the inherited candidate set down to the points that
// could genuinely collide with some legal query ball touching this leaf's
// cell, then appends center followed by the survivors to the affordance
// buffer. center is always the first entry of the leaf's slice.
func (b *builder) buildLeaf(center []float32, candidates [][]float32, vol geom.Volume) {
	rsqMin, rsqMax := b.rsqRange[0], b.rsqRange[1]
	farFromCenter := vol.FurthestDistSqTo(center)

	kept := make([][]float32, 0, len(candidates))
	for _, p := range candidates {
		if equalPoint(p, center) {
			continue
		}
		closest := vol.ClosestPoint(p)
		closestDist := geom.DistSq(p, closest)
		centerDist := geom.DistSq(center, closest)

		// p could reach into the cell, p is closer to some interior point
		// than center is to the cell's farthest corner, and p is far
		// enough from center that small legal radii could still see p.
		if closestDist < rsqMax && closestDist < farFromCenter && centerDist > rsqMin {
			kept = append(kept, p)
		}
	}

	b.starts = append(b.starts, len(b.points)/b.dim)
	b.points = append(b.points, center...)
	for _, p := range kept {
		b.points = append(b.points, p...)
	}
}
