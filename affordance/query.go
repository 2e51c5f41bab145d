package affordance

import "github.com/cwramsey/captree/geom"

// Collides reports whether any indexed point lies within squared radius
// rSquared of center. It descends the test tree exactly like pkdt's
// Query1 to find the leaf whose cell contains center, then linearly scans
// that leaf's affordance list for a point within range.
//
// Collides panics if rSquared lies outside the Tree's declared RsqRange.
// The tree's soundness guarantee only holds for legal queries, so answering
// an illegal one would silently be wrong rather than merely slow.
func (t *Tree) Collides(center []float32, rSquared float32) bool {
	if rSquared < t.RsqRange[0] || rSquared > t.RsqRange[1] {
		panic("affordance: r^2 outside declared range")
	}

	return t.collides(center, rSquared)
}

// CollidesBatch reports whether any lane's query collides, where lane i is
// (centers[i], rSquared[i]). Go has no portable SIMD gather, so this fans
// the batch out into L independent scalar descents sharing the same
// early-exit-on-first-hit short-circuit a real gather-based implementation
// would have, and returns as soon as any lane collides.
//
// Every (centers[i], rSquared[i]) pair must lie within RsqRange; behavior
// is undefined for lanes that don't (this implementation does not validate
// per-lane, matching the documented fallback contract).
func (t *Tree) CollidesBatch(centers [][]float32, rSquared []float32) bool {
	for lane := range centers {
		if t.collides(centers[lane], rSquared[lane]) {
			return true
		}
	}

	return false
}

func (t *Tree) collides(center []float32, rSquared float32) bool {
	leaf := t.descend(center)
	start, end := t.affStarts[leaf], t.affStarts[leaf+1]
	for k := start; k < end; k++ {
		p := t.points[k*t.Dim : (k+1)*t.Dim]
		if geom.DistSq(p, center) <= rSquared {
			return true
		}
	}

	return false
}

// descend performs the same branchless test-plane descent as pkdt.Query1,
// returning the leaf index whose cell contains center.
func (t *Tree) descend(center []float32) int {
	idx := 0
	depth := t.depth()
	for i := 0; i < depth; i++ {
		axis := i % t.Dim
		if center[axis] < t.tests[idx] {
			idx = 2*idx + 1
		} else {
			idx = 2*idx + 2
		}
	}

	return idx - len(t.tests)
}

// MemoryUsed returns a deterministic byte count for the tree's owned
// storage: a small fixed header plus the test array, the affordance starts
// array, and the affordance point buffer.
func (t *Tree) MemoryUsed() int {
	const (
		header     = 64 // struct overhead: slice headers + scalar fields
		floatBytes = 4
		intBytes   = 8
	)

	return header + len(t.tests)*floatBytes + len(t.affStarts)*intBytes + len(t.points)*floatBytes
}

// AffordanceSize returns the average affordance-list length: the total
// number of affordance points divided by the number of leaves.
func (t *Tree) AffordanceSize() int {
	totalPoints := len(t.points) / t.Dim

	return totalPoints / t.N2
}
