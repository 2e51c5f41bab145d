package pkdt

import (
	"math"
	"math/bits"

	"github.com/cwramsey/captree/geom"
)

// Query1 descends the tree from the root, comparing needle[i%Dim] against
// the test at the current node and moving left (strict "<") or right at
// each of log2(N2) levels, then returns the reached leaf index. This is the
// leaf whose cell contains needle, not necessarily the true nearest
// neighbor; see Query1Exact for that.
func (t *Tree) Query1(needle []float32) int {
	idx := 0
	depth := t.depth()
	for i := 0; i < depth; i++ {
		axis := i % t.Dim
		if needle[axis] < t.tests[idx] {
			idx = 2*idx + 1
		} else {
			idx = 2*idx + 2
		}
	}

	return idx - len(t.tests)
}

// Query performs Query1 for every point in needles and returns the leaf
// index for each, lane by lane. Go has no portable SIMD gather, so this is
// the documented fallback for platforms without one: an outer loop over
// tree depth and an inner loop over lanes, performing the exact same
// comparisons Query1 would for each lane, guaranteeing Query(needles)[i]
// == Query1(needles[i]) for every i.
func (t *Tree) Query(needles [][]float32) []int {
	lanes := len(needles)
	idxs := make([]int, lanes)
	depth := t.depth()

	for i := 0; i < depth; i++ {
		axis := i % t.Dim
		for lane := 0; lane < lanes; lane++ {
			if needles[lane][axis] < t.tests[idxs[lane]] {
				idxs[lane] = 2*idxs[lane] + 1
			} else {
				idxs[lane] = 2*idxs[lane] + 2
			}
		}
	}

	for lane := range idxs {
		idxs[lane] -= len(t.tests)
	}

	return idxs
}

// Query1Exact returns the index of the point truly closest to needle, found
// via backtracking k-d search: descend into the child whose volume contains
// needle first, then visit the sibling only if its bounding volume could
// possibly hold a closer point than the current best.
func (t *Tree) Query1Exact(needle []float32) int {
	bestID := -1
	bestDistSq := float32(math.Inf(1))
	vol := geom.NewUnboundedVolume(t.Dim)
	t.exactHelp(0, 0, vol, needle, &bestID, &bestDistSq)

	return bestID
}

func (t *Tree) exactHelp(testIdx, depth int, vol geom.Volume, needle []float32, bestID *int, bestDistSq *float32) {
	if vol.DistSqTo(needle) > *bestDistSq {
		return
	}

	if testIdx >= len(t.tests) {
		id := testIdx - len(t.tests)
		d := geom.DistSq(needle, t.GetPoint(id))
		if d < *bestDistSq {
			*bestDistSq = d
			*bestID = id
		}

		return
	}

	axis := depth % t.Dim
	test := t.tests[testIdx]
	lowVol, highVol := vol.Split(test, axis)
	nextDepth := depth + 1

	if needle[axis] < test {
		t.exactHelp(2*testIdx+1, nextDepth, lowVol, needle, bestID, bestDistSq)
		t.exactHelp(2*testIdx+2, nextDepth, highVol, needle, bestID, bestDistSq)
	} else {
		t.exactHelp(2*testIdx+2, nextDepth, highVol, needle, bestID, bestDistSq)
		t.exactHelp(2*testIdx+1, nextDepth, lowVol, needle, bestID, bestDistSq)
	}
}

// GetPoint returns the coordinates stored at leaf index id, reconstructed
// from the tree's struct-of-arrays layout. It panics if id is out of range.
func (t *Tree) GetPoint(id int) []float32 {
	if id < 0 || id >= t.N2 {
		panic("pkdt: leaf index out of bounds")
	}

	p := make([]float32, t.Dim)
	for c := 0; c < t.Dim; c++ {
		p[c] = t.points[c*t.N2+id]
	}

	return p
}

// depth returns ceil(log2(N2)), the fixed number of comparisons every
// descent performs.
func (t *Tree) depth() int {
	return bits.TrailingZeros(uint(t.N2))
}
