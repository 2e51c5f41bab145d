package affordance

import (
	"math/bits"
	"sort"
)

const maxDim = 255

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func (t *Tree) depth() int {
	return bits.TrailingZeros(uint(t.N2))
}

// equalPoint reports whether a and b hold exactly equal coordinates.
func equalPoint(a, b []float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// lexLess orders points lexicographically by coordinate, used to find
// coincident points in O(n log n) instead of O(n^2).
func lexLess(a, b []float32) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// hasCoincidentPoints reports whether any two of points share identical
// coordinates.
func hasCoincidentPoints(points [][]float32) bool {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return lexLess(points[order[i]], points[order[j]])
	})
	for k := 1; k < len(order); k++ {
		if equalPoint(points[order[k]], points[order[k-1]]) {
			return true
		}
	}

	return false
}
