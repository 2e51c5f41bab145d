package pkdt

// Tree is a power-of-two k-d tree over D-dimensional float32 points. It is
// immutable once built: Dim, N2, tests and points are fixed by Build and
// never mutated by any query method.
type Tree struct {
	// Dim is the dimension D of the indexed points.
	Dim int
	// N2 is the number of leaves: the input point count rounded up to the
	// next power of two.
	N2 int
	// tests holds the breadth-first split planes; tests[i] is the split
	// value for the internal node at index i, with left child 2i+1 and
	// right child 2i+2. len(tests) == N2-1.
	tests []float32
	// points holds the leaves' coordinates in struct-of-arrays layout:
	// coordinate c of leaf i sits at points[c*N2+i].
	points []float32
}
