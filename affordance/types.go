package affordance

// Tree is an affordance tree over D-dimensional float32 points, sound for
// any query whose squared radius lies in RsqRange. It is immutable once
// built.
type Tree struct {
	// Dim is the dimension D of the indexed points.
	Dim int
	// N2 is the number of leaves: the input point count rounded up to the
	// next power of two.
	N2 int
	// RsqRange is the declared [min, max] squared-radius range this tree
	// was built to answer queries for.
	RsqRange [2]float32
	// tests holds the breadth-first split planes, as in pkdt.Tree.
	tests []float32
	// affStarts has length N2+1; the affordance points for leaf i occupy
	// points[affStarts[i]*Dim : affStarts[i+1]*Dim]. affStarts[0] == 0 and
	// affStarts[N2] == len(points)/Dim.
	affStarts []int
	// points is the affordance buffer, array-of-structures: each point
	// occupies Dim contiguous float32s. The first point of each leaf's
	// slice is always that leaf's center point.
	points []float32
}
