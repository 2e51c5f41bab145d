// Package captree is a spatial index built to answer one question as fast
// as possible: does any indexed point lie within radius r of a query
// center? It targets robot-motion-planning collision checks, millions of
// such queries per second against a fixed set of tens of thousands of 3-D
// points, with query radii confined to a narrow, pre-declared range.
//
// captree is two cooperating data structures, each in its own subpackage:
//
//	pkdt/       a power-of-two k-d tree: branchless, fixed-depth descent
//	            to an approximate nearest leaf (pkdt.Query1/pkdt.Query),
//	            plus a backtracking exact search (pkdt.Query1Exact).
//	affordance/ a pkdt-shaped tree augmented at every leaf with the set
//	            of points that could possibly collide with any legal
//	            query ball touching that leaf's cell, turning a radius
//	            query into a leaf lookup plus a short linear scan.
//
// Two smaller packages support both:
//
//	geom/      squared distance, clamping, axis-aligned bounding volumes
//	partition/ randomized-quickselect median partitioning along one axis
//
// Both trees are built once from a point slice and are immutable
// thereafter; every query method is a pure function of the tree and its
// arguments, safe to call concurrently from any number of goroutines
// without synchronization. Neither tree supports insertion or deletion
// after construction, and the affordance tree only answers the radius
// collision predicate. It is not a k-nearest-neighbor index.
//
//	go get github.com/cwramsey/captree/pkdt
//	go get github.com/cwramsey/captree/affordance
package captree
