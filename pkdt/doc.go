// Package pkdt implements a power-of-two k-d tree (PKDT): a complete binary
// tree whose traversal is fully branchless and takes exactly ceil(log2(N2))
// comparisons regardless of the query, where N2 is the input point count
// rounded up to the next power of two. It answers two kinds of questions:
//
//   - Query1 / Query: an approximate nearest-leaf lookup, reached by
//     descending the tree's test planes. Fast and fixed-time, but not
//     necessarily the true nearest neighbor.
//   - Query1Exact: a classic backtracking k-d search with bounding-box
//     pruning that returns the true nearest neighbor.
//
// A Tree is built once from a point slice and is immutable afterward; every
// query method is a pure function of the tree and its arguments, and is
// therefore safe to call concurrently from multiple goroutines without
// synchronization.
package pkdt
