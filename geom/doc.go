// Package geom provides the low-level numeric primitives shared by pkdt and
// affordance: squared distance, clamping, and axis-aligned bounding volumes.
//
// The distance functions operate on D-element []float32 points and return
// float32 results; none of them take a square root, and none of them
// validate their inputs. Callers are expected to supply same-length,
// finite-or-infinite slices. DistSq and Clamp never allocate; ClosestPoint
// and Split return freshly allocated slices.
package geom
