package geom

import "math"

// Volume is an axis-aligned box described by per-axis Lower and Upper
// bounds. The root volume of a tree is (-Inf, +Inf) on every axis; a split
// at value t on axis a yields a low child with Upper[a] = t and a high
// child with Lower[a] = t, so the two children share the split hyperplane.
type Volume struct {
	Lower []float32
	Upper []float32
}

// NewUnboundedVolume returns the (-Inf, +Inf)^dim box used as the root
// volume for both pkdt and affordance construction.
func NewUnboundedVolume(dim int) Volume {
	lower := make([]float32, dim)
	upper := make([]float32, dim)
	for i := 0; i < dim; i++ {
		lower[i] = float32(math.Inf(-1))
		upper[i] = float32(math.Inf(1))
	}

	return Volume{Lower: lower, Upper: upper}
}

// ClosestPoint returns the per-axis clamp of query into the box: the point
// of the box nearest to query.
func (v Volume) ClosestPoint(query []float32) []float32 {
	closest := make([]float32, len(query))
	for d := range query {
		closest[d] = Clamp(query[d], v.Lower[d], v.Upper[d])
	}

	return closest
}

// DistSqTo returns the squared distance from point to the nearest point of
// the box; zero when point lies inside.
func (v Volume) DistSqTo(point []float32) float32 {
	return DistSq(point, v.ClosestPoint(point))
}

// FurthestDistSqTo returns the squared distance from point to the farthest
// corner of the box: sum over axes of max(|lower-p|, |upper-p|)^2. Used to
// decide whether point could ever be the uniquely closest point to some
// query interior to the box.
func (v Volume) FurthestDistSqTo(point []float32) float32 {
	var dist float32
	for d := range point {
		loDiff := absf32(v.Lower[d] - point[d])
		hiDiff := absf32(v.Upper[d] - point[d])
		far := loDiff
		if hiDiff > far {
			far = hiDiff
		}
		dist += far * far
	}

	return dist
}

// Split returns the two sub-volumes produced by splitting v at value t on
// axis. The low sub-volume keeps v's Lower and clamps Upper[axis] to t; the
// high sub-volume keeps v's Upper and clamps Lower[axis] to t. v itself is
// left untouched; callers that no longer need it may discard it.
func (v Volume) Split(t float32, axis int) (low, high Volume) {
	low = v.clone()
	high = v.clone()
	low.Upper[axis] = t
	high.Lower[axis] = t

	return low, high
}

func (v Volume) clone() Volume {
	lower := make([]float32, len(v.Lower))
	upper := make([]float32, len(v.Upper))
	copy(lower, v.Lower)
	copy(upper, v.Upper)

	return Volume{Lower: lower, Upper: upper}
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}
