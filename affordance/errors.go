package affordance

import "errors"

// Sentinel errors returned by Build. These are construction failures: data
// the caller supplied turned out to be pathological, not a programmer
// error. Programmer errors (dim >= 255, malformed point dimensions, an
// out-of-range query radius) panic instead, since no caller could sensibly
// recover from them at runtime.
var (
	// ErrInvalidRadiusRange indicates rsqRange does not satisfy
	// 0 <= rsqRange[0] <= rsqRange[1].
	ErrInvalidRadiusRange = errors.New("affordance: rsqRange must satisfy 0 <= min <= max")

	// ErrDegenerateInput indicates two or more input points coincide
	// exactly while rsqRange requires a positive minimum separation,
	// making it impossible to satisfy the affordance soundness invariant
	// for every legal query radius.
	ErrDegenerateInput = errors.New("affordance: input points coincide while rsqRange requires separation")
)
