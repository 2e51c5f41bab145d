// Package partition rearranges point slices in place so that the lower half
// contains the smaller elements along one axis, using randomized quickselect.
// Construction is expected O(n); the caller always supplies the random
// source explicitly rather than this package constructing its own.
package partition
