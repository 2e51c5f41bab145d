package partition_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwramsey/captree/partition"
)

func pts(vals ...float32) [][]float32 {
	out := make([][]float32, len(vals))
	for i, v := range vals {
		out[i] = []float32{v}
	}

	return out
}

func axisVals(points [][]float32) []float32 {
	out := make([]float32, len(points))
	for i, p := range points {
		out[i] = p[0]
	}

	return out
}

func TestMedianPartitionSplitsLowerUpper(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := pts(5, 1, 9, 3, 7, 2, 8, 4)
	n := len(points)

	split := partition.MedianPartition(points, 0, rng)

	half := n / 2
	for _, v := range axisVals(points[:half]) {
		require.LessOrEqual(t, v, split)
	}
	for _, v := range axisVals(points[half:]) {
		require.GreaterOrEqual(t, v, split)
	}
}

func TestMedianPartitionPreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	original := []float32{5, 1, 9, 3, 7, 2, 8, 4, 0, 6}
	points := pts(original...)

	partition.MedianPartition(points, 0, rng)

	got := axisVals(points)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	want := append([]float32(nil), original...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	require.Equal(t, want, got)
}

func TestMedianPartitionTwoElements(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := pts(9, 1)
	split := partition.MedianPartition(points, 0, rng)
	require.Equal(t, float32(5), split)
	require.Equal(t, float32(1), points[0][0])
	require.Equal(t, float32(9), points[1][0])
}
