package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwramsey/captree/geom"
)

func TestDistSq(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"unit-axis", []float32{0, 0}, []float32{1, 0}, 1},
		{"diag", []float32{0, 0}, []float32{3, 4}, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, geom.DistSq(c.a, c.b))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), geom.Clamp(0, 1, 5))
	assert.Equal(t, float32(5), geom.Clamp(9, 1, 5))
	assert.Equal(t, float32(3), geom.Clamp(3, 1, 5))
}
