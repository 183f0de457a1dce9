package edgebuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/vgseg/edgebuild"
	"github.com/voxelgraph/vgseg/metric"
	"github.com/voxelgraph/vgseg/volume"
)

func TestNewBuilder_UnknownConnectivity(t *testing.T) {
	_, err := edgebuild.NewBuilder[float64](edgebuild.Connectivity(7), metric.Euclidean)
	assert.ErrorIs(t, err, edgebuild.ErrUnknownConnectivity)
}

// TestBuild_Conn6_S1 reproduces scenario S1 from spec.md: a single bright
// pixel surrounded by zeros, 6-connectivity, Euclidean metric. Every edge
// touching the center has weight 10; every other in-plane edge is 0.
func TestBuild_Conn6_S1(t *testing.T) {
	data := []float64{
		0, 0, 0,
		0, 10, 0,
		0, 0, 0,
	}
	f, err := volume.NewFeatureVolume(1, 1, 3, 3, data)
	require.NoError(t, err)

	b, err := edgebuild.NewBuilder[float64](edgebuild.Conn6, metric.Euclidean)
	require.NoError(t, err)
	e, err := b.Build(f)
	require.NoError(t, err)

	assert.Equal(t, 1, e.L)
	assert.Equal(t, 3, e.D)

	// Edge (1,1)->(2,1) [d=0, +x] should be |0-10|=10.
	assert.Equal(t, 10.0, e.At(0, 0, 1, 1))
	// Edge (0,0)->(1,0) [d=0, +x] is 0-0=0.
	assert.Equal(t, 0.0, e.At(0, 0, 0, 0))
	// Edge (1,0)->(1,1) [d=1, +y] should be |0-10|=10.
	assert.Equal(t, 10.0, e.At(0, 1, 0, 1))
}

func TestBuild_Conn6_BoundarySlotsStayZero(t *testing.T) {
	data := make([]float64, 2*2*2)
	f, err := volume.NewFeatureVolume(1, 1, 2, 2, data)
	require.NoError(t, err)
	b, err := edgebuild.NewBuilder[float64](edgebuild.Conn6, metric.Euclidean)
	require.NoError(t, err)
	e, err := b.Build(f)
	require.NoError(t, err)

	// x=1 is the last column: d=0 (+x) must stay 0 (boundary, unused slot).
	assert.Equal(t, 0.0, e.At(0, 0, 0, 1))
}

// TestBuild_Conn26_DiagonalPath reproduces the spirit of scenario S5: on
// a gradient volume, the corner-to-corner diagonal (d=7, the (+1,+1,+1)
// direction) is stored at (0,0,0) with the full corner-to-corner
// difference as its weight.
func TestBuild_Conn26_DiagonalPath(t *testing.T) {
	// L=2,H=2,W=2 gradient: value = x+2y+4z.
	data := make([]float64, 8)
	idx := func(z, y, x int) int { return (z*2+y)*2 + x }
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				data[idx(z, y, x)] = float64(x + 2*y + 4*z)
			}
		}
	}
	f, err := volume.NewFeatureVolume(2, 1, 2, 2, data)
	require.NoError(t, err)
	b, err := edgebuild.NewBuilder[float64](edgebuild.Conn26, metric.Euclidean)
	require.NoError(t, err)
	e, err := b.Build(f)
	require.NoError(t, err)

	assert.Equal(t, 13, e.D)
	// d=7 at (0,0,0) connects (0,0,0)=0 to (1,1,1)=7: weight 7.
	assert.Equal(t, 7.0, e.At(0, 7, 0, 0))
}
