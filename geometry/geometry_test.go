package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/vgseg/geometry"
	"github.com/voxelgraph/vgseg/volume"
)

func TestComponents_NilVolume(t *testing.T) {
	_, err := geometry.Components(nil)
	assert.ErrorIs(t, err, geometry.ErrNilLabelVolume)
}

// TestComponents_SingleVoxel checks a single labeled voxel has size 1,
// a degenerate (point) bounding box, and a centroid equal to its own
// 1-based coordinate.
func TestComponents_SingleVoxel(t *testing.T) {
	l := volume.NewLabelVolume(1, 3, 3)
	l.Set(0, 1, 1, 7)

	recs, err := geometry.Components(l)
	require.NoError(t, err)
	require.Contains(t, recs, 0)
	require.Contains(t, recs, 7)

	r := recs[7]
	assert.Equal(t, 1, r.Size)
	assert.Equal(t, 2, r.XLo)
	assert.Equal(t, 2, r.XHi)
	assert.Equal(t, 2, r.YLo)
	assert.Equal(t, 2, r.YHi)
	assert.Equal(t, 1, r.ZLo)
	assert.Equal(t, 1, r.ZHi)
	assert.Equal(t, 1, r.DX)
	assert.Equal(t, 1, r.DY)
	assert.Equal(t, 1, r.DZ)
	assert.InDelta(t, 2.0, r.CX, 1e-9)
	assert.InDelta(t, 2.0, r.CY, 1e-9)
	assert.InDelta(t, 1.0, r.CZ, 1e-9)
	assert.InDelta(t, 2.0, r.BoxCX, 1e-9)
	assert.InDelta(t, 2.0, r.BoxCY, 1e-9)
	assert.InDelta(t, 1.0, r.BoxCZ, 1e-9)

	// Background label 0 covers the other 8 voxels.
	assert.Equal(t, 8, recs[0].Size)
}

// TestComponents_CentroidInsideBoundingBox checks property 4: the
// centroid of every component lies within its own bounding box, and
// component size matches the number of voxels sharing its label.
func TestComponents_CentroidInsideBoundingBox(t *testing.T) {
	l := volume.NewLabelVolume(2, 4, 4)
	for z := 0; z < 2; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				id := 0
				if x >= 2 {
					id = 1
				}
				l.Set(z, y, x, id)
			}
		}
	}

	recs, err := geometry.Components(l)
	require.NoError(t, err)

	counts := map[int]int{}
	for _, lbl := range l.Labels {
		counts[lbl]++
	}

	for id, r := range recs {
		assert.Equal(t, counts[id], r.Size)
		assert.GreaterOrEqual(t, r.CX, float64(r.XLo))
		assert.LessOrEqual(t, r.CX, float64(r.XHi))
		assert.GreaterOrEqual(t, r.CY, float64(r.YLo))
		assert.LessOrEqual(t, r.CY, float64(r.YHi))
		assert.GreaterOrEqual(t, r.CZ, float64(r.ZLo))
		assert.LessOrEqual(t, r.CZ, float64(r.ZHi))
	}
}

func TestComponentsFrom2D_EmptyGrid(t *testing.T) {
	_, err := geometry.ComponentsFrom2D(nil)
	assert.ErrorIs(t, err, geometry.ErrEmptyGrid)

	_, err = geometry.ComponentsFrom2D([][]int{{}})
	assert.ErrorIs(t, err, geometry.ErrEmptyGrid)
}

func TestComponentsFrom2D_NonRectangular(t *testing.T) {
	_, err := geometry.ComponentsFrom2D([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, geometry.ErrNonRectangular)
}

// TestComponentsFrom2D_LegacyBoxCenterBug checks the preserved
// bug-compatible behavior: BoxCY divides by 1 rather than 2, so a
// component spanning rows 1..3 (1-based) reports BoxCY=4, not 2.
func TestComponentsFrom2D_LegacyBoxCenterBug(t *testing.T) {
	grid := [][]int{
		{1, 1},
		{1, 1},
		{1, 1},
	}
	recs, err := geometry.ComponentsFrom2D(grid)
	require.NoError(t, err)
	require.Contains(t, recs, 1)

	r := recs[1]
	assert.Equal(t, 1, r.YLo)
	assert.Equal(t, 3, r.YHi)
	assert.InDelta(t, 4.0, r.BoxCY, 1e-9)
	// X axis is unaffected by the legacy bug.
	assert.InDelta(t, 1.5, r.BoxCX, 1e-9)
	assert.Equal(t, 1, r.ZLo)
	assert.Equal(t, 1, r.ZHi)
	assert.Equal(t, 6, r.Size)
}
