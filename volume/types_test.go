package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelgraph/vgseg/volume"
)

func TestNewFeatureVolume_DimensionMismatch(t *testing.T) {
	_, err := volume.NewFeatureVolume(1, 1, 2, 2, []float64{0, 1, 2})
	assert.ErrorIs(t, err, volume.ErrDimensionMismatch)

	_, err = volume.NewFeatureVolume(0, 1, 2, 2, []float64{0, 1, 2, 3})
	assert.ErrorIs(t, err, volume.ErrDimensionMismatch)
}

func TestFeatureVolume_ChannelsAndIdx(t *testing.T) {
	// L=1,C=2,H=1,W=2: voxel (0,0,0) has channels [10, 100], voxel (0,0,1) has [20, 200].
	data := []float64{10, 20, 100, 200}
	f, err := volume.NewFeatureVolume(1, 2, 1, 2, data)
	require.NoError(t, err)

	assert.Equal(t, 0, f.Idx(0, 0, 0))
	assert.Equal(t, 1, f.Idx(0, 0, 1))
	assert.Equal(t, []float64{10, 100}, f.Channels(0, 0, 0))
	assert.Equal(t, []float64{20, 200}, f.Channels(0, 0, 1))
	assert.Equal(t, 2, f.NumVoxels())
}

func TestFlowField_Offset(t *testing.T) {
	// L=2,H=1,W=1: frame 1 has flow (0.5, -0.5).
	data := []float64{0, 0, 0.5, -0.5}
	fl, err := volume.NewFlowField(2, 1, 1, data)
	require.NoError(t, err)

	ox, oy := fl.Offset(1, 0, 0)
	assert.Equal(t, 0.5, ox)
	assert.Equal(t, -0.5, oy)
}

func TestEdgeTensor_SetAt(t *testing.T) {
	e := volume.NewEdgeTensor[float64](1, 3, 2, 2)
	e.Set(0, 1, 1, 0, 4.5)
	assert.Equal(t, 4.5, e.At(0, 1, 1, 0))
	assert.Equal(t, 0.0, e.At(0, 0, 0, 0))
}

func TestLabelVolume_SetAt(t *testing.T) {
	l := volume.NewLabelVolume(1, 2, 2)
	l.Set(0, 1, 1, 7)
	assert.Equal(t, 7, l.At(0, 1, 1))
	assert.Equal(t, l.Idx(0, 1, 1), 3)
}

// TestFeatureVolume_Float32 checks that FeatureVolume is usable at
// single precision, not just the float64 instantiation exercised by
// every other test in this file.
func TestFeatureVolume_Float32(t *testing.T) {
	data := []float32{10, 20, 100, 200}
	f, err := volume.NewFeatureVolume(1, 2, 1, 2, data)
	require.NoError(t, err)

	assert.Equal(t, []float32{10, 100}, f.Channels(0, 0, 0))
	assert.Equal(t, float32(200), f.At(0, 1, 0, 1))
}

func TestRGBVolume_Set(t *testing.T) {
	r := volume.NewRGBVolume(1, 1, 1)
	r.Set(0, 0, 0, [3]float64{0.1, 0.2, 0.3})
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, r.Data)
}
