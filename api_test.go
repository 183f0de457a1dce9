package vgseg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vgseg "github.com/voxelgraph/vgseg"
	"github.com/voxelgraph/vgseg/volume"
)

// TestPipeline_EndToEnd exercises the full facade: build a voxel graph,
// segment it, then derive adjacency and geometry from the result. This
// mirrors spec.md's end-to-end scenario of a single clip flowing
// through Graph -> SegmentMST -> Adjacency / SegmToComponents.
func TestPipeline_EndToEnd(t *testing.T) {
	data := []float64{
		0, 0, 0,
		0, 10, 0,
		0, 0, 0,
	}
	f, err := volume.NewFeatureVolume(1, 1, 3, 3, data)
	require.NoError(t, err)

	e, err := vgseg.Graph(f, vgseg.Conn6, vgseg.Euclidean)
	require.NoError(t, err)

	res, err := vgseg.SegmentMST(e, vgseg.WithK(5), vgseg.WithMinSize(1))
	require.NoError(t, err)
	assert.Equal(t, 2, res.NumComponents)

	adj, err := vgseg.Adjacency(res.Labels)
	require.NoError(t, err)
	center := res.Labels.At(0, 1, 1)
	background := res.Labels.At(0, 0, 0)
	assert.True(t, adj.Has(center, background))

	recs, err := vgseg.SegmToComponents(res.Labels)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	for _, r := range recs {
		assert.Greater(t, r.Size, 0)
	}
}

func TestFlowGraph_Facade(t *testing.T) {
	data := make([]float64, 2*1*2*2)
	f, err := volume.NewFeatureVolume(2, 1, 2, 2, data)
	require.NoError(t, err)
	flow, err := volume.NewFlowField(2, 2, 2, make([]float64, 2*2*2*2))
	require.NoError(t, err)

	e, err := vgseg.FlowGraph(f, flow, vgseg.Euclidean)
	require.NoError(t, err)
	assert.Equal(t, 3, e.D)
}
