// File: api.go
// Role: thin public facade over the volume/metric/edgebuild/segment/
// geometry/adjacency subpackages. No algorithms live here; every call
// below delegates immediately to its subpackage.
package vgseg

import (
	"github.com/voxelgraph/vgseg/adjacency"
	"github.com/voxelgraph/vgseg/edgebuild"
	"github.com/voxelgraph/vgseg/geometry"
	"github.com/voxelgraph/vgseg/metric"
	"github.com/voxelgraph/vgseg/numeric"
	"github.com/voxelgraph/vgseg/segment"
	"github.com/voxelgraph/vgseg/volume"
)

// Connectivity re-exports edgebuild.Connectivity so callers need not
// import the subpackage just to pick Conn6 or Conn26.
type Connectivity = edgebuild.Connectivity

// Connectivity values accepted by Graph.
const (
	Conn6  = edgebuild.Conn6
	Conn26 = edgebuild.Conn26
)

// Metric re-exports metric.Metric.
type Metric = metric.Metric

// Metric values accepted by Graph and FlowGraph.
const (
	Euclidean = metric.Euclidean
	Max       = metric.Max
	Angular   = metric.Angular
)

// SegmentOption re-exports segment.Option so callers configure
// SegmentMST without importing package segment directly.
type SegmentOption = segment.Option

var (
	WithK        = segment.WithK
	WithMinSize  = segment.WithMinSize
	WithAdaptive = segment.WithAdaptive
	WithColor    = segment.WithColor
	WithRand     = segment.WithRand
)

// Graph computes one edge weight per neighbor direction of f under
// connectivity conn and distance metric m.
//
// Complexity: O(L*H*W*D) where D is 3 (Conn6) or 13 (Conn26), scanned
// across a worker pool sized to GOMAXPROCS.
func Graph[T numeric.Float](f *volume.FeatureVolume[T], conn Connectivity, m Metric) (*volume.EdgeTensor[T], error) {
	b, err := edgebuild.NewBuilder[T](conn, m)
	if err != nil {
		return nil, err
	}

	return b.Build(f)
}

// FlowGraph computes 6-connected spatial edges plus optical-flow-warped
// temporal edges between consecutive frames of f, under distance metric
// m. See edgebuild.FlowBuilder for the warp formula. Flow warping is only
// defined for 6-connectivity, so unlike Graph this never takes a
// Connectivity argument.
func FlowGraph[T numeric.Float](f *volume.FeatureVolume[T], flow *volume.FlowField[T], m Metric) (*volume.EdgeTensor[T], error) {
	b, err := edgebuild.NewFlowBuilder[T](Conn6, m)
	if err != nil {
		return nil, err
	}

	return b.Build(f, flow)
}

// SegmentMST partitions the voxels described by edge tensor e into
// connected components via the adaptive Felzenszwalb–Huttenlocher MST
// pass, configured by opts (see segment.WithK, WithMinSize, WithAdaptive,
// WithColor, WithRand).
func SegmentMST[T numeric.Float](e *volume.EdgeTensor[T], opts ...SegmentOption) (*segment.Result, error) {
	s, err := segment.NewSegmenter[T](opts...)
	if err != nil {
		return nil, err
	}

	return s.Segment(e)
}

// Adjacency derives the label-adjacency graph of a label volume produced
// by SegmentMST.
func Adjacency(l *volume.LabelVolume) (adjacency.Map, error) {
	return adjacency.Adjacency(l)
}

// SegmToComponents reduces a label volume to per-component geometry:
// centroid, voxel count, and tight bounding box.
func SegmToComponents(l *volume.LabelVolume) (map[int]*geometry.Record, error) {
	return geometry.Components(l)
}
