package volume

import (
	"fmt"

	"github.com/voxelgraph/vgseg/numeric"
)

// FeatureVolume is a dense 4D feature array F[L,C,H,W], C-contiguous in
// that exact order. A caller-side 3D volume [L,H,W] is represented here
// with C=1.
//
// T is numeric.Float (float32 or float64): the single/double precision
// choice spec.md §6/§9 asks for, expressed as a compile-time type
// parameter rather than the original's per-precision macro registration
// (see package numeric).
//
// Voxel addressing: Idx(z,y,x) = (z*H+y)*W + x. This is the universal
// node key shared by DisjointSet, edges, and adjacency — see package
// unionfind and package edgebuild.
type FeatureVolume[T numeric.Float] struct {
	L, C, H, W int
	Data       []T
}

// NewFeatureVolume validates dims against len(data) and returns a
// FeatureVolume wrapping it (no copy; the caller retains ownership of the
// backing slice but must not mutate it concurrently with pipeline calls).
func NewFeatureVolume[T numeric.Float](l, c, h, w int, data []T) (*FeatureVolume[T], error) {
	if l <= 0 || c <= 0 || h <= 0 || w <= 0 {
		return nil, fmt.Errorf("volume: non-positive dimension L=%d C=%d H=%d W=%d: %w", l, c, h, w, ErrDimensionMismatch)
	}
	if len(data) != l*c*h*w {
		return nil, fmt.Errorf("volume: feature data has %d elements, want %d: %w", len(data), l*c*h*w, ErrDimensionMismatch)
	}

	return &FeatureVolume[T]{L: l, C: c, H: h, W: w, Data: data}, nil
}

// Idx maps a voxel coordinate to its row-major index in [0, L*H*W).
// Complexity: O(1).
func (f *FeatureVolume[T]) Idx(z, y, x int) int {
	return (z*f.H+y)*f.W + x
}

// At returns the c-th channel value of voxel (z,y,x).
// Complexity: O(1).
func (f *FeatureVolume[T]) At(z, c, y, x int) T {
	return f.Data[((z*f.C+c)*f.H+y)*f.W+x]
}

// Channels returns the full feature vector at (z,y,x) as a freshly
// allocated slice, used by package metric to compute pairwise distances.
// Complexity: O(C).
func (f *FeatureVolume[T]) Channels(z, y, x int) []T {
	out := make([]T, f.C)
	base := (z*f.C*f.H + y) * f.W
	stride := f.H * f.W
	for c := 0; c < f.C; c++ {
		out[c] = f.Data[base+c*stride+x]
	}

	return out
}

// NumVoxels returns L*H*W, the universal node count for this volume.
func (f *FeatureVolume[T]) NumVoxels() int {
	return f.L * f.H * f.W
}

// FlowField is a dense optical-flow tensor Flow[L,2,H,W]. Flow[z,0,y,x]
// and Flow[z,1,y,x] are the forward flow vector (ox, oy) mapping a pixel
// in frame z-1 to frame z; the entry for z=0 is unused (there is no
// z=-1 frame to warp from). T carries the same single/double precision
// choice as FeatureVolume.
type FlowField[T numeric.Float] struct {
	L, H, W int
	Data    []T
}

// NewFlowField validates dims against len(data) and wraps it.
func NewFlowField[T numeric.Float](l, h, w int, data []T) (*FlowField[T], error) {
	if l <= 0 || h <= 0 || w <= 0 {
		return nil, fmt.Errorf("volume: non-positive flow dimension L=%d H=%d W=%d: %w", l, h, w, ErrDimensionMismatch)
	}
	if len(data) != l*2*h*w {
		return nil, fmt.Errorf("volume: flow data has %d elements, want %d: %w", len(data), l*2*h*w, ErrDimensionMismatch)
	}

	return &FlowField[T]{L: l, H: h, W: w, Data: data}, nil
}

// Offset returns (ox, oy), the flow vector stored at frame z, pixel (y,x).
func (fl *FlowField[T]) Offset(z, y, x int) (ox, oy T) {
	base := (z*2*fl.H + y) * fl.W
	stride := fl.H * fl.W

	return fl.Data[base+x], fl.Data[base+stride+x]
}

// EdgeTensor is a dense 4D array E[L,D,H,W] where d selects an outgoing
// neighbor direction from voxel (z,y,x). D is 3 for 6-connectivity or 13
// for 26-connectivity (package edgebuild owns the direction ordering).
// Cells for out-of-bounds or unmapped neighbors hold 0, never -1. T
// carries the same single/double precision choice as FeatureVolume,
// since an edge weight is a distance computed directly from that data.
type EdgeTensor[T numeric.Float] struct {
	L, D, H, W int
	Data       []T
}

// NewEdgeTensor allocates a zero-filled edge tensor of the given shape.
func NewEdgeTensor[T numeric.Float](l, d, h, w int) *EdgeTensor[T] {
	return &EdgeTensor[T]{L: l, D: d, H: h, W: w, Data: make([]T, l*d*h*w)}
}

// At returns the weight stored for direction d at voxel (z,y,x).
func (e *EdgeTensor[T]) At(z, d, y, x int) T {
	return e.Data[((z*e.D+d)*e.H+y)*e.W+x]
}

// Set stores w for direction d at voxel (z,y,x).
func (e *EdgeTensor[T]) Set(z, d, y, x int, w T) {
	e.Data[((z*e.D+d)*e.H+y)*e.W+x] = w
}

// LabelVolume is a dense 3D array of integer component identifiers,
// produced by MSTSegmenter and consumed by package geometry and package
// adjacency. Identifiers are DisjointSet root indices and are neither
// dense nor ordered. Labels are always plain int, independent of the
// precision T a FeatureVolume or EdgeTensor was carried in.
type LabelVolume struct {
	L, H, W int
	Labels  []int
}

// NewLabelVolume allocates a zero-filled label volume of the given shape.
func NewLabelVolume(l, h, w int) *LabelVolume {
	return &LabelVolume{L: l, H: h, W: w, Labels: make([]int, l*h*w)}
}

// Idx maps a voxel coordinate to its row-major index, matching
// FeatureVolume.Idx so that the same voxel identifier space is shared
// across the whole pipeline.
func (l *LabelVolume) Idx(z, y, x int) int {
	return (z*l.H+y)*l.W + x
}

// At returns the label at (z,y,x).
func (l *LabelVolume) At(z, y, x int) int {
	return l.Labels[l.Idx(z, y, x)]
}

// Set stores id as the label at (z,y,x).
func (l *LabelVolume) Set(z, y, x, id int) {
	l.Labels[l.Idx(z, y, x)] = id
}

// RGBVolume is a dense 4D array [L,3,H,W] of RGB triples in [0,1], the
// debug-convenience output of segment.Colorize. It is always float64:
// a color preview has no precision contract to preserve from the input
// feature data.
type RGBVolume struct {
	L, H, W int
	Data    []float64
}

// NewRGBVolume allocates a zero-filled RGB volume of the given shape.
func NewRGBVolume(l, h, w int) *RGBVolume {
	return &RGBVolume{L: l, H: h, W: w, Data: make([]float64, l*3*h*w)}
}

// Set stores the RGB triple at (z,y,x).
func (r *RGBVolume) Set(z, y, x int, rgb [3]float64) {
	base := (z*3*r.H + y) * r.W
	stride := r.H * r.W
	r.Data[base+x] = rgb[0]
	r.Data[base+stride+x] = rgb[1]
	r.Data[base+2*stride+x] = rgb[2]
}
