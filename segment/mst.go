package segment

import (
	"fmt"
	"sort"

	"github.com/voxelgraph/vgseg/edgebuild"
	"github.com/voxelgraph/vgseg/numeric"
	"github.com/voxelgraph/vgseg/unionfind"
	"github.com/voxelgraph/vgseg/volume"
)

// EdgeRecord is a materialized (a, b, w) edge between two voxel
// identifiers, decoded from an EdgeTensor's [z,d,y,x] layout. The weight
// is always widened to float64 regardless of the tensor's own precision:
// the merge threshold arithmetic in adaptiveMerge is accumulator math,
// not stored data, so it runs at the precision this corpus always uses
// for intermediate computation.
type EdgeRecord struct {
	A, B int
	W    float64
}

// MSTSegmenter partitions an edge tensor's voxels into connected
// components via adaptive agglomerative merging. Construct with
// NewSegmenter; the zero value is not usable. T is the precision
// (float32 or float64) of the edge tensor it consumes.
type MSTSegmenter[T numeric.Float] struct {
	opts options
}

// NewSegmenter validates opts and returns a ready MSTSegmenter.
func NewSegmenter[T numeric.Float](opts ...Option) (*MSTSegmenter[T], error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &MSTSegmenter[T]{opts: o}, nil
}

// Result is the output of Segment: the integer label volume plus,
// WithColor(true), a randomly-colorized RGB volume sharing the same
// partition. Labels is always populated — RGB is a debug convenience
// layered on top, never a replacement for it (see Colorize).
type Result struct {
	Labels        *volume.LabelVolume
	RGB           *volume.RGBVolume
	NumComponents int
}

// Segment runs the full algorithm of SPEC_FULL.md §4.4 against e:
// materialize edges, sort by ascending weight, adaptive merge, cleanup,
// label emission. It returns the label volume and the number of
// remaining components, plus a colorized RGB volume when this segmenter
// was built WithColor(true).
func (s *MSTSegmenter[T]) Segment(e *volume.EdgeTensor[T]) (*Result, error) {
	if e == nil {
		return nil, fmt.Errorf("segment: nil edge tensor: %w", volume.ErrDimensionMismatch)
	}
	if e.D != 3 && e.D != 13 {
		return nil, fmt.Errorf("segment: D=%d: %w", e.D, ErrUnsupportedDirections)
	}

	edges, err := materializeEdges(e)
	if err != nil {
		return nil, err
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].W < edges[j].W })

	n := e.L * e.H * e.W
	ds := unionfind.New(n)
	tau := make([]float64, n)
	for i := range tau {
		tau[i] = s.opts.k
	}

	adaptiveMerge(ds, tau, edges, s.opts.k, s.opts.adaptive)
	cleanupSmallComponents(ds, edges, s.opts.minSize)

	labels := volume.NewLabelVolume(e.L, e.H, e.W)
	for z := 0; z < e.L; z++ {
		for y := 0; y < e.H; y++ {
			for x := 0; x < e.W; x++ {
				v := labels.Idx(z, y, x)
				labels.Set(z, y, x, ds.Find(v))
			}
		}
	}

	result := &Result{Labels: labels, NumComponents: ds.CountRoots()}
	if s.opts.color {
		rgb, _ := Colorize(labels, nil, s.opts.rng)
		result.RGB = rgb
	}

	return result, nil
}

// materializeEdges decodes e into a flat slice of EdgeRecord, traversing
// every voxel in row-major order and emitting one record per in-bounds
// forward direction. No edge is emitted for a boundary cell whose guard
// fails or whose flow-warp was omitted upstream (both leave the slot at
// the 0 sentinel AND fail the bounds guard re-derived here — see
// SPEC_FULL.md §10 for why 0, not -1, is this core's sentinel contract).
func materializeEdges[T numeric.Float](e *volume.EdgeTensor[T]) ([]EdgeRecord, error) {
	dirs, err := edgebuild.Directions(e.D)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	edges := make([]EdgeRecord, 0, e.L*e.H*e.W*len(dirs))
	for z := 0; z < e.L; z++ {
		for y := 0; y < e.H; y++ {
			for x := 0; x < e.W; x++ {
				a := (z*e.H+y)*e.W + x
				for d, off := range dirs {
					if !edgebuild.InBounds(e.D, d, x, y, z, e.H, e.W, e.L) {
						continue
					}
					nz, ny, nx := z+off.DZ, y+off.DY, x+off.DX
					b := (nz*e.H+ny)*e.W + nx
					edges = append(edges, EdgeRecord{A: a, B: b, W: float64(e.At(z, d, y, x))})
				}
			}
		}
	}

	return edges, nil
}

// adaptiveMerge runs the sequential adaptive-threshold merge pass of
// SPEC_FULL.md §4.4 step 3. It is inherently sequential: the merge
// decision at edge i depends on tau and roots updated by edges < i.
func adaptiveMerge(ds *unionfind.DisjointSet, tau []float64, edges []EdgeRecord, k float64, adaptive bool) {
	for _, edge := range edges {
		ra, rb := ds.Find(edge.A), ds.Find(edge.B)
		if ra == rb {
			continue
		}
		if edge.W <= tau[ra] && edge.W <= tau[rb] {
			r := ds.Union(ra, rb)
			if adaptive {
				tau[r] = edge.W + k/float64(ds.Surface(r))
			}
			// else: tau[r] keeps its prior value (effectively the
			// initial k, since non-adaptive runs never write tau).
		}
	}
}

// cleanupSmallComponents runs the sequential small-component merge pass
// of SPEC_FULL.md §4.4 step 4: a second traversal of the sorted edges
// that unconditionally merges any pair of distinct components where
// either side's surface is still below minSize.
func cleanupSmallComponents(ds *unionfind.DisjointSet, edges []EdgeRecord, minSize int) {
	for _, edge := range edges {
		ra, rb := ds.Find(edge.A), ds.Find(edge.B)
		if ra == rb {
			continue
		}
		if ds.Surface(ra) < minSize || ds.Surface(rb) < minSize {
			ds.Union(ra, rb)
		}
	}
}
