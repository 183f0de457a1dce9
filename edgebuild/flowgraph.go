package edgebuild

import (
	"fmt"
	"math"

	"github.com/voxelgraph/vgseg/metric"
	"github.com/voxelgraph/vgseg/numeric"
	"github.com/voxelgraph/vgseg/volume"
)

// FlowBuilder computes a 6-connectivity edge tensor whose temporal edge
// (d=2) is warped by a per-frame optical-flow field instead of being a
// plain (x,y,z)->(x,y,z+1) link. Construct with NewFlowBuilder. T is the
// precision (float32 or float64) shared by the feature volume, flow
// field, and edge tensor it operates on.
type FlowBuilder[T numeric.Float] struct {
	m metric.Metric
	k Connectivity
}

// NewFlowBuilder returns a FlowBuilder using metric m and connectivity k.
// Flow warping is only defined for 6-connectivity; k must be Conn6 (the
// parameter exists so the documented failure mode of spec.md §6's
// flow_graph(F, Flow, K=6, metric) — K != 6 — is representable and
// checked, not merely assumed).
func NewFlowBuilder[T numeric.Float](k Connectivity, m metric.Metric) (*FlowBuilder[T], error) {
	if k != Conn6 {
		return nil, fmt.Errorf("edgebuild: flow connectivity %d: %w", k, ErrUnknownConnectivity)
	}

	return &FlowBuilder[T]{m: m, k: k}, nil
}

// Build materializes E[L,3,H,W] for f, warping the temporal edge by
// flow. Spatial edges (d=0,1) are identical to Builder with Conn6.
//
// The temporal edge at (z,y,x) connects (x,y,z+1) to the warped source
// (fx,fy,z), where (ox,oy) = flow.Offset(z+1,y,x), fx = floor(x+ox+0.5),
// fy = floor(y+oy+0.5). Note the index asymmetry: the flow entry read is
// "at" the destination frame z+1, because it describes the displacement
// of the temporal link that ends at that frame — this mirrors the
// original source exactly (see SPEC_FULL.md §4 / videograph_(flowgraph)).
// If (fx,fy) falls outside the frame, the edge is omitted and the slot
// is left at 0.
// Complexity: O(L*H*W*C), parallelized across z-slices.
func (fb *FlowBuilder[T]) Build(f *volume.FeatureVolume[T], flow *volume.FlowField[T]) (*volume.EdgeTensor[T], error) {
	if f == nil || flow == nil {
		return nil, fmt.Errorf("edgebuild: nil feature volume or flow field: %w", volume.ErrDimensionMismatch)
	}
	if flow.L != f.L || flow.H != f.H || flow.W != f.W {
		return nil, fmt.Errorf("edgebuild: flow field dims (%d,%d,%d) do not match feature volume (%d,%d,%d): %w",
			flow.L, flow.H, flow.W, f.L, f.H, f.W, volume.ErrDimensionMismatch)
	}

	e := volume.NewEdgeTensor[T](f.L, 3, f.H, f.W)

	parallelOverZ(f.L, func(z int) {
		for y := 0; y < f.H; y++ {
			for x := 0; x < f.W; x++ {
				if x < f.W-1 {
					w := metric.Distance(f.Channels(z, y, x), f.Channels(z, y, x+1), fb.m)
					e.Set(z, 0, y, x, w)
				}
				if y < f.H-1 {
					w := metric.Distance(f.Channels(z, y, x), f.Channels(z, y+1, x), fb.m)
					e.Set(z, 1, y, x, w)
				}
				if z < f.L-1 {
					ox, oy := flow.Offset(z+1, y, x)
					fx := int(math.Floor(float64(x) + float64(ox) + 0.5))
					fy := int(math.Floor(float64(y) + float64(oy) + 0.5))
					if fx >= 0 && fx < f.W && fy >= 0 && fy < f.H {
						w := metric.Distance(f.Channels(z, fy, fx), f.Channels(z+1, y, x), fb.m)
						e.Set(z, 2, y, x, w)
					}
				}
			}
		}
	})

	return e, nil
}
