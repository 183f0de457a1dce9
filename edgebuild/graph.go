package edgebuild

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/voxelgraph/vgseg/metric"
	"github.com/voxelgraph/vgseg/numeric"
	"github.com/voxelgraph/vgseg/volume"
)

// Builder computes edge weights over a fixed neighbor topology and
// distance metric. Construct with NewBuilder; the zero value is not
// usable. T is the precision (float32 or float64) of the feature volume
// it builds edges from; the edge tensor it produces carries the same T.
type Builder[T numeric.Float] struct {
	conn Connectivity
	m    metric.Metric
}

// NewBuilder validates conn and returns a Builder for it. conn must be
// Conn6 or Conn26.
func NewBuilder[T numeric.Float](conn Connectivity, m metric.Metric) (*Builder[T], error) {
	if conn != Conn6 && conn != Conn26 {
		return nil, fmt.Errorf("edgebuild: connectivity %d: %w", conn, ErrUnknownConnectivity)
	}

	return &Builder[T]{conn: conn, m: m}, nil
}

// directionCount returns D for this builder's connectivity: 3 for Conn6,
// 13 for Conn26.
func (b *Builder[T]) directionCount() int {
	if b.conn == Conn6 {
		return 3
	}

	return 13
}

// Build materializes the edge tensor E[L,D,H,W] for f under this
// Builder's topology and metric. Out-of-bounds directions are left at 0
// (the zero value volume.NewEdgeTensor allocates with).
// Complexity: O(L*H*W*D*C), parallelized across z-slices.
func (b *Builder[T]) Build(f *volume.FeatureVolume[T]) (*volume.EdgeTensor[T], error) {
	if f == nil {
		return nil, fmt.Errorf("edgebuild: nil feature volume: %w", volume.ErrDimensionMismatch)
	}

	d := b.directionCount()
	e := volume.NewEdgeTensor[T](f.L, d, f.H, f.W)

	table, inBounds := b.topology()

	parallelOverZ(f.L, func(z int) {
		for y := 0; y < f.H; y++ {
			for x := 0; x < f.W; x++ {
				for dd := 0; dd < d; dd++ {
					if !inBounds(dd, x, y, z, f.H, f.W, f.L) {
						continue
					}
					dir := table[dd]
					w := metric.Distance(
						f.Channels(z, y, x),
						f.Channels(z+dir.dz, y+dir.dy, x+dir.dx),
						b.m,
					)
					e.Set(z, dd, y, x, w)
				}
			}
		}
	})

	return e, nil
}

// topology returns the direction table and bounds predicate for this
// Builder's connectivity.
func (b *Builder[T]) topology() ([]direction, func(d, x, y, z, h, w, l int) bool) {
	if b.conn == Conn6 {
		return dir6[:], inBounds6
	}

	return dir26[:], inBounds26
}

// parallelOverZ runs fn(z) for z in [0, l) across a worker pool sized to
// runtime.GOMAXPROCS(0). Each call writes only to its own z-slice of the
// edge tensor, so no synchronization beyond the final WaitGroup is
// needed — see package doc.go.
func parallelOverZ(l int, fn func(z int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > l {
		workers = l
	}
	if workers <= 1 {
		for z := 0; z < l; z++ {
			fn(z)
		}

		return
	}

	var wg sync.WaitGroup
	zs := make(chan int)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for z := range zs {
				fn(z)
			}
		}()
	}
	for z := 0; z < l; z++ {
		zs <- z
	}
	close(zs)
	wg.Wait()
}
