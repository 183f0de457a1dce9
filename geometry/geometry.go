package geometry

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/voxelgraph/vgseg/volume"
)

// accum is the running-sum accumulator for one component id during the
// scan; it mirrors the original's positional THTensor entry before
// finalization divides the sums by size.
type accum struct {
	sumX, sumY, sumZ float64
	size             int
	xLo, xHi         int
	yLo, yHi         int
	zLo, zHi         int
}

// Components reduces a label volume to per-component geometry records,
// per SPEC_FULL.md §4.5: a single pass accumulating 1-based coordinate
// sums and bounding-box extrema per label id, then a finalization pass
// computing centroid, extents, and box center (z-box-center divisor 2,
// the corrected 3D formula — see ComponentsFrom2D for the legacy 2D
// bug-compatible entry point).
// Complexity: O(L*H*W), parallelized across z-slices with a per-worker
// partial accumulator merged at the end.
func Components(labels *volume.LabelVolume) (map[int]*Record, error) {
	if labels == nil {
		return nil, ErrNilLabelVolume
	}

	partials := scanPartials(labels)
	merged := mergePartials(partials)

	return finalize3D(merged), nil
}

// scanPartials partitions the z range across a worker pool and returns
// one accumulator map per worker, each keyed by component id, with no
// shared mutable state between workers (disjoint z-slices).
func scanPartials(labels *volume.LabelVolume) []map[int]*accum {
	workers := runtime.GOMAXPROCS(0)
	if workers > labels.L {
		workers = labels.L
	}
	if workers < 1 {
		workers = 1
	}

	partials := make([]map[int]*accum, workers)
	var wg sync.WaitGroup
	chunk := (labels.L + workers - 1) / workers
	for w := 0; w < workers; w++ {
		zStart := w * chunk
		zEnd := zStart + chunk
		if zEnd > labels.L {
			zEnd = labels.L
		}
		if zStart >= zEnd {
			partials[w] = map[int]*accum{}
			continue
		}
		wg.Add(1)
		go func(w, zStart, zEnd int) {
			defer wg.Done()
			partials[w] = scanRange(labels, zStart, zEnd)
		}(w, zStart, zEnd)
	}
	wg.Wait()

	return partials
}

// scanRange accumulates geometry over z in [zStart, zEnd).
func scanRange(labels *volume.LabelVolume, zStart, zEnd int) map[int]*accum {
	acc := make(map[int]*accum)
	for z := zStart; z < zEnd; z++ {
		for y := 0; y < labels.H; y++ {
			for x := 0; x < labels.W; x++ {
				id := labels.At(z, y, x)
				accumulate(acc, id, x+1, y+1, z+1)
			}
		}
	}

	return acc
}

// accumulate folds one 1-based voxel coordinate into id's accumulator,
// creating it on first sight.
func accumulate(acc map[int]*accum, id, x1, y1, z1 int) {
	a, ok := acc[id]
	if !ok {
		acc[id] = &accum{
			sumX: float64(x1), sumY: float64(y1), sumZ: float64(z1),
			size: 1,
			xLo:  x1, xHi: x1,
			yLo: y1, yHi: y1,
			zLo: z1, zHi: z1,
		}

		return
	}
	a.sumX += float64(x1)
	a.sumY += float64(y1)
	a.sumZ += float64(z1)
	a.size++
	if x1 < a.xLo {
		a.xLo = x1
	}
	if x1 > a.xHi {
		a.xHi = x1
	}
	if y1 < a.yLo {
		a.yLo = y1
	}
	if y1 > a.yHi {
		a.yHi = y1
	}
	if z1 < a.zLo {
		a.zLo = z1
	}
	if z1 > a.zHi {
		a.zHi = z1
	}
}

// mergePartials combines the per-worker accumulators into one map.
func mergePartials(partials []map[int]*accum) map[int]*accum {
	merged := make(map[int]*accum)
	for _, p := range partials {
		for id, a := range p {
			dst, ok := merged[id]
			if !ok {
				merged[id] = a
				continue
			}
			dst.sumX += a.sumX
			dst.sumY += a.sumY
			dst.sumZ += a.sumZ
			dst.size += a.size
			if a.xLo < dst.xLo {
				dst.xLo = a.xLo
			}
			if a.xHi > dst.xHi {
				dst.xHi = a.xHi
			}
			if a.yLo < dst.yLo {
				dst.yLo = a.yLo
			}
			if a.yHi > dst.yHi {
				dst.yHi = a.yHi
			}
			if a.zLo < dst.zLo {
				dst.zLo = a.zLo
			}
			if a.zHi > dst.zHi {
				dst.zHi = a.zHi
			}
		}
	}

	return merged
}

// finalize3D divides centroid sums by size and computes extents and box
// centers using the corrected divisor 2 on every axis.
func finalize3D(merged map[int]*accum) map[int]*Record {
	out := make(map[int]*Record, len(merged))
	for id, a := range merged {
		size := float64(a.size)
		out[id] = &Record{
			CX: a.sumX / size, CY: a.sumY / size, CZ: a.sumZ / size,
			Size: a.size, Class: 0, ID: id,
			XLo: a.xLo, XHi: a.xHi,
			YLo: a.yLo, YHi: a.yHi,
			ZLo: a.zLo, ZHi: a.zHi,
			DX: a.xHi - a.xLo + 1, DY: a.yHi - a.yLo + 1, DZ: a.zHi - a.zLo + 1,
			BoxCX: float64(a.xHi+a.xLo) / 2,
			BoxCY: float64(a.yHi+a.yLo) / 2,
			BoxCZ: float64(a.zHi+a.zLo) / 2,
		}
	}

	return out
}

// ComponentsFrom2D reproduces the original source's 2D legacy entry
// point (SPEC_FULL.md §4.9, §10): the same accumulation as Components
// but over a plain [][]int grid with no z axis, preserving the known
// historical bug where the y-box-center divisor is 1 instead of 2. New
// callers should use Components; this exists only for bug-compatibility.
func ComponentsFrom2D(grid [][]int) (map[int]*Record, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("geometry: row length %d, want %d: %w", len(row), w, ErrNonRectangular)
		}
	}

	acc := make(map[int]*accum)
	for y, row := range grid {
		for x, id := range row {
			accumulate(acc, id, x+1, y+1, 1)
		}
	}

	out := make(map[int]*Record, len(acc))
	for id, a := range acc {
		size := float64(a.size)
		out[id] = &Record{
			CX: a.sumX / size, CY: a.sumY / size, CZ: a.sumZ / size,
			Size: a.size, Class: 0, ID: id,
			XLo: a.xLo, XHi: a.xHi,
			YLo: a.yLo, YHi: a.yHi,
			ZLo: 1, ZHi: 1,
			DX: a.xHi - a.xLo + 1, DY: a.yHi - a.yLo + 1, DZ: 1,
			BoxCX: float64(a.xHi+a.xLo) / 2,
			BoxCY: float64(a.yHi+a.yLo) / 1, // preserved historical bug, divisor 1
			BoxCZ: 1,
		}
	}

	return out, nil
}
