package adjacency

import (
	"runtime"
	"sync"

	"github.com/voxelgraph/vgseg/volume"
)

// Adjacency scans a label volume for differing-label voxel pairs along the
// east, south, and forward-in-time neighbor directions and records both
// directions of each pair into a symmetric Map. Complexity: O(L*H*W),
// parallelized across z-slices; the three neighbor checks per voxel
// make the scan embarrassingly parallel since no slice ever mutates a
// state shared with another slice's pass.
func Adjacency(labels *volume.LabelVolume) (Map, error) {
	if labels == nil {
		return nil, ErrNilLabelVolume
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > labels.L {
		workers = labels.L
	}
	if workers < 1 {
		workers = 1
	}

	partials := make([]Map, workers)
	var wg sync.WaitGroup
	chunk := (labels.L + workers - 1) / workers
	for w := 0; w < workers; w++ {
		zStart := w * chunk
		zEnd := zStart + chunk
		if zEnd > labels.L {
			zEnd = labels.L
		}
		if zStart >= zEnd {
			partials[w] = Map{}
			continue
		}
		wg.Add(1)
		go func(w, zStart, zEnd int) {
			defer wg.Done()
			partials[w] = scanRange(labels, zStart, zEnd)
		}(w, zStart, zEnd)
	}
	wg.Wait()

	out := make(Map)
	for _, p := range partials {
		for a, nbrs := range p {
			for b := range nbrs {
				out.link(a, b)
			}
		}
	}

	return out, nil
}

func scanRange(labels *volume.LabelVolume, zStart, zEnd int) Map {
	m := make(Map)
	for z := zStart; z < zEnd; z++ {
		for y := 0; y < labels.H; y++ {
			for x := 0; x < labels.W; x++ {
				id := labels.At(z, y, x)
				if x < labels.W-1 {
					idEast := labels.At(z, y, x+1)
					if id != idEast {
						m.link(id, idEast)
						m.link(idEast, id)
					}
				}
				if y < labels.H-1 {
					idSouth := labels.At(z, y+1, x)
					if id != idSouth {
						m.link(id, idSouth)
						m.link(idSouth, id)
					}
				}
				if z < labels.L-1 {
					idNext := labels.At(z+1, y, x)
					if id != idNext {
						m.link(id, idNext)
						m.link(idNext, id)
					}
				}
			}
		}
	}

	return m
}
