package segment

import (
	"math/rand"

	"github.com/voxelgraph/vgseg/volume"
)

// Colorize assigns a random RGB triple to each distinct label id in
// labels, reusing colormap entries for ids already seen. It returns the
// colorized RGB volume and the (possibly grown) colormap, so callers can
// keep recoloring a sequence of label volumes with consistent colors
// across frames — this is the standalone equivalent of the original
// source's `colorize` entry point (SPEC_FULL.md §4.8), independent of
// MSTSegmenter.Segment's one-shot WithColor convenience.
//
// colormap may be nil, in which case a fresh map is allocated. rng may
// be nil, in which case a fixed-seed source is used (see WithRand).
// Complexity: O(L*H*W).
func Colorize(labels *volume.LabelVolume, colormap map[int][3]float64, rng *rand.Rand) (*volume.RGBVolume, map[int][3]float64) {
	if colormap == nil {
		colormap = make(map[int][3]float64)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	out := volume.NewRGBVolume(labels.L, labels.H, labels.W)
	for z := 0; z < labels.L; z++ {
		for y := 0; y < labels.H; y++ {
			for x := 0; x < labels.W; x++ {
				id := labels.At(z, y, x)
				rgb, ok := colormap[id]
				if !ok {
					rgb = [3]float64{rng.Float64(), rng.Float64(), rng.Float64()}
					colormap[id] = rgb
				}
				out.Set(z, y, x, rgb)
			}
		}
	}

	return out, colormap
}
