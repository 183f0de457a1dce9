// Package volume defines the dense tensor types shared by the segmentation
// pipeline: the feature volume consumed by EdgeBuilder, the optional flow
// field consumed by FlowEdgeBuilder, the edge tensor produced by both, and
// the label volume produced by MSTSegmenter.
//
// All multi-dimensional data is stored C-contiguous, row-major, in the
// dimension order the caller is expected to supply: [z, c, y, x] for
// channelled volumes, [z, y, x] for label volumes. Nothing in this package
// performs I/O, allocation beyond the tensors themselves, or layout
// conversion — channels-last inputs must be converted by the caller before
// reaching this core.
package volume

import "errors"

// ErrDimensionMismatch indicates that a tensor's rank or size violates the
// layout contract of this package (e.g. L*C*H*W != len(Data), or two
// tensors expected to share spatial dimensions disagree).
var ErrDimensionMismatch = errors.New("volume: dimension mismatch")
