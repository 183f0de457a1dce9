// Package segment implements the adaptive MST-style agglomerative
// segmentation (Felzenszwalb–Huttenlocher) that turns an edge tensor
// (package edgebuild) into a label volume (package volume): sort all
// edges by weight, then greedily merge components via an array-backed
// disjoint-set forest (package unionfind) gated by a per-component
// adaptive threshold, followed by a small-component cleanup pass.
//
// Algorithms Provided
//
//   - MSTSegmenter[T].Segment(e *volume.EdgeTensor[T]) (*Result, error)
//     Materializes edges from e, sorts them by ascending weight (using
//     Go's guaranteed O(N log N) sort.Slice — the source's recursive
//     quicksort degrades to O(N^2) on sorted input, a defect this port
//     intentionally does not reproduce), then runs the adaptive merge
//     and cleanup passes of SPEC_FULL.md §4.4.
//
// Error Conditions
//
//	ErrInvalidParameter       — k <= 0 or min_size < 0.
//	ErrUnsupportedDirections  — edge tensor D not in {3, 13}.
//
// Complexity: O(E log E + alpha(N)*E) time, O(N + E) memory, where
// E = number of stored edges and N = L*H*W voxels.
package segment
