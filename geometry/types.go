// Package geometry reduces a label volume (package volume) to per-
// component geometry statistics: centroid, voxel count, and tight
// bounding box. Components is a single pass accumulating running sums
// and box extrema per label id, grounded on the original source's
// segm2components entry point and on this corpus's gridgraph package,
// which performs the analogous "scan a dense grid, bucket by value"
// reduction for ConnectedComponents.
package geometry

// Record is the per-component geometry entry of SPEC_FULL.md §3: an
// 18-field record mirroring the original's fixed-width THTensor layout,
// expressed here as named fields instead of positional indices 0..17.
type Record struct {
	// Centroid, 1-based mean coordinates.
	CX, CY, CZ float64
	// Size is the voxel count of this component.
	Size int
	// Class is a reserved compatibility slot for the histpooling method
	// in the original source; this core never writes a non-zero value.
	Class int
	// ID is the component identifier (the label volume's value for this
	// component — a DisjointSet root index when produced by package
	// segment).
	ID int
	// Tight bounding box, 1-based inclusive coordinates.
	XLo, XHi int
	YLo, YHi int
	ZLo, ZHi int
	// Bounding-box extents.
	DX, DY, DZ int
	// Bounding-box center.
	BoxCX, BoxCY, BoxCZ float64
}
