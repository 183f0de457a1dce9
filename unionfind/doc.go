// Package unionfind provides an array-backed disjoint-set forest over a
// fixed universe of N voxel identifiers, with union-by-size and path
// compression. It additionally tracks a per-root "surface" — the voxel
// count of the component currently rooted there — since the MST
// segmenter's adaptive threshold and minimum-size cleanup pass both key
// off component size.
//
// The forest is an arena-plus-index model: parent/size live in flat
// slices indexed by voxel id, with no node objects and no ownership
// cycles, matching the natural shape of a union-find forest in a
// systems language.
package unionfind
