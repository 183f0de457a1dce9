// Package adjacency derives a label-adjacency graph from a label volume
// (package volume): two component ids are adjacent when some pair of
// 6-connected voxels carries those two different labels. The result is
// a symmetric map with no self-loops, grounded on the original source's
// videograph_(adjacency) entry point, which scans the east, south, and
// forward (z+1) neighbor of every voxel and records both directions of
// each differing pair.
package adjacency
