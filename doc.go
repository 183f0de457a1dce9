// Package vgseg builds and segments a weighted neighborhood graph over
// the voxels of a dense 3D (or spatiotemporal) feature volume.
//
// A video clip, a volumetric scan, or any other L×H×W grid of C-channel
// feature vectors becomes a voxel graph: Graph (or FlowGraph, for
// optical-flow-warped temporal edges) computes one edge weight per
// neighbor direction under a chosen distance metric, SegmentMST
// partitions the voxels into connected components with an adaptive
// Felzenszwalb–Huttenlocher merge, and Adjacency / SegmToComponents
// derive a label-adjacency graph and per-component geometry from the
// resulting label volume.
//
// Under the hood the work is split across eight subpackages:
//
//	numeric/   — the Float constraint (float32 or float64) shared by every tensor and kernel below
//	volume/    — dense tensor types (FeatureVolume, FlowField, EdgeTensor, LabelVolume, RGBVolume)
//	metric/    — Euclidean, Chebyshev, and angular distance kernels
//	unionfind/ — disjoint-set forest with path halving and surface tracking
//	edgebuild/ — neighborhood topology and edge-weight construction
//	segment/   — the MST-style adaptive segmentation pass
//	geometry/  — per-component centroid, size, and bounding box
//	adjacency/ — label-adjacency graph
//
// This package is a thin facade over those eight; see each subpackage's
// doc comment for the algorithm it implements.
//
//	go get github.com/voxelgraph/vgseg
package vgseg
