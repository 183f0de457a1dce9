// Package edgebuild converts a dense feature volume into the edge tensor
// consumed by package segment's MSTSegmenter, under one of three
// neighbor topologies:
//
//   - Builder with Conn6  — axis-aligned 6-connectivity (D=3).
//   - Builder with Conn26 — full 3x3x3-cube connectivity (D=13).
//   - FlowBuilder         — 6-connectivity with the temporal edge warped
//     by a per-frame optical-flow field.
//
// Edge-weight computation is embarrassingly parallel (a pure read of the
// feature volume per voxel, a disjoint write into the edge tensor), so
// both builders fan work out across a worker pool sized to
// runtime.GOMAXPROCS(0), partitioned by z-slice.
package edgebuild
