// Package metric implements the pairwise voxel distance kernel shared by
// EdgeBuilder and FlowEdgeBuilder (package edgebuild).
//
// Three metrics are supported, selected by the tagged variant Metric:
//
//   - Euclidean — L2 norm of the per-channel difference.
//   - Max       — Chebyshev (L-infinity) norm of the per-channel difference.
//   - Angular   — arccosine of cosine similarity, epsilon-guarded against
//     division by zero.
//
// A single-character legacy selector ('e', 'm', 'a') is accepted at the
// binding boundary via Parse and decoded into the variant immediately;
// nothing downstream of Parse ever branches on the character form.
//
// Distance is generic over numeric.Float (float32 or float64), so a
// caller passes single-precision feature data as is; Distance widens it
// to float64 internally for the reduction and returns the result
// converted back to the caller's type.
package metric
