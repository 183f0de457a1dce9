// Package numeric declares the type constraint shared by every tensor
// and distance computation in this module. The original source
// registers both a float and a double instantiation of every tensor
// operation via THGenerateFloatTypes.h (see videograph_FloatInit and
// videograph_DoubleInit in original_source/init.cpp); this constraint
// is the Go-native equivalent of that dual-precision dispatch — a
// compile-time type parameter instead of a macro-generated function
// table per precision.
package numeric

// Float is satisfied by exactly the floating-point types this system
// carries feature, flow, and edge-weight data in: float32 (single
// precision) and float64 (double precision).
type Float interface {
	~float32 | ~float64
}
