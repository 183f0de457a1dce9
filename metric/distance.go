package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/voxelgraph/vgseg/numeric"
)

// Metric selects the distance function used to weight an edge between
// two voxels. The zero value is Euclidean; construct one via Parse or use
// the exported constants.
type Metric int

const (
	// Euclidean is the L2 norm of the per-channel difference.
	Euclidean Metric = iota
	// Max is the Chebyshev (L-infinity) norm of the per-channel difference.
	Max
	// Angular is the epsilon-guarded arccosine of cosine similarity.
	Angular
)

// epsilon guards the angular metric's division against zero-norm vectors.
const epsilon = 1e-8

// String implements fmt.Stringer for diagnostic output.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Max:
		return "max"
	case Angular:
		return "angular"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Parse decodes the legacy single-character metric selector ('e', 'm',
// 'a') into a Metric. It is the only place in this core that accepts the
// character form; everything downstream consumes the typed Metric.
func Parse(r rune) (Metric, error) {
	switch r {
	case 'e':
		return Euclidean, nil
	case 'm':
		return Max, nil
	case 'a':
		return Angular, nil
	default:
		return 0, fmt.Errorf("metric: unknown selector %q: %w", r, ErrUnknownMetric)
	}
}

// Distance returns the non-negative distance between feature vectors p
// and q under m, in the same precision T they were carried in. Both
// vectors must have equal, non-zero length; that invariant is the
// caller's responsibility (package edgebuild always supplies same-length
// channel slices sliced from one FeatureVolume).
//
// T is numeric.Float (float32 or float64) — the per-call type-parameter
// dispatch spec.md §9 asks for in place of the original's
// THGenerateFloatTypes macro registration. The reduction itself always
// runs in float64 (gonum's floats package is float64-only), so a
// float32 caller loses no precision the original's own float path
// didn't already have, and gains none the original's double path had;
// the result is narrowed back to T at the end.
func Distance[T numeric.Float](p, q []T, m Metric) T {
	pf := widen(p)
	qf := widen(q)

	var d float64
	switch m {
	case Euclidean:
		d = euclidean(pf, qf)
	case Max:
		d = chebyshev(pf, qf)
	case Angular:
		d = angular(pf, qf)
	default:
		// Unreachable for any Metric obtained via Parse or the exported
		// constants; defend against a raw out-of-range conversion anyway.
		d = math.NaN()
	}

	return T(d)
}

// widen copies a T-typed vector into a fresh []float64, the only shape
// gonum's floats package accepts.
func widen[T numeric.Float](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}

	return out
}

// euclidean computes sqrt(sum((p_i - q_i)^2)) via gonum's floats.Distance,
// which is exactly the L2 norm of the difference for a norm argument of 2.
func euclidean(p, q []float64) float64 {
	return floats.Distance(p, q, 2)
}

// chebyshev computes max_i |p_i - q_i|, the L-infinity norm of the
// difference; floats.Distance with math.Inf(1) computes exactly this.
func chebyshev(p, q []float64) float64 {
	return floats.Distance(p, q, math.Inf(1))
}

// angular computes acos(dot(p,q) / (||p|| * ||q|| + epsilon)). When both
// vectors are zero this evaluates to acos(0/epsilon) = pi/2, matching the
// original source's documented (if surprising) behavior; callers for whom
// this matters should use Euclidean instead.
func angular(p, q []float64) float64 {
	dot := floats.Dot(p, q)
	normP := floats.Norm(p, 2)
	normQ := floats.Norm(q, 2)

	return math.Acos(dot / (normP*normQ + epsilon))
}
