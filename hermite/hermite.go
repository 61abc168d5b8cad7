package hermite

import (
	"errors"
	"math"
)

// ErrNegativeDegree indicates that a negative polynomial degree was requested.
var ErrNegativeDegree = errors.New("hermite: degree must be non-negative")

// Eval returns the physicists' Hermite polynomial H_deg at x via the
// three-term recurrence H_0=1, H_1=2x, H_{k+1}=2x·H_k−2k·H_{k−1}.
//
// Overflow note: H_deg(x) grows roughly like (2x)^deg, so the raw family is
// only safe for moderate degrees; the solver uses Normalized internally.
func Eval(deg int, x float64) (float64, error) {
	if deg < 0 {
		return 0, ErrNegativeDegree
	}
	if deg == 0 {
		return 1, nil
	}

	prev, curr := 1.0, 2*x // H_0, H_1
	for k := 1; k < deg; k++ {
		prev, curr = curr, 2*x*curr-2*float64(k)*prev
	}

	return curr, nil
}

// Normalized returns ψ_deg = H_deg/√(2^deg·deg!) at x, the variant
// orthonormal under the Gaussian probability measure e^{−x²}/√π dx, so that
// ψ_0 ≡ 1. It runs the normalized recurrence
// ψ_{k+1} = x·√(2/(k+1))·ψ_k − √(k/(k+1))·ψ_{k−1}, which keeps intermediate
// magnitudes bounded where the raw recurrence overflows.
func Normalized(deg int, x float64) (float64, error) {
	if deg < 0 {
		return 0, ErrNegativeDegree
	}
	if deg == 0 {
		return 1, nil
	}

	prev, curr := 1.0, math.Sqrt2*x // ψ_0, ψ_1
	for k := 1; k < deg; k++ {
		fk := float64(k)
		prev, curr = curr, x*math.Sqrt(2/(fk+1))*curr-math.Sqrt(fk/(fk+1))*prev
	}

	return curr, nil
}

// Tabulate returns ψ_0(x)..ψ_{n−1}(x) in one recurrence pass.
// The returned slice has length n and is freshly allocated on every call.
func Tabulate(n int, x float64) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeDegree
	}
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	out[0] = 1
	if n == 1 {
		return out, nil
	}
	out[1] = math.Sqrt2 * x
	for k := 1; k < n-1; k++ {
		fk := float64(k)
		out[k+1] = x*math.Sqrt(2/(fk+1))*out[k] - math.Sqrt(fk/(fk+1))*out[k-1]
	}

	return out, nil
}

// Series evaluates Σ coeffs[i]·ψ_i(x) by running the normalized recurrence
// once and accumulating terms in index order (deterministic summation).
// An empty coefficient slice yields 0.
func Series(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}

	sum := coeffs[0] // ψ_0 ≡ 1
	if n == 1 {
		return sum
	}

	prev, curr := 1.0, math.Sqrt2*x
	sum += coeffs[1] * curr
	for k := 1; k < n-1; k++ {
		fk := float64(k)
		prev, curr = curr, x*math.Sqrt(2/(fk+1))*curr-math.Sqrt(fk/(fk+1))*prev
		sum += coeffs[k+1] * curr
	}

	return sum
}
