// Package ar1 models the stationary Gaussian AR(1) state process
//
//	x' = b + ρ·x + σ·ε,   ε ~ N(0,1),   |ρ| < 1,
//
// which drives the valuation operator. The package exposes exactly what the
// spectral discretization consumes:
//
//   - the stationary moments mean = b/(1−ρ) and std = σ/√(1−ρ²);
//   - Standardize, the affine map τ(x) = (x−mean)/(std·√2) aligning the
//     stationary Gaussian with the Hermite weight e^{−τ²}, so that the
//     orthonormal Hermite family composed with τ is orthonormal in L² of
//     the stationary distribution;
//   - Density, the stationary N(mean, std²) pdf used as integration weight;
//   - TransitionDensity, the one-step conditional pdf q(x,·) = N(b+ρx, σ²).
//
// Construction fails fast on parameters without a stationary distribution:
// |ρ| ≥ 1 has no finite stationary variance, and the moments above would
// divide by zero or take a negative radicand. Callers never see NaN/Inf
// from a constructed Process.
//
// Errors (sentinel):
//
//	– ErrNonStationary if |ρ| ≥ 1 (or ρ is not finite).
//	– ErrBadVolatility if σ ≤ 0 (or σ is not finite).
//	– ErrBadDrift      if b is not finite.
//
// A Process is immutable after construction and safe for concurrent use.
package ar1
