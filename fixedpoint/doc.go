// Package fixedpoint assembles and solves the spectral approximation of the
// Abel valuation fixed point f = Af + φ, and packages the result as an
// immutable, evaluable Solution.
//
// Pipeline (one pure function chain, no state between calls):
//
//	(β, σ, γ, ρ) ──abel──▶ coefficients k0, k1, drift
//	            ──ar1───▶ stationary AR(1) process
//	            ──operator──▶ matrix A (n×n), forcing vector b (n)
//	            ──SolveSystem──▶ coefficient vector c with (I−A)c = b
//	            ──Solution──▶ f(x) = Σ c_i·ψ_i(τ(x))
//
// Well-posedness. The infinite-dimensional fixed point exists and is unique
// when the spectral radius of A lies below 1 (for the Abel valuation
// operator this is the knife-edge β·e^{(γ−1)²σ²} < 1; see package abel).
// SolveSystem guards the finite system only: it estimates the condition
// number of (I−A) from the LU factorization and rejects estimates above the
// configured limit (default 1e12) with ErrSingularSystem, so garbage
// coefficients never escape a near-singular solve. A supercritical model
// can still yield a well-conditioned finite system; checking the knife-edge
// is the caller's economics, not this package's numerics.
//
// Solution is a small immutable value (coefficients + process transform)
// exposing an Eval method, rather than a closure over mutable environment;
// it is repeatedly callable and safe for concurrent use. Accuracy degrades
// smoothly outside the truncation window used during discretization.
//
// Errors (sentinel):
//
//	– ErrBadBasisOrder     if the configured basis order is < 1.
//	– ErrBadConditionLimit if the configured condition limit is not positive.
//	– ErrDimensionMismatch if SolveSystem receives incompatible shapes.
//	– ErrSingularSystem    if (I−A) is numerically singular; wrapped with
//	                       the condition estimate.
//
// Parameter errors from abel/ar1 and quadrature errors from operator
// propagate unchanged, so callers can match the full taxonomy with
// errors.Is. No partial results accompany an error.
package fixedpoint
