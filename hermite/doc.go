// Package hermite evaluates physicists' Hermite polynomials, the orthogonal
// family underlying the spectral discretization of the valuation operator.
//
// Two variants are exposed:
//
//   - Eval — the raw polynomials H_k, defined by the three-term recurrence
//     H_0(x) = 1, H_1(x) = 2x, H_{k+1}(x) = 2x·H_k(x) − 2k·H_{k−1}(x).
//     They are orthogonal on ℝ under the weight e^{−x²} with
//     ∫ H_i H_j e^{−x²} dx = √π·2^i·i!·δ_ij.
//
//   - Normalized — the variant ψ_k = H_k / √(2^k·k!), orthonormal under the
//     Gaussian probability measure e^{−x²}/√π dx (so ψ_0 ≡ 1), evaluated
//     through the normalized recurrence
//     ψ_{k+1}(x) = x·√(2/(k+1))·ψ_k(x) − √(k/(k+1))·ψ_{k−1}(x),
//     which keeps intermediate magnitudes bounded and avoids the overflow
//     the raw recurrence hits at high degree.
//
// The solver consumes the orthonormal family: composed with the state
// process's standardizing transform it is orthonormal in L² of the
// stationary distribution, so basis coefficients are plain inner products
// and the constant function is exactly ψ_0.
//
// All functions are deterministic, side-effect free and safe for concurrent
// use from multiple goroutines.
//
// Errors (sentinel):
//
//	– ErrNegativeDegree if a negative polynomial degree is requested.
//
// Complexity: Eval/Normalized are O(deg); Tabulate and Series are O(n) for
// n polynomials, one recurrence pass.
package hermite
