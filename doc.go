// Package abelfp solves the linear fixed-point equation f = Af + φ arising
// in the Abel asset-pricing model, where A is the valuation operator induced
// by a Gaussian AR(1) state process and φ is an exponential forcing term.
//
// 🚀 What is abelfp?
//
//	A spectral (Galerkin) solver: the operator A is discretized in an
//	orthonormal Hermite basis aligned with the stationary distribution of
//	the state, φ is projected onto the same basis by Gauss–Legendre
//	quadrature, and the resulting dense system (I−A)c = b is solved
//	directly. The result is an immutable, evaluable approximation of f.
//
// ✨ Why choose abelfp?
//
//   - Deterministic — identical inputs give bitwise-identical solutions,
//     regardless of worker count
//   - Classified failures — invalid parameters, non-finite quadrature and
//     ill-conditioned systems surface as distinct sentinel errors
//   - No globals — every solve is reproducible from its arguments and
//     options alone
//
// Everything is organized under five subpackages:
//
//	hermite/    — physicists' Hermite polynomials (raw and orthonormal)
//	ar1/        — stationary Gaussian AR(1) state process
//	abel/       — Abel-model parameters and forcing coefficients
//	operator/   — spectral discretization of the valuation operator
//	fixedpoint/ — linear solve, solution type and the Solve pipeline
//
// Quick start:
//
//	sol, err := fixedpoint.Solve(0.96, 0.1, 3.0, 0.96)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Eval(2.0))
//
//	go get github.com/katalvlaran/abelfp
package abelfp
