// Package abel derives the scalar coefficients of the Abel-model valuation
// problem from the preference/technology parameters (β, σ, γ, ρ).
//
// Model specification (the identities implemented here):
//
//	Log consumption growth x_t = ln(C_t/C_{t−1}) follows the Gaussian AR(1)
//	x_{t+1} = b + ρ·x_t + σ·ε_{t+1}. Preferences are Abel's (1990)
//	"catching up with the Joneses" with unit habit, u(C_t/C_{t−1}) of CRRA
//	curvature γ, giving the stochastic discount factor
//
//	    M_{t+1} = β·e^{−γ·x_{t+1}}·e^{(γ−1)·x_t}.
//
//	The one-period valuation coefficient of the consumption claim is then
//
//	    φ(x) = E[M_{t+1}·e^{x_{t+1}} | x_t = x]
//	         = β·e^{(1−γ)(b+ρx) + (1−γ)²σ²/2}·e^{(γ−1)x}
//	         = k0·e^{k1·x},
//
//	    k1 = (γ−1)(1−ρ),
//	    b  = γ·σ²/2,
//	    k0 = β·e^{(1−γ)b + (1−γ)²σ²/2} = β·e^{(1−γ)σ²/2}.
//
//	The drift b = γσ²/2 is the precautionary (Jensen) correction that
//	normalizes the conditional mean of the discount-factor growth
//	component: E[e^{−γx'} | x] = e^{−γρx}.
//
//	The price-dividend ratio satisfies f(x) = φ(x)·(1 + E[f(x')|x]),
//	i.e. f = Af + φ with the type-II valuation operator
//	(Af)(x) = φ(x)·E[f(x')|x]. Its spectral radius has the closed form
//	λ = k0·e^{θb + θ²σ²/2} with θ = k1/(1−ρ) = γ−1, which collapses to
//
//	    λ = β·e^{(γ−1)²σ²},
//
//	the Abel knife-edge: for β=0.96, γ=3, the model is subcritical at
//	σ=0.075 (λ≈0.982), marginal at σ=0.1 (λ≈0.999) and supercritical at
//	σ=0.125 (λ≈1.022). Above the edge no fixed point exists and the solver
//	returns the solution of the projected finite system.
//
// Validation happens entirely at construction; a constructed Model never
// produces NaN/Inf coefficients.
//
// Errors (sentinel):
//
//	– ErrBadDiscount     if β ∉ (0,1) or β is not finite.
//	– ErrBadVolatility   if σ ≤ 0 or σ is not finite.
//	– ErrBadRiskAversion if γ is not finite.
//	– ErrBadPersistence  if |ρ| ≥ 1 or ρ is not finite.
package abel
