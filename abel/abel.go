package abel

import (
	"errors"
	"math"

	"github.com/katalvlaran/abelfp/ar1"
)

// Sentinel errors returned by Model construction.
var (
	// ErrBadDiscount indicates β outside (0,1) or non-finite.
	ErrBadDiscount = errors.New("abel: discount factor must lie in (0,1)")

	// ErrBadVolatility indicates σ ≤ 0 or non-finite.
	ErrBadVolatility = errors.New("abel: volatility must be positive and finite")

	// ErrBadRiskAversion indicates a non-finite risk-aversion coefficient γ.
	ErrBadRiskAversion = errors.New("abel: risk aversion must be finite")

	// ErrBadPersistence indicates |ρ| ≥ 1 or non-finite, under which the
	// state process has no stationary distribution.
	ErrBadPersistence = errors.New("abel: persistence must satisfy |rho| < 1")
)

// Model holds the validated primitives (β, σ, γ, ρ) and the coefficients
// derived from them at construction time. Immutable once constructed.
type Model struct {
	beta  float64
	sigma float64
	gamma float64
	rho   float64

	k0    float64 // forcing scale, k0 = β·e^{(1−γ)σ²/2}
	k1    float64 // forcing exponent, k1 = (γ−1)(1−ρ)
	drift float64 // state drift, b = γσ²/2
}

// New validates the primitives and caches the derived coefficients.
// See the package documentation for the identities implemented.
func New(beta, sigma, gamma, rho float64) (*Model, error) {
	if math.IsNaN(beta) || beta <= 0 || beta >= 1 {
		return nil, ErrBadDiscount
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, ErrBadVolatility
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, ErrBadRiskAversion
	}
	if math.IsNaN(rho) || math.Abs(rho) >= 1 {
		return nil, ErrBadPersistence
	}

	return &Model{
		beta:  beta,
		sigma: sigma,
		gamma: gamma,
		rho:   rho,
		k0:    beta * math.Exp((1-gamma)*sigma*sigma/2),
		k1:    (gamma - 1) * (1 - rho),
		drift: gamma * sigma * sigma / 2,
	}, nil
}

// Beta returns the discount factor β.
func (m *Model) Beta() float64 { return m.beta }

// Sigma returns the shock volatility σ.
func (m *Model) Sigma() float64 { return m.sigma }

// Gamma returns the risk-aversion coefficient γ.
func (m *Model) Gamma() float64 { return m.gamma }

// Rho returns the state persistence ρ.
func (m *Model) Rho() float64 { return m.rho }

// K0 returns the forcing scale k0 = β·e^{(1−γ)σ²/2}.
func (m *Model) K0() float64 { return m.k0 }

// K1 returns the forcing exponent k1 = (γ−1)(1−ρ).
func (m *Model) K1() float64 { return m.k1 }

// Drift returns the state drift b = γσ²/2.
func (m *Model) Drift() float64 { return m.drift }

// Phi evaluates the forcing function φ(x) = k0·e^{k1·x}.
func (m *Model) Phi(x float64) float64 {
	return m.k0 * math.Exp(m.k1*x)
}

// Process constructs the stationary AR(1) state process parameterized by
// the model's (ρ, b, σ).
func (m *Model) Process() (*ar1.Process, error) {
	return ar1.New(m.rho, m.drift, m.sigma)
}
