package ar1

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors returned by Process construction.
var (
	// ErrNonStationary indicates |ρ| ≥ 1: the process has no stationary
	// distribution and the stationary moments are undefined.
	ErrNonStationary = errors.New("ar1: persistence must satisfy |rho| < 1")

	// ErrBadVolatility indicates a non-positive or non-finite shock scale σ.
	ErrBadVolatility = errors.New("ar1: volatility must be positive and finite")

	// ErrBadDrift indicates a non-finite drift term b.
	ErrBadDrift = errors.New("ar1: drift must be finite")
)

// Process is a stationary Gaussian AR(1) state process. Immutable once
// constructed; all methods are safe for concurrent use.
type Process struct {
	rho   float64
	drift float64
	sigma float64

	mean float64 // stationary mean b/(1−ρ)
	std  float64 // stationary std σ/√(1−ρ²)

	stationary distuv.Normal // N(mean, std²)
}

// New validates (ρ, b, σ) and returns the stationary process. It is the only
// constructor; the stationary moments are computed once here.
func New(rho, drift, sigma float64) (*Process, error) {
	if math.IsNaN(rho) || math.Abs(rho) >= 1 {
		return nil, ErrNonStationary
	}
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, ErrBadVolatility
	}
	if math.IsNaN(drift) || math.IsInf(drift, 0) {
		return nil, ErrBadDrift
	}

	mean := drift / (1 - rho)
	std := sigma / math.Sqrt(1-rho*rho)

	return &Process{
		rho:        rho,
		drift:      drift,
		sigma:      sigma,
		mean:       mean,
		std:        std,
		stationary: distuv.Normal{Mu: mean, Sigma: std},
	}, nil
}

// Rho returns the persistence ρ.
func (p *Process) Rho() float64 { return p.rho }

// Drift returns the drift b.
func (p *Process) Drift() float64 { return p.drift }

// Sigma returns the one-step shock scale σ.
func (p *Process) Sigma() float64 { return p.sigma }

// Mean returns the stationary mean b/(1−ρ).
func (p *Process) Mean() float64 { return p.mean }

// Std returns the stationary standard deviation σ/√(1−ρ²).
func (p *Process) Std() float64 { return p.std }

// Standardize maps a raw state x to the standardized coordinate
// τ = (x−mean)/(std·√2) consumed by the orthonormal Hermite basis.
func (p *Process) Standardize(x float64) float64 {
	return (x - p.mean) / (p.std * math.Sqrt2)
}

// Density returns the stationary N(mean, std²) pdf at x.
func (p *Process) Density(x float64) float64 {
	return p.stationary.Prob(x)
}

// TransitionDensity returns the one-step conditional pdf q(x, y), the
// density of N(b+ρx, σ²) evaluated at y.
func (p *Process) TransitionDensity(x, y float64) float64 {
	return distuv.Normal{Mu: p.drift + p.rho*x, Sigma: p.sigma}.Prob(y)
}
