package operator

import "errors"

// Type selects the power to which the forcing function enters the operator
// kernel: type t weights q(x,y) by φ(x)^{t−1}.
type Type int

const (
	// Expectation is the type-I operator: the plain conditional expectation
	// (Af)(x) = E[f(x')|x], kernel weight φ⁰ = 1.
	Expectation Type = 1

	// Valuation is the type-II operator: the pricing operator
	// (Af)(x) = φ(x)·E[f(x')|x], kernel weight φ¹.
	Valuation Type = 2
)

// Sentinel errors returned by Discretize and Project.
var (
	// ErrNilProcess indicates a nil *ar1.Process argument.
	ErrNilProcess = errors.New("operator: process is nil")

	// ErrNilForcing indicates a nil forcing function argument.
	ErrNilForcing = errors.New("operator: forcing function is nil")

	// ErrBadOrder indicates a non-positive basis order n.
	ErrBadOrder = errors.New("operator: basis order must be positive")

	// ErrBadType indicates an operator type below I.
	ErrBadType = errors.New("operator: operator type must be >= 1")

	// ErrNonFinite indicates that quadrature produced a NaN or ±Inf entry.
	// It is wrapped with the offending basis indices; callers match it via
	// errors.Is and may retry with a higher quadrature order.
	ErrNonFinite = errors.New("operator: non-finite quadrature result")
)
