package fixedpoint

import "github.com/katalvlaran/abelfp/operator"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultBasisOrder is the Hermite truncation level n shared by the
	// operator matrix, the forcing projection and the solution.
	DefaultBasisOrder = 60

	// DefaultConditionLimit is the largest acceptable condition estimate of
	// (I−A); beyond it the system is treated as singular.
	DefaultConditionLimit = 1e12

	// DefaultOperatorType is the type-II valuation operator, the one whose
	// fixed point is the Abel price-dividend ratio.
	DefaultOperatorType = operator.Valuation
)

// Option mutates internal options. Invalid values are not panicked on here;
// Solve validates the resolved configuration and returns sentinel errors,
// because basis order and condition limit are caller-facing preconditions.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order     int
	typ       operator.Type
	condLimit float64
	opOpts    []operator.Option // pass-through quadrature/worker options
}

// WithBasisOrder sets the basis truncation level n (matrix dimension).
func WithBasisOrder(n int) Option {
	return func(o *Options) { o.order = n }
}

// WithOperatorType selects the operator variant solved for.
func WithOperatorType(typ operator.Type) Option {
	return func(o *Options) { o.typ = typ }
}

// WithConditionLimit sets the singularity threshold for (I−A).
func WithConditionLimit(limit float64) Option {
	return func(o *Options) { o.condLimit = limit }
}

// WithQuadratureOrder forwards a fixed Gauss–Legendre order to the
// discretization (default max(2n, 64)). Panics on order <= 0, as the
// underlying operator option does.
func WithQuadratureOrder(order int) Option {
	op := operator.WithQuadratureOrder(order)

	return func(o *Options) { o.opOpts = append(o.opOpts, op) }
}

// WithTruncationWidth forwards the integration half-width in stationary
// standard deviations (default 10). Panics on non-positive width.
func WithTruncationWidth(width float64) Option {
	op := operator.WithTruncationWidth(width)

	return func(o *Options) { o.opOpts = append(o.opOpts, op) }
}

// WithWorkers forwards the assembly worker bound. Never affects the result.
func WithWorkers(workers int) Option {
	return func(o *Options) { o.opOpts = append(o.opOpts, operator.WithWorkers(workers)) }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		order:     DefaultBasisOrder,
		typ:       DefaultOperatorType,
		condLimit: DefaultConditionLimit,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
