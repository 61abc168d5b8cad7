package operator

import (
	"math"
	"runtime"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTruncationWidth is the half-width of the integration window in
	// stationary standard deviations: [mean − w·std, mean + w·std].
	DefaultTruncationWidth = 10.0

	// DefaultQuadratureOrder (0) means "derive from the basis order": the
	// effective Gauss–Legendre order is max(2n, MinQuadratureOrder). See
	// the package documentation for the rationale.
	DefaultQuadratureOrder = 0

	// MinQuadratureOrder floors the derived order. Resolving the Gaussian
	// factor on the default ±10-std window needs roughly 40 Legendre nodes
	// independently of the basis order; 64 leaves headroom for wider
	// windows without the caller having to tune anything.
	MinQuadratureOrder = 64

	// DefaultWorkers (0) means "one worker per available CPU"
	// (runtime.GOMAXPROCS).
	DefaultWorkers = 0
)

// Internal panic messages (no magic strings).
const (
	panicWidthInvalid = "operator: WithTruncationWidth: width must be positive and finite"
	panicOrderInvalid = "operator: WithQuadratureOrder: order must be positive"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); runtime failures are returned as errors.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	quadOrder int     // 0 ⇒ max(2n, MinQuadratureOrder)
	width     float64 // truncation half-width in stationary stds
	workers   int     // 0 ⇒ GOMAXPROCS
}

// WithQuadratureOrder fixes the Gauss–Legendre order for both integral
// dimensions. Panics if order <= 0; omit the option to use the derived
// default max(2n, MinQuadratureOrder).
func WithQuadratureOrder(order int) Option {
	if order <= 0 {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.quadOrder = order }
}

// WithTruncationWidth sets the integration half-width in stationary
// standard deviations. Panics on non-positive or non-finite width.
func WithTruncationWidth(width float64) Option {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		panic(panicWidthInvalid)
	}

	return func(o *Options) { o.width = width }
}

// WithWorkers bounds the assembly worker pool. Values <= 0 restore the
// default (GOMAXPROCS). Worker count never affects the numeric result.
func WithWorkers(workers int) Option {
	return func(o *Options) { o.workers = workers }
}

// gatherOptions applies user setters on top of the documented defaults and
// finalizes derived values (effective quadrature order, worker count).
func gatherOptions(n int, user ...Option) Options {
	o := Options{
		quadOrder: DefaultQuadratureOrder,
		width:     DefaultTruncationWidth,
		workers:   DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	if o.quadOrder == 0 {
		o.quadOrder = 2 * n
		if o.quadOrder < MinQuadratureOrder {
			o.quadOrder = MinQuadratureOrder
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
