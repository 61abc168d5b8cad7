package operator

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/abelfp/ar1"
	"github.com/katalvlaran/abelfp/hermite"
)

// grid holds the shared quadrature layout: Gauss–Legendre nodes/weights on
// the truncated window and the orthonormal basis tabulated at every node.
type grid struct {
	nodes   []float64   // quadrature nodes x_k
	weights []float64   // quadrature weights w_k
	basis   [][]float64 // basis[k][i] = ψ_i(τ(x_k)), len m × n
}

// newGrid lays out m Gauss–Legendre nodes on [mean − w·std, mean + w·std]
// and tabulates ψ_0..ψ_{n−1} at each standardized node.
func newGrid(p *ar1.Process, n, m int, width float64) (*grid, error) {
	lo := p.Mean() - width*p.Std()
	hi := p.Mean() + width*p.Std()

	g := &grid{
		nodes:   make([]float64, m),
		weights: make([]float64, m),
		basis:   make([][]float64, m),
	}
	quad.Legendre{}.FixedLocations(g.nodes, g.weights, lo, hi)

	for k, x := range g.nodes {
		row, err := hermite.Tabulate(n, p.Standardize(x))
		if err != nil {
			return nil, err
		}
		g.basis[k] = row
	}

	return g, nil
}

// kernelWeight returns φ(x)^{t−1}. Type I never evaluates φ.
func kernelWeight(phi func(float64) float64, typ Type, x float64) float64 {
	switch typ {
	case Expectation:
		return 1
	case Valuation:
		return phi(x)
	default:
		return math.Pow(phi(x), float64(typ-1))
	}
}

// Discretize builds the n×n spectral approximation of the type-typ valuation
// operator for the given process and forcing function:
//
//	A[i,j] = ∫∫ ψ_j(τ(y))·φ(x)^{typ−1}·q(x,y)·ψ_i(τ(x))·π(x) dy dx.
//
// Entries are deterministic for a given configuration; assembly runs on a
// bounded worker pool writing disjoint rows. A NaN/±Inf entry is reported as
// ErrNonFinite wrapped with the offending (i,j) indices.
func Discretize(p *ar1.Process, phi func(float64) float64, typ Type, n int, opts ...Option) (*mat.Dense, error) {
	if p == nil {
		return nil, ErrNilProcess
	}
	if phi == nil && typ != Expectation {
		return nil, ErrNilForcing
	}
	if n <= 0 {
		return nil, ErrBadOrder
	}
	if typ < Expectation {
		return nil, ErrBadType
	}

	o := gatherOptions(n, opts...)
	g, err := newGrid(p, n, o.quadOrder, o.width)
	if err != nil {
		return nil, err
	}
	m := o.quadOrder

	// Stage 1: inner integrals. cond[k][j] = ∫ ψ_j(τ(y))·q(x_k,y) dy, the
	// conditional expectation of ψ_j∘τ given state x_k, by quadrature over
	// the shared node set. Rows are independent; summation order over l is
	// fixed, so the result does not depend on scheduling.
	cond := make([][]float64, m)
	var inner errgroup.Group
	inner.SetLimit(o.workers)
	for k := 0; k < m; k++ {
		k := k
		inner.Go(func() error {
			row := make([]float64, n)
			for l := 0; l < m; l++ {
				q := g.weights[l] * p.TransitionDensity(g.nodes[k], g.nodes[l])
				floats.AddScaled(row, q, g.basis[l])
			}
			cond[k] = row

			return nil
		})
	}
	if err = inner.Wait(); err != nil {
		return nil, err
	}

	// Stage 2: outer integrals. Row i of A accumulates
	// Σ_k w_k·π(x_k)·φ(x_k)^{typ−1}·ψ_i(τ(x_k)) · cond[k][·].
	outerWeight := make([]float64, m)
	for k := 0; k < m; k++ {
		outerWeight[k] = g.weights[k] * p.Density(g.nodes[k]) * kernelWeight(phi, typ, g.nodes[k])
	}

	a := mat.NewDense(n, n, nil)
	var outer errgroup.Group
	outer.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		i := i
		outer.Go(func() error {
			row := a.RawRowView(i) // disjoint destination per worker
			for k := 0; k < m; k++ {
				floats.AddScaled(row, outerWeight[k]*g.basis[k][i], cond[k])
			}

			return nil
		})
	}
	if err = outer.Wait(); err != nil {
		return nil, err
	}

	// Surface the first non-finite entry in row-major order; no partially
	// valid matrix escapes.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
	}

	return a, nil
}

// Project computes the basis coefficients of g under the stationary
// distribution, b_i = ∫ g(x)·ψ_i(τ(x))·π(x) dx, over the same truncated
// window and quadrature order as Discretize. A non-finite coefficient is
// reported as ErrNonFinite wrapped with the offending index.
func Project(p *ar1.Process, fn func(float64) float64, n int, opts ...Option) (*mat.VecDense, error) {
	if p == nil {
		return nil, ErrNilProcess
	}
	if fn == nil {
		return nil, ErrNilForcing
	}
	if n <= 0 {
		return nil, ErrBadOrder
	}

	o := gatherOptions(n, opts...)
	g, err := newGrid(p, n, o.quadOrder, o.width)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for k, x := range g.nodes {
		floats.AddScaled(out, g.weights[k]*p.Density(x)*fn(x), g.basis[k])
	}

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("coefficient %d: %w", i, ErrNonFinite)
		}
	}

	return mat.NewVecDense(n, out), nil
}
