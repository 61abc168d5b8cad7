package fixedpoint

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/abelfp/abel"
	"github.com/katalvlaran/abelfp/ar1"
	"github.com/katalvlaran/abelfp/hermite"
	"github.com/katalvlaran/abelfp/operator"
)

// Sentinel errors returned by the fixedpoint package.
var (
	// ErrBadBasisOrder indicates a configured basis order below 1.
	ErrBadBasisOrder = errors.New("fixedpoint: basis order must be positive")

	// ErrBadConditionLimit indicates a non-positive condition threshold.
	ErrBadConditionLimit = errors.New("fixedpoint: condition limit must be positive")

	// ErrDimensionMismatch indicates incompatible matrix/vector shapes.
	ErrDimensionMismatch = errors.New("fixedpoint: dimension mismatch")

	// ErrSingularSystem indicates that (I−A) is numerically singular or its
	// condition estimate exceeds the configured limit. It is wrapped with
	// the estimate; economically the model has no stable fixed point.
	ErrSingularSystem = errors.New("fixedpoint: system (I-A) is singular or ill-conditioned")

	// ErrNilProcess indicates a nil process passed to NewSolution.
	ErrNilProcess = errors.New("fixedpoint: process is nil")

	// ErrEmptyCoefficients indicates an empty coefficient vector passed to
	// NewSolution.
	ErrEmptyCoefficients = errors.New("fixedpoint: coefficient vector is empty")
)

// SolveSystem solves (I−A)·c = b by dense LU factorization. The factorized
// system's condition estimate is checked against condLimit before any
// coefficients are returned.
func SolveSystem(a mat.Matrix, b *mat.VecDense, condLimit float64) (*mat.VecDense, error) {
	if condLimit <= 0 || math.IsNaN(condLimit) {
		return nil, ErrBadConditionLimit
	}

	r, c := a.Dims()
	if r != c || b == nil || b.Len() != r {
		return nil, ErrDimensionMismatch
	}

	// Form M = I − A.
	m := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			v := -a.At(i, j)
			if i == j {
				v++
			}
			m.Set(i, j, v)
		}
	}

	var lu mat.LU
	lu.Factorize(m)
	if cond := lu.Cond(); math.IsNaN(cond) || cond > condLimit {
		return nil, fmt.Errorf("condition estimate %.3e exceeds limit %.3e: %w", cond, condLimit, ErrSingularSystem)
	}

	out := mat.NewVecDense(r, nil)
	if err := lu.SolveVecTo(out, false, b); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSingularSystem)
	}

	return out, nil
}

// Solution is the reconstructed fixed point: an immutable value holding the
// solved basis coefficients and the process's standardizing transform.
// Safe for concurrent use; Eval has no side effects.
type Solution struct {
	coeffs []float64
	proc   *ar1.Process
}

// NewSolution packages solved coefficients with the process whose transform
// standardizes evaluation arguments. The coefficient slice is copied.
func NewSolution(coeffs []float64, p *ar1.Process) (*Solution, error) {
	if p == nil {
		return nil, ErrNilProcess
	}
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	own := make([]float64, len(coeffs))
	copy(own, coeffs)

	return &Solution{coeffs: own, proc: p}, nil
}

// Eval returns f(x) = Σ c_i·ψ_i(τ(x)).
func (s *Solution) Eval(x float64) float64 {
	return hermite.Series(s.coeffs, s.proc.Standardize(x))
}

// Coeffs returns a copy of the solved basis coefficients.
func (s *Solution) Coeffs() []float64 {
	out := make([]float64, len(s.coeffs))
	copy(out, s.coeffs)

	return out
}

// BasisOrder returns the truncation level n of the expansion.
func (s *Solution) BasisOrder() int { return len(s.coeffs) }

// Process returns the state process the solution was built on.
func (s *Solution) Process() *ar1.Process { return s.proc }

// Solve computes the fixed point f = Af + φ of the Abel model for the given
// primitives. It validates parameters, discretizes the operator, projects
// the forcing function, solves the dense system and returns the evaluable
// solution. All failures are classified sentinel errors; no partial result
// accompanies an error.
func Solve(beta, sigma, gamma, rho float64, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	if o.order < 1 {
		return nil, ErrBadBasisOrder
	}
	if o.condLimit <= 0 || math.IsNaN(o.condLimit) {
		return nil, ErrBadConditionLimit
	}

	model, err := abel.New(beta, sigma, gamma, rho)
	if err != nil {
		return nil, err
	}
	proc, err := model.Process()
	if err != nil {
		return nil, err
	}

	a, err := operator.Discretize(proc, model.Phi, o.typ, o.order, o.opOpts...)
	if err != nil {
		return nil, err
	}
	b, err := operator.Project(proc, model.Phi, o.order, o.opOpts...)
	if err != nil {
		return nil, err
	}

	c, err := SolveSystem(a, b, o.condLimit)
	if err != nil {
		return nil, err
	}

	return NewSolution(c.RawVector().Data, proc)
}
