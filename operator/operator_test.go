package operator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/abelfp/ar1"
	"github.com/katalvlaran/abelfp/operator"
)

// newProcess builds a representative stationary process for tests.
func newProcess(t *testing.T) *ar1.Process {
	t.Helper()
	p, err := ar1.New(0.9, 0.05, 0.1)
	require.NoError(t, err)

	return p
}

// constPhi is a constant forcing function used where φ's shape is irrelevant.
func constPhi(float64) float64 { return 0.96 }

// TestDiscretize_ValidatesArguments covers the argument sentinels: nil
// process, nil forcing (for types that evaluate φ), bad order, bad type.
func TestDiscretize_ValidatesArguments(t *testing.T) {
	p := newProcess(t)

	_, err := operator.Discretize(nil, constPhi, operator.Valuation, 4)
	assert.ErrorIs(t, err, operator.ErrNilProcess)

	_, err = operator.Discretize(p, nil, operator.Valuation, 4)
	assert.ErrorIs(t, err, operator.ErrNilForcing)

	_, err = operator.Discretize(p, constPhi, operator.Valuation, 0)
	assert.ErrorIs(t, err, operator.ErrBadOrder)

	_, err = operator.Discretize(p, constPhi, operator.Type(0), 4)
	assert.ErrorIs(t, err, operator.ErrBadType)
}

// TestProject_ValidatesArguments covers Project's argument sentinels.
func TestProject_ValidatesArguments(t *testing.T) {
	p := newProcess(t)

	_, err := operator.Project(nil, constPhi, 4)
	assert.ErrorIs(t, err, operator.ErrNilProcess)

	_, err = operator.Project(p, nil, 4)
	assert.ErrorIs(t, err, operator.ErrNilForcing)

	_, err = operator.Project(p, constPhi, -1)
	assert.ErrorIs(t, err, operator.ErrBadOrder)
}

// TestDiscretize_ExpectationPreservesConstants verifies two exact identities
// of the type-I (conditional expectation) operator in the orthonormal basis:
// column 0 is e_0 (E[ψ_0|x] = ψ_0 = 1) and row 0 is e_0ᵀ (the law of total
// expectation E_π[E[ψ_j|x]] = E_π[ψ_j] = δ_{0j}).
func TestDiscretize_ExpectationPreservesConstants(t *testing.T) {
	const n = 12
	p := newProcess(t)

	a, err := operator.Discretize(p, nil, operator.Expectation, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		want := 0.0
		if i == 0 {
			want = 1.0
		}
		assert.InDelta(t, want, a.At(i, 0), 1e-8, "column 0 entry %d", i)
		assert.InDelta(t, want, a.At(0, i), 1e-8, "row 0 entry %d", i)
	}
}

// TestDiscretize_ValuationScalesConstantForcing checks that with a constant
// forcing φ ≡ κ the type-II matrix is exactly κ times the type-I matrix.
func TestDiscretize_ValuationScalesConstantForcing(t *testing.T) {
	const n = 8
	p := newProcess(t)

	expect, err := operator.Discretize(p, nil, operator.Expectation, n)
	require.NoError(t, err)
	valued, err := operator.Discretize(p, constPhi, operator.Valuation, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 0.96*expect.At(i, j), valued.At(i, j), 1e-12,
				"entry (%d,%d)", i, j)
		}
	}
}

// TestDiscretize_SingleBasisFunction verifies the degenerate n=1 case: the
// 1×1 expectation operator is ⟨E[1|x], 1⟩_π = 1.
func TestDiscretize_SingleBasisFunction(t *testing.T) {
	p := newProcess(t)

	a, err := operator.Discretize(p, nil, operator.Expectation, 1)
	require.NoError(t, err)

	r, c := a.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)
	assert.InDelta(t, 1.0, a.At(0, 0), 1e-10)
}

// TestDiscretize_DeterministicAcrossWorkers verifies the assembly is
// bitwise identical regardless of worker count.
func TestDiscretize_DeterministicAcrossWorkers(t *testing.T) {
	const n = 10
	p := newProcess(t)

	serial, err := operator.Discretize(p, constPhi, operator.Valuation, n, operator.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := operator.Discretize(p, constPhi, operator.Valuation, n, operator.WithWorkers(8))
	require.NoError(t, err)

	assert.True(t, mat.Equal(serial, parallel), "worker count must not change entries")
}

// TestDiscretize_NonFiniteForcing verifies that a forcing function producing
// NaN surfaces as ErrNonFinite and no matrix is returned.
func TestDiscretize_NonFiniteForcing(t *testing.T) {
	p := newProcess(t)
	bad := func(float64) float64 { return math.NaN() }

	a, err := operator.Discretize(p, bad, operator.Valuation, 4)
	assert.ErrorIs(t, err, operator.ErrNonFinite)
	assert.Nil(t, a, "no partial matrix may escape on failure")
}

// TestProject_ConstantIsFirstCoefficient verifies that projecting a constant
// lands entirely on ψ_0: b = (κ, 0, ..., 0).
func TestProject_ConstantIsFirstCoefficient(t *testing.T) {
	const n = 10
	p := newProcess(t)

	b, err := operator.Project(p, constPhi, n)
	require.NoError(t, err)
	require.Equal(t, n, b.Len())

	assert.InDelta(t, 0.96, b.AtVec(0), 1e-10)
	for i := 1; i < n; i++ {
		assert.InDelta(t, 0, b.AtVec(i), 1e-8, "coefficient %d", i)
	}
}

// TestProject_RecoversBasisFunction projects ψ_1∘τ itself and expects the
// unit coordinate vector e_1, by orthonormality under the stationary law.
func TestProject_RecoversBasisFunction(t *testing.T) {
	const n = 8
	p := newProcess(t)
	psi1 := func(x float64) float64 { return math.Sqrt2 * p.Standardize(x) }

	b, err := operator.Project(p, psi1, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		want := 0.0
		if i == 1 {
			want = 1.0
		}
		assert.InDelta(t, want, b.AtVec(i), 1e-8, "coefficient %d", i)
	}
}

// TestProject_NonFiniteForcing verifies the ErrNonFinite path of Project.
func TestProject_NonFiniteForcing(t *testing.T) {
	p := newProcess(t)
	bad := func(x float64) float64 { return math.Inf(1) }

	b, err := operator.Project(p, bad, 4)
	assert.ErrorIs(t, err, operator.ErrNonFinite)
	assert.Nil(t, b)
}

// TestOptions_PanicOnNonsense verifies constructor panics for programmer
// errors, mirroring the option contract.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { operator.WithQuadratureOrder(0) })
	assert.Panics(t, func() { operator.WithTruncationWidth(-1) })
	assert.Panics(t, func() { operator.WithTruncationWidth(math.NaN()) })
	assert.NotPanics(t, func() { operator.WithWorkers(-5) }, "worker bound is clamped, not a panic")
}

// TestDiscretize_TruncationWidthStability checks that widening the window
// beyond the default leaves a low-order matrix essentially unchanged (the
// truncated Gaussian mass is already negligible at width 10).
func TestDiscretize_TruncationWidthStability(t *testing.T) {
	const n = 6
	p := newProcess(t)

	def, err := operator.Discretize(p, constPhi, operator.Valuation, n)
	require.NoError(t, err)
	wide, err := operator.Discretize(p, constPhi, operator.Valuation, n,
		operator.WithTruncationWidth(12), operator.WithQuadratureOrder(96))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, def.At(i, j), wide.At(i, j), 1e-7, "entry (%d,%d)", i, j)
		}
	}
}
