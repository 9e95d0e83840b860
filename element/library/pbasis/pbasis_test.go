package pbasis

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedCount is |{(i,j,k): i+j+k <= maxdeg}| restricted to dim axes.
func expectedCount(maxdeg, dim int) int {
	switch dim {
	case 1:
		return maxdeg + 1
	case 2:
		return (maxdeg + 1) * (maxdeg + 2) / 2
	default:
		return (maxdeg + 1) * (maxdeg + 2) * (maxdeg + 3) / 6
	}
}

func TestTableSize(t *testing.T) {
	for _, tc := range []struct {
		maxdeg, dim, maxOrder int
	}{
		{0, 1, 2}, {3, 1, 2}, {2, 2, 2}, {5, 2, 2}, {5, 2, 4}, {2, 3, 2}, {3, 3, 3},
	} {
		t.Run(fmt.Sprintf("maxdeg=%d,dim=%d,order=%d", tc.maxdeg, tc.dim, tc.maxOrder), func(t *testing.T) {
			tab, err := New(tc.maxdeg, tc.dim, tc.maxOrder)
			require.NoError(t, err)

			want := expectedCount(tc.maxdeg, tc.dim)
			assert.Equal(t, want, tab.N)

			// Same N for every derivative key, and the key count is
			// sum of dim^k over k=0..maxOrder.
			wantKeys := 0
			p := 1
			for k := 0; k <= tc.maxOrder; k++ {
				wantKeys += p
				p *= tc.dim
			}
			assert.Equal(t, wantKeys, len(tab.AllKeys()))
			for _, key := range tab.AllKeys() {
				assert.Len(t, tab.funcs[key], want, "key %q", key)
			}
		})
	}
}

func TestUnsupportedDimension(t *testing.T) {
	for _, dim := range []int{0, 4, -1} {
		_, err := New(2, dim, 2)
		assert.Error(t, err, "dim=%d", dim)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(-1, 2, 2)
	assert.Error(t, err)
	_, err = New(2, 2, -1)
	assert.Error(t, err)
}

// TestDerivativeConsistency checks the closed form first derivatives
// against central finite differences of the order zero functions.
func TestDerivativeConsistency(t *testing.T) {
	const h = 1e-6
	const tol = 1e-4

	for _, tc := range []struct {
		maxdeg, dim int
	}{
		{2, 1}, {3, 2}, {5, 2}, {2, 3},
	} {
		t.Run(fmt.Sprintf("maxdeg=%d,dim=%d", tc.maxdeg, tc.dim), func(t *testing.T) {
			tab, err := New(tc.maxdeg, tc.dim, 2)
			require.NoError(t, err)

			pt := [3]float64{0.37, -0.61, 0.23}
			for m := 0; m < tab.N; m++ {
				f := tab.Fn(KeyOf(), m)
				for axis := 0; axis < tc.dim; axis++ {
					plus, minus := pt, pt
					plus[axis] += h
					minus[axis] -= h
					fd := (f(plus[0], plus[1], plus[2]) - f(minus[0], minus[1], minus[2])) / (2 * h)

					exact := tab.Fn(KeyOf(axis), m)(pt[0], pt[1], pt[2])
					if math.Abs(fd-exact) > tol*math.Max(1, math.Abs(exact)) {
						t.Errorf("monomial %d axis %d: finite difference %g, closed form %g",
							m, axis, fd, exact)
					}
				}
			}
		})
	}
}

// TestSecondDerivativeConsistency differences the closed form first
// derivatives to validate the mixed second derivatives.
func TestSecondDerivativeConsistency(t *testing.T) {
	const h = 1e-6
	const tol = 1e-3

	tab, err := New(4, 2, 2)
	require.NoError(t, err)

	x, y := 0.8, -0.45
	for m := 0; m < tab.N; m++ {
		for _, axes := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
			first := tab.Fn(KeyOf(axes[0]), m)
			var fd float64
			if axes[1] == 0 {
				fd = (first(x+h, y, 0) - first(x-h, y, 0)) / (2 * h)
			} else {
				fd = (first(x, y+h, 0) - first(x, y-h, 0)) / (2 * h)
			}
			exact := tab.Fn(KeyOf(axes[0], axes[1]), m)(x, y, 0)
			if math.Abs(fd-exact) > tol*math.Max(1, math.Abs(exact)) {
				t.Errorf("monomial %d d%v: finite difference %g, closed form %g", m, axes, fd, exact)
			}
		}
	}
}

// TestPowerRuleClamp covers the case where the derivative order along
// an axis exceeds the monomial's exponent: the coefficient must be
// exactly zero, never a spurious nonzero constant.
func TestPowerRuleClamp(t *testing.T) {
	assert.Equal(t, 0.0, powerRuleConst(1, 3))
	assert.Equal(t, 0.0, powerRuleConst(0, 1))
	assert.Equal(t, 0.0, powerRuleConst(2, 5))
	assert.Equal(t, 1.0, powerRuleConst(3, 0))
	assert.Equal(t, 6.0, powerRuleConst(3, 2))  // 3*2
	assert.Equal(t, 24.0, powerRuleConst(4, 4)) // 4!

	// Third derivative of x (and anything of lower degree) vanishes
	// identically.
	tab, err := New(1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	for m := 0; m < tab.N; m++ {
		v := tab.Fn(KeyOf(0, 0, 0), m)(2.5, 0, 0)
		assert.Equal(t, 0.0, v, "monomial %d", m)
	}
}

// TestMonomialOrdering pins the ordering contract: entry m of every
// derivative key refers to the same underlying monomial.
func TestMonomialOrdering(t *testing.T) {
	tab, err := New(2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Ordering for maxdeg=2, dim=2: 1, y, y^2, x, xy, x^2.
	x, y := 2.0, 3.0
	want := []float64{1, y, y * y, x, x * y, x * x}
	wantDx := []float64{0, 0, 0, 1, y, 2 * x}
	for m := range want {
		assert.InDelta(t, want[m], tab.Fn(KeyOf(), m)(x, y, 0), 1e-14, "value %d", m)
		assert.InDelta(t, wantDx[m], tab.Fn(KeyOf(0), m)(x, y, 0), 1e-14, "dx %d", m)
	}
}

func TestCandidateAccessors(t *testing.T) {
	tab, err := New(3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	// Monomial x^2*y sits somewhere in the table; locate it by value.
	x, y := 1.7, -0.9
	for m := 0; m < tab.N; m++ {
		c := tab.Candidate(m)
		assert.Equal(t, m, c.Index())
		assert.Equal(t, c.At(KeyOf())(x, y, 0), c.Eval(x, y))
		assert.Equal(t, c.Diff(0)(x, y, 0), c.Dx(x, y))
		assert.Equal(t, c.Diff(1)(x, y, 0), c.Dy(x, y))
		assert.Equal(t, c.Diff(0, 1)(x, y, 0), c.Dxy(x, y))
	}
}
