// Package pbasis generates the monomial power basis {x^i y^j z^k :
// i+j+k <= maxdeg} together with closed form partial derivatives up to
// a configurable order. Globally defined elements express their true
// basis functions as linear combinations of these monomials.
package pbasis

import (
	"fmt"
)

// Key identifies a mixed partial derivative as an ordered tuple of axis
// indices, stored as the concatenation of axis digits: "" is the
// function itself, "0" is d/dx, "01" is d2/dxdy.
type Key string

// KeyOf builds a Key from axis indices.
func KeyOf(axes ...int) Key {
	b := make([]byte, len(axes))
	for i, a := range axes {
		b[i] = byte('0' + a)
	}
	return Key(b)
}

// Order returns the derivative order of the key.
func (k Key) Order() int { return len(k) }

// Axes returns the axis index tuple of the key.
func (k Key) Axes() []int {
	axes := make([]int, len(k))
	for i := 0; i < len(k); i++ {
		axes[i] = int(k[i] - '0')
	}
	return axes
}

// counts returns how many times each axis appears in the key.
func (k Key) counts() (dx, dy, dz int) {
	for i := 0; i < len(k); i++ {
		switch k[i] {
		case '0':
			dx++
		case '1':
			dy++
		case '2':
			dz++
		}
	}
	return
}

// Func evaluates one monomial (or a derivative of one) at a point.
// Unused trailing coordinates are ignored for dim < 3.
type Func func(x, y, z float64) float64

// Table holds, per derivative key, the ordered slice of N monomial
// functions. The same monomial ordering is used for every key, so
// entry m of any key is a derivative of entry m of the order zero key.
type Table struct {
	Maxdeg   int
	Dim      int
	MaxOrder int
	N        int

	keys  []Key
	funcs map[Key][]Func
}

// New builds the full derivative-key to function table for the given
// maximum total degree, spatial dimension (1, 2 or 3) and maximum
// derivative order.
func New(maxdeg, dim, maxOrder int) (*Table, error) {
	if dim < 1 || dim > 3 {
		return nil, fmt.Errorf("unsupported dimension %d, must be 1, 2 or 3", dim)
	}
	if maxdeg < 0 {
		return nil, fmt.Errorf("maximum degree must be non-negative, got %d", maxdeg)
	}
	if maxOrder < 0 {
		return nil, fmt.Errorf("derivative order must be non-negative, got %d", maxOrder)
	}

	t := &Table{
		Maxdeg:   maxdeg,
		Dim:      dim,
		MaxOrder: maxOrder,
		keys:     Keys(dim, maxOrder),
		funcs:    make(map[Key][]Func),
	}

	exps := exponents(maxdeg, dim)
	t.N = len(exps)

	for _, key := range t.keys {
		dx, dy, dz := key.counts()
		fns := make([]Func, t.N)
		for m, e := range exps {
			fns[m] = monomialDeriv(e[0], e[1], e[2], dx, dy, dz)
		}
		t.funcs[key] = fns
	}
	return t, nil
}

// Keys enumerates every derivative key of every order 0..maxOrder as
// the Cartesian product of axis choices, lowest order first.
func Keys(dim, maxOrder int) []Key {
	keys := []Key{KeyOf()}
	prev := []Key{KeyOf()}
	for order := 1; order <= maxOrder; order++ {
		next := make([]Key, 0, len(prev)*dim)
		for _, p := range prev {
			for a := 0; a < dim; a++ {
				next = append(next, p+KeyOf(a))
			}
		}
		keys = append(keys, next...)
		prev = next
	}
	return keys
}

// AllKeys returns every derivative key of the table, lowest order first.
func (t *Table) AllKeys() []Key { return t.keys }

// Fn returns the derivative key's function for monomial index m.
func (t *Table) Fn(key Key, m int) Func { return t.funcs[key][m] }

// Candidate returns a view of monomial m across all derivative keys,
// the form in which DOF functionals receive a trial function.
func (t *Table) Candidate(m int) Candidate {
	return Candidate{tab: t, m: m}
}

// exponents lists the monomial exponent tuples with total degree at
// most maxdeg, outer loop over the x exponent, then y, then z. This
// ordering is the contract between the table and the Vandermonde
// matrix columns.
func exponents(maxdeg, dim int) [][3]int {
	var exps [][3]int
	switch dim {
	case 1:
		for i := 0; i <= maxdeg; i++ {
			exps = append(exps, [3]int{i, 0, 0})
		}
	case 2:
		for i := 0; i <= maxdeg; i++ {
			for j := 0; j <= maxdeg; j++ {
				if i+j <= maxdeg {
					exps = append(exps, [3]int{i, j, 0})
				}
			}
		}
	case 3:
		for i := 0; i <= maxdeg; i++ {
			for j := 0; j <= maxdeg; j++ {
				for k := 0; k <= maxdeg; k++ {
					if i+j+k <= maxdeg {
						exps = append(exps, [3]int{i, j, k})
					}
				}
			}
		}
	}
	return exps
}

// monomialDeriv builds the closure for the (dx,dy,dz) mixed partial of
// x^i y^j z^k using the power rule along each axis.
func monomialDeriv(i, j, k, dx, dy, dz int) Func {
	c := powerRuleConst(i, dx) * powerRuleConst(j, dy) * powerRuleConst(k, dz)
	px := max(i-dx, 0)
	py := max(j-dy, 0)
	pz := max(k-dz, 0)
	if c == 0 {
		return func(x, y, z float64) float64 { return 0 }
	}
	return func(x, y, z float64) float64 {
		return c * ipow(x, px) * ipow(y, py) * ipow(z, pz)
	}
}

// powerRuleConst is the falling factorial exp*(exp-1)*...*(exp-d+1).
// It is zero whenever the exponent is smaller than the derivative
// count, clamped explicitly rather than relying on a zero factor.
func powerRuleConst(exp, d int) float64 {
	if exp < d {
		return 0
	}
	c := 1.0
	for l := d; l >= 1; l-- {
		c *= float64(exp - d + l)
	}
	return c
}

// ipow computes x^n for non-negative integer n.
func ipow(x float64, n int) float64 {
	if n == 0 {
		return 1.0
	}
	result := x
	for i := 1; i < n; i++ {
		result *= x
	}
	return result
}
