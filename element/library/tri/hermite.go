package tri

import (
	"fmt"

	"github.com/notargets/FEMBasis/element"
	"github.com/notargets/FEMBasis/element/library/pbasis"
)

// Hermite is the cubic Hermite element: value and both first
// derivatives at each vertex plus the value at the centroid, ten DOFs
// matching the ten cubic monomials.
type Hermite struct {
	Derivatives int
}

func (Hermite) Name() string      { return "Hermite Triangle" }
func (Hermite) ShortName() string { return "TriHermite" }
func (Hermite) Maxdeg() int       { return 3 }

func (h Hermite) NumDerivatives() int {
	if h.Derivatives == 0 {
		return 2
	}
	return h.Derivatives
}

func (Hermite) Counts() element.DOFCounts {
	return element.DOFCounts{Nodal: 3, Interior: 1}
}

func (Hermite) DOF(u pbasis.Candidate, g element.Geometry, j int) float64 {
	if j < 9 {
		v := g.Verts[j/3]
		switch j % 3 {
		case 0:
			return u.Eval(v[0], v[1])
		case 1:
			return u.Dx(v[0], v[1])
		default:
			return u.Dy(v[0], v[1])
		}
	}
	if j == 9 {
		cx, cy := g.Centroid()
		return u.Eval(cx, cy)
	}
	panic(fmt.Sprintf("Hermite DOF index %d out of range [0, 10)", j))
}
