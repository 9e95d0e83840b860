package tri

import (
	"fmt"

	"github.com/notargets/FEMBasis/element"
	"github.com/notargets/FEMBasis/element/library/pbasis"
)

// Argyris is the quintic C1 element: value, gradient and all three
// second derivatives at each vertex plus normal derivatives at the
// edge midpoints, 21 DOFs matching the 21 quintic monomials.
type Argyris struct {
	Derivatives int
}

func (Argyris) Name() string      { return "Argyris Triangle" }
func (Argyris) ShortName() string { return "TriArgyris" }
func (Argyris) Maxdeg() int       { return 5 }

func (a Argyris) NumDerivatives() int {
	if a.Derivatives == 0 {
		return 2
	}
	return a.Derivatives
}

func (Argyris) Counts() element.DOFCounts {
	return element.DOFCounts{Nodal: 6, Edge: 1}
}

func (Argyris) DOF(u pbasis.Candidate, g element.Geometry, j int) float64 {
	if j < 18 {
		v := g.Verts[j/6]
		switch j % 6 {
		case 0:
			return u.Eval(v[0], v[1])
		case 1:
			return u.Dx(v[0], v[1])
		case 2:
			return u.Dy(v[0], v[1])
		case 3:
			return u.Dxx(v[0], v[1])
		case 4:
			return u.Dxy(v[0], v[1])
		default:
			return u.Dyy(v[0], v[1])
		}
	}
	if j < 21 {
		f := j - 18
		e, n := g.Mids[f], g.Normals[f]
		return u.Dx(e[0], e[1])*n[0] + u.Dy(e[0], e[1])*n[1]
	}
	panic(fmt.Sprintf("Argyris DOF index %d out of range [0, 21)", j))
}
