// Package tri implements globally defined triangular element
// families. Each family supplies only its DOF functionals; the basis
// functions themselves are solved for by element.GlobalElement.
package tri

import (
	"fmt"

	"github.com/notargets/FEMBasis/element"
	"github.com/notargets/FEMBasis/element/library/pbasis"
)

// Morley is the quadratic nonconforming element for fourth order
// problems: point values at the three vertices plus normal derivatives
// at the three edge midpoints, six DOFs matching the six monomials of
// total degree at most two.
type Morley struct {
	// Derivatives optionally raises the derivative order carried by
	// the basis; the zero value means the default of 2.
	Derivatives int
}

func (Morley) Name() string      { return "Morley Triangle" }
func (Morley) ShortName() string { return "TriMorley" }
func (Morley) Maxdeg() int       { return 2 }

func (m Morley) NumDerivatives() int {
	if m.Derivatives == 0 {
		return 2
	}
	return m.Derivatives
}

func (Morley) Counts() element.DOFCounts {
	return element.DOFCounts{Nodal: 1, Edge: 1}
}

func (Morley) DOF(u pbasis.Candidate, g element.Geometry, j int) float64 {
	switch {
	case j < 3:
		v := g.Verts[j]
		return u.Eval(v[0], v[1])
	case j < 6:
		f := j - 3
		e, n := g.Mids[f], g.Normals[f]
		return u.Dx(e[0], e[1])*n[0] + u.Dy(e[0], e[1])*n[1]
	default:
		panic(fmt.Sprintf("Morley DOF index %d out of range [0, 6)", j))
	}
}
