// Package element implements globally defined finite elements: element
// families whose shape functions have no closed form and are instead
// solved for by inverting a generalized Vandermonde matrix mapping the
// monomial power basis to the family's degree-of-freedom functionals.
package element

import (
	"github.com/notargets/FEMBasis/element/library/pbasis"
)

// DOFCounts describes how a family's degrees of freedom attach to the
// triangle: per-vertex, per-edge and element-interior counts. The
// local DOF index convention follows this layout: vertex DOFs first,
// grouped per vertex, then edge DOFs in local edge order, then
// interior DOFs.
type DOFCounts struct {
	Nodal    int // DOFs per vertex
	Edge     int // DOFs per edge
	Interior int // DOFs private to the element
}

// Total returns the number of DOFs per triangle.
func (c DOFCounts) Total() int { return 3*c.Nodal + 3*c.Edge + c.Interior }

// Family defines one globally defined element family. DOF is the only
// customization point: it applies the family's j-th degree-of-freedom
// functional to a candidate power basis function using one element's
// geometry, returning a single real number. Implementations must be
// pure and deterministic.
type Family interface {
	Name() string
	ShortName() string

	// Maxdeg is the maximum total degree of the power basis.
	Maxdeg() int

	// NumDerivatives is the highest derivative order the power basis
	// carries, at least 2 (value, gradient and Hessian are always
	// produced).
	NumDerivatives() int

	Counts() DOFCounts

	DOF(u pbasis.Candidate, g Geometry, j int) float64
}
