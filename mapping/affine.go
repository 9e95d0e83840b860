// Package mapping provides the reference-to-physical coordinate
// transform consumed by the basis evaluator.
package mapping

import (
	"fmt"

	"github.com/notargets/FEMBasis/mesh"
	"gonum.org/v1/gonum/mat"
)

// Affine maps the reference triangle (0,0), (1,0), (0,1) onto each
// physical triangle: x = A*xhat + v0 with A = [v1-v0 | v2-v0]. The
// per-element matrices are precomputed at construction.
type Affine struct {
	msh *mesh.TriMesh
	a   [][2][2]float64
	b   [][2]float64
	det []float64
}

// NewAffine precomputes the affine transform of every mesh element.
// Elements with non-positive Jacobian determinant (inverted or
// degenerate triangles) are rejected.
func NewAffine(m *mesh.TriMesh) (*Affine, error) {
	af := &Affine{
		msh: m,
		a:   make([][2][2]float64, m.K),
		b:   make([][2]float64, m.K),
		det: make([]float64, m.K),
	}
	for k, ev := range m.EToV {
		x0, y0 := m.VX[ev[0]], m.VY[ev[0]]
		x1, y1 := m.VX[ev[1]], m.VY[ev[1]]
		x2, y2 := m.VX[ev[2]], m.VY[ev[2]]
		af.a[k] = [2][2]float64{
			{x1 - x0, x2 - x0},
			{y1 - y0, y2 - y0},
		}
		af.b[k] = [2]float64{x0, y0}
		af.det[k] = af.a[k][0][0]*af.a[k][1][1] - af.a[k][0][1]*af.a[k][1][0]
		if af.det[k] <= 0 {
			return nil, fmt.Errorf("non-positive Jacobian determinant %g at element %d", af.det[k], k)
		}
	}
	return af, nil
}

// Det returns the Jacobian determinant of element k, twice its area.
func (af *Affine) Det(k int) float64 { return af.det[k] }

// Apply maps reference points X, shape [2 × numPoints], into physical
// space for each element of tind (all elements when tind is nil),
// returning x and y matrices of shape [len(tind) × numPoints].
func (af *Affine) Apply(X *mat.Dense, tind []int) ([]*mat.Dense, error) {
	r, npts := X.Dims()
	if r != 2 {
		return nil, fmt.Errorf("reference points have %d coordinate rows, want 2", r)
	}
	if tind == nil {
		tind = af.msh.AllElements()
	}
	if len(tind) == 0 || npts == 0 {
		return nil, fmt.Errorf("empty element subset or point set")
	}
	if err := af.msh.CheckElementIndices(tind); err != nil {
		return nil, err
	}

	xs := mat.NewDense(len(tind), npts, nil)
	ys := mat.NewDense(len(tind), npts, nil)
	for e, k := range tind {
		A, b := af.a[k], af.b[k]
		for p := 0; p < npts; p++ {
			r0, r1 := X.At(0, p), X.At(1, p)
			xs.Set(e, p, A[0][0]*r0+A[0][1]*r1+b[0])
			ys.Set(e, p, A[1][0]*r0+A[1][1]*r1+b[1])
		}
	}
	return []*mat.Dense{xs, ys}, nil
}
