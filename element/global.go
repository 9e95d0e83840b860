package element

import (
	"fmt"
	"sync"

	"github.com/notargets/FEMBasis/element/library/pbasis"
	"github.com/notargets/FEMBasis/mesh"
	"gonum.org/v1/gonum/mat"
)

// Mapper transforms reference coordinates to physical coordinates, one
// set per selected element. X is [dim × numPoints] in reference space;
// the result holds one [len(tind) × numPoints] matrix per spatial
// axis. The globally defined element treats it as a black box.
type Mapper interface {
	Apply(X *mat.Dense, tind []int) ([]*mat.Dense, error)
}

// GlobalElement solves for a family's basis functions by inverting the
// generalized Vandermonde matrix V[e][j][i] = (DOF functional j
// applied to power basis monomial i on element e's geometry). The
// per-element inverses are computed once over the whole mesh on first
// use and cached for the instance lifetime.
type GlobalElement struct {
	fam Family
	msh *mesh.TriMesh
	dim int

	mu   sync.Mutex
	tab  *pbasis.Table
	vinv []*mat.Dense // [K] matrices of shape N×N
}

// NewGlobalElement validates the family against the mesh. The DOF
// count must match the power basis size, otherwise the Vandermonde
// matrix cannot be square.
func NewGlobalElement(fam Family, msh *mesh.TriMesh) (*GlobalElement, error) {
	if fam.NumDerivatives() < 2 {
		return nil, fmt.Errorf("family %s configures %d derivatives, need at least 2",
			fam.Name(), fam.NumDerivatives())
	}
	n := numMonomials2D(fam.Maxdeg())
	if total := fam.Counts().Total(); total != n {
		return nil, fmt.Errorf("family %s has %d DOFs but maxdeg %d spans %d monomials",
			fam.Name(), total, fam.Maxdeg(), n)
	}
	return &GlobalElement{fam: fam, msh: msh, dim: 2}, nil
}

// Family returns the element family the instance was built for.
func (g *GlobalElement) Family() Family { return g.fam }

// NumBasis returns N, the number of basis functions per element.
func (g *GlobalElement) NumBasis() int { return numMonomials2D(g.fam.Maxdeg()) }

// ResetCache drops the cached inverse Vandermonde matrices. This is
// the only invalidation path; the next Basis call recomputes them.
func (g *GlobalElement) ResetCache() {
	g.mu.Lock()
	g.tab = nil
	g.vinv = nil
	g.mu.Unlock()
}

// prepare builds and caches the power basis table and the per-element
// inverse Vandermonde matrices on first use. Safe for concurrent
// first use; once filled, reads need no lock because nothing mutates
// the cache again.
func (g *GlobalElement) prepare() (*pbasis.Table, []*mat.Dense, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.vinv != nil {
		return g.tab, g.vinv, nil
	}

	tab, err := pbasis.New(g.fam.Maxdeg(), g.dim, g.fam.NumDerivatives())
	if err != nil {
		return nil, nil, err
	}

	// The inverse is computed globally over all mesh elements, not
	// just a requested subset, so any later subset reuses it.
	geos, err := ExtractGeometry(g.msh, nil)
	if err != nil {
		return nil, nil, err
	}

	N := tab.N
	vinv := make([]*mat.Dense, g.msh.K)
	V := make([]*mat.Dense, g.msh.K)
	for k := range V {
		V[k] = mat.NewDense(N, N, nil)
	}
	for itr := 0; itr < N; itr++ {
		u := tab.Candidate(itr)
		for jtr := 0; jtr < N; jtr++ {
			for k := range geos {
				V[k].Set(jtr, itr, g.fam.DOF(u, geos[k], jtr))
			}
		}
	}
	for k := range V {
		inv := mat.NewDense(N, N, nil)
		if err := inv.Inverse(V[k]); err != nil {
			return nil, nil, fmt.Errorf("failed to invert Vandermonde matrix for element %d: %v", k, err)
		}
		vinv[k] = inv
	}

	g.tab = tab
	g.vinv = vinv
	return g.tab, g.vinv, nil
}

// Basis evaluates basis function i at the reference points X for the
// elements in tind (all elements when tind is nil), returning value,
// gradient, Hessian and any configured higher derivative orders. The
// result is wrapped in a one-element slice to match the multi-basis
// calling convention of assembly layers.
func (g *GlobalElement) Basis(mp Mapper, X *mat.Dense, i int, tind []int) ([]*DiscreteField, error) {
	if r, _ := X.Dims(); r != g.dim {
		return nil, fmt.Errorf("reference points have %d coordinate rows, want %d", r, g.dim)
	}
	tab, vinv, err := g.prepare()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= tab.N {
		return nil, fmt.Errorf("basis function index %d out of range [0, %d)", i, tab.N)
	}
	if tind == nil {
		tind = g.msh.AllElements()
	}
	if len(tind) == 0 {
		return nil, fmt.Errorf("empty element subset")
	}
	if err := g.msh.CheckElementIndices(tind); err != nil {
		return nil, err
	}
	if _, npts := X.Dims(); npts == 0 {
		return nil, fmt.Errorf("no evaluation points given")
	}

	coords, err := mp.Apply(X, tind)
	if err != nil {
		return nil, err
	}
	if len(coords) != g.dim {
		return nil, fmt.Errorf("mapping produced %d coordinate axes, want %d", len(coords), g.dim)
	}
	xs, ys := coords[0], coords[1]
	nel := len(tind)
	_, npts := X.Dims()

	maxOrder := g.fam.NumDerivatives()
	U := make([]*DerivTensor, maxOrder+1)
	for k := range U {
		U[k] = NewDerivTensor(k, g.dim, nel, npts)
	}

	// Accumulate coeff(monomial, i) * monomialDerivative(x) for every
	// derivative key and monomial.
	for _, key := range tab.AllKeys() {
		out := U[key.Order()].At(key.Axes()...)
		for m := 0; m < tab.N; m++ {
			fn := tab.Fn(key, m)
			for e := 0; e < nel; e++ {
				c := vinv[tind[e]].At(m, i)
				if c == 0 {
					continue
				}
				for p := 0; p < npts; p++ {
					out.Set(e, p, out.At(e, p)+c*fn(xs.At(e, p), ys.At(e, p), 0))
				}
			}
		}
	}

	return []*DiscreteField{{
		Value: U[0].Comp[0],
		Grad:  U[1],
		Hess:  U[2],
		HOD:   U[3:],
	}}, nil
}

// numMonomials2D counts {(i,j): i+j <= maxdeg}.
func numMonomials2D(maxdeg int) int {
	return (maxdeg + 1) * (maxdeg + 2) / 2
}
