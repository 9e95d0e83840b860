package element

import (
	"gonum.org/v1/gonum/mat"
)

// DerivTensor stores every mixed partial of one derivative order for a
// batch of elements and evaluation points. Component (a_1,...,a_k) is
// a [numElements × numPoints] matrix stored at the row-major index
// a_1*dim^(k-1) + ... + a_k. Order 0 has the single component of the
// function value itself.
type DerivTensor struct {
	Order int
	Dim   int
	Comp  []*mat.Dense
}

// NewDerivTensor allocates zeroed components for the given order and
// batch shape.
func NewDerivTensor(order, dim, numElements, numPoints int) *DerivTensor {
	n := 1
	for k := 0; k < order; k++ {
		n *= dim
	}
	dt := &DerivTensor{Order: order, Dim: dim, Comp: make([]*mat.Dense, n)}
	for c := range dt.Comp {
		dt.Comp[c] = mat.NewDense(numElements, numPoints, nil)
	}
	return dt
}

// At returns the component for the given axis tuple; len(axes) must
// equal the tensor order.
func (dt *DerivTensor) At(axes ...int) *mat.Dense {
	idx := 0
	for _, a := range axes {
		idx = idx*dt.Dim + a
	}
	return dt.Comp[idx]
}

// DiscreteField is the evaluated basis function bundle returned by the
// batched evaluator: value, gradient and Hessian by name, plus any
// higher derivative orders the family configured. All matrices are
// [numElements × numPoints] over the requested element subset.
type DiscreteField struct {
	Value *mat.Dense
	Grad  *DerivTensor
	Hess  *DerivTensor

	// HOD holds derivative orders 3 and up, one tensor per order,
	// HOD[k] being order k+3. Empty when NumDerivatives is 2.
	HOD []*DerivTensor
}
