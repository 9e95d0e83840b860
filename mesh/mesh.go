package mesh

import (
	"fmt"
)

// NodesPerTri is the only element topology supported by the globally
// defined element machinery.
const NodesPerTri = 3

// TriMesh is an in-memory 2D triangular mesh: vertex coordinates plus
// element-to-vertex connectivity. Vertices are shared between elements.
type TriMesh struct {
	VX, VY []float64 // Vertex coordinates, length NumVertices
	EToV   [][]int   // [K][3] element to vertex connectivity

	K           int // Number of elements
	NumVertices int
}

// NewTriMesh validates connectivity and wraps the given coordinate and
// connectivity storage. The slices are referenced, not copied.
func NewTriMesh(VX, VY []float64, EToV [][]int) (*TriMesh, error) {
	if len(VX) != len(VY) {
		return nil, fmt.Errorf("coordinate length mismatch: len(VX)=%d, len(VY)=%d",
			len(VX), len(VY))
	}
	nv := len(VX)
	for k, ev := range EToV {
		if len(ev) != NodesPerTri {
			return nil, fmt.Errorf("element %d has %d vertices, only %d-node triangles are supported",
				k, len(ev), NodesPerTri)
		}
		for _, v := range ev {
			if v < 0 || v >= nv {
				return nil, fmt.Errorf("element %d references vertex %d, mesh has %d vertices",
					k, v, nv)
			}
		}
	}
	return &TriMesh{
		VX:          VX,
		VY:          VY,
		EToV:        EToV,
		K:           len(EToV),
		NumVertices: nv,
	}, nil
}

// AllElements returns 0..K-1 in mesh order, the default element subset.
func (m *TriMesh) AllElements() []int {
	tind := make([]int, m.K)
	for k := range tind {
		tind[k] = k
	}
	return tind
}

// CheckElementIndices verifies that every index in tind addresses an
// element of the mesh.
func (m *TriMesh) CheckElementIndices(tind []int) error {
	for _, k := range tind {
		if k < 0 || k >= m.K {
			return fmt.Errorf("element index %d out of range, mesh has %d elements", k, m.K)
		}
	}
	return nil
}

// SingleTriangle builds a one-element mesh over the given three vertices.
func SingleTriangle(x0, y0, x1, y1, x2, y2 float64) *TriMesh {
	m, err := NewTriMesh(
		[]float64{x0, x1, x2},
		[]float64{y0, y1, y2},
		[][]int{{0, 1, 2}},
	)
	if err != nil {
		panic(err)
	}
	return m
}

// UnitTriangle builds the reference triangle (0,0), (1,0), (0,1) as a
// one-element mesh.
func UnitTriangle() *TriMesh {
	return SingleTriangle(0, 0, 1, 0, 0, 1)
}

// UnitSquare builds the unit square split into two triangles along the
// diagonal from (0,0) to (1,1).
func UnitSquare() *TriMesh {
	m, err := NewTriMesh(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
		[][]int{{0, 1, 2}, {0, 2, 3}},
	)
	if err != nil {
		panic(err)
	}
	return m
}

// StructuredUnitSquare builds an n×n grid of squares over [0,1]^2, each
// split into two triangles. n must be positive.
func StructuredUnitSquare(n int) (*TriMesh, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %d", n)
	}
	nv := (n + 1) * (n + 1)
	VX := make([]float64, nv)
	VY := make([]float64, nv)
	h := 1.0 / float64(n)
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			VX[j*(n+1)+i] = float64(i) * h
			VY[j*(n+1)+i] = float64(j) * h
		}
	}
	EToV := make([][]int, 0, 2*n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00 := j*(n+1) + i
			v10 := v00 + 1
			v01 := v00 + n + 1
			v11 := v01 + 1
			EToV = append(EToV,
				[]int{v00, v10, v11},
				[]int{v00, v11, v01})
		}
	}
	return NewTriMesh(VX, VY, EToV)
}
