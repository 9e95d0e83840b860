package element

import (
	"fmt"

	"github.com/notargets/FEMBasis/mesh"
)

// DOFMap assigns global indices to element DOFs: vertex DOFs are
// shared between elements meeting at the vertex, edge DOFs between the
// two elements of an interior edge, interior DOFs are private. Global
// numbering blocks all vertex DOFs first, then edge DOFs, then
// interior DOFs.
type DOFMap struct {
	Counts    DOFCounts
	NumGlobal int

	// Element[k] lists element k's global DOF indices in the local
	// ordering of Family.DOF: per-vertex groups, then per-edge in
	// local edge order, then interior.
	Element [][]int
}

// BuildDOFMap numbers the DOFs of a family layout over the mesh using
// its edge connectivity.
func BuildDOFMap(m *mesh.TriMesh, conn *mesh.Connectivity, c DOFCounts) (*DOFMap, error) {
	if c.Nodal < 0 || c.Edge < 0 || c.Interior < 0 {
		return nil, fmt.Errorf("negative DOF count: %+v", c)
	}
	if len(conn.EToEdge) != m.K {
		return nil, fmt.Errorf("connectivity covers %d elements, mesh has %d", len(conn.EToEdge), m.K)
	}

	edgeBase := m.NumVertices * c.Nodal
	interiorBase := edgeBase + conn.NumEdges*c.Edge

	dm := &DOFMap{
		Counts:    c,
		NumGlobal: interiorBase + m.K*c.Interior,
		Element:   make([][]int, m.K),
	}
	for k := 0; k < m.K; k++ {
		dofs := make([]int, 0, c.Total())
		for v := 0; v < 3; v++ {
			base := m.EToV[k][v] * c.Nodal
			for d := 0; d < c.Nodal; d++ {
				dofs = append(dofs, base+d)
			}
		}
		for f := 0; f < 3; f++ {
			base := edgeBase + conn.EToEdge[k][f]*c.Edge
			for d := 0; d < c.Edge; d++ {
				dofs = append(dofs, base+d)
			}
		}
		for d := 0; d < c.Interior; d++ {
			dofs = append(dofs, interiorBase+k*c.Interior+d)
		}
		dm.Element[k] = dofs
	}
	return dm, nil
}
