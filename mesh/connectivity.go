package mesh

import (
	"fmt"
	"sort"
)

// Local edge ordering for a triangle (v0,v1,v2). The same ordering is
// used by the geometric feature extractor: edge midpoints and normals
// are indexed consistently with EToEdge.
//
//	edge 0: v0-v1
//	edge 1: v1-v2
//	edge 2: v0-v2
var triEdgeVerts = [3][2]int{{0, 1}, {1, 2}, {0, 2}}

// Connectivity numbers the unique edges of a TriMesh and records the
// element adjacency across them.
type Connectivity struct {
	NumEdges int

	// EToEdge maps element k, local edge f to a global edge number.
	EToEdge [][3]int

	// EdgeToV maps a global edge to its two vertices, lower index first.
	EdgeToV [][2]int

	// EToE and EToF give, for element k and local edge f, the neighbor
	// element and the neighbor's local edge index. An element is its own
	// neighbor across a boundary edge (teacher convention for
	// unconnected faces).
	EToE [][3]int
	EToF [][3]int

	// BoundaryEdges lists global edge numbers with exactly one incident
	// element.
	BoundaryEdges []int
}

// edgeIncidence records one side of an edge during construction.
type edgeIncidence struct {
	elem, face int
}

// BuildConnectivity numbers unique edges and links elements across them.
// An edge shared by more than two elements is a non-manifold input and
// is rejected.
func BuildConnectivity(m *TriMesh) (*Connectivity, error) {
	c := &Connectivity{
		EToEdge: make([][3]int, m.K),
		EToE:    make([][3]int, m.K),
		EToF:    make([][3]int, m.K),
	}

	type vpair struct{ a, b int }
	edgeID := make(map[vpair]int)
	incidence := make(map[int][]edgeIncidence)

	for k, ev := range m.EToV {
		for f, lv := range triEdgeVerts {
			a, b := ev[lv[0]], ev[lv[1]]
			if a == b {
				return nil, fmt.Errorf("element %d edge %d is degenerate: vertex %d repeated", k, f, a)
			}
			if a > b {
				a, b = b, a
			}
			key := vpair{a, b}
			id, ok := edgeID[key]
			if !ok {
				id = c.NumEdges
				edgeID[key] = id
				c.EdgeToV = append(c.EdgeToV, [2]int{a, b})
				c.NumEdges++
			}
			c.EToEdge[k][f] = id
			incidence[id] = append(incidence[id], edgeIncidence{elem: k, face: f})
		}
	}

	// Default: every edge connects an element to itself.
	for k := 0; k < m.K; k++ {
		for f := 0; f < 3; f++ {
			c.EToE[k][f] = k
			c.EToF[k][f] = f
		}
	}

	for id := 0; id < c.NumEdges; id++ {
		inc := incidence[id]
		switch len(inc) {
		case 1:
			c.BoundaryEdges = append(c.BoundaryEdges, id)
		case 2:
			l, r := inc[0], inc[1]
			c.EToE[l.elem][l.face] = r.elem
			c.EToF[l.elem][l.face] = r.face
			c.EToE[r.elem][r.face] = l.elem
			c.EToF[r.elem][r.face] = l.face
		default:
			return nil, fmt.Errorf("edge %d (vertices %d-%d) is shared by %d elements, mesh is non-manifold",
				id, c.EdgeToV[id][0], c.EdgeToV[id][1], len(inc))
		}
	}
	sort.Ints(c.BoundaryEdges)

	return c, nil
}

// IsBoundary reports whether element k's local edge f lies on the mesh
// boundary.
func (c *Connectivity) IsBoundary(k, f int) bool {
	return c.EToE[k][f] == k && c.EToF[k][f] == f
}
