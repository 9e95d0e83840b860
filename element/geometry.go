package element

import (
	"fmt"
	"math"

	"github.com/notargets/FEMBasis/mesh"
)

// Geometry holds the per-element geometric features the DOF
// functionals evaluate against. Edge ordering matches
// mesh.Connectivity: edge 0 is v0-v1, edge 1 is v1-v2, edge 2 is
// v0-v2. Normals are unit length, obtained by rotating each edge
// direction a quarter turn.
type Geometry struct {
	Verts   [3][2]float64 // Vertex coordinates
	Mids    [3][2]float64 // Edge midpoints
	Normals [3][2]float64 // Unit edge normals
}

// Centroid returns the element barycenter.
func (g Geometry) Centroid() (x, y float64) {
	x = (g.Verts[0][0] + g.Verts[1][0] + g.Verts[2][0]) / 3
	y = (g.Verts[0][1] + g.Verts[1][1] + g.Verts[2][1]) / 3
	return
}

// ExtractGeometry computes vertex, edge midpoint and unit normal
// features for the elements in tind (all elements when tind is nil).
// Only 3-node triangles are supported; degenerate edges are an error.
func ExtractGeometry(m *mesh.TriMesh, tind []int) ([]Geometry, error) {
	if tind == nil {
		tind = m.AllElements()
	}
	if err := m.CheckElementIndices(tind); err != nil {
		return nil, err
	}

	// Edge f runs between local vertices pairs[f][0] and pairs[f][1].
	pairs := [3][2]int{{0, 1}, {1, 2}, {0, 2}}

	geos := make([]Geometry, len(tind))
	for n, k := range tind {
		ev := m.EToV[k]
		if len(ev) != mesh.NodesPerTri {
			return nil, fmt.Errorf("element %d has %d nodes, globally defined elements support triangles only",
				k, len(ev))
		}
		var g Geometry
		for v := 0; v < 3; v++ {
			g.Verts[v] = [2]float64{m.VX[ev[v]], m.VY[ev[v]]}
		}
		for f, p := range pairs {
			a, b := g.Verts[p[0]], g.Verts[p[1]]
			g.Mids[f] = [2]float64{0.5 * (a[0] + b[0]), 0.5 * (a[1] + b[1])}

			// Rotate the edge direction 90 degrees and normalize.
			dx, dy := a[0]-b[0], a[1]-b[1]
			norm := math.Hypot(dx, dy)
			if norm == 0 {
				return nil, fmt.Errorf("element %d edge %d has zero length", k, f)
			}
			g.Normals[f] = [2]float64{dy / norm, -dx / norm}
		}
		geos[n] = g
	}
	return geos, nil
}
