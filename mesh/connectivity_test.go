package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectivityUnitSquare(t *testing.T) {
	m := UnitSquare()
	c, err := BuildConnectivity(m)
	require.NoError(t, err)

	// Two triangles sharing the diagonal: 5 unique edges, 4 on the
	// boundary.
	assert.Equal(t, 5, c.NumEdges)
	assert.Len(t, c.BoundaryEdges, 4)

	// Element 0 is (0,1,2), element 1 is (0,2,3); the shared edge is
	// 0-2, local edge 2 of element 0 and local edge 0 of element 1.
	shared := c.EToEdge[0][2]
	assert.Equal(t, shared, c.EToEdge[1][0])
	assert.Equal(t, [2]int{0, 2}, c.EdgeToV[shared])

	assert.Equal(t, 1, c.EToE[0][2])
	assert.Equal(t, 0, c.EToF[0][2])
	assert.Equal(t, 0, c.EToE[1][0])
	assert.Equal(t, 2, c.EToF[1][0])

	assert.False(t, c.IsBoundary(0, 2))
	assert.False(t, c.IsBoundary(1, 0))
	assert.True(t, c.IsBoundary(0, 0))
	assert.True(t, c.IsBoundary(0, 1))
	assert.True(t, c.IsBoundary(1, 1))
	assert.True(t, c.IsBoundary(1, 2))
}

func TestConnectivitySingleTriangle(t *testing.T) {
	c, err := BuildConnectivity(UnitTriangle())
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumEdges)
	assert.Len(t, c.BoundaryEdges, 3)
	for f := 0; f < 3; f++ {
		assert.True(t, c.IsBoundary(0, f))
	}
}

func TestConnectivityDegenerateEdge(t *testing.T) {
	m := &TriMesh{
		VX:          []float64{0, 1, 0},
		VY:          []float64{0, 0, 1},
		EToV:        [][]int{{0, 0, 2}},
		K:           1,
		NumVertices: 3,
	}
	_, err := BuildConnectivity(m)
	assert.Error(t, err)
}

func TestConnectivityNonManifold(t *testing.T) {
	// Three triangles all sharing the edge 0-1.
	m, err := NewTriMesh(
		[]float64{0, 1, 0.5, 0.5, 0.5},
		[]float64{0, 0, 1, -1, 0.5},
		[][]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}},
	)
	require.NoError(t, err)
	_, err = BuildConnectivity(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-manifold")
}
