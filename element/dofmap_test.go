package element

import (
	"testing"

	"github.com/notargets/FEMBasis/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOFMapMorleyLayout(t *testing.T) {
	msh := mesh.UnitSquare()
	conn, err := mesh.BuildConnectivity(msh)
	require.NoError(t, err)

	// Morley layout: one DOF per vertex, one per edge.
	dm, err := BuildDOFMap(msh, conn, DOFCounts{Nodal: 1, Edge: 1})
	require.NoError(t, err)

	// 4 vertices + 5 edges.
	assert.Equal(t, 9, dm.NumGlobal)
	require.Len(t, dm.Element, 2)
	assert.Len(t, dm.Element[0], 6)

	// Vertex DOFs equal vertex indices; edge DOFs start after them.
	assert.Equal(t, []int{0, 1, 2}, dm.Element[0][:3])
	assert.Equal(t, []int{0, 2, 3}, dm.Element[1][:3])

	// The shared diagonal edge gets the same global DOF from both
	// sides: local edge 2 of element 0, local edge 0 of element 1.
	assert.Equal(t, dm.Element[0][3+2], dm.Element[1][3+0])
}

func TestDOFMapHermiteLayout(t *testing.T) {
	msh := mesh.UnitSquare()
	conn, err := mesh.BuildConnectivity(msh)
	require.NoError(t, err)

	// Hermite layout: three DOFs per vertex, one interior.
	dm, err := BuildDOFMap(msh, conn, DOFCounts{Nodal: 3, Interior: 1})
	require.NoError(t, err)

	// 4*3 vertex DOFs + 2 interior.
	assert.Equal(t, 14, dm.NumGlobal)
	assert.Len(t, dm.Element[0], 10)

	// Vertex 2 is shared; its DOF group appears in both elements.
	assert.Equal(t, dm.Element[0][2*3:3*3], dm.Element[1][1*3:2*3])

	// Interior DOFs are private and distinct.
	assert.NotEqual(t, dm.Element[0][9], dm.Element[1][9])
}

func TestDOFMapErrors(t *testing.T) {
	msh := mesh.UnitSquare()
	conn, err := mesh.BuildConnectivity(msh)
	require.NoError(t, err)

	_, err = BuildDOFMap(msh, conn, DOFCounts{Nodal: -1})
	assert.Error(t, err)

	other := mesh.UnitTriangle()
	_, err = BuildDOFMap(other, conn, DOFCounts{Nodal: 1})
	assert.Error(t, err)
}
