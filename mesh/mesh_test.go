package mesh_test

import (
	"testing"

	"github.com/katalvlaran/topokit/builder"
	"github.com/katalvlaran/topokit/mesh"
	"github.com/katalvlaran/topokit/planarity"
	"github.com/stretchr/testify/require"
)

func TestBuildHalfEdgeMesh_Triangle(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.IsPlanar)

	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)
	require.Equal(t, 6, m.HalfEdgeCount())
	require.NoError(t, mesh.ValidateMesh(m, 1))
	// a triangle embeds as 2 faces: the inner triangle and the outer face.
	require.Equal(t, 2, m.FaceCount())
}

func TestBuildHalfEdgeMesh_Grid(t *testing.T) {
	g, err := builder.Build(builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := planarity.TestPlanarity(g)
	require.NoError(t, err)
	require.True(t, res.IsPlanar)

	m, err := mesh.BuildHalfEdgeMesh(g, res.Embedding)
	require.NoError(t, err)
	require.NoError(t, mesh.ValidateMesh(m, 1))
}

func TestBuildHalfEdgeMesh_RejectsWrongDegreeRotation(t *testing.T) {
	g, err := builder.Build(builder.Cycle(3))
	require.NoError(t, err)

	bad := mesh.RotationFromAdjacency(g)
	bad.Rotation[0] = bad.Rotation[0][:1] // truncate vertex 0's rotation

	_, err = mesh.BuildHalfEdgeMesh(g, bad)
	require.ErrorIs(t, err, mesh.ErrBadRotation)
}
