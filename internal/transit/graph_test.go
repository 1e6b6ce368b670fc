package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakay-router/internal/models"
)

func TestNewGraphResolvesEdgeTargets(t *testing.T) {
	g, err := NewGraph(
		[]NodeSpec{
			{ID: "a", Name: "A", Position: models.Coordinates{Lat: 1, Lng: 1}},
			{ID: "b", Name: "B", Position: models.Coordinates{Lat: 2, Lng: 2}},
		},
		[]EdgeSpec{
			{From: "a", To: "b", TimeMin: 5, Mode: models.ModeWalk},
		},
	)
	require.NoError(t, err)

	ai, ok := g.Index("a")
	require.True(t, ok)
	bi, ok := g.Index("b")
	require.True(t, ok)

	require.Len(t, g.Node(ai).Edges, 1)
	assert.Equal(t, bi, g.Node(ai).Edges[0].To)
	assert.Empty(t, g.Node(bi).Edges)
}

func TestNewGraphRejectsDuplicateIDs(t *testing.T) {
	_, err := NewGraph(
		[]NodeSpec{{ID: "a"}, {ID: "a"}},
		nil,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate node id")
}

func TestNewGraphRejectsUnknownEdgeTarget(t *testing.T) {
	_, err := NewGraph(
		[]NodeSpec{{ID: "a"}},
		[]EdgeSpec{{From: "a", To: "missing"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown node")
}

func TestNearestPicksClosestNode(t *testing.T) {
	g, err := NewGraph(
		[]NodeSpec{
			{ID: "far", Position: models.Coordinates{Lat: 14.70, Lng: 121.10}},
			{ID: "near", Position: models.Coordinates{Lat: 14.6740, Lng: 121.0360}},
		},
		nil,
	)
	require.NoError(t, err)

	i, ok := g.Nearest(models.Coordinates{Lat: 14.6741, Lng: 121.0359})
	require.True(t, ok)
	assert.Equal(t, "near", g.Node(i).ID)
}

func TestNearestTieGoesToFirstScanned(t *testing.T) {
	// Two nodes equidistant from the probe point; the first declared wins.
	g, err := NewGraph(
		[]NodeSpec{
			{ID: "first", Position: models.Coordinates{Lat: 1, Lng: 0}},
			{ID: "second", Position: models.Coordinates{Lat: -1, Lng: 0}},
		},
		nil,
	)
	require.NoError(t, err)

	i, ok := g.Nearest(models.Coordinates{Lat: 0, Lng: 0})
	require.True(t, ok)
	assert.Equal(t, "first", g.Node(i).ID)
}

func TestNearestEmptyGraph(t *testing.T) {
	g, err := NewGraph(nil, nil)
	require.NoError(t, err)

	_, ok := g.Nearest(models.Coordinates{Lat: 14.6741, Lng: 121.0359})
	assert.False(t, ok)
}

func TestDilimanGraphIntegrity(t *testing.T) {
	g := Diliman()
	require.Greater(t, g.Len(), 0)

	// Every edge targets a valid index and carries non-negative weights
	for i := 0; i < g.Len(); i++ {
		node := g.Node(i)
		assert.NotEmpty(t, node.ID)
		for _, e := range node.Edges {
			assert.GreaterOrEqual(t, e.To, 0)
			assert.Less(t, e.To, g.Len())
			assert.GreaterOrEqual(t, e.DistanceKm, 0.0)
			assert.GreaterOrEqual(t, e.TimeMin, 0.0)
			assert.GreaterOrEqual(t, e.Cost, 0.0)
			if e.Mode == models.ModeRide {
				assert.NotEmpty(t, e.Vehicle, "ride edge from %s needs a vehicle", node.ID)
			}
		}
	}

	// The graph is built once and shared
	assert.Same(t, g, Diliman())
}

func TestDilimanKnownTerminals(t *testing.T) {
	g := Diliman()

	for _, id := range []string{"ts_palengke", "visayas_ave", "technohub", "philcoa"} {
		_, ok := g.Index(id)
		assert.True(t, ok, "expected terminal %s", id)
	}

	i, _ := g.Index("ts_palengke")
	assert.Equal(t, models.Coordinates{Lat: 14.6741, Lng: 121.0359}, g.Node(i).Position)

	i, _ = g.Index("technohub")
	assert.Equal(t, models.Coordinates{Lat: 14.6575, Lng: 121.0580}, g.Node(i).Position)
}
