package road_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeweaver/pathcore/graph"
	"github.com/routeweaver/pathcore/road"
)

func TestAddRoadNodeIdempotent(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	require.True(rg.AddRoadNode(1, 49.20, 6.95))
	require.False(rg.AddRoadNode(1, 49.21, 6.96))

	n, ok := rg.RoadNode(1)
	require.True(ok)
	require.Equal(float32(49.20), n.Lat)
}

func TestAddRoadUnknownNode(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)

	err := rg.AddRoad(road.Road{
		ID:      "r1",
		NodeIDs: []int{1, 2},
		Type:    road.Residential,
	})
	require.ErrorIs(err, graph.ErrUnknownNode)
}

func TestAddRoadTooFewNodes(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)

	err := rg.AddRoad(road.Road{ID: "r1", NodeIDs: []int{1}, Type: road.Residential})
	require.ErrorIs(err, road.ErrTooFewNodes)
}

// TestAddRoadMotorwaySegmentCost checks the motorway scenario from
// spec.md §8 against the distance this module's equirectangular formula
// actually produces for those coordinates (~9145.9m, not the ~8500m the
// scenario states — see DESIGN.md): at the 110 km/h reference speed that
// is roughly 299.3 seconds (9145.9 / (110/3.6) ~= 299.3).
func TestAddRoadMotorwaySegmentCost(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)
	rg.AddRoadNode(2, 49.25, 7.05)

	err := rg.AddRoad(road.Road{
		ID:      "r1",
		NodeIDs: []int{1, 2},
		Type:    road.Motorway,
		OneWay:  true,
	})
	require.NoError(err)

	edges := rg.Underlying().Outgoing(1)
	require.Len(edges, 1)
	require.InDelta(299.3, edges[0].Cost, 2.0)

	// one-way: no return edge
	require.Empty(rg.Underlying().Outgoing(2))
}

func TestAddRoadTwoWayExpandsBothDirections(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)
	rg.AddRoadNode(2, 49.21, 6.96)
	rg.AddRoadNode(3, 49.22, 6.97)

	err := rg.AddRoad(road.Road{
		ID:      "r1",
		NodeIDs: []int{1, 2, 3},
		Type:    road.Residential,
		OneWay:  false,
	})
	require.NoError(err)

	require.Len(rg.Underlying().Outgoing(1), 1)
	require.Len(rg.Underlying().Outgoing(2), 2)
	require.Len(rg.Underlying().Outgoing(3), 1)
}

func TestAddRoadSkipsIdenticalCoordinatePairs(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)
	rg.AddRoadNode(2, 49.20, 6.95)
	rg.AddRoadNode(3, 49.25, 7.05)

	err := rg.AddRoad(road.Road{
		ID:      "r1",
		NodeIDs: []int{1, 2, 3},
		Type:    road.Residential,
		OneWay:  true,
	})
	require.NoError(err)

	require.Empty(rg.Underlying().Outgoing(1))
	require.Len(rg.Underlying().Outgoing(2), 1)
}

func TestNearestPicksClosestByDistance(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)
	rg.AddRoadNode(2, 49.25, 7.05)

	n, ok := rg.Nearest(49.21, 6.96)
	require.True(ok)
	require.Equal(1, n.ID)
}

func TestNearestOnEmptyGraph(t *testing.T) {
	require := require.New(t)

	rg := road.New()
	_, ok := rg.Nearest(0, 0)
	require.False(ok)
}
