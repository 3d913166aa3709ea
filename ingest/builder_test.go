package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeweaver/pathcore/ingest"
)

func TestBuilderAddsRoadNodesAndRoads(t *testing.T) {
	require := require.New(t)

	b := ingest.NewBuilder()
	b.AddRoadNode(1, 49.20, 6.95)
	b.AddRoadNode(2, 49.25, 7.05)
	b.AddRoad("r1", []int{1, 2}, "motorway", false)

	rg := b.RoadGraph()
	require.Equal(2, rg.Underlying().Size())
	require.Equal(2, rg.Underlying().EdgeCount())
	require.Zero(b.Dropped())
}

func TestBuilderDropsUnknownHighwaySilently(t *testing.T) {
	require := require.New(t)

	b := ingest.NewBuilder()
	b.AddRoadNode(1, 49.20, 6.95)
	b.AddRoadNode(2, 49.25, 7.05)
	b.AddRoad("r1", []int{1, 2}, "footpath", false)

	rg := b.RoadGraph()
	require.Equal(0, rg.Underlying().EdgeCount())
	require.Zero(b.Dropped(), "unknown-type drops are silent, not warned")
}

func TestBuilderWarnsAndDropsTooFewNodes(t *testing.T) {
	require := require.New(t)

	b := ingest.NewBuilder()
	b.AddRoadNode(1, 49.20, 6.95)
	b.AddRoad("r1", []int{1}, "motorway", false)

	require.Equal(1, b.Dropped())
}

func TestBuilderWarnsAndDropsUnknownNode(t *testing.T) {
	require := require.New(t)

	b := ingest.NewBuilder()
	b.AddRoadNode(1, 49.20, 6.95)
	b.AddRoad("r1", []int{1, 2}, "motorway", false)

	require.Equal(1, b.Dropped())
}
