package arcflag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeweaver/pathcore/arcflag"
	"github.com/routeweaver/pathcore/partition"
	"github.com/routeweaver/pathcore/road"
	"github.com/routeweaver/pathcore/search"
)

// buildGrid builds a small two-way road grid straddling the partition
// boundary used below, so both region-internal and cross-region routes
// exist.
func buildGrid(t *testing.T) *road.RoadGraph {
	t.Helper()
	rg := road.New()
	type coord struct {
		id       int
		lat, lon float32
	}
	coords := []coord{
		{1, 49.00, 6.00},
		{2, 49.01, 6.00},
		{3, 49.02, 6.00},
		{4, 49.03, 6.00},
		{5, 49.04, 6.00},
	}
	for _, c := range coords {
		rg.AddRoadNode(c.id, c.lat, c.lon)
	}
	require.NoError(t, rg.AddRoad(road.Road{
		ID:      "r1",
		NodeIDs: []int{1, 2, 3, 4, 5},
		Type:    road.Residential,
		OneWay:  false,
	}))
	return rg
}

func TestArcFlagQueryMatchesDijkstra(t *testing.T) {
	require := require.New(t)
	rg := buildGrid(t)

	rect := partition.Rectangle{MinLat: 49.00, MaxLat: 49.019, MinLon: 5.0, MaxLon: 7.0}
	regions := rect.Regions(rg)

	flags := arcflag.Preprocess(rg, rect)
	q := arcflag.NewQuery(rg, flags, regions)
	d := search.NewDijkstra(rg.Underlying())

	for s := 1; s <= 5; s++ {
		for dst := 1; dst <= 5; dst++ {
			dCost, dOK := d.Cost(s, dst)
			qCost, qOK := q.Cost(s, dst)
			require.Equal(dOK, qOK, "s=%d dst=%d", s, dst)
			if dOK {
				require.InDelta(dCost, qCost, 1e-6, "s=%d dst=%d", s, dst)
			}
		}
	}
}

func TestArcFlagQueryUnknownDestinationRegion(t *testing.T) {
	require := require.New(t)
	rg := buildGrid(t)

	rect := partition.Rectangle{MinLat: 49.00, MaxLat: 49.019, MinLon: 5.0, MaxLon: 7.0}
	regions := rect.Regions(rg)
	flags := arcflag.Preprocess(rg, rect)
	q := arcflag.NewQuery(rg, flags, regions)

	_, ok := q.Cost(1, 999)
	require.False(ok)
}
