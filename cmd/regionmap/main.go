// Command regionmap is a diagnostic tool that partitions a small demo
// road network with partition.Rectangle and dumps the result as a
// GeoJSON FeatureCollection to stdout, one Point feature per node
// tagged with its region index.
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/routeweaver/pathcore/partition"
	"github.com/routeweaver/pathcore/road"
)

func buildDemoNetwork() *road.RoadGraph {
	rg := road.New()
	coords := [][3]float32{
		{1, 50.45, 30.52},
		{2, 50.55, 30.22},
		{3, 50.51, 30.79},
		{4, 50.35, 30.95},
		{5, 49.44, 32.06},
		{6, 51.50, 31.30},
	}
	for _, c := range coords {
		rg.AddRoadNode(int(c[0]), c[1], c[2])
	}
	return rg
}

func main() {
	rg := buildDemoNetwork()

	rect := partition.Rectangle{MinLat: 50.0, MaxLat: 51.0, MinLon: 30.0, MaxLon: 31.0}
	regions := rect.Regions(rg)

	fc := partition.ToFeatureCollection(rg, regions)
	body, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "regionmap: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(body)
	os.Stdout.Write([]byte("\n"))
}
