// Command routecli demonstrates computing the fastest driving route
// between two intersections of a small fixed road network using
// Dijkstra's algorithm.
//
// Scenario: six intersections, modeled after a handful of Kyiv-area
// towns, connected by a mix of motorway, trunk and primary segments, one
// of them one-way.
package main

import (
	"fmt"
	"log"

	"github.com/routeweaver/pathcore/road"
	"github.com/routeweaver/pathcore/search"
)

const (
	kyiv      = 1
	bucha     = 2
	brovary   = 3
	boryspil  = 4
	cherkasy  = 5
	chernihiv = 6
)

var names = map[int]string{
	kyiv:      "Kyiv",
	bucha:     "Bucha",
	brovary:   "Brovary",
	boryspil:  "Boryspil",
	cherkasy:  "Cherkasy",
	chernihiv: "Chernihiv",
}

func buildNetwork() *road.RoadGraph {
	rg := road.New()
	coords := map[int][2]float32{
		kyiv:      {50.45, 30.52},
		bucha:     {50.55, 30.22},
		brovary:   {50.51, 30.79},
		boryspil:  {50.35, 30.95},
		cherkasy:  {49.44, 32.06},
		chernihiv: {51.50, 31.30},
	}
	for id, c := range coords {
		rg.AddRoadNode(id, c[0], c[1])
	}

	roads := []road.Road{
		{ID: "kyiv-bucha", NodeIDs: []int{kyiv, bucha}, Type: road.Primary},
		{ID: "kyiv-brovary", NodeIDs: []int{kyiv, brovary}, Type: road.Motorway},
		{ID: "brovary-boryspil", NodeIDs: []int{brovary, boryspil}, Type: road.Trunk},
		{ID: "kyiv-cherkasy", NodeIDs: []int{kyiv, cherkasy}, Type: road.Motorway},
		{ID: "kyiv-chernihiv", NodeIDs: []int{kyiv, chernihiv}, Type: road.Trunk, OneWay: true},
	}
	for _, r := range roads {
		if err := rg.AddRoad(r); err != nil {
			log.Fatalf("routecli: building demo network: %v", err)
		}
	}
	return rg
}

func main() {
	rg := buildNetwork()
	d := search.NewDijkstra(rg.Underlying())

	source, destination := kyiv, boryspil
	cost, ok := d.Cost(source, destination)
	if !ok {
		log.Fatalf("no route from %s to %s", names[source], names[destination])
	}

	path, _ := d.Path(source, destination)
	fmt.Printf("Fastest route from %s to %s: %.1fs\n", names[source], names[destination], cost)
	for i, id := range path.Nodes() {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(names[id])
	}
	fmt.Println()

	// chernihiv is one-way from kyiv; confirm the reverse has no route.
	if _, ok := d.Cost(chernihiv, kyiv); ok {
		log.Fatal("expected no route back from Chernihiv to Kyiv")
	}
	fmt.Println("Chernihiv -> Kyiv: no route (one-way road)")
}
