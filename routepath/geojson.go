package routepath

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/routeweaver/pathcore/road"
)

// ToGeoJSON renders the path as a GeoJSON LineString feature, provided
// every node on the path (including the source) is a road node in rg.
// Returns false otherwise — a path over a bare graph.Graph carries no
// geography to export.
func (p *Path) ToGeoJSON(rg *road.RoadGraph) (*geojson.Feature, bool) {
	nodes := p.Nodes()
	coords := make([][]float64, 0, len(nodes))
	for _, id := range nodes {
		rn, ok := rg.RoadNode(id)
		if !ok {
			return nil, false
		}
		coords = append(coords, []float64{float64(rn.Lon), float64(rn.Lat)})
	}
	f := geojson.NewLineStringFeature(coords)
	f.Properties["cost"] = p.Cost()
	return f, true
}
