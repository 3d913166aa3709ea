package partition

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/routeweaver/pathcore/geo"
	"github.com/routeweaver/pathcore/road"
)

// ToFeatureCollection renders regions as a GeoJSON FeatureCollection: one
// Point feature per node, tagged with its region index in
// Properties["region"]. Intended for diagnostic dumps (cmd/regionmap),
// not for production-scale exports.
func ToFeatureCollection(rg *road.RoadGraph, regions [][]int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for ri, nodes := range regions {
		for _, id := range nodes {
			rn, ok := rg.RoadNode(id)
			if !ok {
				continue
			}
			f := geo.ToPointFeature(rn.Lat, rn.Lon)
			f.Properties["region"] = ri
			f.Properties["node_id"] = id
			fc.AddFeature(f)
		}
	}
	return fc
}
