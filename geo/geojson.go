package geo

import geojson "github.com/paulmach/go.geojson"

// ToPointFeature builds a GeoJSON Point feature at (lat, lon), for
// diagnostic export of a single node.
func ToPointFeature(lat, lon float32) *geojson.Feature {
	return geojson.NewPointFeature([]float64{float64(lon), float64(lat)})
}
