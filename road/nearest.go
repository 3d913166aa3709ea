package road

import "github.com/routeweaver/pathcore/geo"

// Nearest returns the road node closest to (lat, lon) by equirectangular
// distance, linear-scanning every road node. Ties are broken by
// first-encountered node (iteration order of the underlying node map is
// not itself guaranteed stable, so "first-encountered" only binds within
// one call). Returns (Node{}, false) when the graph holds no road nodes.
func (rg *RoadGraph) Nearest(lat, lon float32) (Node, bool) {
	var best Node
	var bestDist float32
	found := false

	for _, n := range rg.g.Nodes() {
		rn, ok := rg.nodes[n.ID]
		if !ok {
			continue
		}
		d := geo.Distance(lat, lon, rn.Lat, rn.Lon)
		if !found || d < bestDist {
			best = rn
			bestDist = d
			found = true
		}
	}
	return best, found
}
