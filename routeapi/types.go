package routeapi

// RouteRequest is the JSON body accepted by POST /route.
type RouteRequest struct {
	// Source and Destination are graph node ids. Either may be omitted
	// in favor of SourceLat/SourceLon or DestinationLat/DestinationLon,
	// resolved via road.RoadGraph.Nearest.
	Source      *int `json:"source,omitempty"`
	Destination *int `json:"destination,omitempty"`

	SourceLat      *float64 `json:"source_lat,omitempty"`
	SourceLon      *float64 `json:"source_lon,omitempty"`
	DestinationLat *float64 `json:"destination_lat,omitempty"`
	DestinationLon *float64 `json:"destination_lon,omitempty"`

	// Algorithm selects the query engine: "astar" runs A* with the
	// server's landmark metric; "dijkstra" (the default) and any other
	// value, "arcflag" included, run plain Dijkstra. Arc-flag queries are
	// not served by this endpoint.
	Algorithm *string `json:"algorithm,omitempty"`
}

// RouteResponse is the JSON body returned by POST /route.
type RouteResponse struct {
	Found bool     `json:"found"`
	Cost  *float64 `json:"cost,omitempty"`
	Nodes []int    `json:"nodes,omitempty"`
}
