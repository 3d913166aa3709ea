package ingest

import (
	"log"
	"os"

	"github.com/routeweaver/pathcore/road"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger overrides the *log.Logger a Builder reports dropped records
// to. The default writes to os.Stderr with a "ingest: " prefix.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// Builder accumulates road nodes and roads fed to it by an external OSM
// parser into a road.RoadGraph, applying the permissive drop-and-warn
// policy the core's ingest boundary promises callers.
type Builder struct {
	rg     *road.RoadGraph
	logger *log.Logger

	dropped int
}

// NewBuilder returns a Builder over a fresh, empty road graph.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		rg:     road.New(),
		logger: log.New(os.Stderr, "ingest: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRoadNode inserts a road node. Call order relative to AddRoad is the
// caller's responsibility: every node a road references must be added
// before that road is.
func (b *Builder) AddRoadNode(id int, lat, lon float32) {
	b.rg.AddRoadNode(id, lat, lon)
}

// AddRoad maps highway to a road.Type by case-insensitive name match and
// adds the resulting road. An unrecognized highway tag is silently
// dropped (no warning — spec.md §6 distinguishes this from the warned
// case below). A road with fewer than two node ids is dropped with a
// warning. Any other failure (typically an unknown node id, meaning the
// parser violated the add-nodes-before-roads precondition) is also
// logged and the road dropped, keeping ingestion synchronous-but-never-
// aborting.
func (b *Builder) AddRoad(roadID string, nodeIDs []int, highway string, oneWay bool) {
	typ, err := road.ParseType(highway)
	if err != nil {
		return
	}

	if len(nodeIDs) < 2 {
		b.logger.Printf("dropping road %q: fewer than 2 nodes", roadID)
		b.dropped++
		return
	}

	if err := b.rg.AddRoad(road.Road{ID: roadID, NodeIDs: nodeIDs, Type: typ, OneWay: oneWay}); err != nil {
		b.logger.Printf("dropping road %q: %v", roadID, err)
		b.dropped++
	}
}

// Dropped reports how many roads were dropped with a warning so far
// (roads dropped silently for an unrecognized highway tag do not count).
func (b *Builder) Dropped() int {
	return b.dropped
}

// RoadGraph returns the road graph built so far. The Builder retains
// ownership; callers should treat further mutation through the Builder
// and direct mutation of the returned graph as mutually exclusive.
func (b *Builder) RoadGraph() *road.RoadGraph {
	return b.rg
}
