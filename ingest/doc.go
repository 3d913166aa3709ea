// Package ingest exposes the consumer interface an external OSM text
// parser calls into: add_road_node and add_road records, accumulated
// into a road.RoadGraph. Roads with an unknown road type are dropped
// silently; degenerate roads (and roads naming unknown nodes) are logged
// and dropped. Nothing is propagated — ingestion is permissive so one
// malformed record does not abort the whole feed.
package ingest
