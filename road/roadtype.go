package road

import (
	"errors"
	"strings"
)

// ErrUnknownRoadType is returned by SpeedKPH for a Type not in the
// enumeration, and by ParseType when an OSM highway tag has no match.
var ErrUnknownRoadType = errors.New("road: unknown road type")

// Type is a closed enumeration of the road classes this engine knows how
// to cost. The zero value is not a valid Type.
type Type string

// The supported road types, in fastest-to-slowest reference-speed order.
const (
	Motorway       Type = "motorway"
	Trunk          Type = "trunk"
	Primary        Type = "primary"
	Secondary      Type = "secondary"
	Tertiary       Type = "tertiary"
	MotorwayLink   Type = "motorway_link"
	TrunkLink      Type = "trunk_link"
	PrimaryLink    Type = "primary_link"
	SecondaryLink  Type = "secondary_link"
	RoadGeneric    Type = "road"
	Unclassified   Type = "unclassified"
	Residential    Type = "residential"
	Unsurfaced     Type = "unsurfaced"
	LivingStreet   Type = "living_street"
	Service        Type = "service"
)

// referenceSpeedKPH holds the reference speed, in km/h, used to derive an
// edge's time cost from its geodesic length.
var referenceSpeedKPH = map[Type]float64{
	Motorway:      110,
	Trunk:         110,
	Primary:       70,
	Secondary:     60,
	Tertiary:      50,
	MotorwayLink:  50,
	TrunkLink:     50,
	PrimaryLink:   50,
	SecondaryLink: 50,
	RoadGeneric:   40,
	Unclassified:  40,
	Residential:   30,
	Unsurfaced:    30,
	LivingStreet:  10,
	Service:       5,
}

// SpeedKPH returns the reference speed for t, or ErrUnknownRoadType if t
// is not one of the enumerated types.
func SpeedKPH(t Type) (float64, error) {
	kph, ok := referenceSpeedKPH[t]
	if !ok {
		return 0, ErrUnknownRoadType
	}
	return kph, nil
}

// ParseType maps an OSM `highway` tag value to a Type by case-insensitive
// name match against the enumeration. Unknown tags return
// ErrUnknownRoadType; callers (ingest) are expected to drop the road
// silently on this error, per spec.md §6.
func ParseType(highway string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(highway)))
	if _, ok := referenceSpeedKPH[t]; !ok {
		return "", ErrUnknownRoadType
	}
	return t, nil
}
