package road_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routeweaver/pathcore/road"
)

func TestParseTypeCaseInsensitive(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		tag  string
		want road.Type
	}{
		{"motorway", road.Motorway},
		{"Motorway", road.Motorway},
		{" TRUNK ", road.Trunk},
		{"living_street", road.LivingStreet},
	}
	for _, tc := range tests {
		got, err := road.ParseType(tc.tag)
		require.NoError(err)
		require.Equal(tc.want, got)
	}
}

func TestParseTypeUnknown(t *testing.T) {
	require := require.New(t)

	_, err := road.ParseType("footpath")
	require.ErrorIs(err, road.ErrUnknownRoadType)
}

func TestSpeedKPHTable(t *testing.T) {
	require := require.New(t)

	kph, err := road.SpeedKPH(road.Motorway)
	require.NoError(err)
	require.Equal(110.0, kph)

	kph, err = road.SpeedKPH(road.Service)
	require.NoError(err)
	require.Equal(5.0, kph)
}

func TestSpeedKPHUnknownType(t *testing.T) {
	require := require.New(t)

	_, err := road.SpeedKPH(road.Type("bogus"))
	require.ErrorIs(err, road.ErrUnknownRoadType)
}
