package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronowalker/pkg/utils"
)

func TestToGeometryRoundTrip(t *testing.T) {
	lats := []float64{-90, -45.5, 0, 55.7539, 90}
	lons := []float64{-180, -1, 0, 37.6208, 180}

	for _, lat := range lats {
		for _, lon := range lons {
			point, err := ToGeometry(lat, lon)
			require.NoError(t, err)

			coord := point.Coordinate()
			assert.Equal(t, lat, coord.Latitude)
			assert.Equal(t, lon, coord.Longitude)
		}
	}
}

func TestToGeometryStoresLonFirst(t *testing.T) {
	point, err := ToGeometry(55.7539, 37.6208)
	require.NoError(t, err)

	// x/y of the stored geometry is lon/lat
	assert.Equal(t, 37.6208, point[0])
	assert.Equal(t, 55.7539, point[1])
}

func TestToGeometryRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude above range", 90.0001, 0},
		{"latitude below range", -91, 0},
		{"longitude above range", 0, 180.5},
		{"longitude below range", 0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToGeometry(tc.lat, tc.lon)
			assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
		})
	}
}

func TestDBPointValueScanRoundTrip(t *testing.T) {
	point, err := ToGeometry(55.7539, 37.6208)
	require.NoError(t, err)

	value, err := point.Value()
	require.NoError(t, err)

	var decoded DBPoint
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, point, decoded)
}

func TestDistanceMeters(t *testing.T) {
	redSquare := Coordinate{Latitude: 55.7539, Longitude: 37.6208}

	assert.Zero(t, DistanceMeters(redSquare, redSquare))

	// 0.01 degrees of latitude is ~1112 m anywhere on the ellipsoid
	north := Coordinate{Latitude: redSquare.Latitude + 0.01, Longitude: redSquare.Longitude}
	assert.InDelta(t, 1112, DistanceMeters(redSquare, north), 10)

	// 0.01 degrees of longitude at this latitude is ~626 m, not ~1112 m:
	// the distance is measured on the sphere, not in raw degrees
	east := Coordinate{Latitude: redSquare.Latitude, Longitude: redSquare.Longitude + 0.01}
	assert.InDelta(t, 626, DistanceMeters(redSquare, east), 10)
}
