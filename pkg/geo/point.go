package geo

import (
	"database/sql/driver"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	orbgeo "github.com/paulmach/orb/geo"

	"chronowalker/pkg/utils"
)

// SRID is the WGS84 lon/lat spatial reference used for all stored geometry.
const SRID = 4326

// Coordinate is the external latitude/longitude contract. The lon-first
// ordering of the stored geometry never leaves this package.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v", utils.ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v", utils.ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// DBPoint is a PostGIS POINT column (SRID 4326), written and read as EWKB.
type DBPoint orb.Point

// ToGeometry encodes a validated lat/lon pair into the stored x/y geometry.
func ToGeometry(lat, lon float64) (DBPoint, error) {
	c, err := NewCoordinate(lat, lon)
	if err != nil {
		return DBPoint{}, err
	}
	return DBPoint{c.Longitude, c.Latitude}, nil
}

// Coordinate decodes the stored geometry back into the lat/lon contract.
func (p DBPoint) Coordinate() Coordinate {
	return Coordinate{Latitude: p[1], Longitude: p[0]}
}

func (p DBPoint) Value() (driver.Value, error) {
	return ewkb.Value(orb.Point(p), SRID).Value()
}

func (p *DBPoint) Scan(src interface{}) error {
	var point orb.Point
	if err := ewkb.Scanner(&point).Scan(src); err != nil {
		return err
	}
	*p = DBPoint(point)
	return nil
}

func (DBPoint) GormDataType() string {
	return "geometry(Point,4326)"
}

// DistanceMeters returns the geodesic distance between two coordinates.
func DistanceMeters(a, b Coordinate) float64 {
	return orbgeo.DistanceHaversine(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}
