// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	"alvaqth/internal/errors"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinates is returned when a latitude/longitude pair is outside the world bounds.
var ErrInvalidCoordinates = errors.New("coordinates out of range")

// worldBound is the valid lng/lat range, boundaries included.
var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinates validates and builds a Coordinates value.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{Latitude: lat, Longitude: lng}
	if !c.Valid() {
		return Coordinates{}, errors.Wrapf(ErrInvalidCoordinates, "lat=%v lng=%v", lat, lng)
	}

	return c, nil
}

// Point returns the orb representation (x=lng, y=lat).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Valid reports whether latitude is in [-90,90] and longitude in [-180,180].
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}

	return worldBound.Contains(c.Point())
}

// Label formats the pair the way the UI shows an unnamed position, e.g. "51.51, -0.13".
func (c Coordinates) Label() string {
	return fmt.Sprintf("%.2f, %.2f", c.Latitude, c.Longitude)
}
