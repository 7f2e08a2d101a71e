package location

import (
	"fmt"
	"strconv"
	"strings"

	"weather-app/models"
)

// Location is a resolved place: either ByCity or ByCoordinates.
type Location interface {
	Coordinates() models.Coordinates
	Describe() string
	isLocation()
}

// ByCity is a location resolved from the city table.
type ByCity struct {
	Name   string
	Coords models.Coordinates
}

func (c ByCity) Coordinates() models.Coordinates { return c.Coords }
func (c ByCity) Describe() string {
	return fmt.Sprintf("city %s (%s)", c.Name, c.Coords)
}
func (ByCity) isLocation() {}

// ByCoordinates is a location typed in directly.
type ByCoordinates struct {
	Coords models.Coordinates
}

func (c ByCoordinates) Coordinates() models.Coordinates { return c.Coords }
func (c ByCoordinates) Describe() string {
	return fmt.Sprintf("coordinates: %s", c.Coords)
}
func (ByCoordinates) isLocation() {}

// ParseLatitude parses a latitude in decimal degrees, -90..90.
func ParseLatitude(s string) (float64, error) {
	return parseDegrees(s, 90)
}

// ParseLongitude parses a longitude in decimal degrees, -180..180.
func ParseLongitude(s string) (float64, error) {
	return parseDegrees(s, 180)
}

// ParseCoordinates parses both values and returns a ByCoordinates location.
func ParseCoordinates(lat, lon string) (ByCoordinates, error) {
	latitude, err := ParseLatitude(lat)
	if err != nil {
		return ByCoordinates{}, fmt.Errorf("latitude: %w", err)
	}
	longitude, err := ParseLongitude(lon)
	if err != nil {
		return ByCoordinates{}, fmt.Errorf("longitude: %w", err)
	}
	return ByCoordinates{Coords: models.Coordinates{Latitude: latitude, Longitude: longitude}}, nil
}

func parseDegrees(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidNumber, s)
	}
	// ParseFloat accepts NaN and Inf; neither is a position.
	if v != v || v < -limit || v > limit {
		return 0, fmt.Errorf("%w: %q is outside -%g..%g", models.ErrInvalidNumber, s, limit, limit)
	}
	return v, nil
}
