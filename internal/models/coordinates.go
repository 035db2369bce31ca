package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinates is a (latitude, longitude) pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" toml:"lat"`
	Lng float64 `json:"lng" toml:"lng"`
}

// Validate rejects non finite or out of range coordinates.
func (c Coordinates) Validate() error {
	for _, v := range []float64{c.Lat, c.Lng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Reason: ReasonCoordinates, Field: "coords"}
		}
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return &ValidationError{Reason: ReasonCoordinates, Field: "coords"}
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lng)
}

// ParseCoordinates reads "lat,lng", the format ipinfo and users both produce.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q: want lat,lng", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	c := Coordinates{Lat: lat, Lng: lng}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}
