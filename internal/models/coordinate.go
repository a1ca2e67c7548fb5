package models

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Coordinate - точка на поверхности Земли в градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate проверяет, что широта в [-90,90], а долгота в [-180,180]
func (c Coordinate) Validate() error {
	if !s2.LatLngFromDegrees(c.Latitude, c.Longitude).IsValid() {
		return fmt.Errorf("coordinate (%f, %f) is out of range", c.Latitude, c.Longitude)
	}
	return nil
}
