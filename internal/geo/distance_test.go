package geo

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/travel_safety/internal/models"
)

var samplePoints = []models.Coordinate{
	{Latitude: 12.9716, Longitude: 77.5946},
	{Latitude: 55.7558, Longitude: 37.6173},
	{Latitude: -33.8688, Longitude: 151.2093},
	{Latitude: 0, Longitude: 179.9},
	{Latitude: 0, Longitude: -179.9},
	{Latitude: 89.9, Longitude: 10},
	{Latitude: -90, Longitude: 0},
	{Latitude: 40.7128, Longitude: -74.006},
}

func TestDistance_SamePointIsZero(t *testing.T) {
	for _, c := range samplePoints {
		assert.Equal(t, 0.0, Distance(c, c), "point %+v", c)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			assert.Equal(t, Distance(a, b), Distance(b, a), "pair %+v %+v", a, b)
		}
	}
}

func TestDistance_MatchesS2(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			if a == b {
				continue
			}
			expected := s2.LatLngFromDegrees(a.Latitude, a.Longitude).
				Distance(s2.LatLngFromDegrees(b.Latitude, b.Longitude)).Radians() * EarthRadiusMeters
			assert.InDelta(t, expected, Distance(a, b), 1.0, "pair %+v %+v", a, b)
		}
	}
}

func TestDistance_SmallOffsetInBangalore(t *testing.T) {
	a := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	b := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946 + 0.001}

	d := Distance(a, b)

	// 0.001 градуса долготы на широте ~13 градусов
	assert.InDelta(t, 108.4, d, 1.0)
}

func TestDistance_AcrossAntimeridian(t *testing.T) {
	east := models.Coordinate{Latitude: 0, Longitude: 179.9}
	west := models.Coordinate{Latitude: 0, Longitude: -179.9}

	d := Distance(east, west)

	// 0.2 градуса по экватору, а не 359.8
	assert.InDelta(t, 0.2*math.Pi/180*EarthRadiusMeters, d, 1.0)
}

func TestDistance_Antipodes(t *testing.T) {
	a := models.Coordinate{Latitude: 0, Longitude: 0}
	b := models.Coordinate{Latitude: 0, Longitude: 180}

	d := Distance(a, b)

	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMeters, d, 1.0)
}
