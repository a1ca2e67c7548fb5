package geo

import (
	"math"

	"github.com/shenikar/travel_safety/internal/models"
)

// destination возвращает точку на заданном азимуте и расстоянии от start
func destination(start models.Coordinate, bearingDeg, distance float64) models.Coordinate {
	lat := toRadians(start.Latitude)
	lng := toRadians(start.Longitude)
	bearing := toRadians(bearingDeg)
	angular := distance / EarthRadiusMeters

	lat2 := math.Asin(math.Sin(lat)*math.Cos(angular) + math.Cos(lat)*math.Sin(angular)*math.Cos(bearing))
	lng2 := lng + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat),
		math.Cos(angular)-math.Sin(lat)*math.Sin(lat2))

	lngDeg := math.Mod(toDegrees(lng2)+540, 360) - 180
	return models.Coordinate{Latitude: toDegrees(lat2), Longitude: lngDeg}
}

// boxContains повторяет условие, по которому бд выбирает кандидатов из бокса
func boxContains(b Box, c models.Coordinate) bool {
	if c.Latitude < b.MinLat || c.Latitude > b.MaxLat {
		return false
	}
	if b.CrossesAntimeridian {
		return c.Longitude >= b.MinLng || c.Longitude <= b.MaxLng
	}
	return c.Longitude >= b.MinLng && c.Longitude <= b.MaxLng
}
