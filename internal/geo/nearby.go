package geo

import (
	"math"

	"github.com/shenikar/travel_safety/internal/models"
)

// Locatable - все, у чего есть координата (инцидент, центр зоны, SOS событие)
type Locatable interface {
	Coordinate() models.Coordinate
}

// Circle - круговая область с собственным радиусом
type Circle interface {
	Locatable
	Radius() float64
}

// Nearby оставляет кандидатов, удаленных от center не дальше radiusMeters.
// Порядок входа сохраняется, для пустого входа возвращается пустой срез.
func Nearby[T Locatable](center models.Coordinate, radiusMeters float64, candidates []T) []T {
	result := make([]T, 0, len(candidates))
	for _, candidate := range candidates {
		if Distance(center, candidate.Coordinate()) <= radiusMeters {
			result = append(result, candidate)
		}
	}
	return result
}

// Containing возвращает области, внутрь которых попадает точка
func Containing[T Circle](point models.Coordinate, areas []T) []T {
	result := make([]T, 0, len(areas))
	for _, area := range areas {
		if Distance(point, area.Coordinate()) <= area.Radius() {
			result = append(result, area)
		}
	}
	return result
}

// Box - прямоугольник в градусах для предварительной выборки из бд.
// При CrossesAntimeridian долгота попадает в бокс, если lng >= MinLng ИЛИ lng <= MaxLng.
type Box struct {
	MinLat, MaxLat      float64
	MinLng, MaxLng      float64
	CrossesAntimeridian bool
}

// BoundingBox строит бокс, гарантированно покрывающий круг радиуса radiusMeters
func BoundingBox(center models.Coordinate, radiusMeters float64) Box {
	angular := radiusMeters / EarthRadiusMeters
	lat := toRadians(center.Latitude)
	lng := toRadians(center.Longitude)

	minLat := lat - angular
	maxLat := lat + angular

	// круг накрывает полюс - берем все долготы
	if minLat <= -math.Pi/2 || maxLat >= math.Pi/2 {
		return Box{
			MinLat: toDegrees(math.Max(minLat, -math.Pi/2)),
			MaxLat: toDegrees(math.Min(maxLat, math.Pi/2)),
			MinLng: -180,
			MaxLng: 180,
		}
	}

	ratio := math.Sin(angular) / math.Cos(lat)
	if ratio >= 1 {
		return Box{MinLat: toDegrees(minLat), MaxLat: toDegrees(maxLat), MinLng: -180, MaxLng: 180}
	}
	deltaLng := math.Asin(ratio)

	box := Box{
		MinLat: toDegrees(minLat),
		MaxLat: toDegrees(maxLat),
		MinLng: toDegrees(lng - deltaLng),
		MaxLng: toDegrees(lng + deltaLng),
	}
	if box.MinLng < -180 {
		box.MinLng += 360
		box.CrossesAntimeridian = true
	}
	if box.MaxLng > 180 {
		box.MaxLng -= 360
		box.CrossesAntimeridian = true
	}
	return box
}
