package geo

import (
	"math"

	"github.com/shenikar/travel_safety/internal/models"
)

// EarthRadiusMeters - радиус Земли, используемый во всех расчетах расстояний
const EarthRadiusMeters = 6371000.0

// Distance возвращает расстояние по большому кругу между точками в метрах
// (сферическая теорема косинусов).
func Distance(a, b models.Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLng := toRadians(b.Longitude - a.Longitude)

	cosine := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(deltaLng)
	// из-за округления аргумент acos может выйти за [-1, 1]
	cosine = math.Max(-1, math.Min(1, cosine))

	return EarthRadiusMeters * math.Acos(cosine)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
