package repository

import "github.com/shenikar/travel_safety/internal/geo"

// boxCondition - условие попадания колонки location в бокс. Занимает плейсхолдеры $1..$4.
// Бокс через антимеридиан разбивается на два конверта.
func boxCondition(box geo.Box) (string, []any) {
	args := []any{box.MinLng, box.MinLat, box.MaxLng, box.MaxLat}
	if box.CrossesAntimeridian {
		return `(location && ST_MakeEnvelope($1, $2, 180, $4, 4326)
			OR location && ST_MakeEnvelope(-180, $2, $3, $4, 4326))`, args
	}
	return `location && ST_MakeEnvelope($1, $2, $3, $4, 4326)`, args
}
