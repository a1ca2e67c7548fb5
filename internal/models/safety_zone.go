package models

import (
	"time"

	"github.com/google/uuid"
)

type SafetyLevel string

const (
	SafetyLevelDanger  SafetyLevel = "DANGER"
	SafetyLevelWarning SafetyLevel = "WARNING"
	SafetyLevelSafe    SafetyLevel = "SAFE"
)

// SafetyZone - круговая зона (геозона) с классом безопасности.
// IncidentCount денормализован и пересчитывается отдельной задачей.
type SafetyZone struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	CenterLatitude  float64     `json:"center_latitude"`
	CenterLongitude float64     `json:"center_longitude"`
	RadiusMeters    float64     `json:"radius_meters"`
	SafetyLevel     SafetyLevel `json:"safety_level"`
	Description     string      `json:"description"`
	IncidentCount   int         `json:"incident_count"`
	CreatedBy       uuid.UUID   `json:"created_by"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (z *SafetyZone) Coordinate() Coordinate {
	return Coordinate{Latitude: z.CenterLatitude, Longitude: z.CenterLongitude}
}

func (z *SafetyZone) Radius() float64 {
	return z.RadiusMeters
}
