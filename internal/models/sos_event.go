package models

import (
	"time"

	"github.com/google/uuid"
)

type SosStatus string

const (
	SosStatusPending   SosStatus = "PENDING"
	SosStatusResolved  SosStatus = "RESOLVED"
	SosStatusCancelled SosStatus = "CANCELLED"
)

// SosEvent - запись в журнале SOS пользователя. Журнал только дополняется:
// восстановление связи порождает новую запись, а не меняет исходную.
type SosEvent struct {
	ID                    uuid.UUID  `json:"id"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	Message               string     `json:"message"`
	Status                SosStatus  `json:"status"`
	UserID                uuid.UUID  `json:"user_id"`
	Timestamp             time.Time  `json:"timestamp"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	IsOffline             bool       `json:"is_offline"`
	LastKnownLocationTime *time.Time `json:"last_known_location_time,omitempty"`
	RecoveredAt           *time.Time `json:"recovered_at,omitempty"`
}

func (e *SosEvent) Coordinate() Coordinate {
	return Coordinate{Latitude: e.Latitude, Longitude: e.Longitude}
}

// CanTransition описывает допустимые переходы: из PENDING в RESOLVED или CANCELLED
func (s SosStatus) CanTransition(to SosStatus) bool {
	return s == SosStatusPending && (to == SosStatusResolved || to == SosStatusCancelled)
}
