package models

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentTypeTheft            IncidentType = "THEFT"
	IncidentTypeAccident         IncidentType = "ACCIDENT"
	IncidentTypeMedicalEmergency IncidentType = "MEDICAL_EMERGENCY"
	IncidentTypeAssault          IncidentType = "ASSAULT"
	IncidentTypeNaturalDisaster  IncidentType = "NATURAL_DISASTER"
	IncidentTypeOther            IncidentType = "OTHER"
)

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Статусы инцидента. Статус хранится как свободный текст, это лишь принятые значения.
const (
	IncidentStatusOpen     = "OPEN"
	IncidentStatusResolved = "RESOLVED"
	IncidentStatusClosed   = "CLOSED"
)

type Incident struct {
	ID          uuid.UUID    `json:"id"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        IncidentType `json:"type"`
	Severity    Severity     `json:"severity"`
	Status      string       `json:"status"`
	ReportedBy  uuid.UUID    `json:"reported_by"`
	AssignedTo  *uuid.UUID   `json:"assigned_to,omitempty"`
	ReportedAt  time.Time    `json:"reported_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
}

func (i *Incident) Coordinate() Coordinate {
	return Coordinate{Latitude: i.Latitude, Longitude: i.Longitude}
}

// IsTerminalStatus сообщает, закрывает ли статус инцидент (выставляется resolved_at)
func IsTerminalStatus(status string) bool {
	return status == IncidentStatusResolved || status == IncidentStatusClosed
}

// LiveIncident - инцидент живой ленты вместе с привязанными новостями
type LiveIncident struct {
	Incident *Incident  `json:"incident"`
	Articles []*Article `json:"articles"`
}
