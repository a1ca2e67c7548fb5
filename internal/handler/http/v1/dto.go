package v1

import (
	"time"

	"github.com/google/uuid"
)

// Координаты в запросах - указатели: 0 допустимое значение, а required проверяет наличие поля.

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Type        string   `json:"type" validate:"required,oneof=THEFT ACCIDENT MEDICAL_EMERGENCY ASSAULT NATURAL_DISASTER OTHER"`
	Severity    string   `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=OPEN RESOLVED CLOSED"`
}

// UpdateIncidentRequest DTO для обновления инцидента
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=255"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type" validate:"required,oneof=THEFT ACCIDENT MEDICAL_EMERGENCY ASSAULT NATURAL_DISASTER OTHER"`
	Severity    string     `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      string     `json:"status" validate:"required,oneof=OPEN RESOLVED CLOSED"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Type        string     `json:"type"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	ReportedBy  uuid.UUID  `json:"reported_by"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	ReportedAt  time.Time  `json:"reported_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// LiveIncidentResponse - инцидент живой ленты с новостями
// @Description Инцидент живой ленты с новостями
type LiveIncidentResponse struct {
	Incident *IncidentResponse  `json:"incident"`
	Articles []*ArticleResponse `json:"articles"`
}

// SafetyZoneRequest DTO для создания и обновления геозоны
// @Description DTO для создания и обновления геозоны
type SafetyZoneRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=255"`
	CenterLatitude  *float64 `json:"center_latitude" validate:"required,latitude"`
	CenterLongitude *float64 `json:"center_longitude" validate:"required,longitude"`
	RadiusMeters    float64  `json:"radius_meters" validate:"required,gt=0"`
	SafetyLevel     string   `json:"safety_level" validate:"required,oneof=DANGER WARNING SAFE"`
	Description     string   `json:"description,omitempty"`
}

// SafetyZoneResponse DTO ответа с геозоной
// @Description DTO ответа с геозоной
type SafetyZoneResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CenterLatitude  float64   `json:"center_latitude"`
	CenterLongitude float64   `json:"center_longitude"`
	RadiusMeters    float64   `json:"radius_meters"`
	SafetyLevel     string    `json:"safety_level"`
	Description     string    `json:"description,omitempty"`
	IncidentCount   int       `json:"incident_count"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationCheckResponse - зоны, в которые попала точка, и инциденты рядом
// @Description Результат проверки координат
type LocationCheckResponse struct {
	Zones        []*SafetyZoneResponse `json:"zones"`
	Incidents    []*IncidentResponse   `json:"incidents"`
	RadiusMeters float64               `json:"radius_meters"`
}

// SosRequest DTO для SOS и offline-оповещения
// @Description DTO для SOS и offline-оповещения
type SosRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Message   string   `json:"message,omitempty" validate:"max=1000"`
}

// SosStatusRequest DTO для смены статуса SOS
// @Description DTO для смены статуса SOS
type SosStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=RESOLVED CANCELLED"`
}

// SosEventResponse DTO ответа с SOS событием
// @Description DTO ответа с SOS событием
type SosEventResponse struct {
	ID                    uuid.UUID  `json:"id"`
	UserID                uuid.UUID  `json:"user_id"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
	Message               string     `json:"message"`
	Status                string     `json:"status"`
	Timestamp             time.Time  `json:"timestamp"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	IsOffline             bool       `json:"is_offline"`
	LastKnownLocationTime *time.Time `json:"last_known_location_time,omitempty"`
	RecoveredAt           *time.Time `json:"recovered_at,omitempty"`
}

// EmergencyContactRequest DTO для создания и обновления контакта
// @Description DTO для создания и обновления контакта
type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Phone        string `json:"phone,omitempty" validate:"max=32"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship string `json:"relationship,omitempty" validate:"max=64"`
	IsPrimary    bool   `json:"is_primary"`
}

// EmergencyContactResponse DTO ответа с контактом
// @Description DTO ответа с контактом
type EmergencyContactResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Relationship string    `json:"relationship,omitempty"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ArticleResponse DTO ответа с новостью
// @Description DTO ответа с новостью
type ArticleResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Source      string     `json:"source,omitempty"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
	PublishedAt time.Time  `json:"published_at"`
	IncidentID  *uuid.UUID `json:"incident_id,omitempty"`
}

// FetchResultResponse - итог ручного запуска загрузки новостей
// @Description Итог ручного запуска загрузки новостей
type FetchResultResponse struct {
	Saved    int                `json:"saved"`
	Articles []*ArticleResponse `json:"articles"`
}
