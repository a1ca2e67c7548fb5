package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/geo"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/sirupsen/logrus"
)

// liveWindow - за какой период инциденты попадают в живую ленту
const liveWindow = 24 * time.Hour

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	FindByStatus(ctx context.Context, status string) ([]*models.Incident, error)
	FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Incident, error)
	FindReportedSince(ctx context.Context, since time.Time) ([]*models.Incident, error)
	FindInBoundingBox(ctx context.Context, box geo.Box) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// UserRepository - узкий интерфейс к пользователям, которыми управляет внешний сервис
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// IncidentService определяет контрак для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, userID uuid.UUID, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, status string) ([]*models.Incident, error)
	NearbyIncidents(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]*models.Incident, error)
	AssignedIncidents(ctx context.Context, userID uuid.UUID) ([]*models.Incident, error)
	LiveIncidents(ctx context.Context) ([]*models.LiveIncident, error)
}

type incidentService struct {
	repo     IncidentRepository
	users    UserRepository
	articles ArticleRepository
	logger   *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, users UserRepository, articles ArticleRepository, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:     repo,
		users:    users,
		articles: articles,
		logger:   logger,
	}
}

// CreateIncident создает инцидент от имени пользователя
func (s *incidentService) CreateIncident(ctx context.Context, userID uuid.UUID, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"user_id": userID,
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := incident.Coordinate().Validate(); err != nil {
		log.WithError(err).Warn("Invalid incident coordinate")
		return fmt.Errorf("service: %w: %v", e.ErrInvalidInput, err)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		log.WithError(err).Warn("Reporting user not found")
		return fmt.Errorf("service: reporting user %s: %w", userID, err)
	}

	now := time.Now().UTC()
	incident.ReportedBy = userID
	incident.ReportedAt = now
	incident.UpdatedAt = now
	if incident.Status == "" {
		incident.Status = models.IncidentStatusOpen
	}
	incident.ResolvedAt = nil
	if models.IsTerminalStatus(incident.Status) {
		incident.ResolvedAt = &now
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// UpdateIncident обновляет описание, статус и назначение инцидента.
// resolved_at выставляется при переходе в RESOLVED/CLOSED и сбрасывается при переоткрытии.
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, incident.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for update: %w", incident.ID, err)
	}

	wasTerminal := models.IsTerminalStatus(existing.Status)

	existing.Title = incident.Title
	existing.Description = incident.Description
	existing.Type = incident.Type
	existing.Severity = incident.Severity
	existing.Status = incident.Status
	if incident.AssignedTo != nil {
		existing.AssignedTo = incident.AssignedTo
	}

	now := time.Now().UTC()
	existing.UpdatedAt = now
	switch {
	case models.IsTerminalStatus(existing.Status) && !wasTerminal:
		existing.ResolvedAt = &now
	case !models.IsTerminalStatus(existing.Status):
		existing.ResolvedAt = nil
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, existing.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.WithField("status", existing.Status).Info("Incident updated successfully")
	return existing, nil
}

// DeleteIncident удаляет инцидент
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}

// ListIncidents возвращает все инциденты или только с указанным статусом
func (s *incidentService) ListIncidents(ctx context.Context, status string) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"status":  status,
	})
	log.Info("Listing incidents")

	var (
		incidents []*models.Incident
		err       error
	)
	if status == "" {
		incidents, err = s.repo.ListIncidents(ctx)
	} else {
		incidents, err = s.repo.FindByStatus(ctx, status)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// NearbyIncidents находит инциденты в радиусе от точки.
// Бд отдает кандидатов из ограничивающего прямоугольника, точный фильтр - geo.Nearby.
func (s *incidentService) NearbyIncidents(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "NearbyIncidents",
		"latitude":      center.Latitude,
		"longitude":     center.Longitude,
		"radius_meters": radiusMeters,
	})

	if err := validateArea(center, radiusMeters); err != nil {
		log.WithError(err).Warn("Invalid nearby query")
		return nil, err
	}

	candidates, err := s.repo.FindInBoundingBox(ctx, geo.BoundingBox(center, radiusMeters))
	if err != nil {
		log.WithError(err).Error("Failed to find incident candidates")
		return nil, fmt.Errorf("service: could not find nearby incidents: %w", err)
	}

	incidents := geo.Nearby(center, radiusMeters, candidates)
	log.WithField("count", len(incidents)).Info("Nearby incidents found")
	return incidents, nil
}

// AssignedIncidents возвращает инциденты, назначенные пользователю
func (s *incidentService) AssignedIncidents(ctx context.Context, userID uuid.UUID) ([]*models.Incident, error) {
	incidents, err := s.repo.FindByAssignee(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list assigned incidents")
		return nil, fmt.Errorf("service: could not list assigned incidents: %w", err)
	}
	return incidents, nil
}

// LiveIncidents возвращает инциденты за последние сутки с привязанными новостями
func (s *incidentService) LiveIncidents(ctx context.Context) ([]*models.LiveIncident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "LiveIncidents",
	})

	incidents, err := s.repo.FindReportedSince(ctx, time.Now().UTC().Add(-liveWindow))
	if err != nil {
		log.WithError(err).Error("Failed to list recent incidents")
		return nil, fmt.Errorf("service: could not list live incidents: %w", err)
	}

	live := make([]*models.LiveIncident, 0, len(incidents))
	for _, incident := range incidents {
		articles, err := s.articles.FindByIncident(ctx, incident.ID)
		if err != nil {
			// лента важнее новостей: отдаем инцидент без них
			log.WithError(err).WithField("incident_id", incident.ID).Warn("Failed to load incident articles")
			articles = []*models.Article{}
		}
		live = append(live, &models.LiveIncident{Incident: incident, Articles: articles})
	}
	return live, nil
}

func validateArea(center models.Coordinate, radiusMeters float64) error {
	if err := center.Validate(); err != nil {
		return fmt.Errorf("service: %w: %v", e.ErrInvalidInput, err)
	}
	if radiusMeters < 0 {
		return fmt.Errorf("service: %w: radius must not be negative", e.ErrInvalidInput)
	}
	return nil
}
