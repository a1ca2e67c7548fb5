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

// SafetyZoneRepository определяет контракт для работы с бд геозон
type SafetyZoneRepository interface {
	Create(ctx context.Context, zone *models.SafetyZone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SafetyZone, error)
	Update(ctx context.Context, zone *models.SafetyZone) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.SafetyZone, error)
	FindInBoundingBox(ctx context.Context, box geo.Box) ([]*models.SafetyZone, error)
	UpdateIncidentCount(ctx context.Context, id uuid.UUID, count int) error
}

type SafetyZoneService interface {
	CreateZone(ctx context.Context, userID uuid.UUID, zone *models.SafetyZone) error
	UpdateZone(ctx context.Context, zone *models.SafetyZone) (*models.SafetyZone, error)
	DeleteZone(ctx context.Context, id uuid.UUID) error
	ListZones(ctx context.Context) ([]*models.SafetyZone, error)
	NearbyZones(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]*models.SafetyZone, error)
	ZonesContaining(ctx context.Context, point models.Coordinate) ([]*models.SafetyZone, error)
	RecountIncidents(ctx context.Context) (int, error)
}

type safetyZoneService struct {
	repo      SafetyZoneRepository
	incidents IncidentRepository
	users     UserRepository
	logger    *logrus.Logger
}

func NewSafetyZoneService(repo SafetyZoneRepository, incidents IncidentRepository, users UserRepository, logger *logrus.Logger) SafetyZoneService {
	return &safetyZoneService{
		repo:      repo,
		incidents: incidents,
		users:     users,
		logger:    logger,
	}
}

func validateZone(zone *models.SafetyZone) error {
	if err := zone.Coordinate().Validate(); err != nil {
		return fmt.Errorf("service: %w: %v", e.ErrInvalidInput, err)
	}
	if zone.RadiusMeters <= 0 {
		return fmt.Errorf("service: %w: zone radius must be positive", e.ErrInvalidInput)
	}
	switch zone.SafetyLevel {
	case models.SafetyLevelDanger, models.SafetyLevelWarning, models.SafetyLevelSafe:
		return nil
	default:
		return fmt.Errorf("service: %w: unknown safety level %q", e.ErrInvalidInput, zone.SafetyLevel)
	}
}

// CreateZone создает геозону от имени пользователя
func (s *safetyZoneService) CreateZone(ctx context.Context, userID uuid.UUID, zone *models.SafetyZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety_zone",
		"method":  "CreateZone",
		"user_id": userID,
		"name":    zone.Name,
	})
	log.Info("Attempting to create a safety zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Invalid safety zone")
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		log.WithError(err).Warn("Zone author not found")
		return fmt.Errorf("service: zone author %s: %w", userID, err)
	}

	now := time.Now().UTC()
	zone.CreatedBy = userID
	zone.CreatedAt = now
	zone.UpdatedAt = now

	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create safety zone in repository")
		return fmt.Errorf("service: could not create safety zone: %w", err)
	}

	log.WithField("zone_id", zone.ID).Info("Safety zone created successfully")
	return nil
}

// UpdateZone обновляет геометрию и описание зоны. Счетчик инцидентов не трогается.
func (s *safetyZoneService) UpdateZone(ctx context.Context, zone *models.SafetyZone) (*models.SafetyZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety_zone",
		"method":  "UpdateZone",
		"zone_id": zone.ID,
	})

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Invalid safety zone")
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, zone.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent safety zone")
		return nil, fmt.Errorf("service: safety zone %s not found for update: %w", zone.ID, err)
	}

	existing.Name = zone.Name
	existing.CenterLatitude = zone.CenterLatitude
	existing.CenterLongitude = zone.CenterLongitude
	existing.RadiusMeters = zone.RadiusMeters
	existing.SafetyLevel = zone.SafetyLevel
	existing.Description = zone.Description
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update safety zone in repository")
		return nil, fmt.Errorf("service: could not update safety zone: %w", err)
	}

	log.Info("Safety zone updated successfully")
	return existing, nil
}

func (s *safetyZoneService) DeleteZone(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.WithError(err).WithField("zone_id", id).Error("Failed to delete safety zone")
		return fmt.Errorf("service: could not delete safety zone: %w", err)
	}
	return nil
}

func (s *safetyZoneService) ListZones(ctx context.Context) ([]*models.SafetyZone, error) {
	zones, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list safety zones")
		return nil, fmt.Errorf("service: could not list safety zones: %w", err)
	}
	return zones, nil
}

// NearbyZones находит зоны, центр которых не дальше radiusMeters от точки
func (s *safetyZoneService) NearbyZones(ctx context.Context, center models.Coordinate, radiusMeters float64) ([]*models.SafetyZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "safety_zone",
		"method":        "NearbyZones",
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
		log.WithError(err).Error("Failed to find safety zone candidates")
		return nil, fmt.Errorf("service: could not find nearby safety zones: %w", err)
	}

	zones := geo.Nearby(center, radiusMeters, candidates)
	log.WithField("count", len(zones)).Info("Nearby safety zones found")
	return zones, nil
}

// ZonesContaining возвращает зоны, внутри которых находится точка
func (s *safetyZoneService) ZonesContaining(ctx context.Context, point models.Coordinate) ([]*models.SafetyZone, error) {
	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w: %v", e.ErrInvalidInput, err)
	}

	zones, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list safety zones")
		return nil, fmt.Errorf("service: could not list safety zones: %w", err)
	}
	return geo.Containing(point, zones), nil
}

// RecountIncidents пересчитывает incident_count каждой зоны по открытым инцидентам
// внутри нее. Возвращает число зон, у которых счетчик изменился.
func (s *safetyZoneService) RecountIncidents(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety_zone",
		"method":  "RecountIncidents",
	})
	log.Info("Recounting safety zone incidents")

	zones, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list safety zones")
		return 0, fmt.Errorf("service: could not list safety zones: %w", err)
	}

	open, err := s.incidents.FindByStatus(ctx, models.IncidentStatusOpen)
	if err != nil {
		log.WithError(err).Error("Failed to list open incidents")
		return 0, fmt.Errorf("service: could not list open incidents: %w", err)
	}

	updated := 0
	for _, zone := range zones {
		count := len(geo.Nearby(zone.Coordinate(), zone.RadiusMeters, open))
		if count == zone.IncidentCount {
			continue
		}
		if err := s.repo.UpdateIncidentCount(ctx, zone.ID, count); err != nil {
			log.WithError(err).WithField("zone_id", zone.ID).Error("Failed to update zone incident count")
			return updated, fmt.Errorf("service: could not update incident count: %w", err)
		}
		zone.IncidentCount = count
		updated++
	}

	log.WithField("updated", updated).Info("Safety zone incidents recounted")
	return updated, nil
}
