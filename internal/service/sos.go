package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/sirupsen/logrus"
)

const (
	defaultOfflineMessage = "Entering no-network area"
	recoveredMessage      = "User recovered from offline area"
	defaultRecentLimit    = 20
	maxRecentLimit        = 100
)

// SosEventRepository определяет контракт журнала SOS событий
type SosEventRepository interface {
	Create(ctx context.Context, event *models.SosEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SosEvent, error)
	UpdateStatus(ctx context.Context, event *models.SosEvent) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.SosEvent, error)
	FindByStatus(ctx context.Context, status models.SosStatus) ([]*models.SosEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*models.SosEvent, error)
}

// Notifier рассылает SOS по контактам. Ошибки каналов не возвращаются, только логируются.
type Notifier interface {
	Notify(ctx context.Context, user *models.User, event *models.SosEvent, contacts []*models.EmergencyContact)
}

type SosService interface {
	CreateSosEvent(ctx context.Context, userID uuid.UUID, location models.Coordinate, message string) (*models.SosEvent, error)
	CreateOfflineAlert(ctx context.Context, userID uuid.UUID, location models.Coordinate, message string) (*models.SosEvent, error)
	MarkOfflineRecovered(ctx context.Context, userID uuid.UUID, location models.Coordinate) (*models.SosEvent, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SosStatus) (*models.SosEvent, error)
	ListUserEvents(ctx context.Context, userID uuid.UUID) ([]*models.SosEvent, error)
	ListPending(ctx context.Context) ([]*models.SosEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*models.SosEvent, error)
}

type sosService struct {
	repo     SosEventRepository
	users    UserRepository
	contacts EmergencyContactRepository
	notifier Notifier
	logger   *logrus.Logger
}

func NewSosService(repo SosEventRepository, users UserRepository, contacts EmergencyContactRepository, notifier Notifier, logger *logrus.Logger) SosService {
	return &sosService{
		repo:     repo,
		users:    users,
		contacts: contacts,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateSosEvent сохраняет новое SOS и синхронно оповещает контакты
func (s *sosService) CreateSosEvent(ctx context.Context, userID uuid.UUID, location models.Coordinate, message string) (*models.SosEvent, error) {
	event := &models.SosEvent{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Message:   message,
		Status:    models.SosStatusPending,
		Timestamp: time.Now().UTC(),
	}
	return s.raise(ctx, "CreateSosEvent", userID, event)
}

// CreateOfflineAlert фиксирует уход пользователя в зону без сети
func (s *sosService) CreateOfflineAlert(ctx context.Context, userID uuid.UUID, location models.Coordinate, message string) (*models.SosEvent, error) {
	if message == "" {
		message = defaultOfflineMessage
	}
	now := time.Now().UTC()
	event := &models.SosEvent{
		Latitude:              location.Latitude,
		Longitude:             location.Longitude,
		Message:               message,
		Status:                models.SosStatusPending,
		Timestamp:             now,
		IsOffline:             true,
		LastKnownLocationTime: &now,
	}
	return s.raise(ctx, "CreateOfflineAlert", userID, event)
}

// MarkOfflineRecovered добавляет в журнал новую запись о восстановлении связи.
// Исходное offline событие не изменяется.
func (s *sosService) MarkOfflineRecovered(ctx context.Context, userID uuid.UUID, location models.Coordinate) (*models.SosEvent, error) {
	now := time.Now().UTC()
	event := &models.SosEvent{
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		Message:     recoveredMessage,
		Status:      models.SosStatusResolved,
		Timestamp:   now,
		RecoveredAt: &now,
	}
	return s.raise(ctx, "MarkOfflineRecovered", userID, event)
}

func (s *sosService) raise(ctx context.Context, method string, userID uuid.UUID, event *models.SosEvent) (*models.SosEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "sos",
		"method":     method,
		"user_id":    userID,
		"is_offline": event.IsOffline,
	})
	log.Info("Attempting to record SOS event")

	if err := event.Coordinate().Validate(); err != nil {
		log.WithError(err).Warn("Invalid SOS coordinate")
		return nil, fmt.Errorf("service: %w: %v", e.ErrInvalidInput, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("SOS owner not found")
		return nil, fmt.Errorf("service: sos owner %s: %w", userID, err)
	}
	event.UserID = user.ID

	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to save SOS event in repository")
		return nil, fmt.Errorf("service: could not save sos event: %w", err)
	}
	log = log.WithField("sos_id", event.ID)
	log.Info("SOS event saved")

	s.notifyContacts(ctx, log, user, event)
	return event, nil
}

// notifyContacts никогда не возвращает ошибку: SOS уже сохранен
func (s *sosService) notifyContacts(ctx context.Context, log *logrus.Entry, user *models.User, event *models.SosEvent) {
	contacts, err := s.contacts.FindByUser(ctx, user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency contacts, nobody will be notified")
		return
	}
	if len(contacts) == 0 {
		log.Info("User has no emergency contacts, skipping notification")
		return
	}
	s.notifier.Notify(ctx, user, event, contacts)
}

// UpdateStatus переводит PENDING событие в RESOLVED или CANCELLED. Оповещений нет.
func (s *sosService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SosStatus) (*models.SosEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "UpdateStatus",
		"sos_id":  id,
		"status":  status,
	})
	log.Info("Attempting to update SOS status")

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent SOS event")
		return nil, fmt.Errorf("service: sos event %s not found for update: %w", id, err)
	}

	if !event.Status.CanTransition(status) {
		log.WithField("current", event.Status).Warn("Rejected SOS status transition")
		return nil, fmt.Errorf("service: %s -> %s: %w", event.Status, status, e.ErrInvalidTransition)
	}

	event.Status = status
	if status == models.SosStatusResolved {
		now := time.Now().UTC()
		event.ResolvedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, event); err != nil {
		log.WithError(err).Error("Failed to update SOS status in repository")
		return nil, fmt.Errorf("service: could not update sos status: %w", err)
	}

	log.Info("SOS status updated")
	return event, nil
}

// ListUserEvents возвращает журнал SOS пользователя, новые первыми
func (s *sosService) ListUserEvents(ctx context.Context, userID uuid.UUID) ([]*models.SosEvent, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: sos owner %s: %w", userID, err)
	}

	events, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list user SOS events")
		return nil, fmt.Errorf("service: could not list sos events: %w", err)
	}
	return events, nil
}

func (s *sosService) ListPending(ctx context.Context) ([]*models.SosEvent, error) {
	events, err := s.repo.FindByStatus(ctx, models.SosStatusPending)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list pending SOS events")
		return nil, fmt.Errorf("service: could not list pending sos events: %w", err)
	}
	return events, nil
}

func (s *sosService) ListRecent(ctx context.Context, limit int) ([]*models.SosEvent, error) {
	if limit < 1 || limit > maxRecentLimit {
		limit = defaultRecentLimit
	}

	events, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list recent SOS events")
		return nil, fmt.Errorf("service: could not list recent sos events: %w", err)
	}
	return events, nil
}
