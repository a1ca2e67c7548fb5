package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/sirupsen/logrus"
)

// EmergencyContactRepository определяет контракт для работы с бд контактов.
// Create и Update для основного контакта снимают флаг с прежнего атомарно с записью.
// FindByUser отдает основной контакт первым.
type EmergencyContactRepository interface {
	Create(ctx context.Context, contact *models.EmergencyContact) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyContact, error)
	Update(ctx context.Context, contact *models.EmergencyContact) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error)
}

type EmergencyContactService interface {
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error)
	CreateContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) error
	UpdateContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) (*models.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID, id uuid.UUID) error
}

type emergencyContactService struct {
	repo   EmergencyContactRepository
	users  UserRepository
	logger *logrus.Logger
}

func NewEmergencyContactService(repo EmergencyContactRepository, users UserRepository, logger *logrus.Logger) EmergencyContactService {
	return &emergencyContactService{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

func validateContact(contact *models.EmergencyContact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return fmt.Errorf("service: %w: contact name is required", e.ErrInvalidInput)
	}
	if strings.TrimSpace(contact.Phone) == "" && strings.TrimSpace(contact.Email) == "" {
		return fmt.Errorf("service: %w: contact needs a phone or an email", e.ErrInvalidInput)
	}
	return nil
}

// conflictOnUnique превращает нарушение уникального индекса основного контакта в конфликт
func conflictOnUnique(err error) error {
	if errors.Is(err, e.ErrUniqueViolation) {
		return fmt.Errorf("%w: %v", e.ErrConflict, err)
	}
	return err
}

func (s *emergencyContactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: contact owner %s: %w", userID, err)
	}

	contacts, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to list emergency contacts")
		return nil, fmt.Errorf("service: could not list emergency contacts: %w", err)
	}
	return contacts, nil
}

// CreateContact добавляет контакт. Новый основной контакт снимает флаг с прежнего.
func (s *emergencyContactService) CreateContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency_contact",
		"method":     "CreateContact",
		"user_id":    userID,
		"is_primary": contact.IsPrimary,
	})
	log.Info("Attempting to create emergency contact")

	if err := validateContact(contact); err != nil {
		log.WithError(err).Warn("Invalid emergency contact")
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		log.WithError(err).Warn("Contact owner not found")
		return fmt.Errorf("service: contact owner %s: %w", userID, err)
	}

	now := time.Now().UTC()
	contact.UserID = userID
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := s.repo.Create(ctx, contact); err != nil {
		log.WithError(err).Error("Failed to create emergency contact in repository")
		return fmt.Errorf("service: could not create emergency contact: %w", conflictOnUnique(err))
	}

	log.WithField("contact_id", contact.ID).Info("Emergency contact created successfully")
	return nil
}

func (s *emergencyContactService) UpdateContact(ctx context.Context, userID uuid.UUID, contact *models.EmergencyContact) (*models.EmergencyContact, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency_contact",
		"method":     "UpdateContact",
		"user_id":    userID,
		"contact_id": contact.ID,
	})

	if err := validateContact(contact); err != nil {
		log.WithError(err).Warn("Invalid emergency contact")
		return nil, err
	}

	existing, err := s.owned(ctx, userID, contact.ID)
	if err != nil {
		log.WithError(err).Warn("Emergency contact is not available for update")
		return nil, err
	}

	existing.Name = contact.Name
	existing.Phone = contact.Phone
	existing.Email = contact.Email
	existing.Relationship = contact.Relationship
	existing.IsPrimary = contact.IsPrimary
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update emergency contact in repository")
		return nil, fmt.Errorf("service: could not update emergency contact: %w", conflictOnUnique(err))
	}

	log.Info("Emergency contact updated successfully")
	return existing, nil
}

func (s *emergencyContactService) DeleteContact(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "emergency_contact",
		"method":     "DeleteContact",
		"user_id":    userID,
		"contact_id": id,
	})

	if _, err := s.owned(ctx, userID, id); err != nil {
		log.WithError(err).Warn("Emergency contact is not available for delete")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete emergency contact in repository")
		return fmt.Errorf("service: could not delete emergency contact: %w", err)
	}

	log.Info("Emergency contact deleted successfully")
	return nil
}

// owned загружает контакт и проверяет, что он принадлежит пользователю
func (s *emergencyContactService) owned(ctx context.Context, userID, id uuid.UUID) (*models.EmergencyContact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: emergency contact %s: %w", id, err)
	}
	if contact.UserID != userID {
		return nil, fmt.Errorf("service: emergency contact %s belongs to another user: %w", id, e.ErrUnauthorized)
	}
	return contact, nil
}
