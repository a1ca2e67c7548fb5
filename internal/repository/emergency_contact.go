package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
)

const contactColumns = `
			id,
			user_id,
			name,
			phone,
			email,
			relationship,
			is_primary,
			created_at,
			updated_at`

type EmergencyContactRepository struct {
	db *pgxpool.Pool
}

func NewEmergencyContactRepository(db *pgxpool.Pool) service.EmergencyContactRepository {
	return &EmergencyContactRepository{db: db}
}

func scanContact(row pgx.Row) (*models.EmergencyContact, error) {
	c := &models.EmergencyContact{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Relationship,
		&c.IsPrimary,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create сохраняет контакт. Для основного контакта прежний основной снимается в той же транзакции.
func (r *EmergencyContactRepository) Create(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		INSERT INTO emergency_contacts (user_id, name, phone, email, relationship, is_primary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if contact.IsPrimary {
			if err := unsetPrimary(ctx, tx, contact.UserID, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.QueryRow(ctx, query,
			contact.UserID,
			contact.Name,
			contact.Phone,
			contact.Email,
			contact.Relationship,
			contact.IsPrimary,
			contact.CreatedAt,
			contact.UpdatedAt,
		).Scan(&contact.ID)
	})
	if err != nil {
		return e.WrapError(ctx, "repository: create emergency contact", err)
	}
	return nil
}

func (r *EmergencyContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EmergencyContact, error) {
	query := `SELECT ` + contactColumns + ` FROM emergency_contacts WHERE id = $1;`
	contact, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, fmt.Sprintf("repository: emergency contact %s", id), err)
	}
	return contact, nil
}

// Update перезаписывает контакт, снимая флаг основного с остальных контактов в той же транзакции
func (r *EmergencyContactRepository) Update(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		UPDATE emergency_contacts SET
			name = $1,
			phone = $2,
			email = $3,
			relationship = $4,
			is_primary = $5,
			updated_at = $6
		WHERE id = $7;
	`
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if contact.IsPrimary {
			if err := unsetPrimary(ctx, tx, contact.UserID, contact.ID); err != nil {
				return err
			}
		}
		cmdTag, err := tx.Exec(ctx, query,
			contact.Name,
			contact.Phone,
			contact.Email,
			contact.Relationship,
			contact.IsPrimary,
			contact.UpdatedAt,
			contact.ID,
		)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("emergency contact %s: %w", contact.ID, e.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("repository: %w", err)
		}
		return e.WrapError(ctx, "repository: update emergency contact", err)
	}
	return nil
}

func (r *EmergencyContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM emergency_contacts WHERE id = $1;`, id)
	if err != nil {
		return e.WrapError(ctx, "repository: delete emergency contact", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: emergency contact %s: %w", id, e.ErrNotFound)
	}
	return nil
}

// FindByUser отдает контакты пользователя, основной первым
func (r *EmergencyContactRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error) {
	query := `SELECT ` + contactColumns + ` FROM emergency_contacts WHERE user_id = $1 ORDER BY is_primary DESC, created_at ASC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: contacts by user", err)
	}
	defer rows.Close()

	contacts := make([]*models.EmergencyContact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, e.WrapError(ctx, "repository: contacts by user: scan", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: contacts by user: iterate", err)
	}
	return contacts, nil
}

func unsetPrimary(ctx context.Context, tx pgx.Tx, userID, exceptID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE emergency_contacts SET is_primary = FALSE, updated_at = NOW() WHERE user_id = $1 AND id <> $2 AND is_primary;`,
		userID, exceptID,
	)
	if err != nil {
		return fmt.Errorf("unset primary contact: %w", err)
	}
	return nil
}
