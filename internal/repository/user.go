package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
)

// UserRepository читает пользователей. Запись ведет внешний сервис аккаунтов.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx,
		`SELECT id, full_name, email, phone_number FROM users WHERE id = $1;`, id,
	).Scan(&user.ID, &user.FullName, &user.Email, &user.PhoneNumber)
	if err != nil {
		return nil, e.WrapError(ctx, fmt.Sprintf("repository: user %s", id), err)
	}
	return user, nil
}
