package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
)

const sosColumns = `
			id,
			user_id,
			ST_Y(location) AS latitude,
			ST_X(location) AS longitude,
			message,
			status,
			timestamp,
			resolved_at,
			is_offline,
			last_known_location_time,
			recovered_at`

type SosEventRepository struct {
	db *pgxpool.Pool
}

func NewSosEventRepository(db *pgxpool.Pool) service.SosEventRepository {
	return &SosEventRepository{db: db}
}

func scanSosEvent(row pgx.Row) (*models.SosEvent, error) {
	event := &models.SosEvent{}
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.Latitude,
		&event.Longitude,
		&event.Message,
		&event.Status,
		&event.Timestamp,
		&event.ResolvedAt,
		&event.IsOffline,
		&event.LastKnownLocationTime,
		&event.RecoveredAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *SosEventRepository) Create(ctx context.Context, event *models.SosEvent) error {
	query := `
		INSERT INTO sos_events (user_id, location, message, status, timestamp, resolved_at, is_offline, last_known_location_time, recovered_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.Longitude,
		event.Latitude,
		event.Message,
		event.Status,
		event.Timestamp,
		event.ResolvedAt,
		event.IsOffline,
		event.LastKnownLocationTime,
		event.RecoveredAt,
	).Scan(&event.ID)
	if err != nil {
		return e.WrapError(ctx, "repository: create sos event", err)
	}
	return nil
}

func (r *SosEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SosEvent, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_events WHERE id = $1;`
	event, err := scanSosEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, fmt.Sprintf("repository: sos event %s", id), err)
	}
	return event, nil
}

// UpdateStatus меняет только статус и resolved_at, остальные поля журнала неизменны
func (r *SosEventRepository) UpdateStatus(ctx context.Context, event *models.SosEvent) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE sos_events SET status = $1, resolved_at = $2 WHERE id = $3;`,
		event.Status, event.ResolvedAt, event.ID,
	)
	if err != nil {
		return e.WrapError(ctx, "repository: update sos status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: sos event %s: %w", event.ID, e.ErrNotFound)
	}
	return nil
}

func (r *SosEventRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*models.SosEvent, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_events WHERE user_id = $1 ORDER BY timestamp DESC;`
	return r.queryEvents(ctx, "repository: sos events by user", query, userID)
}

func (r *SosEventRepository) FindByStatus(ctx context.Context, status models.SosStatus) ([]*models.SosEvent, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_events WHERE status = $1 ORDER BY timestamp DESC;`
	return r.queryEvents(ctx, "repository: sos events by status", query, status)
}

func (r *SosEventRepository) ListRecent(ctx context.Context, limit int) ([]*models.SosEvent, error) {
	query := `SELECT ` + sosColumns + ` FROM sos_events ORDER BY timestamp DESC LIMIT $1;`
	return r.queryEvents(ctx, "repository: recent sos events", query, limit)
}

func (r *SosEventRepository) queryEvents(ctx context.Context, op, query string, args ...any) ([]*models.SosEvent, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	events := make([]*models.SosEvent, 0)
	for rows.Next() {
		event, err := scanSosEvent(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op+": scan", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op+": iterate", err)
	}
	return events, nil
}
