package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/travel_safety/internal/geo"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
)

const incidentColumns = `
			id,
			title,
			description,
			type,
			severity,
			status,
			ST_Y(location) AS latitude,
			ST_X(location) AS longitude,
			reported_by,
			assigned_to,
			reported_at,
			updated_at,
			resolved_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Type,
		&incident.Severity,
		&incident.Status,
		&incident.Latitude,
		&incident.Longitude,
		&incident.ReportedBy,
		&incident.AssignedTo,
		&incident.ReportedAt,
		&incident.UpdatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, op, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op+": scan", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op+": iterate", err)
	}
	return incidents, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (title, description, type, severity, status, location, reported_by, assigned_to, reported_at, updated_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9, $10, $11, $12)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.Type,
		incident.Severity,
		incident.Status,
		incident.Longitude,
		incident.Latitude,
		incident.ReportedBy,
		incident.AssignedTo,
		incident.ReportedAt,
		incident.UpdatedAt,
		incident.ResolvedAt,
	).Scan(&incident.ID)
	if err != nil {
		return e.WrapError(ctx, "repository: create incident", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, fmt.Sprintf("repository: incident %s", id), err)
	}
	return incident, nil
}

func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			title = $1,
			description = $2,
			type = $3,
			severity = $4,
			status = $5,
			assigned_to = $6,
			updated_at = $7,
			resolved_at = $8
		WHERE id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.Title,
		incident.Description,
		incident.Type,
		incident.Severity,
		incident.Status,
		incident.AssignedTo,
		incident.UpdatedAt,
		incident.ResolvedAt,
		incident.ID,
	)
	if err != nil {
		return e.WrapError(ctx, "repository: update incident", err)
	}

	// RowsAffected() == 0 - инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: incident %s: %w", incident.ID, e.ErrNotFound)
	}
	return nil
}

// Delete удаляет инцидент вместе с привязанными к нему новостями
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return e.WrapError(ctx, "repository: delete incident", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: incident %s: %w", id, e.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (r *IncidentRepository) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY reported_at DESC;`
	return r.queryIncidents(ctx, "repository: list incidents", query)
}

func (r *IncidentRepository) FindByStatus(ctx context.Context, status string) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = $1 ORDER BY reported_at DESC;`
	return r.queryIncidents(ctx, "repository: incidents by status", query, status)
}

func (r *IncidentRepository) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE assigned_to = $1 ORDER BY reported_at DESC;`
	return r.queryIncidents(ctx, "repository: incidents by assignee", query, userID)
}

func (r *IncidentRepository) FindReportedSince(ctx context.Context, since time.Time) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE reported_at >= $1 ORDER BY reported_at DESC;`
	return r.queryIncidents(ctx, "repository: incidents reported since", query, since)
}

// FindInBoundingBox отдает кандидатов для поиска по радиусу. Точная фильтрация - в сервисе.
func (r *IncidentRepository) FindInBoundingBox(ctx context.Context, box geo.Box) ([]*models.Incident, error) {
	cond, args := boxCondition(box)
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE ` + cond + ` ORDER BY reported_at DESC;`
	return r.queryIncidents(ctx, "repository: incidents in box", query, args...)
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить инцидент из Redis. Промах кеша - (nil, nil).
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
