package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety/internal/geo"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
)

const zoneColumns = `
			id,
			name,
			ST_Y(location) AS center_latitude,
			ST_X(location) AS center_longitude,
			radius_meters,
			safety_level,
			description,
			incident_count,
			created_by,
			created_at,
			updated_at`

type SafetyZoneRepository struct {
	db *pgxpool.Pool
}

func NewSafetyZoneRepository(db *pgxpool.Pool) service.SafetyZoneRepository {
	return &SafetyZoneRepository{db: db}
}

func scanZone(row pgx.Row) (*models.SafetyZone, error) {
	zone := &models.SafetyZone{}
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.CenterLatitude,
		&zone.CenterLongitude,
		&zone.RadiusMeters,
		&zone.SafetyLevel,
		&zone.Description,
		&zone.IncidentCount,
		&zone.CreatedBy,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

func (r *SafetyZoneRepository) queryZones(ctx context.Context, op, query string, args ...any) ([]*models.SafetyZone, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]*models.SafetyZone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, e.WrapError(ctx, op+": scan", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op+": iterate", err)
	}
	return zones, nil
}

func (r *SafetyZoneRepository) Create(ctx context.Context, zone *models.SafetyZone) error {
	query := `
		INSERT INTO safety_zones (name, location, radius_meters, safety_level, description, incident_count, created_by, created_at, updated_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		zone.Name,
		zone.CenterLongitude,
		zone.CenterLatitude,
		zone.RadiusMeters,
		zone.SafetyLevel,
		zone.Description,
		zone.IncidentCount,
		zone.CreatedBy,
		zone.CreatedAt,
		zone.UpdatedAt,
	).Scan(&zone.ID)
	if err != nil {
		return e.WrapError(ctx, "repository: create safety zone", err)
	}
	return nil
}

func (r *SafetyZoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SafetyZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM safety_zones WHERE id = $1;`
	zone, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, fmt.Sprintf("repository: safety zone %s", id), err)
	}
	return zone, nil
}

func (r *SafetyZoneRepository) Update(ctx context.Context, zone *models.SafetyZone) error {
	query := `
		UPDATE safety_zones SET
			name = $1,
			location = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			radius_meters = $4,
			safety_level = $5,
			description = $6,
			updated_at = $7
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		zone.Name,
		zone.CenterLongitude,
		zone.CenterLatitude,
		zone.RadiusMeters,
		zone.SafetyLevel,
		zone.Description,
		zone.UpdatedAt,
		zone.ID,
	)
	if err != nil {
		return e.WrapError(ctx, "repository: update safety zone", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: safety zone %s: %w", zone.ID, e.ErrNotFound)
	}
	return nil
}

func (r *SafetyZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM safety_zones WHERE id = $1;`, id)
	if err != nil {
		return e.WrapError(ctx, "repository: delete safety zone", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: safety zone %s: %w", id, e.ErrNotFound)
	}
	return nil
}

func (r *SafetyZoneRepository) List(ctx context.Context) ([]*models.SafetyZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM safety_zones ORDER BY created_at DESC;`
	return r.queryZones(ctx, "repository: list safety zones", query)
}

func (r *SafetyZoneRepository) FindInBoundingBox(ctx context.Context, box geo.Box) ([]*models.SafetyZone, error) {
	cond, args := boxCondition(box)
	query := `SELECT ` + zoneColumns + ` FROM safety_zones WHERE ` + cond + ` ORDER BY created_at DESC;`
	return r.queryZones(ctx, "repository: safety zones in box", query, args...)
}

func (r *SafetyZoneRepository) UpdateIncidentCount(ctx context.Context, id uuid.UUID, count int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE safety_zones SET incident_count = $1, updated_at = NOW() WHERE id = $2;`, count, id)
	if err != nil {
		return e.WrapError(ctx, "repository: update zone incident count", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: safety zone %s: %w", id, e.ErrNotFound)
	}
	return nil
}
