package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
)

const articleColumns = `
			id,
			title,
			summary,
			content,
			source,
			url,
			category,
			published_at,
			incident_id,
			created_at,
			updated_at`

type ArticleRepository struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) service.ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE url = $1);`, url).Scan(&exists)
	if err != nil {
		return false, e.WrapError(ctx, "repository: article exists by url", err)
	}
	return exists, nil
}

// CreateIfAbsent вставляет статью, если пары (url, incident_id) еще нет.
// Конкурентные вставки разрешает уникальный индекс, а не предварительная проверка.
func (r *ArticleRepository) CreateIfAbsent(ctx context.Context, article *models.Article) (bool, error) {
	query := `
		INSERT INTO articles (title, summary, content, source, url, category, published_at, incident_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (url, incident_id) DO NOTHING
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		article.Title,
		article.Summary,
		article.Content,
		article.Source,
		article.URL,
		article.Category,
		article.PublishedAt,
		article.IncidentID,
		article.CreatedAt,
		article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, e.WrapError(ctx, "repository: create article", err)
	}
	return true, nil
}

func (r *ArticleRepository) FindByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE incident_id = $1 ORDER BY published_at DESC;`
	return r.queryArticles(ctx, "repository: articles by incident", query, incidentID)
}

// List возвращает статьи категории или все статьи, если категория пустая
func (r *ArticleRepository) List(ctx context.Context, category string) ([]*models.Article, error) {
	if category == "" {
		query := `SELECT ` + articleColumns + ` FROM articles ORDER BY published_at DESC;`
		return r.queryArticles(ctx, "repository: list articles", query)
	}
	query := `SELECT ` + articleColumns + ` FROM articles WHERE category = $1 ORDER BY published_at DESC;`
	return r.queryArticles(ctx, "repository: list articles by category", query, category)
}

func (r *ArticleRepository) queryArticles(ctx context.Context, op, query string, args ...any) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		a := &models.Article{}
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Summary,
			&a.Content,
			&a.Source,
			&a.URL,
			&a.Category,
			&a.PublishedAt,
			&a.IncidentID,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, e.WrapError(ctx, op+": scan", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op+": iterate", err)
	}
	return articles, nil
}
