package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/correlate"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/sirupsen/logrus"
)

// ArticleRepository определяет контракт для работы с бд новостей
type ArticleRepository interface {
	ExistsByURL(ctx context.Context, url string) (bool, error)
	// CreateIfAbsent возвращает false, если такая пара (url, инцидент) уже сохранена
	CreateIfAbsent(ctx context.Context, article *models.Article) (bool, error)
	FindByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Article, error)
	List(ctx context.Context, category string) ([]*models.Article, error)
}

// NewsSource - внешний поисковый API новостей
type NewsSource interface {
	Fetch(ctx context.Context) ([]models.NewsItem, error)
}

// IngestLocker не дает двум прогонам загрузки идти одновременно
type IngestLocker interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

type ArticleService interface {
	ListArticles(ctx context.Context, category string) ([]*models.Article, error)
	IncidentArticles(ctx context.Context, incidentID uuid.UUID) ([]*models.Article, error)
	FetchAndMatch(ctx context.Context) ([]*models.Article, error)
}

type articleService struct {
	repo      ArticleRepository
	incidents IncidentRepository
	source    NewsSource
	locker    IngestLocker
	matcher   *correlate.Matcher
	logger    *logrus.Logger
}

// NewArticleService собирает сервис новостей. locker может быть nil,
// тогда от гонок защищает только уникальный индекс в бд.
func NewArticleService(repo ArticleRepository, incidents IncidentRepository, source NewsSource, locker IngestLocker, logger *logrus.Logger) ArticleService {
	return &articleService{
		repo:      repo,
		incidents: incidents,
		source:    source,
		locker:    locker,
		matcher:   correlate.NewMatcher(),
		logger:    logger,
	}
}

func (s *articleService) ListArticles(ctx context.Context, category string) ([]*models.Article, error) {
	articles, err := s.repo.List(ctx, category)
	if err != nil {
		s.logger.WithError(err).WithField("category", category).Error("Failed to list articles")
		return nil, fmt.Errorf("service: could not list articles: %w", err)
	}
	return articles, nil
}

func (s *articleService) IncidentArticles(ctx context.Context, incidentID uuid.UUID) ([]*models.Article, error) {
	if _, err := s.incidents.GetByID(ctx, incidentID); err != nil {
		return nil, fmt.Errorf("service: incident %s: %w", incidentID, err)
	}

	articles, err := s.repo.FindByIncident(ctx, incidentID)
	if err != nil {
		s.logger.WithError(err).WithField("incident_id", incidentID).Error("Failed to list incident articles")
		return nil, fmt.Errorf("service: could not list incident articles: %w", err)
	}
	return articles, nil
}
