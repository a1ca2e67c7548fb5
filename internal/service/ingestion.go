package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/travel_safety/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultNewsTitle = "News"

// FetchAndMatch забирает пачку новостей, сопоставляет их с инцидентами
// и сохраняет по одной статье на каждый совпавший инцидент.
// Ошибка отдельной новости логируется и не прерывает обработку пачки.
func (s *articleService) FetchAndMatch(ctx context.Context) ([]*models.Article, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "article",
		"method":  "FetchAndMatch",
	})

	if s.locker != nil {
		locked, err := s.locker.TryLock(ctx)
		switch {
		case err != nil:
			log.WithError(err).Warn("Failed to acquire ingestion lock, continuing without it")
		case !locked:
			log.Info("Another ingestion run is in progress, skipping")
			return []*models.Article{}, nil
		default:
			defer func() {
				if err := s.locker.Unlock(context.WithoutCancel(ctx)); err != nil {
					log.WithError(err).Warn("Failed to release ingestion lock")
				}
			}()
		}
	}

	items, err := s.source.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch news")
		return nil, fmt.Errorf("service: could not fetch news: %w", err)
	}

	incidents, err := s.incidents.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load incidents for matching")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}

	saved := make([]*models.Article, 0)
	for _, item := range items {
		articles, err := s.ingestItem(ctx, item, incidents)
		saved = append(saved, articles...)
		if err != nil {
			log.WithError(err).WithField("url", item.URL).Warn("Skipping news item")
		}
	}

	log.WithFields(logrus.Fields{
		"fetched": len(items),
		"saved":   len(saved),
	}).Info("News ingestion completed")
	return saved, nil
}

func (s *articleService) ingestItem(ctx context.Context, item models.NewsItem, incidents []*models.Incident) ([]*models.Article, error) {
	url := strings.TrimSpace(item.URL)
	if url == "" {
		return nil, nil
	}

	exists, err := s.repo.ExistsByURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("check url: %w", err)
	}
	if exists {
		return nil, nil
	}

	matched := s.matcher.Match(item, incidents)
	if len(matched) == 0 {
		return nil, nil
	}

	publishedAt := parsePublishedAt(item.PublishedAt)
	saved := make([]*models.Article, 0, len(matched))
	for _, incident := range matched {
		article := newsArticle(item, url, publishedAt)
		incidentID := incident.ID
		article.IncidentID = &incidentID

		created, err := s.repo.CreateIfAbsent(ctx, article)
		if err != nil {
			return saved, fmt.Errorf("save article for incident %s: %w", incident.ID, err)
		}
		if created {
			saved = append(saved, article)
		}
	}
	return saved, nil
}

func newsArticle(item models.NewsItem, url string, publishedAt time.Time) *models.Article {
	title := item.Title
	if title == "" {
		title = defaultNewsTitle
	}
	now := time.Now().UTC()
	return &models.Article{
		Title:       title,
		Summary:     item.Description,
		Content:     item.Description,
		Source:      item.SourceName,
		URL:         url,
		Category:    models.ArticleCategoryNews,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// parsePublishedAt разбирает дату публикации, при ошибке подставляет текущее время
func parsePublishedAt(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC()
	}
	if len(value) >= 19 {
		if t, err := time.Parse("2006-01-02T15:04:05", value[:19]); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
