package scheduler

import (
	"context"
	"fmt"

	"github.com/shenikar/travel_safety/internal/service"
)

const (
	JobNewsIngestion = "news_ingestion"
	JobZoneRecount   = "zone_recount"
)

// NewsIngestionJob оборачивает загрузку и сопоставление новостей
func NewsIngestionJob(articles service.ArticleService) Job {
	return func(ctx context.Context) error {
		if _, err := articles.FetchAndMatch(ctx); err != nil {
			return fmt.Errorf("news ingestion: %w", err)
		}
		return nil
	}
}

// ZoneRecountJob пересчитывает счетчики инцидентов геозон
func ZoneRecountJob(zones service.SafetyZoneService) Job {
	return func(ctx context.Context) error {
		if _, err := zones.RecountIncidents(ctx); err != nil {
			return fmt.Errorf("zone recount: %w", err)
		}
		return nil
	}
}
