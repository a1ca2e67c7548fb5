package models

import (
	"time"

	"github.com/google/uuid"
)

const ArticleCategoryNews = "NEWS"

type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
	PublishedAt time.Time  `json:"published_at"`
	IncidentID  *uuid.UUID `json:"incident_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewsItem - элемент выдачи внешнего новостного API
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SourceName  string `json:"source_name"`
	PublishedAt string `json:"published_at"`
}
