package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ingestDeps struct {
	repo      *mocks.MockArticleRepository
	incidents *mocks.MockIncidentRepository
	source    *mocks.MockNewsSource
	locker    *mocks.MockIngestLocker
}

func newTestArticleService(t *testing.T, withLock bool) (ArticleService, ingestDeps) {
	ctrl := gomock.NewController(t)
	deps := ingestDeps{
		repo:      mocks.NewMockArticleRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		source:    mocks.NewMockNewsSource(ctrl),
	}
	var locker IngestLocker
	if withLock {
		deps.locker = mocks.NewMockIngestLocker(ctrl)
		locker = deps.locker
	}
	return NewArticleService(deps.repo, deps.incidents, deps.source, locker, newTestLogger()), deps
}

func TestFetchAndMatch_SavesOneArticlePerMatchedIncident(t *testing.T) {
	svc, deps := newTestArticleService(t, false)
	ctx := context.Background()
	theft := &models.Incident{ID: uuid.New(), Title: "Pickpocket", Type: models.IncidentTypeTheft}
	flood := &models.Incident{ID: uuid.New(), Title: "River flood", Type: models.IncidentTypeNaturalDisaster}

	deps.source.EXPECT().Fetch(ctx).Return([]models.NewsItem{{
		Title:       "Theft wave as flood hits the city",
		URL:         "https://news.example/1",
		PublishedAt: "2026-03-01T10:00:00Z",
	}}, nil)
	deps.incidents.EXPECT().ListIncidents(ctx).Return([]*models.Incident{theft, flood}, nil)
	deps.repo.EXPECT().ExistsByURL(ctx, "https://news.example/1").Return(false, nil)
	deps.repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(true, nil).Times(2)

	saved, err := svc.FetchAndMatch(ctx)

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, theft.ID, *saved[0].IncidentID)
	assert.Equal(t, flood.ID, *saved[1].IncidentID)
	assert.Equal(t, models.ArticleCategoryNews, saved[0].Category)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), saved[0].PublishedAt)
}

func TestFetchAndMatch_SkipsKnownAndUnmatched(t *testing.T) {
	svc, deps := newTestArticleService(t, false)
	ctx := context.Background()
	incident := &models.Incident{ID: uuid.New(), Title: "Earthquake", Type: models.IncidentTypeNaturalDisaster}

	deps.source.EXPECT().Fetch(ctx).Return([]models.NewsItem{
		{Title: "Earthquake again", URL: "https://news.example/known"},
		{Title: "Sports results", URL: "https://news.example/sports"},
		{Title: "Earthquake no url"},
	}, nil)
	deps.incidents.EXPECT().ListIncidents(ctx).Return([]*models.Incident{incident}, nil)
	deps.repo.EXPECT().ExistsByURL(ctx, "https://news.example/known").Return(true, nil)
	deps.repo.EXPECT().ExistsByURL(ctx, "https://news.example/sports").Return(false, nil)
	deps.repo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Times(0)

	saved, err := svc.FetchAndMatch(ctx)

	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestFetchAndMatch_ItemFailureDoesNotStopBatch(t *testing.T) {
	svc, deps := newTestArticleService(t, false)
	ctx := context.Background()
	incident := &models.Incident{ID: uuid.New(), Title: "Robbery downtown", Type: models.IncidentTypeTheft}

	deps.source.EXPECT().Fetch(ctx).Return([]models.NewsItem{
		{Title: "Robbery one", URL: "https://news.example/1"},
		{Title: "Robbery two", URL: "https://news.example/2"},
	}, nil)
	deps.incidents.EXPECT().ListIncidents(ctx).Return([]*models.Incident{incident}, nil)
	deps.repo.EXPECT().ExistsByURL(ctx, "https://news.example/1").Return(false, errors.New("db timeout"))
	deps.repo.EXPECT().ExistsByURL(ctx, "https://news.example/2").Return(false, nil)
	deps.repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(true, nil)

	saved, err := svc.FetchAndMatch(ctx)

	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "https://news.example/2", saved[0].URL)
}

func TestFetchAndMatch_ConcurrentDuplicateNotReturned(t *testing.T) {
	svc, deps := newTestArticleService(t, false)
	ctx := context.Background()
	incident := &models.Incident{ID: uuid.New(), Title: "Robbery", Type: models.IncidentTypeTheft}

	deps.source.EXPECT().Fetch(ctx).Return([]models.NewsItem{{Title: "Robbery", URL: "https://news.example/1"}}, nil)
	deps.incidents.EXPECT().ListIncidents(ctx).Return([]*models.Incident{incident}, nil)
	deps.repo.EXPECT().ExistsByURL(ctx, gomock.Any()).Return(false, nil)
	deps.repo.EXPECT().CreateIfAbsent(ctx, gomock.Any()).Return(false, nil)

	saved, err := svc.FetchAndMatch(ctx)

	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestFetchAndMatch_FetchError(t *testing.T) {
	svc, deps := newTestArticleService(t, false)
	ctx := context.Background()

	deps.source.EXPECT().Fetch(ctx).Return(nil, errors.New("rate limited"))
	deps.incidents.EXPECT().ListIncidents(gomock.Any()).Times(0)

	_, err := svc.FetchAndMatch(ctx)

	assert.ErrorContains(t, err, "could not fetch news")
}

func TestFetchAndMatch_LockHeldElsewhere(t *testing.T) {
	svc, deps := newTestArticleService(t, true)
	ctx := context.Background()

	deps.locker.EXPECT().TryLock(ctx).Return(false, nil)
	deps.locker.EXPECT().Unlock(gomock.Any()).Times(0)
	deps.source.EXPECT().Fetch(gomock.Any()).Times(0)

	saved, err := svc.FetchAndMatch(ctx)

	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestFetchAndMatch_LockReleased(t *testing.T) {
	svc, deps := newTestArticleService(t, true)
	ctx := context.Background()

	gomock.InOrder(
		deps.locker.EXPECT().TryLock(ctx).Return(true, nil),
		deps.source.EXPECT().Fetch(ctx).Return([]models.NewsItem{}, nil),
		deps.incidents.EXPECT().ListIncidents(ctx).Return([]*models.Incident{}, nil),
		deps.locker.EXPECT().Unlock(gomock.Any()).Return(nil),
	)

	_, err := svc.FetchAndMatch(ctx)

	require.NoError(t, err)
}

func TestParsePublishedAt(t *testing.T) {
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), parsePublishedAt("2026-01-02T03:04:05Z"))
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), parsePublishedAt("2026-01-02T03:04:05.123"))
	assert.WithinDuration(t, time.Now().UTC(), parsePublishedAt("yesterday"), time.Minute)
	assert.WithinDuration(t, time.Now().UTC(), parsePublishedAt(""), time.Minute)
}

func TestNewsArticle_DefaultTitle(t *testing.T) {
	article := newsArticle(models.NewsItem{Description: "d", SourceName: "Wire"}, "https://x", time.Now())

	assert.Equal(t, "News", article.Title)
	assert.Equal(t, "d", article.Summary)
	assert.Equal(t, "Wire", article.Source)
}

func TestIncidentArticles_IncidentMissing(t *testing.T) {
	svc, deps := newTestArticleService(t, false)
	id := uuid.New()
	deps.incidents.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("repository: not found"))
	deps.repo.EXPECT().FindByIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.IncidentArticles(context.Background(), id)

	assert.Error(t, err)
}
