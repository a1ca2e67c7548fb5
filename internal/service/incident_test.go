package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/geo"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service/mocks"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type incidentDeps struct {
	repo     *mocks.MockIncidentRepository
	users    *mocks.MockUserRepository
	articles *mocks.MockArticleRepository
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, incidentDeps) {
	ctrl := gomock.NewController(t)
	deps := incidentDeps{
		repo:     mocks.NewMockIncidentRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		articles: mocks.NewMockArticleRepository(ctrl),
	}
	svc := NewIncidentService(deps.repo, deps.users, deps.articles, newTestLogger())
	return svc.(*incidentService), deps
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Title: "Кража из кеша"}

	// Ожидания
	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(expected, nil).Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Title: "Кража из БД"}

	// 1. Промах кеша
	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	deps.repo.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID}

	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, errors.New("redis down"))
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(expected, nil)
	deps.repo.EXPECT().SetIncidentCache(ctx, expected).Return(errors.New("redis down"))

	incident, err := svc.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("repository: %w", e.ErrNotFound))

	incident, err := svc.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCreateIncident_Success(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	userID := uuid.New()
	incident := &models.Incident{
		Title:     "Карманник на вокзале",
		Latitude:  48.85,
		Longitude: 2.35,
		Type:      models.IncidentTypeTheft,
		Severity:  models.SeverityMedium,
	}

	deps.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID
			inc.ID = uuid.New()
			return nil
		})

	err := svc.CreateIncident(ctx, userID, incident)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incident.ID)
	assert.Equal(t, userID, incident.ReportedBy)
	assert.Equal(t, models.IncidentStatusOpen, incident.Status)
	assert.Nil(t, incident.ResolvedAt)
	assert.False(t, incident.ReportedAt.IsZero())
}

func TestCreateIncident_ResolvedOnCreateSetsResolvedAt(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	userID := uuid.New()
	incident := &models.Incident{Title: "Старое", Status: models.IncidentStatusResolved}

	deps.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	deps.repo.EXPECT().Create(ctx, incident).Return(nil)

	require.NoError(t, svc.CreateIncident(ctx, userID, incident))
	assert.NotNil(t, incident.ResolvedAt)
}

func TestCreateIncident_InvalidCoordinate(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()

	deps.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateIncident(ctx, uuid.New(), &models.Incident{Latitude: 95, Longitude: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestCreateIncident_UserNotFound(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.users.EXPECT().GetByID(ctx, userID).Return(nil, fmt.Errorf("repository: %w", e.ErrNotFound))
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateIncident(ctx, userID, &models.Incident{Title: "x"})

	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestUpdateIncident_ResolveAndReopen(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	assignee := uuid.New()
	existing := &models.Incident{ID: incidentID, Title: "Старое имя", Status: models.IncidentStatusOpen}

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(2)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil).Times(2)
	deps.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(2)

	// Закрытие выставляет resolved_at
	updated, err := svc.UpdateIncident(ctx, &models.Incident{
		ID:         incidentID,
		Title:      "Обновленное имя",
		Status:     models.IncidentStatusResolved,
		AssignedTo: &assignee,
	})
	require.NoError(t, err)
	assert.Equal(t, "Обновленное имя", updated.Title)
	assert.Equal(t, &assignee, updated.AssignedTo)
	require.NotNil(t, updated.ResolvedAt)

	// Повторное открытие сбрасывает resolved_at, назначение сохраняется
	updated, err = svc.UpdateIncident(ctx, &models.Incident{ID: incidentID, Title: "Снова", Status: models.IncidentStatusOpen})
	require.NoError(t, err)
	assert.Nil(t, updated.ResolvedAt)
	assert.Equal(t, &assignee, updated.AssignedTo)
}

func TestUpdateIncident_KeepsResolvedAtBetweenTerminalStatuses(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	resolvedAt := time.Now().Add(-time.Hour).UTC()
	existing := &models.Incident{ID: incidentID, Status: models.IncidentStatusResolved, ResolvedAt: &resolvedAt}

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil)
	deps.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)

	updated, err := svc.UpdateIncident(ctx, &models.Incident{ID: incidentID, Status: models.IncidentStatusClosed})

	require.NoError(t, err)
	assert.Equal(t, &resolvedAt, updated.ResolvedAt)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("repository: %w", e.ErrNotFound))
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateIncident(ctx, &models.Incident{ID: incidentID})

	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}

func TestDeleteIncident_Success(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(&models.Incident{ID: incidentID}, nil)
	deps.repo.EXPECT().Delete(ctx, incidentID).Return(nil)
	deps.repo.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)

	require.NoError(t, svc.DeleteIncident(ctx, incidentID))
}

func TestListIncidents_ByStatus(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{{ID: uuid.New()}}

	deps.repo.EXPECT().ListIncidents(gomock.Any()).Times(0)
	deps.repo.EXPECT().FindByStatus(ctx, models.IncidentStatusOpen).Return(expected, nil)

	incidents, err := svc.ListIncidents(ctx, models.IncidentStatusOpen)

	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestNearbyIncidents_ExactFilterAfterBoundingBox(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	center := models.Coordinate{Latitude: 0, Longitude: 0}
	// ~1.1 км и ~2.2 км от центра
	near := &models.Incident{ID: uuid.New(), Latitude: 0.01, Longitude: 0}
	corner := &models.Incident{ID: uuid.New(), Latitude: 0.0141, Longitude: 0.0141}

	deps.repo.EXPECT().
		FindInBoundingBox(ctx, geo.BoundingBox(center, 1500)).
		Return([]*models.Incident{near, corner}, nil)

	incidents, err := svc.NearbyIncidents(ctx, center, 1500)

	require.NoError(t, err)
	assert.Equal(t, []*models.Incident{near}, incidents)
}

func TestNearbyIncidents_InvalidInput(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	deps.repo.EXPECT().FindInBoundingBox(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.NearbyIncidents(context.Background(), models.Coordinate{Latitude: 0, Longitude: 200}, 100)
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	_, err = svc.NearbyIncidents(context.Background(), models.Coordinate{}, -1)
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestLiveIncidents_ArticleFailureKeepsIncident(t *testing.T) {
	svc, deps := newTestIncidentService(t)
	ctx := context.Background()
	first := &models.Incident{ID: uuid.New()}
	second := &models.Incident{ID: uuid.New()}
	article := &models.Article{ID: uuid.New(), IncidentID: &first.ID}

	deps.repo.EXPECT().
		FindReportedSince(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) ([]*models.Incident, error) {
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), since, time.Minute)
			return []*models.Incident{first, second}, nil
		})
	deps.articles.EXPECT().FindByIncident(ctx, first.ID).Return([]*models.Article{article}, nil)
	deps.articles.EXPECT().FindByIncident(ctx, second.ID).Return(nil, errors.New("db timeout"))

	live, err := svc.LiveIncidents(ctx)

	require.NoError(t, err)
	require.Len(t, live, 2)
	assert.Equal(t, []*models.Article{article}, live[0].Articles)
	assert.Empty(t, live[1].Articles)
	assert.NotNil(t, live[1].Articles)
}
