//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/travel_safety/internal/geo"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	if err := applyMigrations(dsn); err != nil {
		fmt.Println("migrations:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func applyMigrations(dsn string) error {
	m, err := migrate.New("file://../../migrations", strings.Replace(dsn, "postgres://", "pgx5://", 1))
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE emergency_contacts, sos_events, articles, safety_zones, incidents, users`)
	require.NoError(t, err)
}

func seedUser(t *testing.T) *models.User {
	t.Helper()
	u := &models.User{FullName: "Asha Rao", Email: uuid.NewString() + "@example.com", PhoneNumber: "+910000"}
	err := testPool.QueryRow(context.Background(),
		`INSERT INTO users (full_name, email, phone_number) VALUES ($1, $2, $3) RETURNING id`,
		u.FullName, u.Email, u.PhoneNumber,
	).Scan(&u.ID)
	require.NoError(t, err)
	return u
}

func seedIncident(t *testing.T, repo *IncidentRepository, reporter uuid.UUID, lat, lng float64) *models.Incident {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	inc := &models.Incident{
		Title:      "Bag snatching",
		Latitude:   lat,
		Longitude:  lng,
		Type:       models.IncidentTypeTheft,
		Severity:   models.SeverityMedium,
		Status:     models.IncidentStatusOpen,
		ReportedBy: reporter,
		ReportedAt: now,
		UpdatedAt:  now,
	}
	require.NoError(t, repo.Create(context.Background(), inc))
	return inc
}

func TestIncidentRepository_CreateGetAndBox(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	user := seedUser(t)
	repo := NewIncidentRepository(testPool, nil, time.Minute).(*IncidentRepository)

	near := seedIncident(t, repo, user.ID, 12.9716, 77.5946)
	seedIncident(t, repo, user.ID, 13.9716, 77.5946)

	got, err := repo.GetByID(ctx, near.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.9716, got.Latitude, 1e-9)
	assert.InDelta(t, 77.5946, got.Longitude, 1e-9)
	assert.Equal(t, models.IncidentTypeTheft, got.Type)

	center := models.Coordinate{Latitude: 12.97, Longitude: 77.59}
	found, err := repo.FindInBoundingBox(ctx, geo.BoundingBox(center, 5000))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, near.ID, found[0].ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestIncidentRepository_BoxAcrossAntimeridian(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	user := seedUser(t)
	repo := NewIncidentRepository(testPool, nil, time.Minute).(*IncidentRepository)

	east := seedIncident(t, repo, user.ID, 0, 179.999)
	west := seedIncident(t, repo, user.ID, 0, -179.999)
	seedIncident(t, repo, user.ID, 0, 0)

	box := geo.BoundingBox(models.Coordinate{Latitude: 0, Longitude: 180}, 1000)
	require.True(t, box.CrossesAntimeridian)

	found, err := repo.FindInBoundingBox(ctx, box)
	require.NoError(t, err)
	ids := []uuid.UUID{}
	for _, f := range found {
		ids = append(ids, f.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{east.ID, west.ID}, ids)
}

func TestArticleRepository_CreateIfAbsentDeduplicates(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	user := seedUser(t)
	incidents := NewIncidentRepository(testPool, nil, time.Minute).(*IncidentRepository)
	inc := seedIncident(t, incidents, user.ID, 1, 1)
	repo := NewArticleRepository(testPool)

	newArticle := func() *models.Article {
		id := inc.ID
		now := time.Now().UTC()
		return &models.Article{
			Title: "Theft in market", URL: "https://news.example/1", Category: models.ArticleCategoryNews,
			PublishedAt: now, IncidentID: &id, CreatedAt: now, UpdatedAt: now,
		}
	}

	created, err := repo.CreateIfAbsent(ctx, newArticle())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, newArticle())
	require.NoError(t, err)
	assert.False(t, created)

	exists, err := repo.ExistsByURL(ctx, "https://news.example/1")
	require.NoError(t, err)
	assert.True(t, exists)

	linked, err := repo.FindByIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.Len(t, linked, 1)
}

func TestEmergencyContactRepository_SinglePrimary(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	user := seedUser(t)
	repo := NewEmergencyContactRepository(testPool)

	now := time.Now().UTC()
	first := &models.EmergencyContact{UserID: user.ID, Name: "A", Phone: "+1", IsPrimary: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.EmergencyContact{UserID: user.ID, Name: "B", Email: "b@example.com", IsPrimary: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, second))

	contacts, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, second.ID, contacts[0].ID)
	assert.True(t, contacts[0].IsPrimary)
	assert.False(t, contacts[1].IsPrimary)

	first.IsPrimary = true
	require.NoError(t, repo.Update(ctx, first))
	contacts, err = repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, contacts[0].ID)
	assert.False(t, contacts[1].IsPrimary)
}

func TestEmergencyContactRepository_FailedCreateRollsBackDemotion(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	user := seedUser(t)
	repo := NewEmergencyContactRepository(testPool)

	now := time.Now().UTC()
	primary := &models.EmergencyContact{UserID: user.ID, Name: "A", Phone: "+1", IsPrimary: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, primary))

	// phone длиннее VARCHAR(32): insert падает уже после снятия флага
	broken := &models.EmergencyContact{UserID: user.ID, Name: "B", Phone: strings.Repeat("9", 40), IsPrimary: true, CreatedAt: now, UpdatedAt: now}
	require.Error(t, repo.Create(ctx, broken))

	stored, err := repo.GetByID(ctx, primary.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPrimary)
}

func TestSosEventRepository_History(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	user := seedUser(t)
	repo := NewSosEventRepository(testPool)

	older := &models.SosEvent{UserID: user.ID, Latitude: 1, Longitude: 2, Status: models.SosStatusPending, Timestamp: time.Now().UTC().Add(-time.Hour)}
	newer := &models.SosEvent{UserID: user.ID, Latitude: 1, Longitude: 2, Status: models.SosStatusPending, Timestamp: time.Now().UTC(), IsOffline: true}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	resolvedAt := time.Now().UTC()
	older.Status = models.SosStatusResolved
	older.ResolvedAt = &resolvedAt
	require.NoError(t, repo.UpdateStatus(ctx, older))

	history, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)
	assert.True(t, history[0].IsOffline)

	pending, err := repo.FindByStatus(ctx, models.SosStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, newer.ID, pending[0].ID)

	recent, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestUserRepository_NotFound(t *testing.T) {
	truncateAll(t)
	_, err := NewUserRepository(testPool).GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}
