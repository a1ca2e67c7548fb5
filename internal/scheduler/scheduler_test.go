package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return New(logger, prometheus.NewRegistry(), time.Second)
}

func TestScheduler_RunsJobUntilStopped(t *testing.T) {
	s := newTestScheduler(t)
	ran := make(chan struct{}, 10)

	require.NoError(t, s.Add("tick", Every(time.Second), func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}))
	s.Start()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.GreaterOrEqual(t, testutil.ToFloat64(s.runs.WithLabelValues("tick", "ok")), 1.0)
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := newTestScheduler(t)
	err := s.Add("broken", "not a schedule", func(context.Context) error { return nil })
	require.Error(t, err)
	require.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_FailedRunIsCounted(t *testing.T) {
	s := newTestScheduler(t)

	s.run("failing", func(context.Context) error { return errors.New("boom") })

	assert.Equal(t, 1.0, testutil.ToFloat64(s.runs.WithLabelValues("failing", "failed")))
	require.NoError(t, s.Stop(context.Background()))
}

func TestEvery(t *testing.T) {
	assert.Equal(t, "@every 15m0s", Every(15*time.Minute))
}

func TestNewsIngestionJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	articles := mocks.NewMockArticleService(ctrl)
	articles.EXPECT().FetchAndMatch(gomock.Any()).Return([]*models.Article{}, nil)
	articles.EXPECT().FetchAndMatch(gomock.Any()).Return(nil, errors.New("news api down"))

	job := NewsIngestionJob(articles)
	require.NoError(t, job(context.Background()))
	require.Error(t, job(context.Background()))
}

func TestZoneRecountJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	zones := mocks.NewMockSafetyZoneService(ctrl)
	zones.EXPECT().RecountIncidents(gomock.Any()).Return(3, nil)

	require.NoError(t, ZoneRecountJob(zones)(context.Background()))
}
