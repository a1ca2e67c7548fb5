package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/notify"
	"github.com/shenikar/travel_safety/internal/service/mocks"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sosDeps struct {
	repo     *mocks.MockSosEventRepository
	users    *mocks.MockUserRepository
	contacts *mocks.MockEmergencyContactRepository
	notifier *mocks.MockNotifier
}

func newTestSosService(t *testing.T) (SosService, sosDeps) {
	ctrl := gomock.NewController(t)
	deps := sosDeps{
		repo:     mocks.NewMockSosEventRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		contacts: mocks.NewMockEmergencyContactRepository(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	return NewSosService(deps.repo, deps.users, deps.contacts, deps.notifier, newTestLogger()), deps
}

// recordingEmail и recordingSMS запоминают отправленное
type recordingEmail struct {
	mu   sync.Mutex
	sent [][]string
}

func (r *recordingEmail) Send(_ context.Context, to []string, _, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, to)
	return nil
}

type recordingSMS struct {
	mu     sync.Mutex
	phones []string
	err    error
}

func (r *recordingSMS) Send(_ context.Context, phone, _ string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phones = append(r.phones, phone)
	return "ok", r.err
}

func TestCreateSosEvent_NotifiesEveryContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSosEventRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	contacts := mocks.NewMockEmergencyContactRepository(ctrl)

	email := &recordingEmail{}
	sms := &recordingSMS{}
	logger := newTestLogger()
	dispatcher := notify.NewDispatcher(email, sms, nil, time.Second, nil, logger)
	svc := NewSosService(repo, users, contacts, dispatcher, logger)

	ctx := context.Background()
	user := &models.User{ID: uuid.New(), FullName: "Ann Traveler"}
	users.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.SosEvent) error {
			ev.ID = uuid.New()
			return nil
		})
	contacts.EXPECT().FindByUser(ctx, user.ID).Return([]*models.EmergencyContact{
		{ID: uuid.New(), Name: "Phone only", Phone: "+1555"},
		{ID: uuid.New(), Name: "Email only", Email: "a@b.com"},
	}, nil)

	event, err := svc.CreateSosEvent(ctx, user.ID, models.Coordinate{Latitude: 12.97, Longitude: 77.59}, "help")

	require.NoError(t, err)
	assert.Equal(t, models.SosStatusPending, event.Status)
	assert.Equal(t, user.ID, event.UserID)
	assert.False(t, event.IsOffline)
	assert.Equal(t, []string{"+1555"}, sms.phones)
	assert.Equal(t, [][]string{{"a@b.com"}}, email.sent)
}

func TestCreateSosEvent_SMSFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSosEventRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	contacts := mocks.NewMockEmergencyContactRepository(ctrl)

	sms := &recordingSMS{err: errors.New("provider down")}
	logger := newTestLogger()
	dispatcher := notify.NewDispatcher(&recordingEmail{}, sms, nil, time.Second, nil, logger)
	svc := NewSosService(repo, users, contacts, dispatcher, logger)

	ctx := context.Background()
	userID := uuid.New()
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	contacts.EXPECT().FindByUser(ctx, userID).Return([]*models.EmergencyContact{
		{Phone: "+1"}, {Phone: "+2"},
	}, nil)

	_, err := svc.CreateSosEvent(ctx, userID, models.Coordinate{}, "")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"+1", "+2"}, sms.phones)
}

func TestCreateSosEvent_NoContactsSkipsNotify(t *testing.T) {
	svc, deps := newTestSosService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.contacts.EXPECT().FindByUser(ctx, userID).Return([]*models.EmergencyContact{}, nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	event, err := svc.CreateSosEvent(ctx, userID, models.Coordinate{Latitude: 1, Longitude: 1}, "")

	require.NoError(t, err)
	assert.Equal(t, models.SosStatusPending, event.Status)
}

func TestCreateSosEvent_ContactLookupFailureStillSucceeds(t *testing.T) {
	svc, deps := newTestSosService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.contacts.EXPECT().FindByUser(ctx, userID).Return(nil, errors.New("db timeout"))
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateSosEvent(ctx, userID, models.Coordinate{}, "")

	require.NoError(t, err)
}

func TestCreateSosEvent_UserNotFoundPersistsNothing(t *testing.T) {
	svc, deps := newTestSosService(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.users.EXPECT().GetByID(ctx, userID).Return(nil, fmt.Errorf("repository: %w", e.ErrNotFound))
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	event, err := svc.CreateSosEvent(ctx, userID, models.Coordinate{}, "help")

	assert.Nil(t, event)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCreateSosEvent_InvalidCoordinate(t *testing.T) {
	svc, deps := newTestSosService(t)
	deps.users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateSosEvent(context.Background(), uuid.New(), models.Coordinate{Latitude: -91}, "")

	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestCreateOfflineAlert_DefaultsAndNotifies(t *testing.T) {
	svc, deps := newTestSosService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}
	contacts := []*models.EmergencyContact{{Phone: "+1555"}}

	deps.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.contacts.EXPECT().FindByUser(ctx, user.ID).Return(contacts, nil)
	deps.notifier.EXPECT().Notify(ctx, user, gomock.Any(), contacts).Times(1)

	event, err := svc.CreateOfflineAlert(ctx, user.ID, models.Coordinate{Latitude: 10, Longitude: 10}, "")

	require.NoError(t, err)
	assert.True(t, event.IsOffline)
	assert.Equal(t, models.SosStatusPending, event.Status)
	assert.Equal(t, "Entering no-network area", event.Message)
	require.NotNil(t, event.LastKnownLocationTime)
	assert.Equal(t, event.Timestamp, *event.LastKnownLocationTime)
}

func TestMarkOfflineRecovered_AppendsResolvedRecord(t *testing.T) {
	svc, deps := newTestSosService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New()}
	contacts := []*models.EmergencyContact{{Email: "a@b.com"}}

	deps.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)
	deps.contacts.EXPECT().FindByUser(ctx, user.ID).Return(contacts, nil)
	deps.notifier.EXPECT().Notify(ctx, user, gomock.Any(), contacts).Times(1)

	event, err := svc.MarkOfflineRecovered(ctx, user.ID, models.Coordinate{Latitude: 10, Longitude: 10})

	require.NoError(t, err)
	assert.Equal(t, models.SosStatusResolved, event.Status)
	assert.False(t, event.IsOffline)
	assert.NotNil(t, event.RecoveredAt)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    models.SosStatus
		to      models.SosStatus
		allowed bool
	}{
		{from: models.SosStatusPending, to: models.SosStatusResolved, allowed: true},
		{from: models.SosStatusPending, to: models.SosStatusCancelled, allowed: true},
		{from: models.SosStatusPending, to: models.SosStatusPending, allowed: false},
		{from: models.SosStatusResolved, to: models.SosStatusCancelled, allowed: false},
		{from: models.SosStatusResolved, to: models.SosStatusPending, allowed: false},
		{from: models.SosStatusCancelled, to: models.SosStatusResolved, allowed: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			svc, deps := newTestSosService(t)
			ctx := context.Background()
			id := uuid.New()
			stored := &models.SosEvent{ID: id, Status: tt.from}

			deps.repo.EXPECT().GetByID(ctx, id).Return(stored, nil)
			deps.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			if tt.allowed {
				deps.repo.EXPECT().UpdateStatus(ctx, stored).Return(nil)
			}

			event, err := svc.UpdateStatus(ctx, id, tt.to)

			if !tt.allowed {
				assert.ErrorIs(t, err, e.ErrInvalidTransition)
				assert.Equal(t, tt.from, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, event.Status)
			assert.Equal(t, tt.to == models.SosStatusResolved, event.ResolvedAt != nil)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, deps := newTestSosService(t)
	id := uuid.New()
	deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, fmt.Errorf("repository: %w", e.ErrNotFound))

	_, err := svc.UpdateStatus(context.Background(), id, models.SosStatusResolved)

	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestListRecent_ClampsLimit(t *testing.T) {
	svc, deps := newTestSosService(t)
	ctx := context.Background()

	deps.repo.EXPECT().ListRecent(ctx, 20).Return([]*models.SosEvent{}, nil).Times(3)
	deps.repo.EXPECT().ListRecent(ctx, 100).Return([]*models.SosEvent{}, nil)

	for _, limit := range []int{0, -5, 101, 100} {
		_, err := svc.ListRecent(ctx, limit)
		require.NoError(t, err)
	}
}

func TestListUserEvents_UserNotFound(t *testing.T) {
	svc, deps := newTestSosService(t)
	userID := uuid.New()
	deps.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, fmt.Errorf("repository: %w", e.ErrNotFound))
	deps.repo.EXPECT().FindByUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ListUserEvents(context.Background(), userID)

	assert.ErrorIs(t, err, e.ErrNotFound)
}
