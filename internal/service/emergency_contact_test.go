package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service/mocks"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryContactRepo - контакты в памяти. Как и бд, снимает прежний основной контакт
// вместе с записью; failWrite откатывает всю операцию.
type memoryContactRepo struct {
	mu        sync.Mutex
	contacts  map[uuid.UUID]*models.EmergencyContact
	failWrite error
}

func newMemoryContactRepo() *memoryContactRepo {
	return &memoryContactRepo{contacts: make(map[uuid.UUID]*models.EmergencyContact)}
}

// save пишет контакт вместе со снятием прежнего основного или не меняет ничего
func (r *memoryContactRepo) save(c *models.EmergencyContact) error {
	if r.failWrite != nil {
		return r.failWrite
	}
	if c.IsPrimary {
		for _, other := range r.contacts {
			if other.ID != c.ID && other.UserID == c.UserID {
				other.IsPrimary = false
			}
		}
	}
	stored := *c
	r.contacts[c.ID] = &stored
	return nil
}

func (r *memoryContactRepo) Create(_ context.Context, c *models.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return r.failWrite
	}
	c.ID = uuid.New()
	return r.save(c)
}

func (r *memoryContactRepo) GetByID(_ context.Context, id uuid.UUID) (*models.EmergencyContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, fmt.Errorf("repository: contact %s: %w", id, e.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *memoryContactRepo) Update(_ context.Context, c *models.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[c.ID]; !ok {
		return fmt.Errorf("repository: contact %s: %w", c.ID, e.ErrNotFound)
	}
	return r.save(c)
}

func (r *memoryContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contacts, id)
	return nil
}

func (r *memoryContactRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*models.EmergencyContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.EmergencyContact, 0)
	for _, c := range r.contacts {
		if c.UserID == userID {
			cp := *c
			result = append(result, &cp)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].IsPrimary && !result[j].IsPrimary })
	return result, nil
}

func newTestContactService(t *testing.T) (EmergencyContactService, *memoryContactRepo, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	repo := newMemoryContactRepo()
	return NewEmergencyContactService(repo, users, newTestLogger()), repo, users
}

func primaryCount(contacts []*models.EmergencyContact) int {
	n := 0
	for _, c := range contacts {
		if c.IsPrimary {
			n++
		}
	}
	return n
}

func TestCreateContact_NewPrimaryDemotesPrevious(t *testing.T) {
	svc, repo, users := newTestContactService(t)
	ctx := context.Background()
	userID := uuid.New()
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil).AnyTimes()

	first := &models.EmergencyContact{Name: "Mom", Phone: "+1", IsPrimary: true}
	second := &models.EmergencyContact{Name: "Dad", Phone: "+2", IsPrimary: true}
	require.NoError(t, svc.CreateContact(ctx, userID, first))
	require.NoError(t, svc.CreateContact(ctx, userID, second))

	contacts, err := svc.ListContacts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, 1, primaryCount(contacts))
	assert.Equal(t, second.ID, contacts[0].ID)
	assert.True(t, contacts[0].IsPrimary)

	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPrimary)
}

func TestCreateContact_PrimaryOfOtherUserUntouched(t *testing.T) {
	svc, repo, users := newTestContactService(t)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	users.EXPECT().GetByID(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.User, error) {
		return &models.User{ID: id}, nil
	}).AnyTimes()

	aliceContact := &models.EmergencyContact{Name: "A", Email: "a@b.com", IsPrimary: true}
	require.NoError(t, svc.CreateContact(ctx, alice, aliceContact))
	require.NoError(t, svc.CreateContact(ctx, bob, &models.EmergencyContact{Name: "B", Phone: "+2", IsPrimary: true}))

	stored, err := repo.GetByID(ctx, aliceContact.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPrimary)
}

func TestCreateContact_Validation(t *testing.T) {
	svc, _, users := newTestContactService(t)
	users.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateContact(context.Background(), uuid.New(), &models.EmergencyContact{Name: "No channel"})
	assert.ErrorIs(t, err, e.ErrInvalidInput)

	err = svc.CreateContact(context.Background(), uuid.New(), &models.EmergencyContact{Name: " ", Phone: "+1"})
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestUpdateContact_PromoteKeepsSinglePrimary(t *testing.T) {
	svc, _, users := newTestContactService(t)
	ctx := context.Background()
	userID := uuid.New()
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil).AnyTimes()

	primary := &models.EmergencyContact{Name: "Mom", Phone: "+1", IsPrimary: true}
	other := &models.EmergencyContact{Name: "Dad", Phone: "+2"}
	require.NoError(t, svc.CreateContact(ctx, userID, primary))
	require.NoError(t, svc.CreateContact(ctx, userID, other))

	updated, err := svc.UpdateContact(ctx, userID, &models.EmergencyContact{
		ID:        other.ID,
		Name:      "Dad",
		Phone:     "+2",
		IsPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)

	contacts, err := svc.ListContacts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, primaryCount(contacts))
	assert.Equal(t, other.ID, contacts[0].ID)
}

func TestUpdateContact_OtherUsersContactForbidden(t *testing.T) {
	svc, repo, users := newTestContactService(t)
	ctx := context.Background()
	owner, intruder := uuid.New(), uuid.New()
	users.EXPECT().GetByID(ctx, owner).Return(&models.User{ID: owner}, nil)

	contact := &models.EmergencyContact{Name: "Mom", Phone: "+1"}
	require.NoError(t, svc.CreateContact(ctx, owner, contact))

	_, err := svc.UpdateContact(ctx, intruder, &models.EmergencyContact{ID: contact.ID, Name: "Hacked", Phone: "+9"})
	assert.ErrorIs(t, err, e.ErrUnauthorized)

	err = svc.DeleteContact(ctx, intruder, contact.ID)
	assert.ErrorIs(t, err, e.ErrUnauthorized)

	stored, err := repo.GetByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mom", stored.Name)
}

func TestDeleteContact_NotFound(t *testing.T) {
	svc, _, _ := newTestContactService(t)

	err := svc.DeleteContact(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCreateContact_UniqueViolationBecomesConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEmergencyContactRepository(ctrl)
	users := mocks.NewMockUserRepository(ctrl)
	svc := NewEmergencyContactService(repo, users, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)
	// конкурентный запрос успел вставить свой основной контакт
	repo.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("repository: %w", e.ErrUniqueViolation))

	err := svc.CreateContact(ctx, userID, &models.EmergencyContact{Name: "Mom", Phone: "+1", IsPrimary: true})

	assert.ErrorIs(t, err, e.ErrConflict)
}

func TestCreateContact_FailedWriteKeepsPreviousPrimary(t *testing.T) {
	svc, repo, users := newTestContactService(t)
	ctx := context.Background()
	userID := uuid.New()
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil).AnyTimes()

	primary := &models.EmergencyContact{Name: "Mom", Phone: "+1", IsPrimary: true}
	require.NoError(t, svc.CreateContact(ctx, userID, primary))

	repo.failWrite = errors.New("connection reset")
	err := svc.CreateContact(ctx, userID, &models.EmergencyContact{Name: "Dad", Phone: "+2", IsPrimary: true})
	require.Error(t, err)

	repo.failWrite = nil
	contacts, err := svc.ListContacts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, primary.ID, contacts[0].ID)
	assert.True(t, contacts[0].IsPrimary)
}

func TestUpdateContact_FailedWriteKeepsPreviousPrimary(t *testing.T) {
	svc, repo, users := newTestContactService(t)
	ctx := context.Background()
	userID := uuid.New()
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil).AnyTimes()

	primary := &models.EmergencyContact{Name: "Mom", Phone: "+1", IsPrimary: true}
	other := &models.EmergencyContact{Name: "Dad", Phone: "+2"}
	require.NoError(t, svc.CreateContact(ctx, userID, primary))
	require.NoError(t, svc.CreateContact(ctx, userID, other))

	repo.failWrite = errors.New("connection reset")
	_, err := svc.UpdateContact(ctx, userID, &models.EmergencyContact{ID: other.ID, Name: "Dad", Phone: "+2", IsPrimary: true})
	require.Error(t, err)

	stored, err := repo.GetByID(ctx, primary.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPrimary)
	stored, err = repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPrimary)
}
