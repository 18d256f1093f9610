package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"artisthub/internal/domain/models"
	"artisthub/internal/repository"
	"artisthub/internal/storage"
	"artisthub/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) CreateEvent(ctx context.Context, event models.Event) (uuid.UUID, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockEventRepository) EventBySlug(ctx context.Context, slug string) (models.Event, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockEventRepository) ListEvents(ctx context.Context, status models.EventStatus, now time.Time) ([]models.Event, error) {
	args := m.Called(ctx, status, now)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepository) ToggleJoin(ctx context.Context, eventID, userID uuid.UUID) (repository.JoinResult, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Get(0).(repository.JoinResult), args.Error(1)
}

func (m *MockEventRepository) Participants(ctx context.Context, eventID uuid.UUID) ([]models.User, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockEventRepository) ParticipantsCount(ctx context.Context, eventID uuid.UUID) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) IsJoined(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, artistsOnly bool) ([]models.User, error) {
	args := m.Called(ctx, artistsOnly)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestEventService_ToggleJoin(t *testing.T) {
	ctx := context.Background()

	eventID := uuid.New()
	userID := uuid.New()
	event := models.Event{ID: eventID, Title: "Art Fair", Slug: "art-fair"}

	tests := []struct {
		name       string
		mockSetup  func(repo *MockEventRepository)
		wantStatus string
		wantCount  int
		wantErr    error
	}{
		{
			name: "join with free capacity",
			mockSetup: func(repo *MockEventRepository) {
				repo.On("EventBySlug", ctx, "art-fair").Return(event, nil).Once()
				repo.On("ToggleJoin", ctx, eventID, userID).
					Return(repository.JoinResult{Joined: true, ParticipantsCount: 3}, nil).Once()
			},
			wantStatus: "joined",
			wantCount:  3,
		},
		{
			name: "leave",
			mockSetup: func(repo *MockEventRepository) {
				repo.On("EventBySlug", ctx, "art-fair").Return(event, nil).Once()
				repo.On("ToggleJoin", ctx, eventID, userID).
					Return(repository.JoinResult{Joined: false, ParticipantsCount: 2}, nil).Once()
			},
			wantStatus: "left",
			wantCount:  2,
		},
		{
			name: "join rejected when full",
			mockSetup: func(repo *MockEventRepository) {
				repo.On("EventBySlug", ctx, "art-fair").Return(event, nil).Once()
				repo.On("ToggleJoin", ctx, eventID, userID).
					Return(repository.JoinResult{}, storage.ErrEventFull).Once()
			},
			wantErr: ErrEventFull,
		},
		{
			name: "event not found",
			mockSetup: func(repo *MockEventRepository) {
				repo.On("EventBySlug", ctx, "art-fair").
					Return(models.Event{}, storage.ErrNotFound).Once()
			},
			wantErr: ErrEventNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEventRepository)
			tt.mockSetup(repo)

			service := NewEventService(slog.Default(), repo, nil)

			resp, err := service.ToggleJoin(ctx, "art-fair", userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, resp.Status)
				assert.Equal(t, tt.wantCount, resp.ParticipantsCount)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestEventService_ListEvents_StatusFilter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		filter     string
		wantStatus models.EventStatus
		wantErr    error
	}{
		{name: "no filter", filter: "", wantStatus: ""},
		{name: "upcoming", filter: "upcoming", wantStatus: models.EventStatusUpcoming},
		{name: "in progress", filter: "in_progress", wantStatus: models.EventStatusInProgress},
		{name: "completed", filter: "Completed", wantStatus: models.EventStatusCompleted},
		{name: "garbage", filter: "someday", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockEventRepository)
			if tt.wantErr == nil {
				repo.On("ListEvents", ctx, tt.wantStatus, now).
					Return([]models.Event{}, nil).Once()
			}

			service := NewEventService(slog.Default(), repo, nil)
			service.now = func() time.Time { return now }

			_, err := service.ListEvents(ctx, tt.filter, uuid.Nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestEventService_CreateEvent_RejectsInvertedDates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	service := NewEventService(slog.Default(), repo, nil)

	start := time.Now().Add(48 * time.Hour)

	_, err := service.CreateEvent(ctx, uuid.New(), dto.CreateEventRequest{
		Title:       "Art Fair",
		Description: "annual fair",
		Location:    "Main Hall",
		StartDate:   start,
		EndDate:     start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidDates)

	repo.AssertExpectations(t)
}

func TestEventService_UpdateEvent_NotOrganizer(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEventRepository)
	service := NewEventService(slog.Default(), repo, nil)

	event := models.Event{
		ID:        uuid.New(),
		CreatedBy: uuid.New(),
		Slug:      "art-fair",
	}

	repo.On("EventBySlug", ctx, "art-fair").Return(event, nil).Once()

	title := "New Title"
	_, err := service.UpdateEvent(ctx, "art-fair", uuid.New(), dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotOrganizer)

	repo.AssertExpectations(t)
}

func TestNormalizeCategories(t *testing.T) {
	got := normalizeCategories([]string{" painting ", "", "sculpture", "  "})
	assert.Equal(t, []string{"painting", "sculpture"}, got)
}
