package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artisthub/internal/domain/models"
	eventservice "artisthub/internal/services/event_service"
	userservice "artisthub/internal/services/user_service"
	transport "artisthub/internal/transport/http"
	"artisthub/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, input dto.UserRegisterInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, identifier, password string) (models.User, error) {
	args := m.Called(ctx, identifier, password)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) UserByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) ListArtists(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (models.User, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(models.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockTokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, createdBy uuid.UUID, req dto.CreateEventRequest) (dto.EventResponse, error) {
	args := m.Called(ctx, createdBy, req)
	return args.Get(0).(dto.EventResponse), args.Error(1)
}

func (m *MockEventService) EventBySlug(ctx context.Context, slug string, viewerID uuid.UUID) (dto.EventResponse, error) {
	args := m.Called(ctx, slug, viewerID)
	return args.Get(0).(dto.EventResponse), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, statusFilter string, viewerID uuid.UUID) ([]dto.EventResponse, error) {
	args := m.Called(ctx, statusFilter, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EventResponse), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, slug string, userID uuid.UUID, req dto.UpdateEventRequest) (dto.EventResponse, error) {
	args := m.Called(ctx, slug, userID, req)
	return args.Get(0).(dto.EventResponse), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, slug string, userID uuid.UUID) error {
	args := m.Called(ctx, slug, userID)
	return args.Error(0)
}

func (m *MockEventService) ToggleJoin(ctx context.Context, slug string, userID uuid.UUID) (dto.JoinEventResponse, error) {
	args := m.Called(ctx, slug, userID)
	return args.Get(0).(dto.JoinEventResponse), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	testUUID := uuid.New()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(users *MockUserService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"username":"picasso","email":"pablo@example.com","password":"guernica1937","name":"Pablo Picasso","is_artist":true}`,
			mockSetup: func(users *MockUserService) {
				users.On("Register", mock.Anything, mock.AnythingOfType("dto.UserRegisterInput")).
					Return(testUUID, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "conflict on duplicate",
			body: `{"username":"picasso","email":"pablo@example.com","password":"guernica1937"}`,
			mockSetup: func(users *MockUserService) {
				users.On("Register", mock.Anything, mock.AnythingOfType("dto.UserRegisterInput")).
					Return(uuid.Nil, userservice.ErrUserExists).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "short password rejected",
			body:       `{"username":"picasso","email":"pablo@example.com","password":"short"}`,
			mockSetup:  func(users *MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			mockSetup:  func(users *MockUserService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserService)
			tt.mockSetup(users)

			router := transport.NewRouter(slog.Default(), users, nil, nil, nil, nil, nil, nil, nil)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, router.Register(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			users.AssertExpectations(t)
		})
	}
}

func TestTokenHandler(t *testing.T) {
	user := models.User{ID: uuid.New(), Username: "picasso"}
	pair := &models.TokenPair{UserID: user.ID, AccessToken: "access", RefreshToken: "refresh"}

	tests := []struct {
		name       string
		body       string
		mockSetup  func(users *MockUserService, tokens *MockTokenService)
		wantStatus int
	}{
		{
			name: "token pair issued",
			body: `{"identifier":"picasso","password":"guernica1937"}`,
			mockSetup: func(users *MockUserService, tokens *MockTokenService) {
				users.On("Authenticate", mock.Anything, "picasso", "guernica1937").
					Return(user, nil).Once()
				tokens.On("GenerateTokens", mock.Anything, user).Return(pair, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: `{"identifier":"picasso","password":"wrong-password"}`,
			mockSetup: func(users *MockUserService, tokens *MockTokenService) {
				users.On("Authenticate", mock.Anything, "picasso", "wrong-password").
					Return(models.User{}, userservice.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserService)
			tokens := new(MockTokenService)
			tt.mockSetup(users, tokens)

			router := transport.NewRouter(slog.Default(), users, tokens, nil, nil, nil, nil, nil, nil)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/token", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, router.Token(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var got models.TokenPair
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "access", got.AccessToken)
				assert.Equal(t, "refresh", got.RefreshToken)
			}

			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestJoinEventHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(events *MockEventService)
		wantStatus int
		wantBody   map[string]interface{}
	}{
		{
			name: "joined",
			mockSetup: func(events *MockEventService) {
				events.On("ToggleJoin", mock.Anything, "art-fair", mock.Anything).
					Return(dto.JoinEventResponse{
						Status:            "joined",
						Message:           "You have joined the event",
						ParticipantsCount: 5,
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: map[string]interface{}{
				"status":             "joined",
				"participants_count": float64(5),
			},
		},
		{
			name: "event full",
			mockSetup: func(events *MockEventService) {
				events.On("ToggleJoin", mock.Anything, "art-fair", mock.Anything).
					Return(dto.JoinEventResponse{}, eventservice.ErrEventFull).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody: map[string]interface{}{
				"status":  "error",
				"message": "Event is full",
			},
		},
		{
			name: "event not found",
			mockSetup: func(events *MockEventService) {
				events.On("ToggleJoin", mock.Anything, "art-fair", mock.Anything).
					Return(dto.JoinEventResponse{}, eventservice.ErrEventNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := new(MockEventService)
			tt.mockSetup(events)

			router := transport.NewRouter(slog.Default(), nil, nil, nil, nil, nil, events, nil, nil)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/events/art-fair/join", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("slug")
			c.SetParamValues("art-fair")

			require.NoError(t, router.JoinEvent(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			for key, want := range tt.wantBody {
				var got map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, want, got[key])
			}

			events.AssertExpectations(t)
		})
	}
}

func TestListEventsHandler_RejectsUnknownStatus(t *testing.T) {
	events := new(MockEventService)
	events.On("ListEvents", mock.Anything, "someday", mock.Anything).
		Return(nil, eventservice.ErrInvalidStatus).Once()

	router := transport.NewRouter(slog.Default(), nil, nil, nil, nil, nil, events, nil, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?status=someday", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, router.ListEvents(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	events.AssertExpectations(t)
}

func TestGetEventHandler_NotFound(t *testing.T) {
	events := new(MockEventService)
	events.On("EventBySlug", mock.Anything, "missing", mock.Anything).
		Return(dto.EventResponse{}, eventservice.ErrEventNotFound).Once()

	router := transport.NewRouter(slog.Default(), nil, nil, nil, nil, nil, events, nil, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	require.NoError(t, router.GetEvent(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	events.AssertExpectations(t)
}
