package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"artisthub/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	args := m.Called(ctx, userID, token, exp)
	return args.Error(0)
}

func (m *MockTokenRepository) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	args := m.Called(ctx, userID, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllUserTokens(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestService(repo *MockTokenRepository) *TokenService {
	return NewTokenService(slog.Default(), repo, testSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestTokenService_GenerateTokens(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	user := models.User{ID: uuid.New(), Username: "picasso"}

	repo.On("SaveRefreshToken", ctx, user.ID.String(), mock.AnythingOfType("string"), 7*24*time.Hour).
		Return(nil).Once()

	pair, err := service.GenerateTokens(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	repo.AssertExpectations(t)
}

func TestTokenService_RefreshTokens_RotatesPair(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	user := models.User{ID: uuid.New(), Username: "picasso"}

	repo.On("SaveRefreshToken", ctx, user.ID.String(), mock.AnythingOfType("string"), 7*24*time.Hour).
		Return(nil).Twice()

	pair, err := service.GenerateTokens(ctx, user)
	require.NoError(t, err)

	repo.On("GetRefreshToken", ctx, user.ID.String(), pair.RefreshToken).Return(true, nil).Once()
	repo.On("DeleteRefreshToken", ctx, user.ID.String(), pair.RefreshToken).Return(nil).Once()

	rotated, err := service.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, rotated.UserID)
	assert.NotEmpty(t, rotated.AccessToken)

	repo.AssertExpectations(t)
}

func TestTokenService_RefreshTokens_RejectsUnknownToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	user := models.User{ID: uuid.New(), Username: "picasso"}

	repo.On("SaveRefreshToken", ctx, user.ID.String(), mock.AnythingOfType("string"), 7*24*time.Hour).
		Return(nil).Once()

	pair, err := service.GenerateTokens(ctx, user)
	require.NoError(t, err)

	// The token verifies but is absent from storage, e.g. already rotated.
	repo.On("GetRefreshToken", ctx, user.ID.String(), pair.RefreshToken).Return(false, nil).Once()

	_, err = service.RefreshTokens(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenNotInStorage)

	repo.AssertExpectations(t)
}

func TestTokenService_RefreshTokens_RejectsGarbage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTokenRepository)
	service := newTestService(repo)

	_, err := service.RefreshTokens(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	repo.AssertExpectations(t)
}
