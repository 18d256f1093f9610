package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"artisthub/internal/domain/models"
	jwtlib "artisthub/internal/lib/jwt"
	"artisthub/internal/lib/logger/sl"
	"artisthub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
	ErrTokenNotInStorage  = errors.New("token not found in storage")
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "services.token_service.GenerateTokens"

	accessToken, err := jwtlib.NewToken(user, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := jwtlib.NewToken(user, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, s.refreshTTL); err != nil {
		s.log.Error("failed to save refresh token", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens rotates the pair: the presented refresh token is removed
// from storage and a new pair is issued.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "services.token_service.RefreshTokens"

	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTokenClaims)
	}

	userID, ok := claims["uid"].(string)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTokenClaims)
	}

	exists, err := s.repo.GetRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenNotInStorage)
	}

	if err := s.repo.DeleteRefreshToken(ctx, userID, refreshToken); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTokenClaims)
	}

	user := models.User{ID: id}
	if username, ok := claims["username"].(string); ok {
		user.Username = username
	}

	return s.GenerateTokens(ctx, user)
}

// RevokeAll drops every refresh token the user holds.
func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	const op = "services.token_service.RevokeAll"

	if err := s.repo.DeleteAllUserTokens(ctx, userID.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
