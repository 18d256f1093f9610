package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artisthub/internal/domain/models"
	"artisthub/internal/lib/logger/sl"
	"artisthub/internal/repository"
	"artisthub/internal/storage"
	"artisthub/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserService {
	return &UserService{
		log:  log,
		repo: repo,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.UserRegisterInput) (uuid.UUID, error) {
	const op = "services.user_service.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", input.Username),
	)

	log.Info("registering user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	user := input.ToDomain(passHash)

	id, err := s.repo.SaveUser(ctx, *user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists", sl.Err(err))

			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		log.Error("failed to save user", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("id", id.String()))

	return id, nil
}

// Authenticate verifies the credentials and returns the matching user.
// The identifier may be either a username or an email address.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (models.User, error) {
	const op = "services.user_service.Authenticate"

	log := s.log.With(
		slog.String("op", op),
		slog.String("identifier", identifier),
	)

	log.Info("attempting to login user")

	user, err := s.repo.UserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))

			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("user logged in")

	return user, nil
}

func (s *UserService) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "services.user_service.UserByUsername"

	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	const op = "services.user_service.UserByID"

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ListArtists returns every user flagged as an artist.
func (s *UserService) ListArtists(ctx context.Context) ([]models.User, error) {
	const op = "services.user_service.ListArtists"

	users, err := s.repo.ListUsers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "services.user_service.ListUsers"

	users, err := s.repo.ListUsers(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// UpdateProfile applies the non-nil fields of req to the user's profile.
// Username and email are not editable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (models.User, error) {
	const op = "services.user_service.UpdateProfile"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	user, err := s.repo.GetUserById(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Website != nil {
		user.Website = *req.Website
	}
	if req.SocialMedia != nil {
		user.SocialMedia = req.SocialMedia
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		log.Error("failed to update user", sl.Err(err))

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("profile updated")

	return user, nil
}

// DeleteAccount removes the user; all owned artworks, likes, comments,
// ratings and event memberships go with it through the schema cascades.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	const op = "services.user_service.DeleteAccount"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		log.Error("failed to delete user", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("account deleted")

	return nil
}
