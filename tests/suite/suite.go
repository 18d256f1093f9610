package suite

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"artisthub/internal/config"
	"artisthub/internal/domain/models"
	tokenservice "artisthub/internal/services/token_service"
	userservice "artisthub/internal/services/user_service"
	"artisthub/internal/storage"

	"github.com/google/uuid"
)

type Suite struct {
	*testing.T
	Cfg    *config.Config
	Users  *userservice.UserService
	Tokens *tokenservice.TokenService
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	cfg := config.MustLoadPath(configPath())

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Hour)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	users := userservice.NewUserService(log, newMemUserRepo())
	tokens := tokenservice.NewTokenService(log, newMemTokenRepo(), cfg.TokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
	})

	return ctx, &Suite{
		T:      t,
		Cfg:    cfg,
		Users:  users,
		Tokens: tokens,
	}
}

func configPath() string {
	const key = "CONFIG_PATH"

	if v := os.Getenv(key); v != "" {
		return v
	}

	return "../config/local.yaml"
}

// memUserRepo keeps users in a map so the auth flow can be exercised
// without a database.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]models.User)}
}

func (r *memUserRepo) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return uuid.Nil, storage.ErrUserExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *memUserRepo) UserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return models.User{}, storage.ErrUserNotFound
}

func (r *memUserRepo) UserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, storage.ErrUserNotFound
}

func (r *memUserRepo) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, storage.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) ListUsers(ctx context.Context, artistsOnly bool) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.User
	for _, u := range r.users {
		if !artistsOnly || u.IsArtist {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) UpdateUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return storage.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, userID)
	return nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]struct{})}
}

func (r *memTokenRepo) SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[userID+":"+token] = struct{}{}
	return nil
}

func (r *memTokenRepo) GetRefreshToken(ctx context.Context, userID, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tokens[userID+":"+token]
	return ok, nil
}

func (r *memTokenRepo) DeleteRefreshToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, userID+":"+token)
	return nil
}

func (r *memTokenRepo) DeleteAllUserTokens(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.tokens {
		if len(key) > len(userID) && key[:len(userID)+1] == userID+":" {
			delete(r.tokens, key)
		}
	}
	return nil
}
