package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"artisthub/internal/domain/models"
	"artisthub/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var userColumns = []string{
	"id", "username", "email", "password", "first_name", "last_name",
	"is_artist", "bio", "profile_picture", "website", "social_media", "created_at",
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	const op = "repository.user_repository.SaveUser"

	social, err := json.Marshal(user.SocialMedia)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Insert("users").
		Columns(
			"username",
			"email",
			"password",
			"first_name",
			"last_name",
			"is_artist",
			"bio",
			"profile_picture",
			"website",
			"social_media",
		).
		Values(
			user.Username,
			user.Email,
			user.Password,
			user.FirstName,
			user.LastName,
			user.IsArtist,
			user.Bio,
			user.ProfilePicture,
			user.Website,
			social,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if uniqueViolation(err, "") {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UserByIdentifier looks up a user by username or email, for login.
func (r *UserRepo) UserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	const op = "repository.user_repository.UserByIdentifier"

	return r.userWhere(ctx, op, sq.Or{
		sq.Eq{"username": identifier},
		sq.Eq{"email": identifier},
	})
}

func (r *UserRepo) UserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "repository.user_repository.UserByUsername"

	return r.userWhere(ctx, op, sq.Eq{"username": username})
}

func (r *UserRepo) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "repository.user_repository.GetUserById"

	return r.userWhere(ctx, op, sq.Eq{"id": userID})
}

func (r *UserRepo) userWhere(ctx context.Context, op string, pred interface{}) (models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (r *UserRepo) ListUsers(ctx context.Context, artistsOnly bool) ([]models.User, error) {
	const op = "repository.user_repository.ListUsers"

	builder := r.sb.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC")

	if artistsOnly {
		builder = builder.Where(sq.Eq{"is_artist": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *UserRepo) UpdateUser(ctx context.Context, user models.User) error {
	const op = "repository.user_repository.UpdateUser"

	social, err := json.Marshal(user.SocialMedia)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// username is the immutable lookup identifier and is never updated
	query, args, err := r.sb.Update("users").
		Set("email", user.Email).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("is_artist", user.IsArtist).
		Set("bio", user.Bio).
		Set("profile_picture", user.ProfilePicture).
		Set("website", user.Website).
		Set("social_media", social).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	const op = "repository.user_repository.DeleteUser"

	query, args, err := r.sb.Delete("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var (
		user   models.User
		social []byte
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.IsArtist,
		&user.Bio,
		&user.ProfilePicture,
		&user.Website,
		&social,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if len(social) > 0 {
		if err := json.Unmarshal(social, &user.SocialMedia); err != nil {
			return models.User{}, err
		}
	}

	return user, nil
}
