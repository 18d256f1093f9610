package repository

import (
	"context"
	"errors"
	"fmt"

	"artisthub/internal/domain/models"
	"artisthub/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type CommentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CommentRepo) CreateComment(ctx context.Context, comment models.Comment) (int64, error) {
	const op = "repository.comment_repository.CreateComment"

	query, args, err := r.sb.Insert("comments").
		Columns("user_id", "artwork_id", "content").
		Values(comment.UserID, comment.ArtworkID, comment.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// CommentsByArtwork returns comments newest first, with the author's
// username joined in for display.
func (r *CommentRepo) CommentsByArtwork(ctx context.Context, artworkID uuid.UUID) ([]models.Comment, error) {
	const op = "repository.comment_repository.CommentsByArtwork"

	query, args, err := r.sb.Select(
		"c.id", "c.user_id", "u.username", "c.artwork_id", "c.content", "c.created_at", "c.updated_at",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.artwork_id": artworkID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.UserID,
			&comment.Username,
			&comment.ArtworkID,
			&comment.Content,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

func (r *CommentRepo) CommentByID(ctx context.Context, id int64) (models.Comment, error) {
	const op = "repository.comment_repository.CommentByID"

	query, args, err := r.sb.Select(
		"id", "user_id", "artwork_id", "content", "created_at", "updated_at",
	).
		From("comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var comment models.Comment
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&comment.ID,
		&comment.UserID,
		&comment.ArtworkID,
		&comment.Content,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Comment{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}

func (r *CommentRepo) UpdateComment(ctx context.Context, id int64, content string) error {
	const op = "repository.comment_repository.UpdateComment"

	query, args, err := r.sb.Update("comments").
		Set("content", content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *CommentRepo) DeleteComment(ctx context.Context, id int64) error {
	const op = "repository.comment_repository.DeleteComment"

	query, args, err := r.sb.Delete("comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
