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

type ArtworkRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewArtworkRepository(db *pgxpool.Pool) *ArtworkRepo {
	return &ArtworkRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var artworkColumns = []string{
	"id", "title", "artist_id", "gallery_id", "image", "description",
	"status", "slug", "views", "created_at", "updated_at",
}

func (r *ArtworkRepo) CreateArtwork(ctx context.Context, artwork models.Artwork) (uuid.UUID, error) {
	const op = "repository.artwork_repository.CreateArtwork"

	query, args, err := r.sb.Insert("artworks").
		Columns("title", "artist_id", "gallery_id", "image", "description", "status", "slug").
		Values(
			artwork.Title,
			artwork.ArtistID,
			artwork.GalleryID,
			artwork.Image,
			artwork.Description,
			artwork.Status,
			artwork.Slug,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if uniqueViolation(err, "artworks_slug_key") {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ArtworkRepo) ArtworkBySlug(ctx context.Context, slug string) (models.Artwork, error) {
	const op = "repository.artwork_repository.ArtworkBySlug"

	query, args, err := r.sb.Select(artworkColumns...).
		From("artworks").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	artwork, err := scanArtwork(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Artwork{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return artwork, nil
}

func (r *ArtworkRepo) ListArtworks(ctx context.Context, filter ArtworkFilter) ([]models.Artwork, error) {
	const op = "repository.artwork_repository.ListArtworks"

	builder := r.sb.Select(prefixed("a", artworkColumns)...).
		From("artworks a").
		OrderBy("a.created_at DESC")

	if filter.ArtistID != uuid.Nil {
		builder = builder.Where(sq.Eq{"a.artist_id": filter.ArtistID})
	}
	if filter.GalleryID != uuid.Nil {
		builder = builder.Where(sq.Eq{"a.gallery_id": filter.GalleryID})
	}
	if filter.LikedBy != uuid.Nil {
		builder = builder.
			Join("likes l ON l.artwork_id = a.id").
			Where(sq.Eq{"l.user_id": filter.LikedBy})
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

	var artworks []models.Artwork
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		artworks = append(artworks, artwork)
	}

	return artworks, nil
}

// UpdateArtwork never touches the slug; it is immutable after assignment.
func (r *ArtworkRepo) UpdateArtwork(ctx context.Context, artwork models.Artwork) error {
	const op = "repository.artwork_repository.UpdateArtwork"

	query, args, err := r.sb.Update("artworks").
		Set("title", artwork.Title).
		Set("gallery_id", artwork.GalleryID).
		Set("image", artwork.Image).
		Set("description", artwork.Description).
		Set("status", artwork.Status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": artwork.ID}).
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

func (r *ArtworkRepo) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	const op = "repository.artwork_repository.DeleteArtwork"

	query, args, err := r.sb.Delete("artworks").
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

func (r *ArtworkRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	const op = "repository.artwork_repository.SlugTaken"

	return slugTaken(ctx, r.db, op, "artworks", slug)
}

func (r *ArtworkRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	const op = "repository.artwork_repository.IncrementViews"

	query, args, err := r.sb.Update("artworks").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ToggleLike flips the (user, artwork) like inside one transaction. The
// insert uses ON CONFLICT DO NOTHING, so a concurrent duplicate degrades to
// the delete branch instead of surfacing a constraint error.
func (r *ArtworkRepo) ToggleLike(ctx context.Context, artworkID, userID uuid.UUID) (bool, error) {
	const op = "repository.artwork_repository.ToggleLike"

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO likes (user_id, artwork_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, artwork_id) DO NOTHING`,
		userID, artworkID,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	liked := tag.RowsAffected() == 1
	if !liked {
		_, err = tx.Exec(ctx,
			`DELETE FROM likes WHERE user_id = $1 AND artwork_id = $2`,
			userID, artworkID,
		)
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}

func (r *ArtworkRepo) LikesCount(ctx context.Context, artworkID uuid.UUID) (int, error) {
	const op = "repository.artwork_repository.LikesCount"

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM likes WHERE artwork_id = $1`, artworkID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *ArtworkRepo) IsLiked(ctx context.Context, artworkID, userID uuid.UUID) (bool, error) {
	const op = "repository.artwork_repository.IsLiked"

	var liked bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE artwork_id = $1 AND user_id = $2)`,
		artworkID, userID,
	).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return liked, nil
}

// UpsertRating replaces any prior rating by the same user.
func (r *ArtworkRepo) UpsertRating(ctx context.Context, artworkID, userID uuid.UUID, value int) error {
	const op = "repository.artwork_repository.UpsertRating"

	_, err := r.db.Exec(ctx,
		`INSERT INTO artwork_ratings (user_id, artwork_id, value) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, artwork_id) DO UPDATE SET value = EXCLUDED.value`,
		userID, artworkID, value,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ArtworkRepo) AverageRating(ctx context.Context, artworkID uuid.UUID) (float64, error) {
	const op = "repository.artwork_repository.AverageRating"

	var avg float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(value), 0) FROM artwork_ratings WHERE artwork_id = $1`,
		artworkID,
	).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return avg, nil
}

func scanArtwork(row pgx.Row) (models.Artwork, error) {
	var artwork models.Artwork

	err := row.Scan(
		&artwork.ID,
		&artwork.Title,
		&artwork.ArtistID,
		&artwork.GalleryID,
		&artwork.Image,
		&artwork.Description,
		&artwork.Status,
		&artwork.Slug,
		&artwork.Views,
		&artwork.CreatedAt,
		&artwork.UpdatedAt,
	)
	if err != nil {
		return models.Artwork{}, err
	}

	return artwork, nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
