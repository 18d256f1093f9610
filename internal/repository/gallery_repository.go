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

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GalleryRepo) CreateGallery(ctx context.Context, gallery models.Gallery) (uuid.UUID, error) {
	const op = "repository.gallery_repository.CreateGallery"

	query, args, err := r.sb.Insert("galleries").
		Columns("name", "type", "description", "slug").
		Values(gallery.Name, gallery.Type, gallery.Description, gallery.Slug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if uniqueViolation(err, "galleries_slug_key") {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *GalleryRepo) GalleryBySlug(ctx context.Context, slug string) (models.Gallery, error) {
	const op = "repository.gallery_repository.GalleryBySlug"

	query, args, err := r.sb.Select("id", "name", "type", "description", "slug", "created_at").
		From("galleries").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var gallery models.Gallery
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.Name,
		&gallery.Type,
		&gallery.Description,
		&gallery.Slug,
		&gallery.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func (r *GalleryRepo) GalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	const op = "repository.gallery_repository.GalleryByID"

	query, args, err := r.sb.Select("id", "name", "type", "description", "slug", "created_at").
		From("galleries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var gallery models.Gallery
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&gallery.ID,
		&gallery.Name,
		&gallery.Type,
		&gallery.Description,
		&gallery.Slug,
		&gallery.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func (r *GalleryRepo) ListGalleries(ctx context.Context) ([]models.Gallery, error) {
	const op = "repository.gallery_repository.ListGalleries"

	query, args, err := r.sb.Select("id", "name", "type", "description", "slug", "created_at").
		From("galleries").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var galleries []models.Gallery
	for rows.Next() {
		var gallery models.Gallery
		err := rows.Scan(
			&gallery.ID,
			&gallery.Name,
			&gallery.Type,
			&gallery.Description,
			&gallery.Slug,
			&gallery.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		galleries = append(galleries, gallery)
	}

	return galleries, nil
}

// UpdateGallery never touches the slug; it is immutable after assignment.
func (r *GalleryRepo) UpdateGallery(ctx context.Context, gallery models.Gallery) error {
	const op = "repository.gallery_repository.UpdateGallery"

	query, args, err := r.sb.Update("galleries").
		Set("name", gallery.Name).
		Set("type", gallery.Type).
		Set("description", gallery.Description).
		Where(sq.Eq{"id": gallery.ID}).
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

func (r *GalleryRepo) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	const op = "repository.gallery_repository.DeleteGallery"

	query, args, err := r.sb.Delete("galleries").
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

func (r *GalleryRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	const op = "repository.gallery_repository.SlugTaken"

	return slugTaken(ctx, r.db, op, "galleries", slug)
}
