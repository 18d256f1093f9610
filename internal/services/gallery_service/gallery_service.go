package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artisthub/internal/domain/models"
	"artisthub/internal/lib/logger/sl"
	"artisthub/internal/lib/slug"
	"artisthub/internal/repository"
	"artisthub/internal/storage"
	"artisthub/internal/transport/http/dto"
)

var (
	ErrGalleryNotFound = errors.New("gallery not found")
	ErrInvalidType     = errors.New("invalid gallery type")
)

// slugRetries bounds the insert retry loop when two writers race for the
// same slug.
const slugRetries = 5

type GalleryService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{
		log:  log,
		repo: repo,
	}
}

func (s *GalleryService) CreateGallery(ctx context.Context, req dto.CreateGalleryRequest) (models.Gallery, error) {
	const op = "services.gallery_service.CreateGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	log.Info("creating gallery")

	galleryType := models.GalleryType(req.Type)
	if !galleryType.Valid() {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrInvalidType)
	}

	gallery := models.Gallery{
		Name:        req.Name,
		Type:        galleryType,
		Description: req.Description,
	}

	base := slug.Make(req.Name)

	assigned, err := slug.Assign(ctx, base, s.repo.SlugTaken)
	if err != nil {
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}
	gallery.Slug = assigned

	// The availability check and the insert are not atomic. On a unique
	// violation pick the next free suffix and retry the insert.
	for attempt := 0; ; attempt++ {
		id, err := s.repo.CreateGallery(ctx, gallery)
		if err == nil {
			gallery.ID = id
			break
		}
		if !errors.Is(err, storage.ErrSlugTaken) || attempt >= slugRetries {
			log.Error("failed to create gallery", sl.Err(err))

			return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
		}

		assigned, err = slug.Assign(ctx, base, s.repo.SlugTaken)
		if err != nil {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
		}
		gallery.Slug = assigned
	}

	log.Info("gallery created", slog.String("slug", gallery.Slug))

	return s.galleryBySlug(ctx, op, gallery.Slug)
}

func (s *GalleryService) GalleryBySlug(ctx context.Context, slugVal string) (models.Gallery, error) {
	const op = "services.gallery_service.GalleryBySlug"
	return s.galleryBySlug(ctx, op, slugVal)
}

func (s *GalleryService) galleryBySlug(ctx context.Context, op, slugVal string) (models.Gallery, error) {
	gallery, err := s.repo.GalleryBySlug(ctx, slugVal)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrGalleryNotFound)
		}
		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func (s *GalleryService) ListGalleries(ctx context.Context) ([]models.Gallery, error) {
	const op = "services.gallery_service.ListGalleries"

	galleries, err := s.repo.ListGalleries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

// UpdateGallery edits name, type and description. The slug stays as
// assigned at creation regardless of name changes.
func (s *GalleryService) UpdateGallery(ctx context.Context, slugVal string, req dto.UpdateGalleryRequest) (models.Gallery, error) {
	const op = "services.gallery_service.UpdateGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
	)

	gallery, err := s.galleryBySlug(ctx, op, slugVal)
	if err != nil {
		return models.Gallery{}, err
	}

	if req.Name != nil {
		gallery.Name = *req.Name
	}
	if req.Type != nil {
		galleryType := models.GalleryType(*req.Type)
		if !galleryType.Valid() {
			return models.Gallery{}, fmt.Errorf("%s: %w", op, ErrInvalidType)
		}
		gallery.Type = galleryType
	}
	if req.Description != nil {
		gallery.Description = *req.Description
	}

	if err := s.repo.UpdateGallery(ctx, gallery); err != nil {
		log.Error("failed to update gallery", sl.Err(err))

		return models.Gallery{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery updated")

	return gallery, nil
}

func (s *GalleryService) DeleteGallery(ctx context.Context, slugVal string) error {
	const op = "services.gallery_service.DeleteGallery"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
	)

	gallery, err := s.galleryBySlug(ctx, op, slugVal)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteGallery(ctx, gallery.ID); err != nil {
		log.Error("failed to delete gallery", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery deleted", slog.String("id", gallery.ID.String()))

	return nil
}
