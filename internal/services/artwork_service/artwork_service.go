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

	"github.com/google/uuid"
)

var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrGalleryNotFound = errors.New("gallery not found")
	ErrNotOwner        = errors.New("artwork belongs to another artist")
	ErrInvalidStatus   = errors.New("invalid artwork status")
)

const slugRetries = 5

type ArtworkService struct {
	log       *slog.Logger
	repo      repository.ArtworkRepository
	galleries repository.GalleryRepository
	users     repository.UserRepository
	comments  repository.CommentRepository
}

func NewArtworkService(
	log *slog.Logger,
	repo repository.ArtworkRepository,
	galleries repository.GalleryRepository,
	users repository.UserRepository,
	comments repository.CommentRepository,
) *ArtworkService {
	return &ArtworkService{
		log:       log,
		repo:      repo,
		galleries: galleries,
		users:     users,
		comments:  comments,
	}
}

func (s *ArtworkService) CreateArtwork(ctx context.Context, artistID uuid.UUID, req dto.CreateArtworkRequest) (dto.ArtworkResponse, error) {
	const op = "services.artwork_service.CreateArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
		slog.String("artist_id", artistID.String()),
	)

	log.Info("creating artwork")

	status := models.ArtworkStatusCompleted
	if req.Status != "" {
		status = models.ArtworkStatus(req.Status)
		if !status.Valid() {
			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
		}
	}

	if _, err := s.galleries.GalleryByID(ctx, req.GalleryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, ErrGalleryNotFound)
		}
		return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	artwork := models.Artwork{
		Title:       req.Title,
		ArtistID:    artistID,
		GalleryID:   req.GalleryID,
		Image:       req.Image,
		Description: req.Description,
		Status:      status,
	}

	base := slug.Make(req.Title)

	assigned, err := slug.Assign(ctx, base, s.repo.SlugTaken)
	if err != nil {
		return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	artwork.Slug = assigned

	for attempt := 0; ; attempt++ {
		_, err := s.repo.CreateArtwork(ctx, artwork)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrSlugTaken) || attempt >= slugRetries {
			log.Error("failed to create artwork", sl.Err(err))

			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
		}

		assigned, err = slug.Assign(ctx, base, s.repo.SlugTaken)
		if err != nil {
			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
		}
		artwork.Slug = assigned
	}

	log.Info("artwork created", slog.String("slug", artwork.Slug))

	return s.artworkResponseBySlug(ctx, op, artwork.Slug, artistID, false)
}

// ArtworkBySlug returns the full artwork view and counts the retrieval
// as one view.
func (s *ArtworkService) ArtworkBySlug(ctx context.Context, slugVal string, viewerID uuid.UUID) (dto.ArtworkResponse, error) {
	const op = "services.artwork_service.ArtworkBySlug"

	artwork, err := s.artworkBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.ArtworkResponse{}, err
	}

	if err := s.repo.IncrementViews(ctx, artwork.ID); err != nil {
		s.log.Warn("failed to increment views", sl.Err(err))
	} else {
		artwork.Views++
	}

	return s.buildResponse(ctx, op, artwork, viewerID, true)
}

func (s *ArtworkService) ListArtworks(ctx context.Context, filter repository.ArtworkFilter, viewerID uuid.UUID) ([]dto.ArtworkResponse, error) {
	const op = "services.artwork_service.ListArtworks"

	artworks, err := s.repo.ListArtworks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.ArtworkResponse, 0, len(artworks))
	for _, artwork := range artworks {
		resp, err := s.buildResponse(ctx, op, artwork, viewerID, false)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}

	return out, nil
}

// ArtworksByGallery lists the artworks shown in one gallery.
func (s *ArtworkService) ArtworksByGallery(ctx context.Context, gallerySlug string, viewerID uuid.UUID) ([]dto.ArtworkResponse, error) {
	const op = "services.artwork_service.ArtworksByGallery"

	gallery, err := s.galleries.GalleryBySlug(ctx, gallerySlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrGalleryNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.ListArtworks(ctx, repository.ArtworkFilter{GalleryID: gallery.ID}, viewerID)
}

// ArtworksByArtist lists a user's artworks by username.
func (s *ArtworkService) ArtworksByArtist(ctx context.Context, username string, viewerID uuid.UUID) ([]dto.ArtworkResponse, error) {
	const op = "services.artwork_service.ArtworksByArtist"

	artist, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArtworkNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.ListArtworks(ctx, repository.ArtworkFilter{ArtistID: artist.ID}, viewerID)
}

func (s *ArtworkService) UpdateArtwork(ctx context.Context, slugVal string, artistID uuid.UUID, req dto.UpdateArtworkRequest) (dto.ArtworkResponse, error) {
	const op = "services.artwork_service.UpdateArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
	)

	artwork, err := s.artworkBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.ArtworkResponse{}, err
	}

	if artwork.ArtistID != artistID {
		return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, ErrNotOwner)
	}

	if req.Title != nil {
		artwork.Title = *req.Title
	}
	if req.GalleryID != nil {
		artwork.GalleryID = *req.GalleryID
	}
	if req.Description != nil {
		artwork.Description = *req.Description
	}
	if req.Status != nil {
		status := models.ArtworkStatus(*req.Status)
		if !status.Valid() {
			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidStatus)
		}
		artwork.Status = status
	}
	if req.Image != nil {
		artwork.Image = *req.Image
	}

	if err := s.repo.UpdateArtwork(ctx, artwork); err != nil {
		log.Error("failed to update artwork", sl.Err(err))

		return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("artwork updated")

	return s.buildResponse(ctx, op, artwork, artistID, true)
}

func (s *ArtworkService) DeleteArtwork(ctx context.Context, slugVal string, artistID uuid.UUID) error {
	const op = "services.artwork_service.DeleteArtwork"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
	)

	artwork, err := s.artworkBySlug(ctx, op, slugVal)
	if err != nil {
		return err
	}

	if artwork.ArtistID != artistID {
		return fmt.Errorf("%s: %w", op, ErrNotOwner)
	}

	if err := s.repo.DeleteArtwork(ctx, artwork.ID); err != nil {
		log.Error("failed to delete artwork", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("artwork deleted", slog.String("id", artwork.ID.String()))

	return nil
}

// ToggleLike flips the caller's like on the artwork and reports the
// resulting state with the fresh counter.
func (s *ArtworkService) ToggleLike(ctx context.Context, slugVal string, userID uuid.UUID) (dto.LikeResponse, error) {
	const op = "services.artwork_service.ToggleLike"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
		slog.String("user_id", userID.String()),
	)

	artwork, err := s.artworkBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.LikeResponse{}, err
	}

	liked, err := s.repo.ToggleLike(ctx, artwork.ID, userID)
	if err != nil {
		log.Error("failed to toggle like", sl.Err(err))

		return dto.LikeResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	count, err := s.repo.LikesCount(ctx, artwork.ID)
	if err != nil {
		return dto.LikeResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	status := "unliked"
	if liked {
		status = "liked"
	}

	log.Info("like toggled", slog.String("status", status))

	return dto.LikeResponse{Status: status, LikesCount: count}, nil
}

// Rate stores the caller's 1..5 rating, replacing any previous one.
func (s *ArtworkService) Rate(ctx context.Context, slugVal string, userID uuid.UUID, value int) (float64, error) {
	const op = "services.artwork_service.Rate"

	artwork, err := s.artworkBySlug(ctx, op, slugVal)
	if err != nil {
		return 0, err
	}

	if err := s.repo.UpsertRating(ctx, artwork.ID, userID, value); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	avg, err := s.repo.AverageRating(ctx, artwork.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return avg, nil
}

func (s *ArtworkService) artworkBySlug(ctx context.Context, op, slugVal string) (models.Artwork, error) {
	artwork, err := s.repo.ArtworkBySlug(ctx, slugVal)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Artwork{}, fmt.Errorf("%s: %w", op, ErrArtworkNotFound)
		}
		return models.Artwork{}, fmt.Errorf("%s: %w", op, err)
	}

	return artwork, nil
}

func (s *ArtworkService) artworkResponseBySlug(ctx context.Context, op, slugVal string, viewerID uuid.UUID, withComments bool) (dto.ArtworkResponse, error) {
	artwork, err := s.artworkBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.ArtworkResponse{}, err
	}

	return s.buildResponse(ctx, op, artwork, viewerID, withComments)
}

func (s *ArtworkService) buildResponse(ctx context.Context, op string, artwork models.Artwork, viewerID uuid.UUID, withComments bool) (dto.ArtworkResponse, error) {
	rctx := dto.ArtworkContext{}

	artist, err := s.users.GetUserById(ctx, artwork.ArtistID)
	if err == nil {
		rctx.ArtistName = artist.Username
	}

	gallery, err := s.galleries.GalleryByID(ctx, artwork.GalleryID)
	if err == nil {
		rctx.GalleryName = gallery.Name
		rctx.GalleryType = string(gallery.Type)
	}

	count, err := s.repo.LikesCount(ctx, artwork.ID)
	if err != nil {
		return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	rctx.LikesCount = count

	if viewerID != uuid.Nil {
		liked, err := s.repo.IsLiked(ctx, artwork.ID, viewerID)
		if err != nil {
			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
		}
		rctx.IsLiked = liked
	}

	avg, err := s.repo.AverageRating(ctx, artwork.ID)
	if err != nil {
		return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	rctx.AverageRating = avg

	if withComments {
		comments, err := s.comments.CommentsByArtwork(ctx, artwork.ID)
		if err != nil {
			return dto.ArtworkResponse{}, fmt.Errorf("%s: %w", op, err)
		}
		rctx.Comments = comments
	}

	return dto.ToArtworkResponse(artwork, rctx), nil
}
