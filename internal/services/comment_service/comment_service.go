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
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrNotAuthor       = errors.New("comment belongs to another user")
)

type CommentService struct {
	log      *slog.Logger
	repo     repository.CommentRepository
	artworks repository.ArtworkRepository
}

func NewCommentService(log *slog.Logger, repo repository.CommentRepository, artworks repository.ArtworkRepository) *CommentService {
	return &CommentService{
		log:      log,
		repo:     repo,
		artworks: artworks,
	}
}

func (s *CommentService) AddComment(ctx context.Context, artworkSlug string, userID uuid.UUID, content string) (dto.CommentResponse, error) {
	const op = "services.comment_service.AddComment"

	log := s.log.With(
		slog.String("op", op),
		slog.String("artwork_slug", artworkSlug),
		slog.String("user_id", userID.String()),
	)

	artwork, err := s.artworks.ArtworkBySlug(ctx, artworkSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, ErrArtworkNotFound)
		}
		return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	comment := models.Comment{
		UserID:    userID,
		ArtworkID: artwork.ID,
		Content:   content,
	}

	id, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		log.Error("failed to create comment", sl.Err(err))

		return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.repo.CommentByID(ctx, id)
	if err != nil {
		return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("comment added", slog.Int64("id", id))

	return dto.ToCommentResponse(saved), nil
}

func (s *CommentService) CommentsByArtwork(ctx context.Context, artworkSlug string) ([]dto.CommentResponse, error) {
	const op = "services.comment_service.CommentsByArtwork"

	artwork, err := s.artworks.ArtworkBySlug(ctx, artworkSlug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArtworkNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments, err := s.repo.CommentsByArtwork(ctx, artwork.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.ToCommentResponse(c))
	}

	return out, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, id int64, userID uuid.UUID, content string) (dto.CommentResponse, error) {
	const op = "services.comment_service.UpdateComment"

	comment, err := s.commentByID(ctx, op, id)
	if err != nil {
		return dto.CommentResponse{}, err
	}

	if comment.UserID != userID {
		return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, ErrNotAuthor)
	}

	if err := s.repo.UpdateComment(ctx, id, content); err != nil {
		return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.CommentByID(ctx, id)
	if err != nil {
		return dto.CommentResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.ToCommentResponse(updated), nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id int64, userID uuid.UUID) error {
	const op = "services.comment_service.DeleteComment"

	comment, err := s.commentByID(ctx, op, id)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return fmt.Errorf("%s: %w", op, ErrNotAuthor)
	}

	if err := s.repo.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("comment deleted", slog.String("op", op), slog.Int64("id", id))

	return nil
}

func (s *CommentService) commentByID(ctx context.Context, op string, id int64) (models.Comment, error) {
	comment, err := s.repo.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Comment{}, fmt.Errorf("%s: %w", op, ErrCommentNotFound)
		}
		return models.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	return comment, nil
}
