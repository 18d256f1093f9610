package dto

import (
	"time"

	"artisthub/internal/domain/models"

	"github.com/google/uuid"
)

type CreateArtworkRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	GalleryID   uuid.UUID `json:"gallery" validate:"required" swaggertype:"string" format:"uuid"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty" validate:"omitempty,oneof=in-progress completed"`
	Image       string    `json:"image,omitempty"`
}

type UpdateArtworkRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	GalleryID   *uuid.UUID `json:"gallery,omitempty" swaggertype:"string" format:"uuid"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=in-progress completed"`
	Image       *string    `json:"image,omitempty"`
}

type RateArtworkRequest struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type ArtworkResponse struct {
	ID            uuid.UUID         `json:"id" swaggertype:"string" format:"uuid"`
	Title         string            `json:"title"`
	ArtistID      uuid.UUID         `json:"artist" swaggertype:"string" format:"uuid"`
	ArtistName    string            `json:"artist_name"`
	GalleryID     uuid.UUID         `json:"gallery" swaggertype:"string" format:"uuid"`
	GalleryName   string            `json:"gallery_name"`
	GalleryType   string            `json:"gallery_type"`
	Image         string            `json:"image,omitempty"`
	Description   string            `json:"description"`
	Status        string            `json:"status"`
	Slug          string            `json:"slug"`
	Views         int64             `json:"views"`
	LikesCount    int               `json:"likes_count"`
	IsLiked       bool              `json:"is_liked"`
	AverageRating float64           `json:"average_rating"`
	Comments      []CommentResponse `json:"comments,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ArtworkContext carries the per-request state joined onto an artwork.
type ArtworkContext struct {
	ArtistName    string
	GalleryName   string
	GalleryType   string
	LikesCount    int
	IsLiked       bool
	AverageRating float64
	Comments      []models.Comment
}

func ToArtworkResponse(a models.Artwork, ctx ArtworkContext) ArtworkResponse {
	resp := ArtworkResponse{
		ID:            a.ID,
		Title:         a.Title,
		ArtistID:      a.ArtistID,
		ArtistName:    ctx.ArtistName,
		GalleryID:     a.GalleryID,
		GalleryName:   ctx.GalleryName,
		GalleryType:   ctx.GalleryType,
		Image:         a.Image,
		Description:   a.Description,
		Status:        string(a.Status),
		Slug:          a.Slug,
		Views:         a.Views,
		LikesCount:    ctx.LikesCount,
		IsLiked:       ctx.IsLiked,
		AverageRating: ctx.AverageRating,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	for _, c := range ctx.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(c))
	}
	return resp
}

type LikeResponse struct {
	Status     string `json:"status"`
	LikesCount int    `json:"likes_count"`
}

type CommentResponse struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user" swaggertype:"string" format:"uuid"`
	UserName  string    `json:"user_name"`
	ArtworkID uuid.UUID `json:"artwork" swaggertype:"string" format:"uuid"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		UserName:  c.Username,
		ArtworkID: c.ArtworkID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
