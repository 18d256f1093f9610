package dto

import (
	"time"

	"artisthub/internal/domain/models"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Type        string `json:"type" validate:"required,oneof=PHOTO DIGITAL PAINTING SCULPTURE"`
	Description string `json:"description,omitempty"`
}

// UpdateGalleryRequest deliberately has no slug field: the slug is fixed
// at creation time.
type UpdateGalleryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=PHOTO DIGITAL PAINTING SCULPTURE"`
	Description *string `json:"description,omitempty"`
}

type GalleryResponse struct {
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	TypeDisplay string    `json:"type_display"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToGalleryResponse(g models.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:          g.ID,
		Name:        g.Name,
		Type:        string(g.Type),
		TypeDisplay: g.Type.Display(),
		Description: g.Description,
		Slug:        g.Slug,
		CreatedAt:   g.CreatedAt,
	}
}
