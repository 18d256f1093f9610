package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryType string

const (
	GalleryTypePhoto     GalleryType = "PHOTO"
	GalleryTypeDigital   GalleryType = "DIGITAL"
	GalleryTypePainting  GalleryType = "PAINTING"
	GalleryTypeSculpture GalleryType = "SCULPTURE"
)

func (t GalleryType) Valid() bool {
	switch t {
	case GalleryTypePhoto, GalleryTypeDigital, GalleryTypePainting, GalleryTypeSculpture:
		return true
	}
	return false
}

// Display is the human-readable label for the type enum.
func (t GalleryType) Display() string {
	switch t {
	case GalleryTypePhoto:
		return "Photography"
	case GalleryTypeDigital:
		return "Digital Art"
	case GalleryTypePainting:
		return "Painting"
	case GalleryTypeSculpture:
		return "Sculpture"
	}
	return string(t)
}

// Gallery groups artworks of one discipline. The slug is assigned once at
// creation and never changes, even if the name is edited later.
type Gallery struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Type        GalleryType `db:"type" json:"type"`
	Description string      `db:"description" json:"description"`
	Slug        string      `db:"slug" json:"slug"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}
