package models

import (
	"time"

	"github.com/google/uuid"
)

type ArtworkStatus string

const (
	ArtworkStatusInProgress ArtworkStatus = "in-progress"
	ArtworkStatusCompleted  ArtworkStatus = "completed"
)

func (s ArtworkStatus) Valid() bool {
	return s == ArtworkStatusInProgress || s == ArtworkStatusCompleted
}

// Artwork belongs to exactly one artist and one gallery; deleting either
// cascades to the artwork and its likes, comments and ratings.
type Artwork struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	ArtistID    uuid.UUID     `db:"artist_id" json:"artist_id"`
	GalleryID   uuid.UUID     `db:"gallery_id" json:"gallery_id"`
	Image       string        `db:"image" json:"image,omitempty"`
	Description string        `db:"description" json:"description"`
	Status      ArtworkStatus `db:"status" json:"status"`
	Slug        string        `db:"slug" json:"slug"`
	Views       int64         `db:"views" json:"views"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}
