package models

import (
	"time"

	"github.com/google/uuid"
)

// Like is at most one row per (user, artwork) pair, enforced by a unique
// index in the schema.
type Like struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ArtworkID uuid.UUID `db:"artwork_id" json:"artwork_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Username  string    `db:"username" json:"user_name,omitempty"`
	ArtworkID uuid.UUID `db:"artwork_id" json:"artwork"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ArtworkRating upserts on (user, artwork): re-rating replaces the prior value.
type ArtworkRating struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ArtworkID uuid.UUID `db:"artwork_id" json:"artwork_id"`
	Value     int       `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
