package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID         `db:"id" json:"id"`
	Username       string            `db:"username" json:"username"`
	Email          string            `db:"email" json:"email"`
	Password       []byte            `db:"password" json:"-"`
	FirstName      string            `db:"first_name" json:"first_name"`
	LastName       string            `db:"last_name" json:"last_name"`
	IsArtist       bool              `db:"is_artist" json:"is_artist"`
	Bio            string            `db:"bio" json:"bio"`
	ProfilePicture string            `db:"profile_picture" json:"profile_picture,omitempty"`
	Website        string            `db:"website" json:"website,omitempty"`
	SocialMedia    map[string]string `db:"social_media" json:"social_media,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
}
