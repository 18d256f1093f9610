package dto

import (
	"strings"
	"time"

	"artisthub/internal/domain/models"

	"github.com/google/uuid"
)

// UserRegisterInput carries the registration payload.
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=150,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	Name     string `json:"name,omitempty" validate:"omitempty,max=200"`
	IsArtist bool   `json:"is_artist"`
}

// ToDomain builds the domain user. The free-form name is split on the
// first space into first and last name.
func (input UserRegisterInput) ToDomain(passwordHash []byte) *models.User {
	first, last := splitName(input.Name)
	return &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  passwordHash,
		FirstName: first,
		LastName:  last,
		IsArtist:  input.IsArtist,
	}
}

func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	first = parts[0]
	if len(parts) == 2 {
		last = strings.TrimSpace(parts[1])
	}
	return first, last
}

type UpdateProfileRequest struct {
	FirstName      *string           `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName       *string           `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio            *string           `json:"bio,omitempty"`
	Website        *string           `json:"website,omitempty" validate:"omitempty,url"`
	SocialMedia    map[string]string `json:"social_media,omitempty"`
	ProfilePicture *string           `json:"profile_picture,omitempty"`
}

type UserResponse struct {
	ID             uuid.UUID         `json:"id" swaggertype:"string" format:"uuid"`
	Username       string            `json:"username"`
	Email          string            `json:"email,omitempty"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	IsArtist       bool              `json:"is_artist"`
	Bio            string            `json:"bio,omitempty"`
	ProfilePicture string            `json:"profile_picture,omitempty"`
	Website        string            `json:"website,omitempty"`
	SocialMedia    map[string]string `json:"social_media,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToUserResponse maps a domain user to its public shape. The email is
// included only when the profile belongs to the requester.
func ToUserResponse(u models.User, includeEmail bool) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		IsArtist:       u.IsArtist,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Website:        u.Website,
		SocialMedia:    u.SocialMedia,
		CreatedAt:      u.CreatedAt,
	}
	if includeEmail {
		resp.Email = u.Email
	}
	return resp
}
