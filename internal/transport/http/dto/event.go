package dto

import (
	"time"

	"artisthub/internal/domain/models"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"required"`
	Location        string    `json:"location" validate:"required,max=200"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	Image           string    `json:"image,omitempty"`
	MaxParticipants int       `json:"max_participants" validate:"min=0"`
	Categories      []string  `json:"categories,omitempty"`
	Requirements    string    `json:"requirements,omitempty"`
}

type UpdateEventRequest struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description     *string    `json:"description,omitempty"`
	Location        *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Image           *string    `json:"image,omitempty"`
	MaxParticipants *int       `json:"max_participants,omitempty" validate:"omitempty,min=0"`
	Categories      []string   `json:"categories,omitempty"`
	Requirements    *string    `json:"requirements,omitempty"`
}

type EventResponse struct {
	ID                uuid.UUID      `json:"id" swaggertype:"string" format:"uuid"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Location          string         `json:"location"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           time.Time      `json:"end_date"`
	Image             string         `json:"image,omitempty"`
	CreatedBy         uuid.UUID      `json:"created_by" swaggertype:"string" format:"uuid"`
	CreatedByName     string         `json:"created_by_name"`
	Slug              string         `json:"slug"`
	Status            string         `json:"status"`
	MaxParticipants   int            `json:"max_participants"`
	Categories        []string       `json:"categories"`
	Requirements      string         `json:"requirements,omitempty"`
	ParticipantsCount int            `json:"participants_count"`
	IsJoined          bool           `json:"is_joined"`
	Participants      []UserResponse `json:"participants,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// EventContext carries the per-request state joined onto an event.
type EventContext struct {
	CreatedByName     string
	ParticipantsCount int
	IsJoined          bool
	Participants      []models.User
}

func ToEventResponse(e models.Event, now time.Time, ctx EventContext) EventResponse {
	resp := EventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		Location:          e.Location,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		Image:             e.Image,
		CreatedBy:         e.CreatedBy,
		CreatedByName:     ctx.CreatedByName,
		Slug:              e.Slug,
		Status:            string(e.Status(now)),
		MaxParticipants:   e.MaxParticipants,
		Categories:        e.Categories,
		Requirements:      e.Requirements,
		ParticipantsCount: ctx.ParticipantsCount,
		IsJoined:          ctx.IsJoined,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	for _, p := range ctx.Participants {
		resp.Participants = append(resp.Participants, ToUserResponse(p, false))
	}
	return resp
}

type JoinEventResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	ParticipantsCount int    `json:"participants_count"`
}
