package models

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusUpcoming   EventStatus = "Upcoming"
	EventStatusInProgress EventStatus = "In Progress"
	EventStatusCompleted  EventStatus = "Completed"
)

// Event with a scheduling window and a capped participant set.
// MaxParticipants == 0 means unlimited.
type Event struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	Location        string    `db:"location" json:"location"`
	StartDate       time.Time `db:"start_date" json:"start_date"`
	EndDate         time.Time `db:"end_date" json:"end_date"`
	Image           string    `db:"image" json:"image,omitempty"`
	CreatedBy       uuid.UUID `db:"created_by" json:"created_by"`
	Slug            string    `db:"slug" json:"slug"`
	MaxParticipants int       `db:"max_participants" json:"max_participants"`
	Categories      []string  `db:"categories" json:"categories"`
	Requirements    string    `db:"requirements" json:"requirements"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Status derives the point-in-time state from the scheduling window. Both
// boundaries are inclusive: at StartDate and at EndDate the event is
// In Progress; only strictly after EndDate is it Completed.
func (e Event) Status(now time.Time) EventStatus {
	switch {
	case now.Before(e.StartDate):
		return EventStatusUpcoming
	case now.After(e.EndDate):
		return EventStatusCompleted
	default:
		return EventStatusInProgress
	}
}
