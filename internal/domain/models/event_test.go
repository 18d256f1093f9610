package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus(t *testing.T) {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	event := Event{
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}

	tests := []struct {
		name string
		now  time.Time
		want EventStatus
	}{
		{"one second before start", start.Add(-time.Second), EventStatusUpcoming},
		{"exactly at start", start, EventStatusInProgress},
		{"mid window", start.Add(30 * time.Minute), EventStatusInProgress},
		{"exactly at end", start.Add(time.Hour), EventStatusInProgress},
		{"one second after end", start.Add(time.Hour + time.Second), EventStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, event.Status(tt.now))
		})
	}
}
