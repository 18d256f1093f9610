package dto

import "time"

type DashboardStatsResponse struct {
	TotalArtworks int64   `json:"total_artworks"`
	EventsJoined  int64   `json:"events_joined"`
	TotalViews    int64   `json:"total_views"`
	AverageRating float64 `json:"average_rating"`
}

type Activity struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type MonthlyAnalytics struct {
	Name     string `json:"name"`
	Artworks int64  `json:"artworks"`
	Events   int64  `json:"events"`
}
