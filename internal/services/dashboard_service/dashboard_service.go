package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"artisthub/internal/repository"
	"artisthub/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	statsCacheTTL   = 30 * time.Second
	recentLimit     = 5
	feedLimit       = 10
	analyticsMonths = 6
)

type DashboardService struct {
	log   *slog.Logger
	repo  repository.DashboardRepository
	cache *cache.Cache
	now   func() time.Time
}

func NewDashboardService(log *slog.Logger, repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		log:   log,
		repo:  repo,
		cache: cache.New(statsCacheTTL, time.Minute),
		now:   time.Now,
	}
}

// Stats returns the headline counters for the user's dashboard.
// total_views and average_rating are placeholders the frontend renders
// as-is until view and rating aggregation lands here.
func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (dto.DashboardStatsResponse, error) {
	const op = "services.dashboard_service.Stats"

	cacheKey := "stats:" + userID.String()
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(dto.DashboardStatsResponse), nil
	}

	artworks, err := s.repo.CountArtworksByArtist(ctx, userID)
	if err != nil {
		return dto.DashboardStatsResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	joined, err := s.repo.CountEventsJoined(ctx, userID)
	if err != nil {
		return dto.DashboardStatsResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := dto.DashboardStatsResponse{
		TotalArtworks: int64(artworks),
		EventsJoined:  int64(joined),
		TotalViews:    0,
		AverageRating: 0,
	}

	s.cache.Set(cacheKey, stats, cache.DefaultExpiration)

	return stats, nil
}

// Activities merges the user's five latest artworks and five latest
// joined events into a single feed, newest first, ten entries at most.
func (s *DashboardService) Activities(ctx context.Context, userID uuid.UUID) ([]dto.Activity, error) {
	const op = "services.dashboard_service.Activities"

	artworks, err := s.repo.RecentArtworks(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events, err := s.repo.RecentJoinedEvents(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	activities := make([]dto.Activity, 0, len(artworks)+len(events))
	for _, a := range artworks {
		activities = append(activities, dto.Activity{
			Type:      "upload",
			Message:   fmt.Sprintf("Uploaded artwork %q", a.Title),
			CreatedAt: a.CreatedAt,
		})
	}
	for _, e := range events {
		activities = append(activities, dto.Activity{
			Type:      "event",
			Message:   fmt.Sprintf("Joined event %q", e.Title),
			CreatedAt: e.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	if len(activities) > feedLimit {
		activities = activities[:feedLimit]
	}

	return activities, nil
}

// Analytics buckets the last six months of the user's output, current
// month first. Each step walks back 30 days from now, and both artworks
// and events fall into the bucket of their creation month.
func (s *DashboardService) Analytics(ctx context.Context, userID uuid.UUID) ([]dto.MonthlyAnalytics, error) {
	const op = "services.dashboard_service.Analytics"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	now := s.now()

	out := make([]dto.MonthlyAnalytics, 0, analyticsMonths)
	for i := 0; i < analyticsMonths; i++ {
		point := now.AddDate(0, 0, -30*i)

		artworks, err := s.repo.MonthlyArtworkCount(ctx, userID, point.Year(), point.Month())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		events, err := s.repo.MonthlyJoinedEventCount(ctx, userID, point.Year(), point.Month())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		out = append(out, dto.MonthlyAnalytics{
			Name:     point.Format("January"),
			Artworks: int64(artworks),
			Events:   int64(events),
		})
	}

	log.Debug("analytics built", slog.Int("months", len(out)))

	return out, nil
}
