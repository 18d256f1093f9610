package repository

import (
	"context"
	"fmt"
	"time"

	"artisthub/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DashboardRepo serves the read-only aggregate queries behind the dashboard
// endpoints. It never mutates anything.
type DashboardRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DashboardRepo) CountArtworksByArtist(ctx context.Context, artistID uuid.UUID) (int, error) {
	const op = "repository.dashboard_repository.CountArtworksByArtist"

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM artworks WHERE artist_id = $1`, artistID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *DashboardRepo) CountEventsJoined(ctx context.Context, userID uuid.UUID) (int, error) {
	const op = "repository.dashboard_repository.CountEventsJoined"

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *DashboardRepo) RecentArtworks(ctx context.Context, artistID uuid.UUID, limit int) ([]models.Artwork, error) {
	const op = "repository.dashboard_repository.RecentArtworks"

	query, args, err := r.sb.Select(artworkColumns...).
		From("artworks").
		Where(sq.Eq{"artist_id": artistID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var artworks []models.Artwork
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		artworks = append(artworks, artwork)
	}

	return artworks, nil
}

func (r *DashboardRepo) RecentJoinedEvents(ctx context.Context, userID uuid.UUID, limit int) ([]models.Event, error) {
	const op = "repository.dashboard_repository.RecentJoinedEvents"

	query, args, err := r.sb.Select(prefixed("e", eventColumns)...).
		From("events e").
		Join("event_participants ep ON ep.event_id = e.id").
		Where(sq.Eq{"ep.user_id": userID}).
		OrderBy("e.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *DashboardRepo) MonthlyArtworkCount(ctx context.Context, artistID uuid.UUID, year int, month time.Month) (int, error) {
	const op = "repository.dashboard_repository.MonthlyArtworkCount"

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM artworks
		 WHERE artist_id = $1
		   AND EXTRACT(YEAR FROM created_at) = $2
		   AND EXTRACT(MONTH FROM created_at) = $3`,
		artistID, year, int(month),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// MonthlyJoinedEventCount buckets by the event's creation month, not the
// join month. The analytics chart counts an event toward the month it
// was created in, however late the user joined.
func (r *DashboardRepo) MonthlyJoinedEventCount(ctx context.Context, userID uuid.UUID, year int, month time.Month) (int, error) {
	const op = "repository.dashboard_repository.MonthlyJoinedEventCount"

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM events e
		 JOIN event_participants ep ON ep.event_id = e.id
		 WHERE ep.user_id = $1
		   AND EXTRACT(YEAR FROM e.created_at) = $2
		   AND EXTRACT(MONTH FROM e.created_at) = $3`,
		userID, year, int(month),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
