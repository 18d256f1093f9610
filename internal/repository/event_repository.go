package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artisthub/internal/domain/models"
	"artisthub/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

type EventRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewEventRepository(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var eventColumns = []string{
	"id", "title", "description", "location", "start_date", "end_date",
	"image", "created_by", "slug", "max_participants", "categories",
	"requirements", "created_at", "updated_at",
}

func (r *EventRepo) CreateEvent(ctx context.Context, event models.Event) (uuid.UUID, error) {
	const op = "repository.event_repository.CreateEvent"

	query, args, err := r.sb.Insert("events").
		Columns(
			"title", "description", "location", "start_date", "end_date",
			"image", "created_by", "slug", "max_participants", "categories", "requirements",
		).
		Values(
			event.Title,
			event.Description,
			event.Location,
			event.StartDate,
			event.EndDate,
			event.Image,
			event.CreatedBy,
			event.Slug,
			event.MaxParticipants,
			pq.Array(event.Categories),
			event.Requirements,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if uniqueViolation(err, "events_slug_key") {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrSlugTaken)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *EventRepo) EventBySlug(ctx context.Context, slug string) (models.Event, error) {
	const op = "repository.event_repository.EventBySlug"

	query, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Event{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// ListEvents filters by derived status as date-range predicates on the
// scheduling window, matching the status derivation boundaries.
func (r *EventRepo) ListEvents(ctx context.Context, status models.EventStatus, now time.Time) ([]models.Event, error) {
	const op = "repository.event_repository.ListEvents"

	builder := r.sb.Select(eventColumns...).
		From("events").
		OrderBy("start_date ASC")

	switch status {
	case models.EventStatusUpcoming:
		builder = builder.Where(sq.Gt{"start_date": now})
	case models.EventStatusInProgress:
		builder = builder.Where(sq.LtOrEq{"start_date": now}).Where(sq.GtOrEq{"end_date": now})
	case models.EventStatusCompleted:
		builder = builder.Where(sq.Lt{"end_date": now})
	case "":
		// no filter
	default:
		return nil, fmt.Errorf("%s: invalid status filter %q", op, status)
	}

	query, args, err := builder.ToSql()
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

// UpdateEvent never touches the slug; it is immutable after assignment.
func (r *EventRepo) UpdateEvent(ctx context.Context, event models.Event) error {
	const op = "repository.event_repository.UpdateEvent"

	query, args, err := r.sb.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("location", event.Location).
		Set("start_date", event.StartDate).
		Set("end_date", event.EndDate).
		Set("image", event.Image).
		Set("max_participants", event.MaxParticipants).
		Set("categories", pq.Array(event.Categories)).
		Set("requirements", event.Requirements).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *EventRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	const op = "repository.event_repository.DeleteEvent"

	query, args, err := r.sb.Delete("events").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (r *EventRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	const op = "repository.event_repository.SlugTaken"

	return slugTaken(ctx, r.db, op, "events", slug)
}

// ToggleJoin flips the user's membership inside one transaction. The event
// row is locked with FOR UPDATE so the capacity check and the insert are
// serialized per event; two concurrent joins for the last seat cannot both
// pass the check.
func (r *EventRepo) ToggleJoin(ctx context.Context, eventID, userID uuid.UUID) (JoinResult, error) {
	const op = "repository.event_repository.ToggleJoin"

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return JoinResult{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var maxParticipants int
	err = tx.QueryRow(ctx,
		`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JoinResult{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return JoinResult{}, fmt.Errorf("%s: %w", op, err)
	}

	var joined bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_participants WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID,
	).Scan(&joined)
	if err != nil {
		return JoinResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if joined {
		// leaving is always allowed
		_, err = tx.Exec(ctx,
			`DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2`,
			eventID, userID,
		)
		if err != nil {
			return JoinResult{}, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID,
		).Scan(&count)
		if err != nil {
			return JoinResult{}, fmt.Errorf("%s: %w", op, err)
		}

		// max_participants == 0 means unlimited
		if maxParticipants > 0 && count >= maxParticipants {
			return JoinResult{}, fmt.Errorf("%s: %w", op, storage.ErrEventFull)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO event_participants (event_id, user_id) VALUES ($1, $2)`,
			eventID, userID,
		)
		if err != nil {
			return JoinResult{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return JoinResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return JoinResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return JoinResult{Joined: !joined, ParticipantsCount: count}, nil
}

func (r *EventRepo) Participants(ctx context.Context, eventID uuid.UUID) ([]models.User, error) {
	const op = "repository.event_repository.Participants"

	query, args, err := r.sb.Select(prefixed("u", userColumns)...).
		From("event_participants ep").
		Join("users u ON u.id = ep.user_id").
		Where(sq.Eq{"ep.event_id": eventID}).
		OrderBy("ep.joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *EventRepo) ParticipantsCount(ctx context.Context, eventID uuid.UUID) (int, error) {
	const op = "repository.event_repository.ParticipantsCount"

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *EventRepo) IsJoined(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	const op = "repository.event_repository.IsJoined"

	var joined bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_participants WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID,
	).Scan(&joined)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return joined, nil
}

func scanEvent(row pgx.Row) (models.Event, error) {
	var event models.Event

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartDate,
		&event.EndDate,
		&event.Image,
		&event.CreatedBy,
		&event.Slug,
		&event.MaxParticipants,
		pq.Array(&event.Categories),
		&event.Requirements,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	return event, nil
}
