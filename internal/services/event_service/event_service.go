package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"artisthub/internal/domain/models"
	"artisthub/internal/lib/logger/sl"
	"artisthub/internal/lib/slug"
	"artisthub/internal/metrics"
	"artisthub/internal/repository"
	"artisthub/internal/storage"
	"artisthub/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventFull     = errors.New("event is full")
	ErrNotOrganizer  = errors.New("event belongs to another user")
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidDates  = errors.New("end date must not precede start date")
)

const slugRetries = 5

type EventService struct {
	log   *slog.Logger
	repo  repository.EventRepository
	users repository.UserRepository
	now   func() time.Time
}

func NewEventService(log *slog.Logger, repo repository.EventRepository, users repository.UserRepository) *EventService {
	return &EventService{
		log:   log,
		repo:  repo,
		users: users,
		now:   time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, createdBy uuid.UUID, req dto.CreateEventRequest) (dto.EventResponse, error) {
	const op = "services.event_service.CreateEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
		slog.String("created_by", createdBy.String()),
	)

	log.Info("creating event")

	if req.EndDate.Before(req.StartDate) {
		return dto.EventResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidDates)
	}

	event := models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Image:           req.Image,
		CreatedBy:       createdBy,
		MaxParticipants: req.MaxParticipants,
		Categories:      normalizeCategories(req.Categories),
		Requirements:    req.Requirements,
	}

	base := slug.Make(req.Title)

	assigned, err := slug.Assign(ctx, base, s.repo.SlugTaken)
	if err != nil {
		return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	event.Slug = assigned

	for attempt := 0; ; attempt++ {
		_, err := s.repo.CreateEvent(ctx, event)
		if err == nil {
			break
		}
		if !errors.Is(err, storage.ErrSlugTaken) || attempt >= slugRetries {
			log.Error("failed to create event", sl.Err(err))

			return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
		}

		assigned, err = slug.Assign(ctx, base, s.repo.SlugTaken)
		if err != nil {
			return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
		}
		event.Slug = assigned
	}

	log.Info("event created", slog.String("slug", event.Slug))

	return s.eventResponseBySlug(ctx, op, event.Slug, createdBy, false)
}

func (s *EventService) EventBySlug(ctx context.Context, slugVal string, viewerID uuid.UUID) (dto.EventResponse, error) {
	const op = "services.event_service.EventBySlug"
	return s.eventResponseBySlug(ctx, op, slugVal, viewerID, true)
}

// ListEvents returns events, optionally narrowed to one derived status.
// Accepted filter values are "upcoming", "in_progress" and "completed".
func (s *EventService) ListEvents(ctx context.Context, statusFilter string, viewerID uuid.UUID) ([]dto.EventResponse, error) {
	const op = "services.event_service.ListEvents"

	status, err := parseStatusFilter(statusFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()

	events, err := s.repo.ListEvents(ctx, status, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		resp, err := s.buildResponse(ctx, op, event, now, viewerID, false)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}

	return out, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, slugVal string, userID uuid.UUID, req dto.UpdateEventRequest) (dto.EventResponse, error) {
	const op = "services.event_service.UpdateEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
	)

	event, err := s.eventBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.EventResponse{}, err
	}

	if event.CreatedBy != userID {
		return dto.EventResponse{}, fmt.Errorf("%s: %w", op, ErrNotOrganizer)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.Categories != nil {
		event.Categories = normalizeCategories(req.Categories)
	}
	if req.Requirements != nil {
		event.Requirements = *req.Requirements
	}

	if event.EndDate.Before(event.StartDate) {
		return dto.EventResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidDates)
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		log.Error("failed to update event", sl.Err(err))

		return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event updated")

	return s.buildResponse(ctx, op, event, s.now(), userID, true)
}

func (s *EventService) DeleteEvent(ctx context.Context, slugVal string, userID uuid.UUID) error {
	const op = "services.event_service.DeleteEvent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
	)

	event, err := s.eventBySlug(ctx, op, slugVal)
	if err != nil {
		return err
	}

	if event.CreatedBy != userID {
		return fmt.Errorf("%s: %w", op, ErrNotOrganizer)
	}

	if err := s.repo.DeleteEvent(ctx, event.ID); err != nil {
		log.Error("failed to delete event", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event deleted", slog.String("id", event.ID.String()))

	return nil
}

// ToggleJoin joins the caller to the event, or removes them if they are
// already a participant. A join against a full event fails; leaving is
// always allowed.
func (s *EventService) ToggleJoin(ctx context.Context, slugVal string, userID uuid.UUID) (dto.JoinEventResponse, error) {
	const op = "services.event_service.ToggleJoin"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slugVal),
		slog.String("user_id", userID.String()),
	)

	event, err := s.eventBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.JoinEventResponse{}, err
	}

	result, err := s.repo.ToggleJoin(ctx, event.ID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrEventFull) {
			metrics.EventJoinRejections.Inc()
			log.Info("join rejected, event is full")

			return dto.JoinEventResponse{}, fmt.Errorf("%s: %w", op, ErrEventFull)
		}
		log.Error("failed to toggle participation", sl.Err(err))

		return dto.JoinEventResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	resp := dto.JoinEventResponse{
		Status:            "left",
		Message:           "You have left the event",
		ParticipantsCount: result.ParticipantsCount,
	}
	if result.Joined {
		resp.Status = "joined"
		resp.Message = "You have joined the event"
	}

	log.Info("participation toggled", slog.String("status", resp.Status))

	return resp, nil
}

func (s *EventService) eventBySlug(ctx context.Context, op, slugVal string) (models.Event, error) {
	event, err := s.repo.EventBySlug(ctx, slugVal)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Event{}, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *EventService) eventResponseBySlug(ctx context.Context, op, slugVal string, viewerID uuid.UUID, withParticipants bool) (dto.EventResponse, error) {
	event, err := s.eventBySlug(ctx, op, slugVal)
	if err != nil {
		return dto.EventResponse{}, err
	}

	return s.buildResponse(ctx, op, event, s.now(), viewerID, withParticipants)
}

func (s *EventService) buildResponse(ctx context.Context, op string, event models.Event, now time.Time, viewerID uuid.UUID, withParticipants bool) (dto.EventResponse, error) {
	rctx := dto.EventContext{}

	creator, err := s.users.GetUserById(ctx, event.CreatedBy)
	if err == nil {
		rctx.CreatedByName = creator.Username
	}

	count, err := s.repo.ParticipantsCount(ctx, event.ID)
	if err != nil {
		return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	rctx.ParticipantsCount = count

	if viewerID != uuid.Nil {
		joined, err := s.repo.IsJoined(ctx, event.ID, viewerID)
		if err != nil {
			return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
		}
		rctx.IsJoined = joined
	}

	if withParticipants {
		participants, err := s.repo.Participants(ctx, event.ID)
		if err != nil {
			return dto.EventResponse{}, fmt.Errorf("%s: %w", op, err)
		}
		rctx.Participants = participants
	}

	return dto.ToEventResponse(event, now, rctx), nil
}

func parseStatusFilter(filter string) (models.EventStatus, error) {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "":
		return "", nil
	case "upcoming":
		return models.EventStatusUpcoming, nil
	case "in_progress", "in progress":
		return models.EventStatusInProgress, nil
	case "completed":
		return models.EventStatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
