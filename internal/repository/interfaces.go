package repository

import (
	"context"
	"time"

	"artisthub/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context, artistsOnly bool) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type GalleryRepository interface {
	CreateGallery(ctx context.Context, gallery models.Gallery) (uuid.UUID, error)
	GalleryBySlug(ctx context.Context, slug string) (models.Gallery, error)
	GalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error)
	ListGalleries(ctx context.Context) ([]models.Gallery, error)
	UpdateGallery(ctx context.Context, gallery models.Gallery) error
	DeleteGallery(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string) (bool, error)
}

// ArtworkFilter narrows ListArtworks; zero value lists everything.
type ArtworkFilter struct {
	ArtistID  uuid.UUID // artworks authored by this user
	LikedBy   uuid.UUID // artworks liked by this user
	GalleryID uuid.UUID // artworks in this gallery
}

type ArtworkRepository interface {
	CreateArtwork(ctx context.Context, artwork models.Artwork) (uuid.UUID, error)
	ArtworkBySlug(ctx context.Context, slug string) (models.Artwork, error)
	ListArtworks(ctx context.Context, filter ArtworkFilter) ([]models.Artwork, error)
	UpdateArtwork(ctx context.Context, artwork models.Artwork) error
	DeleteArtwork(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error

	ToggleLike(ctx context.Context, artworkID, userID uuid.UUID) (liked bool, err error)
	LikesCount(ctx context.Context, artworkID uuid.UUID) (int, error)
	IsLiked(ctx context.Context, artworkID, userID uuid.UUID) (bool, error)
	UpsertRating(ctx context.Context, artworkID, userID uuid.UUID, value int) error
	AverageRating(ctx context.Context, artworkID uuid.UUID) (float64, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (int64, error)
	CommentsByArtwork(ctx context.Context, artworkID uuid.UUID) ([]models.Comment, error)
	CommentByID(ctx context.Context, id int64) (models.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) error
	DeleteComment(ctx context.Context, id int64) error
}

// JoinResult is the outcome of a join/leave toggle.
type JoinResult struct {
	Joined            bool
	ParticipantsCount int
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (uuid.UUID, error)
	EventBySlug(ctx context.Context, slug string) (models.Event, error)
	ListEvents(ctx context.Context, status models.EventStatus, now time.Time) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string) (bool, error)

	ToggleJoin(ctx context.Context, eventID, userID uuid.UUID) (JoinResult, error)
	Participants(ctx context.Context, eventID uuid.UUID) ([]models.User, error)
	ParticipantsCount(ctx context.Context, eventID uuid.UUID) (int, error)
	IsJoined(ctx context.Context, eventID, userID uuid.UUID) (bool, error)
}

type DashboardRepository interface {
	CountArtworksByArtist(ctx context.Context, artistID uuid.UUID) (int, error)
	CountEventsJoined(ctx context.Context, userID uuid.UUID) (int, error)
	RecentArtworks(ctx context.Context, artistID uuid.UUID, limit int) ([]models.Artwork, error)
	RecentJoinedEvents(ctx context.Context, userID uuid.UUID, limit int) ([]models.Event, error)
	MonthlyArtworkCount(ctx context.Context, artistID uuid.UUID, year int, month time.Month) (int, error)
	MonthlyJoinedEventCount(ctx context.Context, userID uuid.UUID, year int, month time.Month) (int, error)
}
