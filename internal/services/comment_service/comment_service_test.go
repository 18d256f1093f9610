package services

import (
	"context"
	"log/slog"
	"testing"

	"artisthub/internal/domain/models"
	"artisthub/internal/repository"
	"artisthub/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, comment models.Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) CommentsByArtwork(ctx context.Context, artworkID uuid.UUID) ([]models.Comment, error) {
	args := m.Called(ctx, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CommentByID(ctx context.Context, id int64) (models.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArtworkRepository struct {
	mock.Mock
}

func (m *MockArtworkRepository) CreateArtwork(ctx context.Context, artwork models.Artwork) (uuid.UUID, error) {
	args := m.Called(ctx, artwork)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockArtworkRepository) ArtworkBySlug(ctx context.Context, slug string) (models.Artwork, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) ListArtworks(ctx context.Context, filter repository.ArtworkFilter) ([]models.Artwork, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artwork), args.Error(1)
}

func (m *MockArtworkRepository) UpdateArtwork(ctx context.Context, artwork models.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}

func (m *MockArtworkRepository) DeleteArtwork(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtworkRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtworkRepository) ToggleLike(ctx context.Context, artworkID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, artworkID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtworkRepository) LikesCount(ctx context.Context, artworkID uuid.UUID) (int, error) {
	args := m.Called(ctx, artworkID)
	return args.Int(0), args.Error(1)
}

func (m *MockArtworkRepository) IsLiked(ctx context.Context, artworkID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, artworkID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArtworkRepository) UpsertRating(ctx context.Context, artworkID, userID uuid.UUID, value int) error {
	args := m.Called(ctx, artworkID, userID, value)
	return args.Error(0)
}

func (m *MockArtworkRepository) AverageRating(ctx context.Context, artworkID uuid.UUID) (float64, error) {
	args := m.Called(ctx, artworkID)
	return args.Get(0).(float64), args.Error(1)
}

func TestCommentService_AddComment(t *testing.T) {
	artworkID := uuid.New()
	authorID := uuid.New()

	tests := []struct {
		name      string
		slug      string
		mockSetup func(comments *MockCommentRepository, artworks *MockArtworkRepository)
		wantErr   error
	}{
		{
			name: "comment created and returned with author name",
			slug: "starry-night",
			mockSetup: func(comments *MockCommentRepository, artworks *MockArtworkRepository) {
				artworks.On("ArtworkBySlug", mock.Anything, "starry-night").
					Return(models.Artwork{ID: artworkID, Slug: "starry-night"}, nil).Once()
				comments.On("CreateComment", mock.Anything, mock.MatchedBy(func(c models.Comment) bool {
					return c.ArtworkID == artworkID && c.UserID == authorID && c.Content == "Stunning"
				})).Return(int64(7), nil).Once()
				comments.On("CommentByID", mock.Anything, int64(7)).
					Return(models.Comment{ID: 7, UserID: authorID, Username: "vincent", Content: "Stunning"}, nil).Once()
			},
		},
		{
			name: "unknown artwork",
			slug: "missing",
			mockSetup: func(comments *MockCommentRepository, artworks *MockArtworkRepository) {
				artworks.On("ArtworkBySlug", mock.Anything, "missing").
					Return(models.Artwork{}, storage.ErrNotFound).Once()
			},
			wantErr: ErrArtworkNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := new(MockCommentRepository)
			artworks := new(MockArtworkRepository)
			tt.mockSetup(comments, artworks)

			service := NewCommentService(slog.Default(), comments, artworks)

			resp, err := service.AddComment(context.Background(), tt.slug, authorID, "Stunning")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "vincent", resp.UserName)
				assert.Equal(t, "Stunning", resp.Content)
			}

			comments.AssertExpectations(t)
			artworks.AssertExpectations(t)
		})
	}
}

func TestCommentService_UpdateComment_OnlyAuthor(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	comments := new(MockCommentRepository)
	comments.On("CommentByID", mock.Anything, int64(3)).
		Return(models.Comment{ID: 3, UserID: author, Content: "old"}, nil).Once()

	service := NewCommentService(slog.Default(), comments, new(MockArtworkRepository))

	_, err := service.UpdateComment(context.Background(), 3, stranger, "new")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthor)

	comments.AssertExpectations(t)
}

func TestCommentService_DeleteComment(t *testing.T) {
	author := uuid.New()

	t.Run("author can delete", func(t *testing.T) {
		comments := new(MockCommentRepository)
		comments.On("CommentByID", mock.Anything, int64(3)).
			Return(models.Comment{ID: 3, UserID: author}, nil).Once()
		comments.On("DeleteComment", mock.Anything, int64(3)).Return(nil).Once()

		service := NewCommentService(slog.Default(), comments, new(MockArtworkRepository))

		require.NoError(t, service.DeleteComment(context.Background(), 3, author))
		comments.AssertExpectations(t)
	})

	t.Run("unknown comment", func(t *testing.T) {
		comments := new(MockCommentRepository)
		comments.On("CommentByID", mock.Anything, int64(9)).
			Return(models.Comment{}, storage.ErrNotFound).Once()

		service := NewCommentService(slog.Default(), comments, new(MockArtworkRepository))

		err := service.DeleteComment(context.Background(), 9, author)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCommentNotFound)
		comments.AssertExpectations(t)
	})
}
