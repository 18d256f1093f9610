package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"artisthub/internal/domain/models"
	"artisthub/internal/storage"
	"artisthub/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) CreateGallery(ctx context.Context, gallery models.Gallery) (uuid.UUID, error) {
	args := m.Called(ctx, gallery)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) GalleryBySlug(ctx context.Context, slug string) (models.Gallery, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) GalleryByID(ctx context.Context, id uuid.UUID) (models.Gallery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) ListGalleries(ctx context.Context) ([]models.Gallery, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Gallery), args.Error(1)
}

func (m *MockGalleryRepository) UpdateGallery(ctx context.Context, gallery models.Gallery) error {
	args := m.Called(ctx, gallery)
	return args.Error(0)
}

func (m *MockGalleryRepository) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryRepository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func TestGalleryService_CreateGallery(t *testing.T) {
	ctx := context.Background()
	testUUID := uuid.New()

	req := dto.CreateGalleryRequest{
		Name: "Modern Art",
		Type: "PAINTING",
	}

	saved := models.Gallery{
		ID:   testUUID,
		Name: "Modern Art",
		Type: models.GalleryTypePainting,
		Slug: "modern-art",
	}

	tests := []struct {
		name      string
		req       dto.CreateGalleryRequest
		mockSetup func(repo *MockGalleryRepository)
		wantSlug  string
		wantErr   error
	}{
		{
			name: "base slug free",
			req:  req,
			mockSetup: func(repo *MockGalleryRepository) {
				repo.On("SlugTaken", ctx, "modern-art").Return(false, nil).Once()
				repo.On("CreateGallery", ctx, mock.MatchedBy(func(g models.Gallery) bool {
					return g.Slug == "modern-art"
				})).Return(testUUID, nil).Once()
				repo.On("GalleryBySlug", ctx, "modern-art").Return(saved, nil).Once()
			},
			wantSlug: "modern-art",
		},
		{
			name: "base slug occupied",
			req:  req,
			mockSetup: func(repo *MockGalleryRepository) {
				repo.On("SlugTaken", ctx, "modern-art").Return(true, nil).Once()
				repo.On("SlugTaken", ctx, "modern-art-1").Return(false, nil).Once()
				repo.On("CreateGallery", ctx, mock.MatchedBy(func(g models.Gallery) bool {
					return g.Slug == "modern-art-1"
				})).Return(testUUID, nil).Once()
				withSuffix := saved
				withSuffix.Slug = "modern-art-1"
				repo.On("GalleryBySlug", ctx, "modern-art-1").Return(withSuffix, nil).Once()
			},
			wantSlug: "modern-art-1",
		},
		{
			name: "insert races with another writer",
			req:  req,
			mockSetup: func(repo *MockGalleryRepository) {
				// The check says free, but a concurrent insert wins the row.
				repo.On("SlugTaken", ctx, "modern-art").Return(false, nil).Once()
				repo.On("CreateGallery", ctx, mock.MatchedBy(func(g models.Gallery) bool {
					return g.Slug == "modern-art"
				})).Return(uuid.Nil, storage.ErrSlugTaken).Once()

				repo.On("SlugTaken", ctx, "modern-art").Return(true, nil).Once()
				repo.On("SlugTaken", ctx, "modern-art-1").Return(false, nil).Once()
				repo.On("CreateGallery", ctx, mock.MatchedBy(func(g models.Gallery) bool {
					return g.Slug == "modern-art-1"
				})).Return(testUUID, nil).Once()

				withSuffix := saved
				withSuffix.Slug = "modern-art-1"
				repo.On("GalleryBySlug", ctx, "modern-art-1").Return(withSuffix, nil).Once()
			},
			wantSlug: "modern-art-1",
		},
		{
			name: "invalid type",
			req: dto.CreateGalleryRequest{
				Name: "Modern Art",
				Type: "ORIGAMI",
			},
			mockSetup: func(repo *MockGalleryRepository) {},
			wantErr:   ErrInvalidType,
		},
		{
			name: "repository failure",
			req:  req,
			mockSetup: func(repo *MockGalleryRepository) {
				repo.On("SlugTaken", ctx, "modern-art").Return(false, nil).Once()
				repo.On("CreateGallery", ctx, mock.Anything).
					Return(uuid.Nil, errors.New("db down")).Once()
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockGalleryRepository)
			tt.mockSetup(repo)

			service := NewGalleryService(slog.Default(), repo)

			gallery, err := service.CreateGallery(ctx, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantSlug, gallery.Slug)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestGalleryService_UpdateGallery_KeepsSlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	service := NewGalleryService(slog.Default(), repo)

	existing := models.Gallery{
		ID:   uuid.New(),
		Name: "Old Name",
		Type: models.GalleryTypePhoto,
		Slug: "old-name",
	}

	newName := "Brand New Name"

	repo.On("GalleryBySlug", ctx, "old-name").Return(existing, nil).Once()
	repo.On("UpdateGallery", ctx, mock.MatchedBy(func(g models.Gallery) bool {
		return g.Name == newName && g.Slug == "old-name"
	})).Return(nil).Once()

	updated, err := service.UpdateGallery(ctx, "old-name", dto.UpdateGalleryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "old-name", updated.Slug)
	assert.Equal(t, newName, updated.Name)

	repo.AssertExpectations(t)
}

func TestGalleryService_GalleryBySlug_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockGalleryRepository)
	service := NewGalleryService(slog.Default(), repo)

	repo.On("GalleryBySlug", ctx, "missing").
		Return(models.Gallery{}, storage.ErrNotFound).Once()

	_, err := service.GalleryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrGalleryNotFound)

	repo.AssertExpectations(t)
}
