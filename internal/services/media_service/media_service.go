package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"

	"artisthub/internal/lib/logger/sl"
	"artisthub/internal/storage"
	filestorage "artisthub/internal/storage/filestorage"
	"artisthub/internal/transport/http/dto"
)

// Upload targets map the public kind names onto storage subdirectories.
var uploadTargets = map[string]string{
	"artwork": "artworks",
	"event":   "events",
	"profile": "profile_pics",
}

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type MediaService struct {
	log     *slog.Logger
	files   filestorage.FileStorage
	maxSize int64
}

func NewMediaService(log *slog.Logger, files filestorage.FileStorage, maxSize int64) *MediaService {
	return &MediaService{
		log:     log,
		files:   files,
		maxSize: maxSize,
	}
}

// Upload validates and stores one image, returning its public URL and
// the relative path entities should persist.
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader, kind string) (dto.UploadResponse, error) {
	const op = "services.media_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
		slog.String("kind", kind),
	)

	subPath, ok := uploadTargets[kind]
	if !ok {
		subPath = uploadTargets["artwork"]
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		log.Warn("file too large", slog.Int64("size", file.Size))

		return dto.UploadResponse{}, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	ext := strings.ToLower(path.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		log.Warn("rejected file type", slog.String("ext", ext))

		return dto.UploadResponse{}, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	filePath, size, err := s.files.Save(ctx, file, subPath)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))

		return dto.UploadResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.String("path", filePath))

	return dto.UploadResponse{
		URL:  s.files.BaseURL() + "/" + filePath,
		Path: filePath,
		Size: size,
	}, nil
}

// Remove deletes a previously uploaded file. Missing files are not an error.
// The path must stay inside the storage root.
func (s *MediaService) Remove(ctx context.Context, filePath string) error {
	const op = "services.media_service.Remove"

	clean := path.Clean(filePath)
	if clean == "." || path.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
	}

	if err := s.files.Delete(ctx, clean); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
