package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"vinolog_backend/internal/logger"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/internal/storage"
	"vinolog_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadConfig - лимиты файлового пайплайна
type UploadConfig struct {
	MaxFileSize  int64
	AllowedTypes []string
}

func GetDefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize:  10 * 1024 * 1024, // 10 MiB
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
}

type UploadService interface {
	// UploadFile валидирует файл и отдает байты в хранилище.
	// Любой отказ валидации - ноль записей в сторедж;
	// успех - ровно одна запись.
	UploadFile(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage storage.Storage
	config  *UploadConfig
}

func NewUploadService(storage storage.Storage, config *UploadConfig) UploadService {
	if config == nil {
		config = GetDefaultUploadConfig()
	}
	return &uploadService{
		storage: storage,
		config:  config,
	}
}

func (s *uploadService) UploadFile(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	if err := s.validateFile(req); err != nil {
		return nil, err
	}

	key := s.buildStorageKey(req.FileName)

	if err := s.storage.Save(ctx, key, bytes.NewReader(req.Data), req.ContentType); err != nil {
		logger.CtxWithError(ctx, "file storage write failed", err, "key", key)
		return nil, apperrors.NewStorageError(err)
	}

	fileURL, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	logger.CtxInfo(ctx, "file uploaded", "key", key, "size", len(req.Data))

	return &dto.UploadResponse{
		FileName:      req.FileName,
		FileURL:       fileURL,
		BucketKey:     key,
		FileSizeBytes: int64(len(req.Data)),
		ContentType:   req.ContentType,
		UploadedAt:    time.Now().UTC(),
	}, nil
}

// validateFile - каждое сообщение называет нарушенное правило
func (s *uploadService) validateFile(req *dto.UploadRequest) *apperrors.AppError {
	if len(req.Data) == 0 {
		return apperrors.NewValidationError("file is empty")
	}

	if int64(len(req.Data)) > s.config.MaxFileSize {
		return apperrors.NewValidationError(fmt.Sprintf(
			"file size %d bytes exceeds the limit of %d bytes", len(req.Data), s.config.MaxFileSize))
	}

	if req.ContentType == "" {
		return apperrors.NewValidationError("content type is missing; allowed types: " +
			strings.Join(s.config.AllowedTypes, ", "))
	}

	for _, allowed := range s.config.AllowedTypes {
		if req.ContentType == allowed {
			return nil
		}
	}

	return apperrors.NewValidationError(fmt.Sprintf(
		"content type %q is not allowed; allowed types: %s",
		req.ContentType, strings.Join(s.config.AllowedTypes, ", ")))
}

// buildStorageKey генерирует уникальный ключ, сохраняя расширение файла
func (s *uploadService) buildStorageKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return "uploads/" + uuid.NewString() + ext
}
