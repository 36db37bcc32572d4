package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage считает записи, чтобы проверять "ноль записей при отказе"
type fakeStorage struct {
	saves   int
	lastKey string
	failOn  error
}

func (f *fakeStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.saves++
	f.lastKey = key
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error { return nil }

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (f *fakeStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "https://cdn.example/" + key, nil
}

func TestUploadService_ValidFile(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, nil)

	data := bytes.Repeat([]byte{0x89}, 2048)
	resp, err := svc.UploadFile(context.Background(), &dto.UploadRequest{
		FileName:    "label.png",
		ContentType: "image/png",
		Data:        data,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.saves)
	assert.Equal(t, "label.png", resp.FileName)
	assert.Equal(t, int64(2048), resp.FileSizeBytes)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, store.lastKey, resp.BucketKey)
	assert.True(t, strings.HasPrefix(resp.BucketKey, "uploads/"))
	assert.True(t, strings.HasSuffix(resp.BucketKey, ".png"))
	assert.Equal(t, "https://cdn.example/"+resp.BucketKey, resp.FileURL)
	assert.False(t, resp.UploadedAt.IsZero())
}

// Два файла с одинаковым именем не должны затирать друг друга
func TestUploadService_UniqueKeys(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, nil)

	req := &dto.UploadRequest{FileName: "label.png", ContentType: "image/png", Data: []byte{1}}

	first, err := svc.UploadFile(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.UploadFile(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.BucketKey, second.BucketKey)
}

func TestUploadService_EmptyFile(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, nil)

	_, err := svc.UploadFile(context.Background(), &dto.UploadRequest{
		FileName:    "empty.png",
		ContentType: "image/png",
	})
	assertHTTPCode(t, err, http.StatusBadRequest)
	assert.Equal(t, 0, store.saves)
}

func TestUploadService_Oversize(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, &UploadConfig{
		MaxFileSize:  1024,
		AllowedTypes: []string{"image/png"},
	})

	_, err := svc.UploadFile(context.Background(), &dto.UploadRequest{
		FileName:    "big.png",
		ContentType: "image/png",
		Data:        bytes.Repeat([]byte{1}, 1025),
	})
	require.Error(t, err)
	assertHTTPCode(t, err, http.StatusBadRequest)
	assert.Equal(t, 0, store.saves)

	// Сообщение называет фактический размер и лимит
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "1025")
	assert.Contains(t, appErr.Message, "1024")
}

func TestUploadService_DisallowedType(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, nil)

	_, err := svc.UploadFile(context.Background(), &dto.UploadRequest{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Data:        []byte{1, 2, 3},
	})
	require.Error(t, err)
	assertHTTPCode(t, err, http.StatusBadRequest)
	assert.Equal(t, 0, store.saves)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "application/pdf")
	assert.Contains(t, appErr.Message, "image/jpeg")
}

func TestUploadService_MissingContentType(t *testing.T) {
	store := &fakeStorage{}
	svc := NewUploadService(store, nil)

	_, err := svc.UploadFile(context.Background(), &dto.UploadRequest{
		FileName: "noname.png",
		Data:     []byte{1, 2, 3},
	})
	assertHTTPCode(t, err, http.StatusBadRequest)
	assert.Equal(t, 0, store.saves)
}

func TestUploadService_StorageFailure(t *testing.T) {
	store := &fakeStorage{failOn: io.ErrClosedPipe}
	svc := NewUploadService(store, nil)

	_, err := svc.UploadFile(context.Background(), &dto.UploadRequest{
		FileName:    "label.webp",
		ContentType: "image/webp",
		Data:        []byte{1, 2, 3},
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)
}

func TestUploadService_DefaultConfig(t *testing.T) {
	cfg := GetDefaultUploadConfig()
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.ElementsMatch(t, []string{"image/jpeg", "image/png", "image/webp"}, cfg.AllowedTypes)
}
