package dto

import "time"

// UploadRequest - провалидированный вход файлового пайплайна
type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResponse - метаданные успешно сохраненного файла
type UploadResponse struct {
	FileName      string    `json:"fileName"`
	FileURL       string    `json:"fileUrl"`
	BucketKey     string    `json:"bucketKey"`
	FileSizeBytes int64     `json:"fileSizeBytes"`
	ContentType   string    `json:"contentType"`
	UploadedAt    time.Time `json:"uploadedAt"`
}
