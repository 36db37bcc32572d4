package handlers

import (
	"io"
	"net/http"

	"vinolog_backend/internal/logger"
	"vinolog_backend/internal/services"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	{
		files.POST("/upload", h.UploadFile)
	}
}

// UploadFile принимает multipart-поле "file"; вся валидация
// (размер, тип) лежит в сервисе, здесь только разбор формы
func (h *UploadHandler) UploadFile(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.CtxWarn(ctx, "Upload request without file part", "error", err.Error())
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing multipart field 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.Wrap(err, apperrors.CodeInternalError, "upload", "Failed to open uploaded file", http.StatusInternalServerError))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.HandleServiceError(c, apperrors.Wrap(err, apperrors.CodeInternalError, "upload", "Failed to read uploaded file", http.StatusInternalServerError))
		return
	}

	req := &dto.UploadRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	resp, err := h.uploadService.UploadFile(ctx, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
