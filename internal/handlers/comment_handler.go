package handlers

import (
	"net/http"

	"vinolog_backend/internal/middleware"
	"vinolog_backend/internal/services"
	"vinolog_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

func (h *CommentHandler) RegisterRoutes(r *gin.RouterGroup) {
	comments := r.Group("/comments")
	comments.Use(middleware.AuthMiddleware())
	{
		comments.POST("", h.CreateComment)
		comments.GET("", h.ListMyComments)
		comments.GET("/:reviewId", h.ListReviewComments)
		// PUT без path-параметра: id комментария приходит в теле
		comments.PUT("", h.UpdateComment)
		comments.DELETE("/:commentId", h.DeleteComment)
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListMyComments отдает только комментарии текущего пользователя
func (h *CommentHandler) ListMyComments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var page dto.PageRequest
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	result, err := h.commentService.ListMyComments(h.GetDB(c), userID, &page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CommentHandler) ListReviewComments(c *gin.Context) {
	reviewID := c.Param("reviewId")

	var page dto.PageRequest
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	result, err := h.commentService.ListReviewComments(h.GetDB(c), reviewID, &page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.UpdateComment(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	commentID := c.Param("commentId")
	if err := h.commentService.DeleteComment(h.GetDB(c), userID, commentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
