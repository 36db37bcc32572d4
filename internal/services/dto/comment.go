package dto

import (
	"time"

	"vinolog_backend/internal/models"
)

type CreateCommentRequest struct {
	ReviewID string `json:"reviewId" validate:"required,uuid"`
	Content  string `json:"content" validate:"required,notblank,max=2000"`
}

// UpdateCommentRequest - id приходит в теле (PUT /comments без path-параметра)
type UpdateCommentRequest struct {
	ID      string `json:"id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,notblank,max=2000"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	ReviewID  string    `json:"reviewId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *UserSummary `json:"user,omitempty"`
}

func NewCommentResponse(comment *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        comment.ID,
		ReviewID:  comment.ReviewID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.User.ID != "" {
		resp.User = NewUserSummary(&comment.User)
	}
	return resp
}
