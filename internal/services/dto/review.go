package dto

import (
	"time"

	"vinolog_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateReviewRequest struct {
	WineID   string  `json:"wineId" validate:"required,uuid"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=4000"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type UpdateReviewRequest struct {
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=4000"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ReviewListParams - фильтры и сортировка списка (query)
type ReviewListParams struct {
	PageRequest
	WineID string `form:"wineId" validate:"omitempty,uuid"`
	UserID string `form:"userId" validate:"omitempty,uuid"`
	Sort   string `form:"sort"` // "<field>,<asc|desc>", напр. "rating,desc"
}

// ======================
// Response DTOs
// ======================

type ReviewResponse struct {
	ID           string    `json:"id"`
	WineID       string    `json:"wineId"`
	UserID       string    `json:"userId"`
	Rating       int       `json:"rating"`
	Notes        *string   `json:"notes"`
	ImageURL     *string   `json:"imageUrl"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	User *UserSummary `json:"user,omitempty"`
	Wine *WineInfo    `json:"wine,omitempty"`
}

func NewReviewResponse(review *models.Review, commentCount int64) *ReviewResponse {
	resp := &ReviewResponse{
		ID:           review.ID,
		WineID:       review.WineID,
		UserID:       review.UserID,
		Rating:       review.Rating,
		Notes:        review.Notes,
		ImageURL:     review.ImageURL,
		CommentCount: commentCount,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
	if review.User.ID != "" {
		resp.User = NewUserSummary(&review.User)
	}
	if review.Wine.ID != "" {
		resp.Wine = NewWineInfo(&review.Wine)
	}
	return resp
}
