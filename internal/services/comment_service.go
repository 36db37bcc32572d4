package services

import (
	"vinolog_backend/internal/auth"
	"vinolog_backend/internal/models"
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(db *gorm.DB, userID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListMyComments(db *gorm.DB, userID string, page *dto.PageRequest) (*dto.Page[*dto.CommentResponse], error)
	ListReviewComments(db *gorm.DB, reviewID string, page *dto.PageRequest) (*dto.Page[*dto.CommentResponse], error)
	UpdateComment(db *gorm.DB, userID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(db *gorm.DB, userID, commentID string) error
}

type CommentServiceImpl struct {
	commentRepo repositories.CommentRepository
	reviewRepo  repositories.ReviewRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, reviewRepo repositories.ReviewRepository) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *CommentServiceImpl) CreateComment(db *gorm.DB, userID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	comment := &models.Comment{
		UserID:   userID,
		ReviewID: req.ReviewID,
		Content:  req.Content,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Комментарий ссылается на существующий отзыв
		if _, findErr := s.reviewRepo.FindByID(tx, req.ReviewID); findErr != nil {
			if apperrors.Is(findErr, repositories.ErrReviewNotFound) {
				return apperrors.ErrNotFound(findErr, "Review not found")
			}
			return apperrors.InternalError(findErr)
		}

		if createErr := s.commentRepo.Create(tx, comment); createErr != nil {
			return apperrors.InternalError(createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewCommentResponse(comment), nil
}

func (s *CommentServiceImpl) ListMyComments(db *gorm.DB, userID string, page *dto.PageRequest) (*dto.Page[*dto.CommentResponse], error) {
	page.Normalize()

	comments, total, err := s.commentRepo.FindByUserWithPagination(db, userID, page.Page, page.Size)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPage(buildCommentResponses(comments), total, page.Page, page.Size), nil
}

func (s *CommentServiceImpl) ListReviewComments(db *gorm.DB, reviewID string, page *dto.PageRequest) (*dto.Page[*dto.CommentResponse], error) {
	page.Normalize()

	if _, err := s.reviewRepo.FindByID(db, reviewID); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err, "Review not found")
		}
		return nil, apperrors.InternalError(err)
	}

	comments, total, err := s.commentRepo.FindByReviewWithPagination(db, reviewID, page.Page, page.Size)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewPage(buildCommentResponses(comments), total, page.Page, page.Size), nil
}

func (s *CommentServiceImpl) UpdateComment(db *gorm.DB, userID string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	var updated *models.Comment

	err := db.Transaction(func(tx *gorm.DB) error {
		comment, findErr := s.commentRepo.FindByID(tx, req.ID)
		if findErr != nil {
			if apperrors.Is(findErr, repositories.ErrCommentNotFound) {
				return apperrors.ErrNotFound(findErr, "Comment not found")
			}
			return apperrors.InternalError(findErr)
		}

		// Мутация разрешена только автору
		if !auth.Authorize(userID, comment).Allowed() {
			return apperrors.ErrNotResourceOwner
		}

		comment.Content = req.Content
		if updErr := s.commentRepo.Update(tx, comment); updErr != nil {
			return apperrors.InternalError(updErr)
		}
		updated = comment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewCommentResponse(updated), nil
}

func (s *CommentServiceImpl) DeleteComment(db *gorm.DB, userID, commentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		comment, findErr := s.commentRepo.FindByID(tx, commentID)
		if findErr != nil {
			if apperrors.Is(findErr, repositories.ErrCommentNotFound) {
				return apperrors.ErrNotFound(findErr, "Comment not found")
			}
			return apperrors.InternalError(findErr)
		}

		if !auth.Authorize(userID, comment).Allowed() {
			return apperrors.ErrNotResourceOwner
		}

		if delErr := s.commentRepo.Delete(tx, commentID); delErr != nil {
			if apperrors.Is(delErr, repositories.ErrCommentNotFound) {
				return apperrors.ErrNotFound(delErr, "Comment not found")
			}
			return apperrors.InternalError(delErr)
		}
		return nil
	})
}

func buildCommentResponses(comments []models.Comment) []*dto.CommentResponse {
	responses := make([]*dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, dto.NewCommentResponse(&comments[i]))
	}
	return responses
}
