package services

import (
	"strings"

	"vinolog_backend/internal/auth"
	"vinolog_backend/internal/models"
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(db *gorm.DB, userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error)
	ListReviews(db *gorm.DB, params *dto.ReviewListParams) (*dto.Page[*dto.ReviewResponse], error)
	UpdateReview(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(db *gorm.DB, userID, reviewID string) error
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
	wineRepo   repositories.WineRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, wineRepo repositories.WineRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		wineRepo:   wineRepo,
	}
}

func (s *ReviewServiceImpl) CreateReview(db *gorm.DB, userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	review := &models.Review{
		UserID:   userID,
		WineID:   req.WineID,
		Rating:   req.Rating,
		Notes:    req.Notes,
		ImageURL: req.ImageURL,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Отзыв ссылается на существующее вино
		if _, findErr := s.wineRepo.FindByID(tx, req.WineID); findErr != nil {
			if apperrors.Is(findErr, repositories.ErrWineNotFound) {
				return apperrors.ErrNotFound(findErr, "Wine not found")
			}
			return apperrors.InternalError(findErr)
		}

		if createErr := s.reviewRepo.Create(tx, review); createErr != nil {
			if apperrors.Is(createErr, repositories.ErrInvalidReviewRating) {
				return apperrors.NewValidationError("rating must be between 1 and 5")
			}
			return apperrors.InternalError(createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewReviewResponse(review, 0), nil
}

func (s *ReviewServiceImpl) GetReview(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err, "Review not found")
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.reviewRepo.CountComments(db, reviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewReviewResponse(review, count), nil
}

func (s *ReviewServiceImpl) ListReviews(db *gorm.DB, params *dto.ReviewListParams) (*dto.Page[*dto.ReviewResponse], error) {
	params.Normalize()

	filters := repositories.ReviewFilters{
		WineID: params.WineID,
		UserID: params.UserID,
	}

	reviews, total, err := s.reviewRepo.FindWithPagination(db, filters, parseReviewSort(params.Sort), params.Page, params.Size)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		count, cntErr := s.reviewRepo.CountComments(db, reviews[i].ID)
		if cntErr != nil {
			return nil, apperrors.InternalError(cntErr)
		}
		responses = append(responses, dto.NewReviewResponse(&reviews[i], count))
	}

	return dto.NewPage(responses, total, params.Page, params.Size), nil
}

func (s *ReviewServiceImpl) UpdateReview(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	var updated *models.Review

	err := db.Transaction(func(tx *gorm.DB) error {
		review, findErr := s.reviewRepo.FindByID(tx, reviewID)
		if findErr != nil {
			if apperrors.Is(findErr, repositories.ErrReviewNotFound) {
				return apperrors.ErrNotFound(findErr, "Review not found")
			}
			return apperrors.InternalError(findErr)
		}

		// Мутация разрешена только владельцу
		if !auth.Authorize(userID, review).Allowed() {
			return apperrors.ErrNotResourceOwner
		}

		review.Rating = req.Rating
		review.Notes = req.Notes
		review.ImageURL = req.ImageURL

		if updErr := s.reviewRepo.Update(tx, review); updErr != nil {
			if apperrors.Is(updErr, repositories.ErrInvalidReviewRating) {
				return apperrors.NewValidationError("rating must be between 1 and 5")
			}
			return apperrors.InternalError(updErr)
		}
		updated = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	count, err := s.reviewRepo.CountComments(db, reviewID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewReviewResponse(updated, count), nil
}

func (s *ReviewServiceImpl) DeleteReview(db *gorm.DB, userID, reviewID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		review, findErr := s.reviewRepo.FindByID(tx, reviewID)
		if findErr != nil {
			if apperrors.Is(findErr, repositories.ErrReviewNotFound) {
				return apperrors.ErrNotFound(findErr, "Review not found")
			}
			return apperrors.InternalError(findErr)
		}

		if !auth.Authorize(userID, review).Allowed() {
			return apperrors.ErrNotResourceOwner
		}

		// Комментарии к отзыву сносит каскад в той же транзакции,
		// повторной проверки владения для них нет
		if delErr := s.reviewRepo.Delete(tx, reviewID); delErr != nil {
			if apperrors.Is(delErr, repositories.ErrReviewNotFound) {
				return apperrors.ErrNotFound(delErr, "Review not found")
			}
			return apperrors.InternalError(delErr)
		}
		return nil
	})
}

// parseReviewSort разбирает "<field>,<direction>" из query
func parseReviewSort(raw string) repositories.ReviewSort {
	if raw == "" {
		return repositories.ReviewSort{}
	}
	parts := strings.SplitN(raw, ",", 2)
	sort := repositories.ReviewSort{Field: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		sort.Direction = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	return sort
}
