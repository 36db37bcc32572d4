package repositories

import (
	"errors"
	"fmt"

	"vinolog_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidReviewRating = errors.New("rating must be between 1 and 5")
)

// ReviewFilters - опциональные фильтры списка, комбинируются по AND
type ReviewFilters struct {
	WineID string
	UserID string
}

// ReviewSort - пара поле+направление; пустое поле = стабильный
// порядок по времени создания
type ReviewSort struct {
	Field     string // rating, created_at
	Direction string // asc, desc
}

// allowed-list против SQL-инъекций через sort-параметр
var reviewSortFields = map[string]bool{
	"rating":     true,
	"created_at": true,
}

func (s ReviewSort) orderClause() string {
	field := s.Field
	if !reviewSortFields[field] {
		field = "created_at"
	}
	dir := "ASC"
	if s.Direction == "desc" {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", field, dir)
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindWithPagination(db *gorm.DB, filters ReviewFilters, sort ReviewSort, page, size int) ([]models.Review, int64, error)
	Update(db *gorm.DB, review *models.Review) error
	Delete(db *gorm.DB, id string) error
	CountComments(db *gorm.DB, reviewID string) (int64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("User").Preload("Wine").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindWithPagination(db *gorm.DB, filters ReviewFilters, sort ReviewSort, page, size int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{})

	if filters.WineID != "" {
		query = query.Where("wine_id = ?", filters.WineID)
	}
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("User").Preload("Wine").
		Order(sort.orderClause()).
		Offset(page * size).
		Limit(size).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) Update(db *gorm.DB, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}

	result := db.Model(&models.Review{}).Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":    review.Rating,
			"notes":     review.Notes,
			"image_url": review.ImageURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Delete удаляет отзыв; комментарии к нему сносит каскад БД
func (r *ReviewRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) CountComments(db *gorm.DB, reviewID string) (int64, error) {
	var count int64
	err := db.Model(&models.Comment{}).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}
