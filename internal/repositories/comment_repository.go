package repositories

import (
	"errors"

	"vinolog_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(db *gorm.DB, comment *models.Comment) error
	FindByID(db *gorm.DB, id string) (*models.Comment, error)
	FindByUserWithPagination(db *gorm.DB, userID string, page, size int) ([]models.Comment, int64, error)
	FindByReviewWithPagination(db *gorm.DB, reviewID string, page, size int) ([]models.Comment, int64, error)
	Update(db *gorm.DB, comment *models.Comment) error
	Delete(db *gorm.DB, id string) error
}

type CommentRepositoryImpl struct{}

func NewCommentRepository() CommentRepository {
	return &CommentRepositoryImpl{}
}

func (r *CommentRepositoryImpl) Create(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

func (r *CommentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Comment, error) {
	var comment models.Comment
	err := db.Preload("User").First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) FindByUserWithPagination(db *gorm.DB, userID string, page, size int) ([]models.Comment, int64, error) {
	return r.findWithPagination(db, "user_id = ?", userID, page, size)
}

func (r *CommentRepositoryImpl) FindByReviewWithPagination(db *gorm.DB, reviewID string, page, size int) ([]models.Comment, int64, error) {
	return r.findWithPagination(db, "review_id = ?", reviewID, page, size)
}

func (r *CommentRepositoryImpl) findWithPagination(db *gorm.DB, cond, arg string, page, size int) ([]models.Comment, int64, error) {
	query := db.Model(&models.Comment{}).Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := query.Preload("User").
		Order("created_at ASC").
		Offset(page * size).
		Limit(size).
		Find(&comments).Error
	return comments, total, err
}

func (r *CommentRepositoryImpl) Update(db *gorm.DB, comment *models.Comment) error {
	result := db.Model(&models.Comment{}).Where("id = ?", comment.ID).
		Updates(map[string]interface{}{
			"content": comment.Content,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
