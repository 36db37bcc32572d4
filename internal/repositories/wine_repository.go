package repositories

import (
	"errors"

	"vinolog_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWineNotFound = errors.New("wine not found")

// WineFilters - опциональные фильтры каталога, комбинируются по AND
type WineFilters struct {
	Name    string
	Country string
}

type WineRepository interface {
	Create(db *gorm.DB, wine *models.Wine) error
	FindByID(db *gorm.DB, id string) (*models.Wine, error)
	FindWithPagination(db *gorm.DB, filters WineFilters, page, size int) ([]models.Wine, int64, error)
	Delete(db *gorm.DB, id string) error
}

type WineRepositoryImpl struct{}

func NewWineRepository() WineRepository {
	return &WineRepositoryImpl{}
}

func (r *WineRepositoryImpl) Create(db *gorm.DB, wine *models.Wine) error {
	return db.Create(wine).Error
}

func (r *WineRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Wine, error) {
	var wine models.Wine
	err := db.First(&wine, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWineNotFound
		}
		return nil, err
	}
	return &wine, nil
}

func (r *WineRepositoryImpl) FindWithPagination(db *gorm.DB, filters WineFilters, page, size int) ([]models.Wine, int64, error) {
	query := db.Model(&models.Wine{})

	if filters.Name != "" {
		query = query.Where("name LIKE ?", "%"+filters.Name+"%")
	}
	if filters.Country != "" {
		query = query.Where("country = ?", filters.Country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var wines []models.Wine
	err := query.Order("created_at ASC").
		Offset(page * size).
		Limit(size).
		Find(&wines).Error
	return wines, total, err
}

// Delete удаляет вино; его отзывы и их комментарии сносит каскад БД
func (r *WineRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Wine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWineNotFound
	}
	return nil
}
