package services

import (
	"vinolog_backend/internal/models"
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WineService interface {
	CreateWine(db *gorm.DB, req *dto.CreateWineRequest) (*dto.WineResponse, error)
	GetWine(db *gorm.DB, wineID string) (*dto.WineResponse, error)
	ListWines(db *gorm.DB, params *dto.WineListParams) (*dto.Page[*dto.WineResponse], error)

	// DeleteWine удаляет вино каталога; отзывы и их комментарии
	// уходят каскадом. Владельца у вина нет - достаточно валидной сессии.
	DeleteWine(db *gorm.DB, wineID string) error
}

type WineServiceImpl struct {
	wineRepo repositories.WineRepository
}

func NewWineService(wineRepo repositories.WineRepository) WineService {
	return &WineServiceImpl{wineRepo: wineRepo}
}

func (s *WineServiceImpl) CreateWine(db *gorm.DB, req *dto.CreateWineRequest) (*dto.WineResponse, error) {
	wine := &models.Wine{
		Name:     req.Name,
		Winery:   req.Winery,
		Country:  req.Country,
		Grape:    req.Grape,
		Vintage:  req.Vintage,
		ImageURL: req.ImageURL,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if createErr := s.wineRepo.Create(tx, wine); createErr != nil {
			return apperrors.InternalError(createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewWineResponse(wine), nil
}

func (s *WineServiceImpl) GetWine(db *gorm.DB, wineID string) (*dto.WineResponse, error) {
	wine, err := s.wineRepo.FindByID(db, wineID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWineNotFound) {
			return nil, apperrors.ErrNotFound(err, "Wine not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewWineResponse(wine), nil
}

func (s *WineServiceImpl) ListWines(db *gorm.DB, params *dto.WineListParams) (*dto.Page[*dto.WineResponse], error) {
	params.Normalize()

	filters := repositories.WineFilters{
		Name:    params.Name,
		Country: params.Country,
	}

	wines, total, err := s.wineRepo.FindWithPagination(db, filters, params.Page, params.Size)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.WineResponse, 0, len(wines))
	for i := range wines {
		responses = append(responses, dto.NewWineResponse(&wines[i]))
	}

	return dto.NewPage(responses, total, params.Page, params.Size), nil
}

func (s *WineServiceImpl) DeleteWine(db *gorm.DB, wineID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.wineRepo.Delete(tx, wineID); err != nil {
			if apperrors.Is(err, repositories.ErrWineNotFound) {
				return apperrors.ErrNotFound(err, "Wine not found")
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
}
