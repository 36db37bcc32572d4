package services

import (
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetUser(db *gorm.DB, userID string) (*dto.UserSummary, error)

	// DeleteUser удаляет аккаунт; отзывы и их комментарии
	// уходят каскадом на стороне БД в той же транзакции
	DeleteUser(db *gorm.DB, userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, userID string) (*dto.UserSummary, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserSummary(user), nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Delete(tx, userID); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrNotFound(err, "User not found")
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
}
