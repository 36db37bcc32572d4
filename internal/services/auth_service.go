package services

import (
	"context"
	"net/http"
	"strings"

	"vinolog_backend/internal/auth"
	"vinolog_backend/internal/logger"
	"vinolog_backend/internal/models"
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	// ExchangeGoogleToken обменивает внешний Google ID-токен на сессию,
	// создавая или обновляя локального пользователя (идемпотентный upsert)
	ExchangeGoogleToken(ctx context.Context, db *gorm.DB, idToken string) (*dto.LoginResponse, error)

	// LoginByEmail - упрощенный вход без внешней проверки (dev/test).
	// Никогда не создает пользователя.
	LoginByEmail(db *gorm.DB, req *dto.EmailLoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	verifier auth.GoogleVerifier
	userRepo repositories.UserRepository
}

func NewAuthService(verifier auth.GoogleVerifier, userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		verifier: verifier,
		userRepo: userRepo,
	}
}

func (s *AuthServiceImpl) ExchangeGoogleToken(ctx context.Context, db *gorm.DB, idToken string) (*dto.LoginResponse, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, apperrors.NewValidationError("idToken must not be blank")
	}

	// Сетевой вызов к identity-провайдеру. До успешной проверки
	// никаких записей в БД не происходит.
	identity, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		logger.CtxWarn(ctx, "google token rejected", "error", err.Error())
		return nil, apperrors.ErrInvalidGoogleToken
	}

	var user *models.User

	// Upsert по google_id в одной транзакции: либо один insert,
	// либо один update, дубликат невозможен (uniqueIndex страхует)
	err = db.Transaction(func(tx *gorm.DB) error {
		existing, findErr := s.userRepo.FindByGoogleID(tx, identity.GoogleID)
		if findErr != nil {
			if !apperrors.Is(findErr, repositories.ErrUserNotFound) {
				return apperrors.InternalError(findErr)
			}
			newUser := &models.User{
				GoogleID:  identity.GoogleID,
				Email:     identity.Email,
				Name:      identity.Name,
				AvatarURL: identity.AvatarURL,
			}
			if createErr := s.userRepo.Create(tx, newUser); createErr != nil {
				return apperrors.InternalError(createErr)
			}
			user = newUser
			return nil
		}

		// Повторный вход: освежаем имя и аватар
		existing.Name = identity.Name
		existing.AvatarURL = identity.AvatarURL
		if updErr := s.userRepo.Update(tx, existing); updErr != nil {
			return apperrors.InternalError(updErr)
		}
		user = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "google identity exchanged", "user_id", user.ID)

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserSummary(user),
	}, nil
}

func (s *AuthServiceImpl) LoginByEmail(db *gorm.DB, req *dto.EmailLoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Унаследованное поведение: отсутствие пользователя на этом
			// маршруте отдается как 500, а не 404
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "auth",
				"No user registered for email "+req.Email, http.StatusInternalServerError)
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserSummary(user),
	}, nil
}
