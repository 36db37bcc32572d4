package handlers

import (
	"vinolog_backend/internal/services"
	"vinolog_backend/internal/validator"
)

// AppHandlers собирает все хендлеры приложения в одном месте
type AppHandlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Wine    *WineHandler
	Review  *ReviewHandler
	Comment *CommentHandler
	Upload  *UploadHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		User:    NewUserHandler(base, sc.UserService),
		Wine:    NewWineHandler(base, sc.WineService),
		Review:  NewReviewHandler(base, sc.ReviewService),
		Comment: NewCommentHandler(base, sc.CommentService),
		Upload:  NewUploadHandler(base, sc.UploadService),
	}
}
