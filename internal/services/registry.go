package services

// ServiceContainer - все сервисы приложения в одном месте,
// собирается в internal/app и раздается хэндлерам
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	WineService    WineService
	ReviewService  ReviewService
	CommentService CommentService
	UploadService  UploadService
}
