package dto

// GoogleLoginRequest - обмен внешнего Google ID-токена на сессию
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// EmailLoginRequest - упрощенный вход по email (не для продакшена,
// внешний провайдер не проверяется)
type EmailLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse - сессионный токен + публичная сводка пользователя
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *UserSummary `json:"user"`
}
