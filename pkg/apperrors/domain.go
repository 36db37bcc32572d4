package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
Репозитории возвращают sentinel-ошибки (ErrReviewNotFound и т.п.),
сервисы преобразуют их в AppError через эти фабрики.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", message, http.StatusConflict)
}

// --- Auth ---

// ErrInvalidGoogleToken - внешний identity-провайдер отверг токен.
var ErrInvalidGoogleToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired Google token",
	http.StatusUnauthorized,
)

// ErrInvalidSessionToken - сессионный JWT не прошел проверку подписи/срока.
var ErrInvalidSessionToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired session token",
	http.StatusUnauthorized,
)

// ErrNotResourceOwner - валидная сессия, но caller не владелец ресурса.
var ErrNotResourceOwner = New(
	CodeForbidden,
	"auth",
	"You are not the owner of this resource",
	http.StatusForbidden,
)
