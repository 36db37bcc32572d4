package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vinolog_backend/internal/auth"
	"vinolog_backend/internal/models"
	"vinolog_backend/internal/repositories"
	"vinolog_backend/internal/services/dto"
	"vinolog_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthService поднимает auth-сервис с tokeninfo-заглушкой
func newAuthService(t *testing.T, tokenInfo http.HandlerFunc) AuthService {
	t.Helper()
	srv := httptest.NewServer(tokenInfo)
	t.Cleanup(srv.Close)

	verifier := auth.NewGoogleVerifier(auth.GoogleVerifierConfig{TokenInfoURL: srv.URL})
	return NewAuthService(verifier, repositories.NewUserRepository())
}

func validTokenInfo(sub, email, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sub":"` + sub + `","email":"` + email + `","name":"` + name + `","picture":"https://img.example/p.png"}`))
	}
}

func TestExchangeGoogleToken_CreatesUser(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(t, validTokenInfo("g-123", "ada@example.com", "Ada"))

	resp, err := svc.ExchangeGoogleToken(context.Background(), db, "valid-token")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "ada@example.com", resp.User.Email)

	// Сессионный токен указывает на созданного пользователя
	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	var stored models.User
	require.NoError(t, db.First(&stored, "google_id = ?", "g-123").Error)
	assert.Equal(t, "Ada", stored.Name)
}

// Повторный обмен освежает профиль, второй строки не появляется
func TestExchangeGoogleToken_Idempotent(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)

	first := newAuthService(t, validTokenInfo("g-123", "ada@example.com", "Ada"))
	resp1, err := first.ExchangeGoogleToken(context.Background(), db, "token")
	require.NoError(t, err)

	second := newAuthService(t, validTokenInfo("g-123", "ada@example.com", "Ada Lovelace"))
	resp2, err := second.ExchangeGoogleToken(context.Background(), db, "token")
	require.NoError(t, err)

	assert.Equal(t, resp1.User.ID, resp2.User.ID)
	assert.Equal(t, int64(1), countRows(t, db, &models.User{}))

	var stored models.User
	require.NoError(t, db.First(&stored, "google_id = ?", "g-123").Error)
	assert.Equal(t, "Ada Lovelace", stored.Name)
}

// Отказ провайдера: 401 и ни одной записи в БД
func TestExchangeGoogleToken_Rejected(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := svc.ExchangeGoogleToken(context.Background(), db, "bad-token")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
	assert.Equal(t, int64(0), countRows(t, db, &models.User{}))
}

func TestExchangeGoogleToken_BlankToken(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(t, validTokenInfo("g-123", "ada@example.com", "Ada"))

	_, err := svc.ExchangeGoogleToken(context.Background(), db, "   ")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, int64(0), countRows(t, db, &models.User{}))
}

func TestLoginByEmail_KnownUser(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	user := createTestUser(t, db, "g-1", "ada@example.com")
	svc := NewAuthService(nil, repositories.NewUserRepository())

	resp, err := svc.LoginByEmail(db, &dto.EmailLoginRequest{Email: "ada@example.com"})
	require.NoError(t, err)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

// Маршрут не регистрирует пользователей: неизвестный email - 500
func TestLoginByEmail_UnknownUser(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := NewAuthService(nil, repositories.NewUserRepository())

	_, err := svc.LoginByEmail(db, &dto.EmailLoginRequest{Email: "nobody@example.com"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Equal(t, int64(0), countRows(t, db, &models.User{}))
}
