package handlers

import (
	"net/http"

	"vinolog_backend/internal/services"
	"vinolog_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/google", h.GoogleLogin)
		auth.POST("/login", h.EmailLogin)
	}
}

// GoogleLogin обменивает Google ID-токен на локальную сессию.
// Невалидный внешний токен - 401, пользователь не создается.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.ExchangeGoogleToken(c.Request.Context(), h.GetDB(c), req.IDToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// EmailLogin - упрощенный вход по email без пароля (dev/test сценарий)
func (h *AuthHandler) EmailLogin(c *gin.Context) {
	var req dto.EmailLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginByEmail(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
