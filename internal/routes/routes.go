package routes

import (
	"net/http"

	"vinolog_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Wine.RegisterRoutes(api)
		appHandlers.Review.RegisterRoutes(api)
		appHandlers.Comment.RegisterRoutes(api)
		appHandlers.Upload.RegisterRoutes(api)
	}
}
