package handlers

import (
	"net/http"

	"vinolog_backend/internal/middleware"
	"vinolog_backend/internal/services"
	"vinolog_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WineHandler struct {
	*BaseHandler
	wineService services.WineService
}

func NewWineHandler(base *BaseHandler, wineService services.WineService) *WineHandler {
	return &WineHandler{
		BaseHandler: base,
		wineService: wineService,
	}
}

func (h *WineHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/wines")
	{
		public.GET("", h.ListWines)
		public.GET("/:wineId", h.GetWine)
	}

	// Protected routes
	wines := r.Group("/wines")
	wines.Use(middleware.AuthMiddleware())
	{
		wines.POST("", h.CreateWine)
		wines.DELETE("/:wineId", h.DeleteWine)
	}
}

func (h *WineHandler) CreateWine(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.CreateWineRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	wine, err := h.wineService.CreateWine(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wine)
}

func (h *WineHandler) GetWine(c *gin.Context) {
	wineID := c.Param("wineId")

	wine, err := h.wineService.GetWine(h.GetDB(c), wineID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, wine)
}

func (h *WineHandler) ListWines(c *gin.Context) {
	var params dto.WineListParams
	if !h.BindAndValidateQuery(c, &params) {
		return
	}

	page, err := h.wineService.ListWines(h.GetDB(c), &params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeleteWine удаляет вино каталога; отзывы и комментарии уходят каскадом
func (h *WineHandler) DeleteWine(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	wineID := c.Param("wineId")
	if err := h.wineService.DeleteWine(h.GetDB(c), wineID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
