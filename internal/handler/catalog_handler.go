package handler

import (
	"net/http"

	"foodist_api/internal/model"
	"foodist_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler handles catalog read requests
type CatalogHandler struct {
	service service.CatalogService
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(s service.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{service: s, logger: logger}
}

// Ping is the liveness probe
func (h *CatalogHandler) Ping(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (h *CatalogHandler) GetItems(c *gin.Context) {
	items, err := h.service.GetItems(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to retrieve catalog items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}
	if items == nil {
		items = []model.CatalogItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CatalogHandler) GetMeals(c *gin.Context) {
	meals, err := h.service.GetMeals(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to retrieve meal types")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve meals"})
		return
	}
	if meals == nil {
		meals = []model.MealType{}
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *CatalogHandler) GetCuisines(c *gin.Context) {
	cuisines, err := h.service.GetCuisines(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to retrieve cuisine types")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cuisines"})
		return
	}
	if cuisines == nil {
		cuisines = []model.CuisineType{}
	}
	c.JSON(http.StatusOK, gin.H{"cuisines": cuisines})
}

// RegisterCatalogRoutes registers catalog routes
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.HEAD("/ping", h.Ping)
	rg.GET("/items", h.GetItems)
	rg.GET("/meals", h.GetMeals)
	rg.GET("/cuisines", h.GetCuisines)
}
