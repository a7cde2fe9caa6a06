package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodmeal/backend/internal/apierror"
	"github.com/moodmeal/backend/internal/service"
)

type FoodCatalogHandler struct {
	catalogService service.FoodCatalogService
}

// NewFoodCatalogHandler creates a new food catalog handler
func NewFoodCatalogHandler(catalogService service.FoodCatalogService) *FoodCatalogHandler {
	return &FoodCatalogHandler{
		catalogService: catalogService,
	}
}

// Search handles GET /api/v1/foods
func (h *FoodCatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	items, pagination, err := h.catalogService.Search(c.Request.Context(), query, category, page, limit)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"pagination": pagination,
	})
}

// GetItem handles GET /api/v1/foods/:id
func (h *FoodCatalogHandler) GetItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.catalogService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "food", strconv.FormatUint(uint64(itemID), 10)))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}
