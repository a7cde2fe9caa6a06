package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodmeal/backend/internal/apierror"
	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/service"
)

type FoodEntryHandler struct {
	foodService service.FoodEntryService
}

// NewFoodEntryHandler creates a new food entry handler
func NewFoodEntryHandler(foodService service.FoodEntryService) *FoodEntryHandler {
	return &FoodEntryHandler{
		foodService: foodService,
	}
}

// CreateEntry handles POST /api/v1/food-entries
func (h *FoodEntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateFoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	entry, err := h.foodService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, entry.ToResponse())
}

// GetEntry handles GET /api/v1/food-entries/:id
func (h *FoodEntryHandler) GetEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.foodService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		writeEntryError(c, err, "food entry", entryID)
		return
	}

	c.JSON(http.StatusOK, entry.ToResponse())
}

// ListEntries handles GET /api/v1/food-entries
func (h *FoodEntryHandler) ListEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	entries, pagination, err := h.foodService.ListEntries(c.Request.Context(), userID, page, limit)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	responses := make([]models.FoodEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, entries[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       responses,
		"pagination": pagination,
	})
}

// UpdateEntry handles PUT /api/v1/food-entries/:id
func (h *FoodEntryHandler) UpdateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateFoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	entry, err := h.foodService.UpdateEntry(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		writeEntryError(c, err, "food entry", entryID)
		return
	}

	c.JSON(http.StatusOK, entry.ToResponse())
}

// DeleteEntry handles DELETE /api/v1/food-entries/:id
func (h *FoodEntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.foodService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		writeEntryError(c, err, "food entry", entryID)
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary handles GET /api/v1/food-entries/summary
func (h *FoodEntryHandler) Summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "daily")
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	summary, err := h.foodService.Summary(c.Request.Context(), userID, period, date)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrInvalidPeriod) {
			apierror.WriteProblem(c, apierror.NewInvalidPeriodError(requestID, period))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, summary)
}

// writeEntryError maps service errors from single-entry operations to
// problem responses.
func writeEntryError(c *gin.Context, err error, resource string, id uint) {
	requestID := apierror.GetRequestID(c)
	if errors.Is(err, service.ErrNotFound) {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, strconv.FormatUint(uint64(id), 10)))
		return
	}
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// dateQuery parses an optional YYYY-MM-DD query parameter, defaulting
// to now.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{{
			Field:   name,
			Message: "must be a date in YYYY-MM-DD format",
			Code:    "invalid_format",
		}}))
		return time.Time{}, false
	}
	return date, true
}
