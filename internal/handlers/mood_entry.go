package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moodmeal/backend/internal/apierror"
	"github.com/moodmeal/backend/internal/models"
	"github.com/moodmeal/backend/internal/service"
)

type MoodEntryHandler struct {
	moodService service.MoodEntryService
}

// NewMoodEntryHandler creates a new mood entry handler
func NewMoodEntryHandler(moodService service.MoodEntryService) *MoodEntryHandler {
	return &MoodEntryHandler{
		moodService: moodService,
	}
}

// CreateEntry handles POST /api/v1/mood-entries
func (h *MoodEntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	entry, err := h.moodService.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, entry.ToResponse())
}

// GetEntry handles GET /api/v1/mood-entries/:id
func (h *MoodEntryHandler) GetEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.moodService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		writeEntryError(c, err, "mood entry", entryID)
		return
	}

	c.JSON(http.StatusOK, entry.ToResponse())
}

// ListEntries handles GET /api/v1/mood-entries
func (h *MoodEntryHandler) ListEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	entries, pagination, err := h.moodService.ListEntries(c.Request.Context(), userID, page, limit)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	responses := make([]models.MoodEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, entries[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       responses,
		"pagination": pagination,
	})
}

// UpdateEntry handles PUT /api/v1/mood-entries/:id
func (h *MoodEntryHandler) UpdateEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	entry, err := h.moodService.UpdateEntry(c.Request.Context(), userID, entryID, &req)
	if err != nil {
		writeEntryError(c, err, "mood entry", entryID)
		return
	}

	c.JSON(http.StatusOK, entry.ToResponse())
}

// DeleteEntry handles DELETE /api/v1/mood-entries/:id
func (h *MoodEntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.moodService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		writeEntryError(c, err, "mood entry", entryID)
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary handles GET /api/v1/mood-entries/summary
func (h *MoodEntryHandler) Summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "daily")
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	summary, err := h.moodService.Summary(c.Request.Context(), userID, period, date)
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
