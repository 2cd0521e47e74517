package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// ActivityLogHandler handles audit-trail requests.
type ActivityLogHandler struct {
	activityLogService services.ActivityLogServicer
}

// NewActivityLogHandler creates a new ActivityLogHandler.
func NewActivityLogHandler(activityLogService services.ActivityLogServicer) *ActivityLogHandler {
	return &ActivityLogHandler{activityLogService: activityLogService}
}

// UpdateSettingsRequest represents the retention settings payload.
type UpdateSettingsRequest struct {
	MaxAgeDays int `json:"maxAgeDays" binding:"required"`
	MaxCount   int `json:"maxCount" binding:"required"`
}

// GetActivityLogs handles listing recent audit events.
// @Summary     List activity log events
// @Description Get recent activity log events, newest first
// @Tags        activity-logs
// @Produce     json
// @Param       limit  query int false "Window size (1-200, default 50)"
// @Param       offset query int false "Window offset (default 0)"
// @Success     200 {object} pagination.ListResponse[models.ActivityLogEvent] "Event window"
// @Failure     400 {object} ErrorResponse "Invalid limit or offset"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activity-logs [get]
func (h *ActivityLogHandler) GetActivityLogs(c *gin.Context) {
	var page pagination.LimitOffset

	// An explicit limit of 0 is invalid, so the query params are parsed by
	// hand rather than bound with omitempty.
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "limit must be an integer between 1 and 200"))
			return
		}
		page.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "offset must be a non-negative integer"))
			return
		}
		page.Offset = n
	}

	result, err := h.activityLogService.FindRecent(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSettings handles reading the retention settings.
// @Summary     Get activity log retention settings
// @Tags        activity-logs
// @Produce     json
// @Success     200 {object} models.ActivityLogSettings "Current settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activity-logs/settings [get]
func (h *ActivityLogHandler) GetSettings(c *gin.Context) {
	settings, err := h.activityLogService.GetSettings()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"maxAgeDays": settings.MaxAgeDays, "maxCount": settings.MaxCount})
}

// UpdateSettings handles updating the retention settings. Retention is
// enforced immediately so a tighter policy takes effect right away.
// @Summary     Update activity log retention settings
// @Tags        activity-logs
// @Accept      json
// @Produce     json
// @Param       request body UpdateSettingsRequest true "Retention settings"
// @Success     200 {object} models.ActivityLogSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Value out of range"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activity-logs/settings [put]
func (h *ActivityLogHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	settings, err := h.activityLogService.UpdateSettings(req.MaxAgeDays, req.MaxCount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.activityLogService.EnforceRetention(); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"maxAgeDays": settings.MaxAgeDays, "maxCount": settings.MaxCount})
}
