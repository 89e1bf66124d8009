package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"habitflow/internal/constants"
	apierrors "habitflow/internal/errors"
	"habitflow/internal/middleware"
	"habitflow/internal/services"
	"habitflow/internal/utils"
)

// AnalyticsHandler exposes the daily aggregation endpoint.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetDaily returns per-day completion summaries for a date window. The
// window is either explicit from/to bounds or the last N days ending
// today; validation failures return 400 before any aggregation runs.
func (h *AnalyticsHandler) GetDaily(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	input := services.DailyInput{
		Days:       constants.DefaultAnalyticsDays,
		OnlyActive: true,
	}

	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			apierrors.BadRequest(c, "")
			return
		}
		input.Days = days
	}

	if onlyActiveStr := c.Query("onlyActive"); onlyActiveStr != "" {
		onlyActive, err := strconv.ParseBool(onlyActiveStr)
		if err != nil {
			apierrors.BadRequest(c, "")
			return
		}
		input.OnlyActive = onlyActive
	}

	var err error
	if input.From, err = parseDayParam(c.Query("from")); err != nil {
		apierrors.BadRequest(c, "")
		return
	}
	if input.To, err = parseDayParam(c.Query("to")); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	result, err := h.analyticsService.Daily(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseDayParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	day, err := utils.ParseDay(value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
