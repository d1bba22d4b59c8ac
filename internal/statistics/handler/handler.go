// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetDashboard handles GET /statistics/dashboard request.
// @Summary Get goal progress and goal alignment of the team
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.Dashboard
// @Failure 500 {object} ErrorResponse
// @Router /statistics/dashboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetDashboard(c *gin.Context) {
	resp, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		if failure(c, err) {
			h.logger.Errorw("error getting dashboard", "error", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMeeting handles GET /statistics/meeting request.
// @Summary Get the stand-up view of one day
// @Tags Statistics
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, defaults to today (UTC)"
// @Success 200 {object} model.Meeting
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/meeting [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetMeeting(c *gin.Context) {
	resp, err := h.service.GetMeeting(c.Request.Context(), c.Query("date"))
	if err != nil {
		if failure(c, err) {
			h.logger.Errorw("error getting meeting", "date", c.Query("date"), "error", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetGoalProgress handles GET /statistics/goals/:id request.
// @Summary Get the progress of one goal
// @Tags Statistics
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} model.GoalStats
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/goals/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetGoalProgress(c *gin.Context) {
	goalID := c.Param("id")

	resp, err := h.service.GetGoalProgress(c.Request.Context(), goalID)
	if err != nil {
		if failure(c, err) {
			h.logger.Errorw("error getting goal progress", "goal_id", goalID, "error", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
