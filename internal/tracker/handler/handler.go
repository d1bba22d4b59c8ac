// Package handler provides HTTP handlers for task and goal endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/middleware"
	"github.com/festy23/goalboard/internal/statistics/aggregate"
	teamModel "github.com/festy23/goalboard/internal/team/model"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
	"github.com/festy23/goalboard/internal/tracker/service"
	"github.com/festy23/goalboard/internal/tracker/view"
)

// Handler handles HTTP requests for tracker endpoints.
type Handler struct {
	service service.Service
	team    teamModel.Team
	logger  *zap.SugaredLogger
}

// New creates a new tracker handler instance.
func New(svc service.Service, team teamModel.Team, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, team: team, logger: logger}
}

// ListTasks handles GET /tasks request.
// @Summary List tasks, optionally filtered and ordered by time
// @Tags Tasks
// @Produce json
// @Param goal_id query string false "Only tasks linked to this goal"
// @Param unlinked query bool false "Only tasks without a goal"
// @Param user_id query string false "Only tasks of this user"
// @Param date query string false "Only tasks created on this day (YYYY-MM-DD prefix)"
// @Success 200 {object} trackerModel.TasksResponse
// @Failure 400 {object} ErrorResponse
// @Router /tasks [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTasks(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	tasks := sel.Apply(h.service.Snapshot().Tasks)
	if userID := c.Query("user_id"); userID != "" {
		tasks = view.FilterByUser(tasks, userID)
	}
	if date := c.Query("date"); date != "" {
		tasks = view.FilterByDatePrefix(tasks, date)
	}

	c.JSON(http.StatusOK, trackerModel.TasksResponse{Tasks: view.SortByTime(tasks)})
}

// PersonalTasks handles GET /tasks/personal request.
// @Summary Personal task list of the acting user
// @Tags Tasks
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param goal_id query string false "Only tasks linked to this goal"
// @Param unlinked query bool false "Only tasks without a goal"
// @Success 200 {object} trackerModel.TasksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tasks/personal [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) PersonalTasks(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	tasks := view.PersonalTasks(h.service.Snapshot().Tasks, sel, actor.ID)
	c.JSON(http.StatusOK, trackerModel.TasksResponse{Tasks: tasks})
}

// TeamTasks handles GET /tasks/team request.
// @Summary Tasks grouped per team member in roster order
// @Tags Tasks
// @Produce json
// @Param goal_id query string false "Only tasks linked to this goal"
// @Param unlinked query bool false "Only tasks without a goal"
// @Success 200 {object} map[string][]view.MemberTasks
// @Failure 400 {object} ErrorResponse
// @Router /tasks/team [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) TeamTasks(c *gin.Context) {
	sel, ok := h.selection(c)
	if !ok {
		return
	}

	groups := view.TeamTasks(h.team, h.service.Snapshot().Tasks, sel)
	c.JSON(http.StatusOK, map[string]interface{}{
		"members": groups,
	})
}

// AddTask handles POST /tasks request.
// @Summary Create a task for the acting user
// @Tags Tasks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body trackerModel.AddTaskRequest true "Request"
// @Success 201 {object} trackerModel.Task
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 500 {object} ErrorResponse
// @Router /tasks [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddTask(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req trackerModel.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	task, err := h.service.AddTask(c.Request.Context(), actor, &req)
	if err != nil {
		h.fail(c, err, "error adding task", "user_id", actor.ID)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ToggleTask handles POST /tasks/:id/toggle request.
// @Summary Flip the completed flag of a task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} trackerModel.Task
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id}/toggle [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ToggleTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := h.service.ToggleTask(c.Request.Context(), taskID)
	if err != nil {
		h.fail(c, err, "error toggling task", "task_id", taskID)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id request.
// @Summary Delete a task
// @Tags Tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	if err := h.service.DeleteTask(c.Request.Context(), taskID); err != nil {
		h.fail(c, err, "error deleting task", "task_id", taskID)
		return
	}

	c.Status(http.StatusNoContent)
}

// Checkin handles POST /tasks/:id/checkin request.
// @Summary Replace the check-in of a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body trackerModel.CheckinRequest true "Request"
// @Success 200 {object} trackerModel.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id}/checkin [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Checkin(c *gin.Context) {
	taskID := c.Param("id")

	var req trackerModel.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "status is required", http.StatusBadRequest)
		return
	}

	task, err := h.service.Checkin(c.Request.Context(), taskID, req.Status, req.Comment)
	if err != nil {
		h.fail(c, err, "error checking in task", "task_id", taskID)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ConvertToGoal handles POST /tasks/:id/convert request.
// @Summary Promote a task to a new team goal
// @Tags Goals
// @Produce json
// @Param X-User-ID header string true "Acting user, must be a team lead"
// @Param id path string true "Task ID"
// @Success 201 {object} trackerModel.ConvertResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tasks/{id}/convert [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ConvertToGoal(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	taskID := c.Param("id")

	goal, task, err := h.service.ConvertToGoal(c.Request.Context(), actor, taskID)
	if err != nil {
		h.fail(c, err, "error converting task", "task_id", taskID, "user_id", actor.ID)
		return
	}

	c.JSON(http.StatusCreated, trackerModel.ConvertResponse{Goal: goal, Task: task})
}

// ListGoals handles GET /goals request.
// @Summary List goals with KPI progress
// @Tags Goals
// @Produce json
// @Success 200 {object} trackerModel.GoalsResponse
// @Router /goals [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListGoals(c *gin.Context) {
	goals := h.service.Snapshot().Goals

	resp := trackerModel.GoalsResponse{Goals: make([]trackerModel.GoalResponse, 0, len(goals))}
	for _, goal := range goals {
		resp.Goals = append(resp.Goals, goalResponse(goal))
	}

	c.JSON(http.StatusOK, resp)
}

// CreateGoal handles POST /goals request.
// @Summary Create a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user, must be a team lead"
// @Param request body trackerModel.GoalRequest true "Request"
// @Success 201 {object} trackerModel.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /goals [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateGoal(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req trackerModel.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.service.CreateGoal(c.Request.Context(), actor, &req)
	if err != nil {
		h.fail(c, err, "error creating goal", "user_id", actor.ID)
		return
	}

	c.JSON(http.StatusCreated, goalResponse(goal))
}

// UpdateGoal handles PUT /goals/:id request.
// @Summary Replace a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user, must be a team lead"
// @Param id path string true "Goal ID"
// @Param request body trackerModel.GoalRequest true "Request"
// @Success 200 {object} trackerModel.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /goals/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateGoal(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	goalID := c.Param("id")

	var req trackerModel.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.service.UpdateGoal(c.Request.Context(), actor, trackerModel.TeamGoal{
		ID:          goalID,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		KPIs:        req.KPIs,
	})
	if err != nil {
		h.fail(c, err, "error updating goal", "goal_id", goalID, "user_id", actor.ID)
		return
	}

	c.JSON(http.StatusOK, goalResponse(goal))
}

func goalResponse(goal trackerModel.TeamGoal) trackerModel.GoalResponse {
	return trackerModel.GoalResponse{TeamGoal: goal, KPIProgress: aggregate.KPIProgress(goal)}
}

// selection reads goal_id and unlinked, writing a 400 on invalid input.
func (h *Handler) selection(c *gin.Context) (view.Selection, bool) {
	unlinked := false
	if raw := c.Query("unlinked"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "unlinked must be a boolean", http.StatusBadRequest)
			return view.Selection{}, false
		}
		unlinked = parsed
	}

	sel, err := view.ParseSelection(c.Query("goal_id"), unlinked)
	if err != nil {
		domainErrorResponse(c, err)
		return view.Selection{}, false
	}
	return sel, true
}

// actor returns the acting user, writing a 401 when the route was not guarded.
func (h *Handler) actor(c *gin.Context) (teamModel.User, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		errorResponse(c, "UNAUTHENTICATED", middleware.ActorHeader+" header is required", http.StatusUnauthorized)
		return teamModel.User{}, false
	}
	return actor, true
}

// fail writes the response for a service error, logging unexpected ones.
func (h *Handler) fail(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	if domainErrorResponse(c, err) {
		return
	}
	h.logger.Errorw(msg, append(keysAndValues, "error", err)...)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
