// Package router provides tracker module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/middleware"
	teamModel "github.com/festy23/goalboard/internal/team/model"
	"github.com/festy23/goalboard/internal/tracker/handler"
	"github.com/festy23/goalboard/internal/tracker/service"
)

// RegisterRoutes registers tracker module routes. Mutations and the personal list
// require an acting user resolved through members.
func RegisterRoutes(
	r gin.IRouter,
	svc service.Service,
	team teamModel.Team,
	members middleware.MemberLookup,
	logger *zap.SugaredLogger,
) {
	h := handler.New(svc, team, logger)

	r.GET("/tasks", h.ListTasks)
	r.GET("/tasks/team", h.TeamTasks)
	r.GET("/goals", h.ListGoals)

	acting := r.Group("", middleware.Actor(members, logger))
	acting.GET("/tasks/personal", h.PersonalTasks)
	acting.POST("/tasks", h.AddTask)
	acting.POST("/tasks/:id/toggle", h.ToggleTask)
	acting.DELETE("/tasks/:id", h.DeleteTask)
	acting.POST("/tasks/:id/checkin", h.Checkin)
	acting.POST("/tasks/:id/convert", h.ConvertToGoal)
	acting.POST("/goals", h.CreateGoal)
	acting.PUT("/goals/:id", h.UpdateGoal)
}
