// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/statistics/handler"
	"github.com/festy23/goalboard/internal/statistics/service"
	teamModel "github.com/festy23/goalboard/internal/team/model"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(r gin.IRouter, team teamModel.Team, source service.Source, logger *zap.SugaredLogger) {
	svc := service.New(team, source, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/dashboard", h.GetDashboard)
	r.GET("/statistics/meeting", h.GetMeeting)
	r.GET("/statistics/goals/:id", h.GetGoalProgress)
}
