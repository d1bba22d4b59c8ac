package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appConfig "github.com/festy23/goalboard/internal/config"
	"github.com/festy23/goalboard/internal/health"
	"github.com/festy23/goalboard/internal/kv"
	"github.com/festy23/goalboard/internal/middleware"
	statisticsRouter "github.com/festy23/goalboard/internal/statistics/router"
	"github.com/festy23/goalboard/internal/team/roster"
	teamRouter "github.com/festy23/goalboard/internal/team/router"
	teamService "github.com/festy23/goalboard/internal/team/service"
	"github.com/festy23/goalboard/internal/tracker/repository"
	trackerRouter "github.com/festy23/goalboard/internal/tracker/router"
	trackerService "github.com/festy23/goalboard/internal/tracker/service"
)

// app is the wired HTTP application together with the resources it owns.
type app struct {
	router *gin.Engine
	store  kv.Store
}

// newApp loads the roster, opens storage, restores tracker state and registers all routes.
func newApp(ctx context.Context, cfg appConfig.Config, logger *zap.SugaredLogger) (*app, error) {
	team, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	logger.Infow("roster loaded", "team_id", team.ID, "members", team.MemberIDs())

	store, err := kv.Open(ctx, cfg.Storage, cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	tracker := trackerService.New(repository.New(store, cfg.Storage.ResetOnCorrupt(), logger), logger)
	if err := tracker.Load(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(logger), middleware.Recovery(logger))

	r.GET("/health", health.New(store, logger).Check)

	members := teamService.New(team, logger)
	teamRouter.RegisterRoutes(r, members, logger)
	trackerRouter.RegisterRoutes(r, tracker, team, members, logger)
	statisticsRouter.RegisterRoutes(r, team, tracker, logger)

	return &app{router: r, store: store}, nil
}

// Close releases the storage backend.
func (a *app) Close() error {
	return a.store.Close()
}
