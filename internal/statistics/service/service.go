// Package service provides business logic layer for statistics module.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/statistics/aggregate"
	"github.com/festy23/goalboard/internal/statistics/model"
	teamModel "github.com/festy23/goalboard/internal/team/model"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
	trackerService "github.com/festy23/goalboard/internal/tracker/service"
)

// Source supplies the current tracker state.
type Source interface {
	Snapshot() trackerService.State
}

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetDashboard returns goal progress and goal alignment per member and team.
	GetDashboard(ctx context.Context) (*model.Dashboard, error)

	// GetMeeting returns the stand-up view of day (YYYY-MM-DD); empty means today in UTC.
	GetMeeting(ctx context.Context, day string) (*model.Meeting, error)

	// GetGoalProgress returns the progress of one goal.
	GetGoalProgress(ctx context.Context, goalID string) (*model.GoalStats, error)
}

type service struct {
	team   teamModel.Team
	source Source
	now    func() time.Time
	logger *zap.SugaredLogger
}

// Option configures the statistics service.
type Option func(*service)

// WithClock overrides the time source used for the default meeting day.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// New creates a new statistics service instance.
func New(team teamModel.Team, source Source, logger *zap.SugaredLogger, opts ...Option) Service {
	s := &service{
		team:   team,
		source: source,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetDashboard returns the dashboard aggregates.
func (s *service) GetDashboard(_ context.Context) (*model.Dashboard, error) {
	s.logger.Debugw("GetDashboard called")

	state := s.source.Snapshot()
	dashboard := aggregate.Dashboard(s.team, state.Tasks, state.Goals)

	s.logger.Infow("GetDashboard completed", "goals", len(dashboard.Goals), "tasks", dashboard.Team.TotalTasks)
	return &dashboard, nil
}

// GetMeeting returns the meeting aggregates for one day.
func (s *service) GetMeeting(_ context.Context, day string) (*model.Meeting, error) {
	s.logger.Debugw("GetMeeting called", "date", day)

	if day == "" {
		day = s.now().UTC().Format(time.DateOnly)
	}
	if _, err := time.Parse(time.DateOnly, day); err != nil {
		return nil, fmt.Errorf("%w: %s", trackerModel.ErrInvalidDate, day)
	}

	state := s.source.Snapshot()
	meeting := aggregate.Meeting(s.team, state.Tasks, state.Goals, day)

	s.logger.Infow("GetMeeting completed", "date", day)
	return &meeting, nil
}

// GetGoalProgress returns the progress of one goal.
func (s *service) GetGoalProgress(_ context.Context, goalID string) (*model.GoalStats, error) {
	s.logger.Debugw("GetGoalProgress called", "goal_id", goalID)

	state := s.source.Snapshot()
	idx := trackerModel.FindGoal(state.Goals, goalID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", trackerModel.ErrGoalNotFound, goalID)
	}

	stats := aggregate.GoalProgress(state.Goals[idx], state.Tasks)
	return &stats, nil
}
