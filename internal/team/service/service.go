// Package service provides read access to the team roster.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	teamModel "github.com/festy23/goalboard/internal/team/model"
)

// Service defines the interface for roster operations.
type Service interface {
	GetTeam(ctx context.Context) (*teamModel.TeamResponse, error)
	GetMember(ctx context.Context, userID string) (teamModel.User, error)
}

type service struct {
	team   teamModel.Team
	logger *zap.SugaredLogger
}

// New creates a new team service over a loaded roster.
func New(team teamModel.Team, logger *zap.SugaredLogger) Service {
	return &service{team: team, logger: logger}
}

// GetTeam returns the roster with team-lead flags resolved.
func (s *service) GetTeam(_ context.Context) (*teamModel.TeamResponse, error) {
	s.logger.Debugw("getting team", "team_id", s.team.ID)

	resp := teamModel.NewTeamResponse(s.team)
	return &resp, nil
}

// GetMember looks a user up on the roster.
func (s *service) GetMember(_ context.Context, userID string) (teamModel.User, error) {
	member, ok := s.team.Member(userID)
	if !ok {
		s.logger.Debugw("member not on roster", "user_id", userID)
		return teamModel.User{}, fmt.Errorf("%w: %s", teamModel.ErrUserNotFound, userID)
	}
	return member, nil
}
