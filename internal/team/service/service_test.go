package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	teamModel "github.com/festy23/goalboard/internal/team/model"
)

func testTeam() teamModel.Team {
	return teamModel.Team{
		ID:   "team1",
		Name: "product",
		Members: []teamModel.User{
			{ID: "user1", Name: "Kim", Role: "팀장 / 프론트엔드 개발자"},
			{ID: "user2", Name: "Lee", Role: "UI/UX 디자이너"},
		},
	}
}

func TestService_GetTeam(t *testing.T) {
	svc := New(testTeam(), zaptest.NewLogger(t).Sugar())

	resp, err := svc.GetTeam(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "team1", resp.ID)
	require.Len(t, resp.Members, 2)
	assert.Equal(t, "user1", resp.Members[0].ID)
	assert.True(t, resp.Members[0].IsTeamLead)
	assert.False(t, resp.Members[1].IsTeamLead)
}

func TestService_GetMember(t *testing.T) {
	svc := New(testTeam(), zaptest.NewLogger(t).Sugar())

	t.Run("found", func(t *testing.T) {
		member, err := svc.GetMember(context.Background(), "user2")
		require.NoError(t, err)
		assert.Equal(t, "Lee", member.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetMember(context.Background(), "ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, teamModel.ErrUserNotFound)
		assert.Contains(t, err.Error(), "ghost")
	})
}
