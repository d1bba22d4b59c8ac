// Package model provides data transfer objects for statistics module.
package model

import (
	teamModel "github.com/festy23/goalboard/internal/team/model"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

// GoalStats is the task-based progress of one goal. KPIProgress is null without KPIs.
type GoalStats struct {
	Goal           trackerModel.TeamGoal `json:"goal"`
	TotalTasks     int                   `json:"total_tasks"`
	CompletedTasks int                   `json:"completed_tasks"`
	ProgressPct    float64               `json:"progress_pct"`
	KPIProgress    *float64              `json:"kpi_progress"`
}

// MemberConnection is the share of a member's tasks linked to a goal.
type MemberConnection struct {
	Member            teamModel.User `json:"member"`
	TotalTasks        int            `json:"total_tasks"`
	TasksWithGoals    int            `json:"tasks_with_goals"`
	ConnectionRatePct float64        `json:"connection_rate_pct"`
}

// TeamConnection is the share of all tasks linked to a goal.
type TeamConnection struct {
	TotalTasks        int     `json:"total_tasks"`
	TasksWithGoals    int     `json:"tasks_with_goals"`
	ConnectionRatePct float64 `json:"connection_rate_pct"`
}

// MemberDay is a member's tasks for one day with completion rate and blockers.
type MemberDay struct {
	Member            teamModel.User      `json:"member"`
	Tasks             []trackerModel.Task `json:"tasks"`
	CompletionRatePct float64             `json:"completion_rate_pct"`
	Blockers          []trackerModel.Task `json:"blockers"`
}

// Dashboard is the team-wide goal alignment overview.
// AverageGoalProgress is meaningful only when HasGoals is true.
type Dashboard struct {
	Goals               []GoalStats        `json:"goals"`
	Members             []MemberConnection `json:"members"`
	Team                TeamConnection     `json:"team"`
	AverageGoalProgress float64            `json:"average_goal_progress"`
	HasGoals            bool               `json:"has_goals"`
}

// Meeting is the stand-up view of one day.
type Meeting struct {
	Date    string      `json:"date"`
	Members []MemberDay `json:"members"`
	Goals   []GoalStats `json:"goals"`
}
