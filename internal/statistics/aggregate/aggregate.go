// Package aggregate computes progress and goal-alignment statistics over task and goal
// collections. All functions are pure; percentages are returned unrounded except KPIProgress.
package aggregate

import (
	"math"

	"github.com/festy23/goalboard/internal/statistics/model"
	teamModel "github.com/festy23/goalboard/internal/team/model"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
	"github.com/festy23/goalboard/internal/tracker/view"
)

// percent returns part/total*100, or 0 when total is 0.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// GoalProgress counts the tasks linked to goal and the completed share of them.
func GoalProgress(goal trackerModel.TeamGoal, tasks []trackerModel.Task) model.GoalStats {
	total, completed := 0, 0
	for _, task := range tasks {
		if task.TeamGoalID != goal.ID {
			continue
		}
		total++
		if task.Completed {
			completed++
		}
	}

	return model.GoalStats{
		Goal:           goal.Clone(),
		TotalTasks:     total,
		CompletedTasks: completed,
		ProgressPct:    percent(completed, total),
		KPIProgress:    KPIProgress(goal),
	}
}

// GoalsProgress applies GoalProgress to every goal in order.
func GoalsProgress(goals []trackerModel.TeamGoal, tasks []trackerModel.Task) []model.GoalStats {
	out := make([]model.GoalStats, 0, len(goals))
	for _, goal := range goals {
		out = append(out, GoalProgress(goal, tasks))
	}
	return out
}

// KPIProgress is the unweighted mean of current/target*100 over the goal's KPIs, rounded
// half up to an integer. Values above 100 are kept. Returns nil when the goal has no KPIs
// or the mean is not finite.
func KPIProgress(goal trackerModel.TeamGoal) *float64 {
	if len(goal.KPIs) == 0 {
		return nil
	}

	var sum float64
	for _, kpi := range goal.KPIs {
		if kpi.Target == 0 {
			continue
		}
		sum += kpi.Current / kpi.Target * 100
	}

	mean := math.Floor(sum/float64(len(goal.KPIs)) + 0.5)
	if math.IsInf(mean, 0) || math.IsNaN(mean) {
		return nil
	}
	return &mean
}

// ConnectionRate is the share of tasks linked to any goal, 0 for no tasks.
func ConnectionRate(tasks []trackerModel.Task) float64 {
	return percent(countLinked(tasks), len(tasks))
}

// MemberStats computes the connection rate of one member's tasks.
func MemberStats(member teamModel.User, tasks []trackerModel.Task) model.MemberConnection {
	owned := view.FilterByUser(tasks, member.ID)
	linked := countLinked(owned)

	return model.MemberConnection{
		Member:            member,
		TotalTasks:        len(owned),
		TasksWithGoals:    linked,
		ConnectionRatePct: percent(linked, len(owned)),
	}
}

// TeamStats computes the connection rate over all tasks.
func TeamStats(tasks []trackerModel.Task) model.TeamConnection {
	linked := countLinked(tasks)

	return model.TeamConnection{
		TotalTasks:        len(tasks),
		TasksWithGoals:    linked,
		ConnectionRatePct: percent(linked, len(tasks)),
	}
}

// MemberCompletionAndBlockers scopes tasksForDay to member and reports the completed
// share and the tasks whose latest check-in is blocked.
func MemberCompletionAndBlockers(member teamModel.User, tasksForDay []trackerModel.Task) model.MemberDay {
	owned := view.FilterByUser(tasksForDay, member.ID)

	completed := 0
	blockers := make([]trackerModel.Task, 0)
	for _, task := range owned {
		if task.Completed {
			completed++
		}
		if task.Blocked() {
			blockers = append(blockers, task)
		}
	}

	return model.MemberDay{
		Member:            member,
		Tasks:             owned,
		CompletionRatePct: percent(completed, len(owned)),
		Blockers:          blockers,
	}
}

// AverageGoalProgress is the unweighted mean of ProgressPct. ok is false when there are
// no goals, in which case the value is 0 and carries no meaning.
func AverageGoalProgress(stats []model.GoalStats) (float64, bool) {
	if len(stats) == 0 {
		return 0, false
	}

	var sum float64
	for _, s := range stats {
		sum += s.ProgressPct
	}
	return sum / float64(len(stats)), true
}

// Dashboard assembles goal progress, per-member and team connection rates.
func Dashboard(team teamModel.Team, tasks []trackerModel.Task, goals []trackerModel.TeamGoal) model.Dashboard {
	goalStats := GoalsProgress(goals, tasks)

	members := make([]model.MemberConnection, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, MemberStats(member, tasks))
	}

	average, ok := AverageGoalProgress(goalStats)
	return model.Dashboard{
		Goals:               goalStats,
		Members:             members,
		Team:                TeamStats(tasks),
		AverageGoalProgress: average,
		HasGoals:            ok,
	}
}

// Meeting assembles the per-member view of the tasks created on day (YYYY-MM-DD).
// Goal progress covers all tasks regardless of day.
func Meeting(
	team teamModel.Team,
	tasks []trackerModel.Task,
	goals []trackerModel.TeamGoal,
	day string,
) model.Meeting {
	tasksForDay := view.FilterByDatePrefix(tasks, day)

	members := make([]model.MemberDay, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, MemberCompletionAndBlockers(member, tasksForDay))
	}

	return model.Meeting{
		Date:    day,
		Members: members,
		Goals:   GoalsProgress(goals, tasks),
	}
}

func countLinked(tasks []trackerModel.Task) int {
	n := 0
	for _, task := range tasks {
		if task.Linked() {
			n++
		}
	}
	return n
}
