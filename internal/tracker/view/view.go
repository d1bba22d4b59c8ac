// Package view derives filtered and ordered task lists. Functions never modify their input.
package view

import (
	"sort"
	"strings"

	teamModel "github.com/festy23/goalboard/internal/team/model"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

// FilterByGoal returns the tasks linked to goalID.
func FilterByGoal(tasks []trackerModel.Task, goalID string) []trackerModel.Task {
	return filter(tasks, func(task trackerModel.Task) bool {
		return task.TeamGoalID == goalID
	})
}

// FilterUnlinked returns the tasks without a goal.
func FilterUnlinked(tasks []trackerModel.Task) []trackerModel.Task {
	return filter(tasks, func(task trackerModel.Task) bool {
		return !task.Linked()
	})
}

// FilterByUser returns the tasks owned by userID.
func FilterByUser(tasks []trackerModel.Task, userID string) []trackerModel.Task {
	return filter(tasks, func(task trackerModel.Task) bool {
		return task.UserID == userID
	})
}

// FilterByDatePrefix returns the tasks whose ISO-8601 creation timestamp starts with prefix,
// typically a YYYY-MM-DD day.
func FilterByDatePrefix(tasks []trackerModel.Task, prefix string) []trackerModel.Task {
	return filter(tasks, func(task trackerModel.Task) bool {
		return strings.HasPrefix(task.Timestamp(), prefix)
	})
}

// SortByTime orders tasks by ascending HH:MM time. Tasks without a time come last and
// keep their relative order.
func SortByTime(tasks []trackerModel.Task) []trackerModel.Task {
	out := trackerModel.CloneTasks(tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Time, out[j].Time
		switch {
		case a == "":
			return false
		case b == "":
			return true
		default:
			return a < b
		}
	})
	return out
}

func filter(tasks []trackerModel.Task, keep func(trackerModel.Task) bool) []trackerModel.Task {
	out := make([]trackerModel.Task, 0, len(tasks))
	for _, task := range tasks {
		if keep(task) {
			out = append(out, task.Clone())
		}
	}
	return out
}

// Selection is the goal filter of the personal list: one goal, unlinked tasks, or everything.
type Selection struct {
	GoalID   string
	Unlinked bool
}

// SelectGoal selects the tasks of one goal.
func SelectGoal(goalID string) Selection {
	return Selection{GoalID: goalID}
}

// SelectUnlinked selects the tasks without a goal.
func SelectUnlinked() Selection {
	return Selection{Unlinked: true}
}

// SelectAll clears the selection.
func SelectAll() Selection {
	return Selection{}
}

// ParseSelection builds a Selection from request parameters.
func ParseSelection(goalID string, unlinked bool) (Selection, error) {
	switch {
	case goalID != "" && unlinked:
		return Selection{}, trackerModel.ErrInvalidSelection
	case goalID != "":
		return SelectGoal(goalID), nil
	case unlinked:
		return SelectUnlinked(), nil
	default:
		return SelectAll(), nil
	}
}

// Apply filters tasks by the selection.
func (s Selection) Apply(tasks []trackerModel.Task) []trackerModel.Task {
	switch {
	case s.Unlinked:
		return FilterUnlinked(tasks)
	case s.GoalID != "":
		return FilterByGoal(tasks, s.GoalID)
	default:
		return trackerModel.CloneTasks(tasks)
	}
}

// PersonalTasks is the personal list of userID: selection, then owner, then time order.
func PersonalTasks(tasks []trackerModel.Task, sel Selection, userID string) []trackerModel.Task {
	return SortByTime(FilterByUser(sel.Apply(tasks), userID))
}

// MemberTasks is one member's time-ordered tasks.
type MemberTasks struct {
	Member teamModel.User      `json:"member"`
	Tasks  []trackerModel.Task `json:"tasks"`
}

// TeamTasks groups the selected tasks by member in roster order.
func TeamTasks(team teamModel.Team, tasks []trackerModel.Task, sel Selection) []MemberTasks {
	selected := sel.Apply(tasks)
	out := make([]MemberTasks, 0, len(team.Members))
	for _, member := range team.Members {
		out = append(out, MemberTasks{
			Member: member,
			Tasks:  SortByTime(FilterByUser(selected, member.ID)),
		})
	}
	return out
}
