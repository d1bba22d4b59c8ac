package model

// AddTaskRequest represents the request to create a task.
type AddTaskRequest struct {
	Title      string `json:"title"`
	Time       string `json:"time"`
	TeamGoalID string `json:"teamGoalId"`
}

// CheckinRequest represents the request to submit a check-in.
type CheckinRequest struct {
	Status  CheckinStatus `json:"status"  binding:"required"`
	Comment string        `json:"comment"`
}

// GoalRequest represents the goal form, used for both creation and update.
// On update an empty Color keeps the stored color.
type GoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	StartDate   string `json:"startDate"`
	DueDate     string `json:"dueDate"`
	KPIs        []KPI  `json:"kpis"`
}

// GoalResponse is a goal together with its KPI progress, null when it has no KPIs.
type GoalResponse struct {
	TeamGoal
	KPIProgress *float64 `json:"kpiProgress"`
}

// ConvertResponse represents the result of promoting a task to a goal.
type ConvertResponse struct {
	Goal TeamGoal `json:"goal"`
	Task Task     `json:"task"`
}

// TasksResponse wraps a task list.
type TasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// GoalsResponse wraps a goal list.
type GoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
