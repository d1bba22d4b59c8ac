package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// KPI is a numeric metric tracked by a goal. Progress is Current/Target as a percentage.
type KPI struct {
	ID      string  `json:"id"`
	Metric  string  `json:"metric"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
	Current float64 `json:"current"`
}

// TeamGoal is a shared objective. Dates are YYYY-MM-DD; empty means absent.
type TeamGoal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	StartDate   string `json:"startDate,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	KPIs        []KPI  `json:"kpis,omitempty"`
}

// Clone returns a copy that shares no memory with g.
func (g TeamGoal) Clone() TeamGoal {
	if g.KPIs != nil {
		g.KPIs = append([]KPI(nil), g.KPIs...)
	}
	return g
}

// CloneGoals copies a goal collection element by element.
func CloneGoals(goals []TeamGoal) []TeamGoal {
	out := make([]TeamGoal, len(goals))
	for i, goal := range goals {
		out[i] = goal.Clone()
	}
	return out
}

// FindGoal returns the index of the goal with the given id, or -1.
func FindGoal(goals []TeamGoal, id string) int {
	for i, goal := range goals {
		if goal.ID == id {
			return i
		}
	}
	return -1
}

// FindTask returns the index of the task with the given id, or -1.
func FindTask(tasks []Task, id string) int {
	for i, task := range tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// SanitizeKPIs drops entries with an empty metric or a non-positive target and
// assigns ids to the survivors that have none.
func SanitizeKPIs(kpis []KPI, newID func() string) []KPI {
	out := make([]KPI, 0, len(kpis))
	for _, kpi := range kpis {
		if strings.TrimSpace(kpi.Metric) == "" || kpi.Target <= 0 {
			continue
		}
		if kpi.ID == "" {
			kpi.ID = newID()
		}
		out = append(out, kpi)
	}
	return out
}

// ValidateKPIs rejects KPIs whose target, current value or progress ratio is not a
// finite number. Entries that SanitizeKPIs would drop are ignored.
func ValidateKPIs(kpis []KPI) error {
	var total float64
	for _, kpi := range kpis {
		if strings.TrimSpace(kpi.Metric) == "" || kpi.Target <= 0 {
			continue
		}
		if !finite(kpi.Target) || !finite(kpi.Current) {
			return fmt.Errorf("%w: %s", ErrInvalidKPI, kpi.Metric)
		}
		ratio := kpi.Current / kpi.Target * 100
		total += ratio
		if !finite(ratio) || !finite(total) {
			return fmt.Errorf("%w: %s", ErrInvalidKPI, kpi.Metric)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ValidateDate accepts an empty value or a YYYY-MM-DD calendar date.
func ValidateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateGoalDates checks both dates and their order.
func ValidateGoalDates(startDate, dueDate string) error {
	if err := ValidateDate(startDate); err != nil {
		return err
	}
	if err := ValidateDate(dueDate); err != nil {
		return err
	}
	if startDate != "" && dueDate != "" && dueDate < startDate {
		return ErrInvalidDate
	}
	return nil
}
