package model

// DefaultGoalDescription is used for goals converted from a task without a check-in comment.
const DefaultGoalDescription = "새로운 팀 목표"

// SeedGoals returns the demo goals used when no goal collection has been stored yet.
// Each call returns fresh values.
func SeedGoals() []TeamGoal {
	return []TeamGoal{
		{
			ID:          "1",
			Title:       "Q1 제품 출시",
			Description: "새로운 기능 개발 및 안정화",
			Color:       "#4F46E5",
			StartDate:   "2024-01-01",
			DueDate:     "2024-03-31",
			KPIs: []KPI{
				{ID: "kpi1", Metric: "핵심 기능 개발", Target: 10, Unit: "개", Current: 4},
				{ID: "kpi2", Metric: "버그 수정", Target: 100, Unit: "%", Current: 75},
			},
		},
		{
			ID:          "2",
			Title:       "고객 만족도 향상",
			Description: "사용자 피드백 반영 및 개선",
			Color:       "#059669",
			StartDate:   "2024-01-01",
			DueDate:     "2024-06-30",
			KPIs: []KPI{
				{ID: "kpi3", Metric: "사용자 만족도", Target: 90, Unit: "%", Current: 82},
			},
		},
		{
			ID:          "3",
			Title:       "팀 역량 강화",
			Description: "기술 스택 향상 및 지식 공유",
			Color:       "#DC2626",
			KPIs: []KPI{
				{ID: "kpi4", Metric: "기술 공유 세션", Target: 12, Unit: "회", Current: 2},
			},
		},
	}
}
