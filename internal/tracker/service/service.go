// Package service provides the tracker Store, the only component that mutates tasks and goals.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	teamModel "github.com/festy23/goalboard/internal/team/model"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
	"github.com/festy23/goalboard/internal/tracker/repository"
)

// State is an immutable view of both collections.
type State struct {
	Tasks []trackerModel.Task
	Goals []trackerModel.TeamGoal
}

// Service defines the tracker operations.
type Service interface {
	// Load reads both collections from the repository, replacing the in-memory state.
	Load(ctx context.Context) error

	// Snapshot returns copies of the current collections.
	Snapshot() State

	// AddTask creates a task owned by actor.
	AddTask(ctx context.Context, actor teamModel.User, req *trackerModel.AddTaskRequest) (trackerModel.Task, error)

	// ToggleTask flips the completed flag of a task.
	ToggleTask(ctx context.Context, id string) (trackerModel.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error

	// Checkin replaces the check-in of a task.
	Checkin(ctx context.Context, id string, status trackerModel.CheckinStatus, comment string) (trackerModel.Task, error)

	// ConvertToGoal promotes a task to a new goal and links the task to it. Team leads only.
	ConvertToGoal(ctx context.Context, actor teamModel.User, taskID string) (trackerModel.TeamGoal, trackerModel.Task, error)

	// CreateGoal adds a goal from the goal form. Team leads only.
	CreateGoal(ctx context.Context, actor teamModel.User, req *trackerModel.GoalRequest) (trackerModel.TeamGoal, error)

	// UpdateGoal replaces a goal wholesale. Team leads only.
	UpdateGoal(ctx context.Context, actor teamModel.User, goal trackerModel.TeamGoal) (trackerModel.TeamGoal, error)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation for tasks, goals and KPIs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store holds the authoritative task and goal collections. Every mutation builds new
// collections, persists them and swaps them in only after the save succeeded.
type Store struct {
	mu     sync.RWMutex
	tasks  []trackerModel.Task
	goals  []trackerModel.TeamGoal
	repo   repository.Repository
	now    func() time.Time
	newID  func() string
	logger *zap.SugaredLogger
}

var _ Service = (*Store)(nil)

// New creates a Store with empty collections. Call Load before serving.
func New(repo repository.Repository, logger *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		tasks:  []trackerModel.Task{},
		goals:  []trackerModel.TeamGoal{},
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads both collections from the repository.
func (s *Store) Load(ctx context.Context) error {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	s.mu.Lock()
	s.goals = goals
	s.tasks = tasks
	s.mu.Unlock()

	s.logger.Infow("tracker state loaded", "tasks", len(tasks), "goals", len(goals))
	return nil
}

// Snapshot returns copies of both collections.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Tasks: trackerModel.CloneTasks(s.tasks),
		Goals: trackerModel.CloneGoals(s.goals),
	}
}

// AddTask creates a task owned by actor.
func (s *Store) AddTask(
	ctx context.Context,
	actor teamModel.User,
	req *trackerModel.AddTaskRequest,
) (trackerModel.Task, error) {
	s.logger.Debugw("adding task", "user_id", actor.ID, "team_goal_id", req.TeamGoalID)

	title, err := trackerModel.ValidateTitle(req.Title)
	if err != nil {
		return trackerModel.Task{}, err
	}
	if err := trackerModel.ValidateTime(req.Time); err != nil {
		return trackerModel.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.TeamGoalID != "" && trackerModel.FindGoal(s.goals, req.TeamGoalID) < 0 {
		return trackerModel.Task{}, fmt.Errorf("%w: %s", trackerModel.ErrGoalNotFound, req.TeamGoalID)
	}

	task := trackerModel.Task{
		ID:         s.newID(),
		Title:      title,
		Completed:  false,
		Time:       req.Time,
		TeamGoalID: req.TeamGoalID,
		UserID:     actor.ID,
		CreatedAt:  s.now(),
	}

	next := append(trackerModel.CloneTasks(s.tasks), task)
	if err := s.commitTasks(ctx, next); err != nil {
		return trackerModel.Task{}, err
	}

	s.logger.Infow("task added", "task_id", task.ID, "user_id", actor.ID)
	return task.Clone(), nil
}

// ToggleTask flips the completed flag of a task.
func (s *Store) ToggleTask(ctx context.Context, id string) (trackerModel.Task, error) {
	s.logger.Debugw("toggling task", "task_id", id)

	return s.updateTask(ctx, id, func(task *trackerModel.Task) {
		task.Completed = !task.Completed
	})
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.logger.Debugw("deleting task", "task_id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := trackerModel.FindTask(s.tasks, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", trackerModel.ErrTaskNotFound, id)
	}

	next := make([]trackerModel.Task, 0, len(s.tasks)-1)
	next = append(next, trackerModel.CloneTasks(s.tasks[:idx])...)
	next = append(next, trackerModel.CloneTasks(s.tasks[idx+1:])...)
	if err := s.commitTasks(ctx, next); err != nil {
		return err
	}

	s.logger.Infow("task deleted", "task_id", id)
	return nil
}

// Checkin replaces the check-in of a task. Earlier check-ins are discarded.
func (s *Store) Checkin(
	ctx context.Context,
	id string,
	status trackerModel.CheckinStatus,
	comment string,
) (trackerModel.Task, error) {
	s.logger.Debugw("checking in task", "task_id", id, "status", status)

	if !status.Valid() {
		return trackerModel.Task{}, fmt.Errorf("%w: %q", trackerModel.ErrInvalidStatus, status)
	}

	return s.updateTask(ctx, id, func(task *trackerModel.Task) {
		task.Checkin = &trackerModel.Checkin{
			Status:      status,
			Comment:     comment,
			CheckinTime: s.now(),
		}
	})
}

// ConvertToGoal promotes a task to a new goal. The goal takes the task title, the
// check-in comment as description and the next palette color.
func (s *Store) ConvertToGoal(
	ctx context.Context,
	actor teamModel.User,
	taskID string,
) (trackerModel.TeamGoal, trackerModel.Task, error) {
	s.logger.Debugw("converting task to goal", "task_id", taskID, "user_id", actor.ID)

	if !actor.IsTeamLead() {
		return trackerModel.TeamGoal{}, trackerModel.Task{}, trackerModel.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := trackerModel.FindTask(s.tasks, taskID)
	if idx < 0 {
		return trackerModel.TeamGoal{}, trackerModel.Task{}, fmt.Errorf("%w: %s", trackerModel.ErrTaskNotFound, taskID)
	}

	source := s.tasks[idx]
	description := trackerModel.DefaultGoalDescription
	if source.Checkin != nil && source.Checkin.Comment != "" {
		description = source.Checkin.Comment
	}

	goal := trackerModel.TeamGoal{
		ID:          s.newID(),
		Title:       source.Title,
		Description: description,
		Color:       trackerModel.PaletteColor(len(s.goals)),
	}

	nextGoals := append(trackerModel.CloneGoals(s.goals), goal)
	nextTasks := trackerModel.CloneTasks(s.tasks)
	nextTasks[idx].TeamGoalID = goal.ID

	if err := s.repo.SaveGoals(ctx, nextGoals); err != nil {
		s.logger.Errorw("failed to persist goals", "error", err)
		return trackerModel.TeamGoal{}, trackerModel.Task{}, err
	}
	if err := s.repo.SaveTasks(ctx, nextTasks); err != nil {
		s.logger.Errorw("failed to persist tasks", "error", err)
		if restoreErr := s.repo.SaveGoals(context.WithoutCancel(ctx), s.goals); restoreErr != nil {
			s.logger.Errorw("failed to restore goals after partial save", "error", restoreErr)
		}
		return trackerModel.TeamGoal{}, trackerModel.Task{}, err
	}

	s.goals = nextGoals
	s.tasks = nextTasks

	s.logger.Infow("task converted to goal", "task_id", taskID, "goal_id", goal.ID)
	return goal.Clone(), nextTasks[idx].Clone(), nil
}

// CreateGoal adds a goal from the goal form.
func (s *Store) CreateGoal(
	ctx context.Context,
	actor teamModel.User,
	req *trackerModel.GoalRequest,
) (trackerModel.TeamGoal, error) {
	s.logger.Debugw("creating goal", "user_id", actor.ID)

	if !actor.IsTeamLead() {
		return trackerModel.TeamGoal{}, trackerModel.ErrUnauthorized
	}

	title, err := trackerModel.ValidateTitle(req.Title)
	if err != nil {
		return trackerModel.TeamGoal{}, err
	}
	if err := trackerModel.ValidateGoalDates(req.StartDate, req.DueDate); err != nil {
		return trackerModel.TeamGoal{}, err
	}
	if err := trackerModel.ValidateKPIs(req.KPIs); err != nil {
		return trackerModel.TeamGoal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := trackerModel.TeamGoal{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Color:       trackerModel.PaletteColor(len(s.goals)),
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		KPIs:        trackerModel.SanitizeKPIs(req.KPIs, s.newID),
	}

	next := append(trackerModel.CloneGoals(s.goals), goal)
	if err := s.commitGoals(ctx, next); err != nil {
		return trackerModel.TeamGoal{}, err
	}

	s.logger.Infow("goal created", "goal_id", goal.ID, "user_id", actor.ID)
	return goal.Clone(), nil
}

// UpdateGoal replaces the goal with the same id. An empty color keeps the stored one.
func (s *Store) UpdateGoal(
	ctx context.Context,
	actor teamModel.User,
	goal trackerModel.TeamGoal,
) (trackerModel.TeamGoal, error) {
	s.logger.Debugw("updating goal", "goal_id", goal.ID, "user_id", actor.ID)

	if !actor.IsTeamLead() {
		return trackerModel.TeamGoal{}, trackerModel.ErrUnauthorized
	}

	title, err := trackerModel.ValidateTitle(goal.Title)
	if err != nil {
		return trackerModel.TeamGoal{}, err
	}
	if err := trackerModel.ValidateGoalDates(goal.StartDate, goal.DueDate); err != nil {
		return trackerModel.TeamGoal{}, err
	}
	if err := trackerModel.ValidateKPIs(goal.KPIs); err != nil {
		return trackerModel.TeamGoal{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := trackerModel.FindGoal(s.goals, goal.ID)
	if idx < 0 {
		return trackerModel.TeamGoal{}, fmt.Errorf("%w: %s", trackerModel.ErrGoalNotFound, goal.ID)
	}

	updated := goal.Clone()
	updated.Title = title
	updated.KPIs = trackerModel.SanitizeKPIs(goal.KPIs, s.newID)
	if updated.Color == "" {
		updated.Color = s.goals[idx].Color
	}

	next := trackerModel.CloneGoals(s.goals)
	next[idx] = updated
	if err := s.commitGoals(ctx, next); err != nil {
		return trackerModel.TeamGoal{}, err
	}

	s.logger.Infow("goal updated", "goal_id", goal.ID, "user_id", actor.ID)
	return updated.Clone(), nil
}

// updateTask applies fn to a copy of the task with the given id and commits the result.
func (s *Store) updateTask(
	ctx context.Context,
	id string,
	fn func(task *trackerModel.Task),
) (trackerModel.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := trackerModel.FindTask(s.tasks, id)
	if idx < 0 {
		return trackerModel.Task{}, fmt.Errorf("%w: %s", trackerModel.ErrTaskNotFound, id)
	}

	next := trackerModel.CloneTasks(s.tasks)
	fn(&next[idx])
	if err := s.commitTasks(ctx, next); err != nil {
		return trackerModel.Task{}, err
	}

	s.logger.Infow("task updated", "task_id", id)
	return next[idx].Clone(), nil
}

// commitTasks persists next and swaps it in. Callers hold s.mu.
func (s *Store) commitTasks(ctx context.Context, next []trackerModel.Task) error {
	if err := s.repo.SaveTasks(ctx, next); err != nil {
		s.logger.Errorw("failed to persist tasks", "error", err)
		return err
	}
	s.tasks = next
	return nil
}

// commitGoals persists next and swaps it in. Callers hold s.mu.
func (s *Store) commitGoals(ctx context.Context, next []trackerModel.TeamGoal) error {
	if err := s.repo.SaveGoals(ctx, next); err != nil {
		s.logger.Errorw("failed to persist goals", "error", err)
		return err
	}
	s.goals = next
	return nil
}
