// Package repository persists the task and goal collections as JSON documents in a kv.Store.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/kv"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

// Storage keys of the two collections.
const (
	TasksKey = "tasks"
	GoalsKey = "goals"
)

// Repository defines the interface for tracker state persistence.
// Every save overwrites the whole collection.
type Repository interface {
	// LoadTasks returns the stored tasks, or an empty list when none are stored.
	LoadTasks(ctx context.Context) ([]trackerModel.Task, error)

	// SaveTasks overwrites the stored task collection.
	SaveTasks(ctx context.Context, tasks []trackerModel.Task) error

	// LoadGoals returns the stored goals, or the seed goals when none are stored.
	LoadGoals(ctx context.Context) ([]trackerModel.TeamGoal, error)

	// SaveGoals overwrites the stored goal collection.
	SaveGoals(ctx context.Context, goals []trackerModel.TeamGoal) error
}

type repository struct {
	store          kv.Store
	resetOnCorrupt bool
	logger         *zap.SugaredLogger
}

// New creates a new tracker repository. When resetOnCorrupt is set, a collection
// that fails to decode is replaced by its default instead of failing the load.
func New(store kv.Store, resetOnCorrupt bool, logger *zap.SugaredLogger) Repository {
	return &repository{store: store, resetOnCorrupt: resetOnCorrupt, logger: logger}
}

// LoadTasks returns the stored tasks.
func (r *repository) LoadTasks(ctx context.Context) ([]trackerModel.Task, error) {
	return load(ctx, r, TasksKey, func() []trackerModel.Task { return []trackerModel.Task{} })
}

// SaveTasks overwrites the stored tasks.
func (r *repository) SaveTasks(ctx context.Context, tasks []trackerModel.Task) error {
	if tasks == nil {
		tasks = []trackerModel.Task{}
	}
	return save(ctx, r, TasksKey, tasks)
}

// LoadGoals returns the stored goals.
func (r *repository) LoadGoals(ctx context.Context) ([]trackerModel.TeamGoal, error) {
	return load(ctx, r, GoalsKey, trackerModel.SeedGoals)
}

// SaveGoals overwrites the stored goals.
func (r *repository) SaveGoals(ctx context.Context, goals []trackerModel.TeamGoal) error {
	if goals == nil {
		goals = []trackerModel.TeamGoal{}
	}
	return save(ctx, r, GoalsKey, goals)
}

func load[T any](ctx context.Context, r *repository, key string, fallback func() []T) ([]T, error) {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		r.logger.Debugw("collection not stored, using default", "key", key)
		return fallback(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		if r.resetOnCorrupt {
			r.logger.Warnw("stored collection is corrupt, resetting to default", "key", key, "error", err)
			return fallback(), nil
		}
		return nil, fmt.Errorf("%w: %s: %v", trackerModel.ErrCorruptState, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save[T any](ctx context.Context, r *repository, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
