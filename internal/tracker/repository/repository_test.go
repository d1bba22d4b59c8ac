package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/goalboard/internal/kv"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockStore) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStore) Close() error {
	return m.Called().Error(0)
}

var _ kv.Store = (*mockStore)(nil)

func TestRepository_EmptyStoreDefaults(t *testing.T) {
	repo := New(kv.NewMemoryStore(), false, zaptest.NewLogger(t).Sugar())
	ctx := context.Background()

	tasks, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	goals, err := repo.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, trackerModel.SeedGoals(), goals)
}

func TestRepository_RoundTrip(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := New(store, false, zaptest.NewLogger(t).Sugar())
	ctx := context.Background()

	created := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	tasks := []trackerModel.Task{
		{ID: "a", Title: "first", UserID: "user1", CreatedAt: created, TeamGoalID: "1"},
		{
			ID: "b", Title: "second", UserID: "user2", CreatedAt: created, Time: "10:00",
			Checkin: &trackerModel.Checkin{Status: trackerModel.StatusBlocked, Comment: "api", CheckinTime: created},
		},
	}
	require.NoError(t, repo.SaveTasks(ctx, tasks))

	goals := []trackerModel.TeamGoal{{ID: "g", Title: "goal", Color: "#4F46E5"}}
	require.NoError(t, repo.SaveGoals(ctx, goals))

	loadedTasks, err := repo.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, loadedTasks)

	loadedGoals, err := repo.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, goals, loadedGoals)

	raw, err := store.Get(ctx, TasksKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"teamGoalId":"1"`)
}

func TestRepository_SaveEmptyWritesArray(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := New(store, false, zaptest.NewLogger(t).Sugar())
	ctx := context.Background()

	require.NoError(t, repo.SaveGoals(ctx, nil))
	raw, err := store.Get(ctx, GoalsKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	goals, err := repo.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals, "an explicitly stored empty list is not reseeded")
}

func TestRepository_CorruptState(t *testing.T) {
	ctx := context.Background()

	t.Run("fail", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Put(ctx, TasksKey, []byte("{not json")))
		repo := New(store, false, zaptest.NewLogger(t).Sugar())

		_, err := repo.LoadTasks(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, trackerModel.ErrCorruptState)
		assert.Contains(t, err.Error(), TasksKey)
	})

	t.Run("reset", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Put(ctx, GoalsKey, []byte("nope")))
		require.NoError(t, store.Put(ctx, TasksKey, []byte(`{"id":"not-an-array"}`)))
		repo := New(store, true, zaptest.NewLogger(t).Sugar())

		goals, err := repo.LoadGoals(ctx)
		require.NoError(t, err)
		assert.Equal(t, trackerModel.SeedGoals(), goals)

		tasks, err := repo.LoadTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	store := new(mockStore)
	store.On("Get", mock.Anything, TasksKey).Return(nil, storeErr)
	store.On("Put", mock.Anything, GoalsKey, mock.Anything).Return(storeErr)
	repo := New(store, true, zaptest.NewLogger(t).Sugar())

	_, err := repo.LoadTasks(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, trackerModel.ErrCorruptState)

	err = repo.SaveGoals(ctx, trackerModel.SeedGoals())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "failed to save goals")

	store.AssertExpectations(t)
}

func TestRepository_GormBackend(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, kv.EnsureSchema(db))

	logger := zaptest.NewLogger(t).Sugar()
	repo := New(kv.WithPrefix(kv.NewGormStore(db, logger), "team1:"), false, logger)
	ctx := context.Background()

	goals, err := repo.LoadGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 3)

	goals[0].KPIs[0].Current = 9
	require.NoError(t, repo.SaveGoals(ctx, goals))

	reloaded, err := repo.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(9), reloaded[0].KPIs[0].Current)
}
