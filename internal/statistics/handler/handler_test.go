package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/goalboard/internal/statistics/model"
	"github.com/festy23/goalboard/internal/statistics/service"
	trackerModel "github.com/festy23/goalboard/internal/tracker/model"
)

// mockService is a mock implementation of service.Service for unit tests.
type mockService struct {
	mock.Mock
}

func (m *mockService) GetDashboard(ctx context.Context) (*model.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *mockService) GetMeeting(ctx context.Context, day string) (*model.Meeting, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meeting), args.Error(1)
}

func (m *mockService) GetGoalProgress(ctx context.Context, goalID string) (*model.GoalStats, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GoalStats), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc, zap.NewNop().Sugar())
	r.GET("/statistics/dashboard", h.GetDashboard)
	r.GET("/statistics/meeting", h.GetMeeting)
	r.GET("/statistics/goals/:id", h.GetGoalProgress)
	return r
}

func perform(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_GetDashboard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetDashboard", mock.Anything).Return(&model.Dashboard{
			Goals:               []model.GoalStats{{Goal: trackerModel.TeamGoal{ID: "1"}, ProgressPct: 50}},
			AverageGoalProgress: 50,
			HasGoals:            true,
		}, nil)

		w := perform(setupRouter(mockSvc), "/statistics/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["has_goals"])
		assert.Equal(t, float64(50), resp["average_goal_progress"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetDashboard", mock.Anything).Return(nil, errors.New("boom"))

		w := perform(setupRouter(mockSvc), "/statistics/dashboard")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, w).Error.Code)
	})
}

func TestHandler_GetMeeting(t *testing.T) {
	t.Run("passes date through", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetMeeting", mock.Anything, "2024-01-15").Return(&model.Meeting{Date: "2024-01-15"}, nil)

		w := perform(setupRouter(mockSvc), "/statistics/meeting?date=2024-01-15")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.Meeting
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024-01-15", resp.Date)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing date is left to the service", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetMeeting", mock.Anything, "").Return(&model.Meeting{Date: "2024-02-01"}, nil)

		w := perform(setupRouter(mockSvc), "/statistics/meeting")

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetMeeting", mock.Anything, "yesterday").
			Return(nil, fmt.Errorf("%w: yesterday", trackerModel.ErrInvalidDate))

		w := perform(setupRouter(mockSvc), "/statistics/meeting?date=yesterday")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
	})
}

func TestHandler_GetGoalProgress(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetGoalProgress", mock.Anything, "2").Return(&model.GoalStats{
			Goal:       trackerModel.TeamGoal{ID: "2"},
			TotalTasks: 4,
		}, nil)

		w := perform(setupRouter(mockSvc), "/statistics/goals/2")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(4), resp["total_tasks"])
		assert.Nil(t, resp["kpi_progress"])
		assert.Contains(t, resp, "kpi_progress")
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("GetGoalProgress", mock.Anything, "404").
			Return(nil, fmt.Errorf("%w: 404", trackerModel.ErrGoalNotFound))

		w := perform(setupRouter(mockSvc), "/statistics/goals/404")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, w).Error.Code)
	})
}

func TestFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		internal bool
	}{
		{name: "invalid date", err: fmt.Errorf("%w: 2024-13-01", trackerModel.ErrInvalidDate), status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "goal not found", err: fmt.Errorf("%w: 9", trackerModel.ErrGoalNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "anything else", err: errors.New("snapshot failed"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR", internal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			assert.Equal(t, tt.internal, failure(c, tt.err))
			assert.Equal(t, tt.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
