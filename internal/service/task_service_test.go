package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/result"
	"github.com/taskvault/taskvault/internal/store"
)

// serviceTask builds a valid task with a fixed creation time so validation
// outcomes are deterministic.
func serviceTask(title string) domain.TaskItem {
	return domain.TaskItem{
		ID:          uuid.New(),
		Title:       title,
		Description: "prepared by the service tests",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityMedium,
		CreatedAt:   time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func newTestTaskService(t *testing.T, taskStore store.TaskStore) TaskService {
	t.Helper()

	svc, err := NewTaskService(taskStore, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestNewTaskService(t *testing.T) {
	t.Run("nil store returns error", func(t *testing.T) {
		svc, err := NewTaskService(nil, slog.Default())
		require.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "taskStore cannot be nil")

		var svcErr *TaskServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_service", svcErr.Operation)
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		svc, err := NewTaskService(new(MockTaskStore), nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns identity fields when missing", func(t *testing.T) {
		task := serviceTask("Write the report")
		task.ID = uuid.Nil
		task.CreatedAt = time.Time{}

		var persisted domain.TaskItem
		mockStore := new(MockTaskStore)
		mockStore.On("Create", mock.Anything, mock.AnythingOfType("domain.TaskItem")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(domain.TaskItem)
			}).
			Return(result.Success(task)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.CreateTask(ctx, task)

		require.True(t, res.IsSuccess())
		assert.NotEqual(t, uuid.Nil, persisted.ID)
		assert.False(t, persisted.CreatedAt.IsZero())
		mockStore.AssertExpectations(t)
	})

	t.Run("keeps caller supplied identity fields", func(t *testing.T) {
		task := serviceTask("Write the report")

		mockStore := new(MockTaskStore)
		mockStore.On("Create", mock.Anything, task).
			Return(result.Success(task)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.CreateTask(ctx, task)

		require.True(t, res.IsSuccess())
		assert.Equal(t, task, res.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		task := serviceTask("Write the report")
		task.Status = domain.Status(99)

		mockStore := new(MockTaskStore)
		svc := newTestTaskService(t, mockStore)

		res := svc.CreateTask(ctx, task)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{domain.MsgInvalidStatus}, res.Errors())
		mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("multiple violations are reported in rule order", func(t *testing.T) {
		task := serviceTask("")
		task.Priority = domain.Priority(-1)

		mockStore := new(MockTaskStore)
		svc := newTestTaskService(t, mockStore)

		res := svc.CreateTask(ctx, task)

		require.False(t, res.IsSuccess())
		assert.Equal(t,
			[]string{domain.MsgTitleRequired, domain.MsgInvalidPriority},
			res.Errors())
		mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure passes through unchanged", func(t *testing.T) {
		task := serviceTask("Write the report")

		mockStore := new(MockTaskStore)
		mockStore.On("Create", mock.Anything, task).
			Return(result.Failure[domain.TaskItem]("Database error: connection refused")).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.CreateTask(ctx, task)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{"Database error: connection refused"}, res.Errors())
		mockStore.AssertExpectations(t)
	})
}

func TestTaskService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("get task passes through success", func(t *testing.T) {
		task := serviceTask("Readable")

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, task.ID).
			Return(result.Success(task)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.GetTask(ctx, task.ID)

		require.True(t, res.IsSuccess())
		assert.Equal(t, task, res.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("get task passes through not found", func(t *testing.T) {
		id := uuid.New()

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, id).
			Return(result.Failure[domain.TaskItem](store.MsgTaskNotFound)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.GetTask(ctx, id)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{store.MsgTaskNotFound}, res.Errors())
	})

	t.Run("list paths pass through", func(t *testing.T) {
		active := []domain.TaskItem{serviceTask("a"), serviceTask("b")}
		trashed := []domain.TaskItem{serviceTask("c")}

		mockStore := new(MockTaskStore)
		mockStore.On("GetAll", mock.Anything).Return(result.Success(active)).Once()
		mockStore.On("GetDeleted", mock.Anything).Return(result.Success(trashed)).Once()

		svc := newTestTaskService(t, mockStore)

		all := svc.GetAllTasks(ctx)
		require.True(t, all.IsSuccess())
		assert.Equal(t, active, all.Value())

		deleted := svc.GetDeletedTasks(ctx)
		require.True(t, deleted.IsSuccess())
		assert.Equal(t, trashed, deleted.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("empty list is a success", func(t *testing.T) {
		mockStore := new(MockTaskStore)
		mockStore.On("GetAll", mock.Anything).
			Return(result.Success([]domain.TaskItem{})).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.GetAllTasks(ctx)

		require.True(t, res.IsSuccess())
		assert.Empty(t, res.Value())
		assert.NotNil(t, res.Value())
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("missing target short-circuits before validation", func(t *testing.T) {
		// The candidate is deliberately invalid; the existence check must
		// win, so the invalid title never shows up in the failure.
		task := serviceTask("")

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, task.ID).
			Return(result.Failure[domain.TaskItem](store.MsgTaskNotFound)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.UpdateTask(ctx, task)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{MsgTaskCannotBeUpdated}, res.Errors())
		mockStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("lookup database error also short-circuits", func(t *testing.T) {
		task := serviceTask("Stable title")

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, task.ID).
			Return(result.Failure[domain.TaskItem]("Database error: timeout")).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.UpdateTask(ctx, task)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{MsgTaskCannotBeUpdated}, res.Errors())
		mockStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid candidate is rejected after the existence check", func(t *testing.T) {
		existing := serviceTask("Before")
		candidate := existing
		candidate.Title = ""

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, existing.ID).
			Return(result.Success(existing)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.UpdateTask(ctx, candidate)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{domain.MsgTitleRequired}, res.Errors())
		mockStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("candidate inherits stored creation time", func(t *testing.T) {
		existing := serviceTask("Before")
		completed := existing.CreatedAt.Add(1 * time.Hour)

		candidate := existing
		candidate.Title = "After"
		candidate.CreatedAt = time.Time{}
		candidate.CompletedAt = &completed

		expected := candidate
		expected.CreatedAt = existing.CreatedAt

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, existing.ID).
			Return(result.Success(existing)).
			Once()
		mockStore.On("Update", mock.Anything, expected).
			Return(result.Success(expected)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.UpdateTask(ctx, candidate)

		require.True(t, res.IsSuccess())
		assert.Equal(t, expected, res.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("valid update persists", func(t *testing.T) {
		existing := serviceTask("Before")
		candidate := existing
		candidate.Title = "After"
		candidate.Priority = domain.PriorityCritical

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, existing.ID).
			Return(result.Success(existing)).
			Once()
		mockStore.On("Update", mock.Anything, candidate).
			Return(result.Success(candidate)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.UpdateTask(ctx, candidate)

		require.True(t, res.IsSuccess())
		assert.Equal(t, candidate, res.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("store update failure passes through", func(t *testing.T) {
		existing := serviceTask("Before")

		mockStore := new(MockTaskStore)
		mockStore.On("GetByID", mock.Anything, existing.ID).
			Return(result.Success(existing)).
			Once()
		mockStore.On("Update", mock.Anything, existing).
			Return(result.Failure[domain.TaskItem](store.MsgTaskNotFound)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.UpdateTask(ctx, existing)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{store.MsgTaskNotFound}, res.Errors())
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through success", func(t *testing.T) {
		id := uuid.New()

		mockStore := new(MockTaskStore)
		mockStore.On("Delete", mock.Anything, id).
			Return(result.Success(true)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.DeleteTask(ctx, id)

		require.True(t, res.IsSuccess())
		assert.True(t, res.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("passes through not found without a pre-check", func(t *testing.T) {
		id := uuid.New()

		mockStore := new(MockTaskStore)
		mockStore.On("Delete", mock.Anything, id).
			Return(result.Failure[bool](store.MsgTaskNotFound)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.DeleteTask(ctx, id)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{store.MsgTaskNotFound}, res.Errors())
		mockStore.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestTaskService_RestoreTask(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through success", func(t *testing.T) {
		id := uuid.New()

		mockStore := new(MockTaskStore)
		mockStore.On("Restore", mock.Anything, id).
			Return(result.Success(true)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.RestoreTask(ctx, id)

		require.True(t, res.IsSuccess())
		assert.True(t, res.Value())
		mockStore.AssertExpectations(t)
	})

	t.Run("passes through not found", func(t *testing.T) {
		id := uuid.New()

		mockStore := new(MockTaskStore)
		mockStore.On("Restore", mock.Anything, id).
			Return(result.Failure[bool](store.MsgTaskNotFound)).
			Once()

		svc := newTestTaskService(t, mockStore)
		res := svc.RestoreTask(ctx, id)

		require.False(t, res.IsSuccess())
		assert.Equal(t, []string{store.MsgTaskNotFound}, res.Errors())
	})
}
