package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/result"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Custom behavior functions
	CreateTaskFn      func(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem]
	GetTaskFn         func(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem]
	GetAllTasksFn     func(ctx context.Context) result.Result[[]domain.TaskItem]
	GetDeletedTasksFn func(ctx context.Context) result.Result[[]domain.TaskItem]
	UpdateTaskFn      func(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem]
	DeleteTaskFn      func(ctx context.Context, id uuid.UUID) result.Result[bool]
	RestoreTaskFn     func(ctx context.Context, id uuid.UUID) result.Result[bool]

	// Default return values used when no custom function is set
	Task  domain.TaskItem
	Tasks []domain.TaskItem
}

// CreateTask implements the TaskService.CreateTask method.
// The default behavior echoes the given task back as a success.
func (m *MockTaskService) CreateTask(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, task)
	}
	return result.Success(task)
}

// GetTask implements the TaskService.GetTask method
func (m *MockTaskService) GetTask(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem] {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return result.Success(m.Task)
}

// GetAllTasks implements the TaskService.GetAllTasks method
func (m *MockTaskService) GetAllTasks(ctx context.Context) result.Result[[]domain.TaskItem] {
	if m.GetAllTasksFn != nil {
		return m.GetAllTasksFn(ctx)
	}
	return result.Success(m.defaultTasks())
}

// GetDeletedTasks implements the TaskService.GetDeletedTasks method
func (m *MockTaskService) GetDeletedTasks(ctx context.Context) result.Result[[]domain.TaskItem] {
	if m.GetDeletedTasksFn != nil {
		return m.GetDeletedTasksFn(ctx)
	}
	return result.Success(m.defaultTasks())
}

// UpdateTask implements the TaskService.UpdateTask method.
// The default behavior echoes the given task back as a success.
func (m *MockTaskService) UpdateTask(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, task)
	}
	return result.Success(task)
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) result.Result[bool] {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, id)
	}
	return result.Success(true)
}

// RestoreTask implements the TaskService.RestoreTask method
func (m *MockTaskService) RestoreTask(ctx context.Context, id uuid.UUID) result.Result[bool] {
	if m.RestoreTaskFn != nil {
		return m.RestoreTaskFn(ctx, id)
	}
	return result.Success(true)
}

// defaultTasks keeps list defaults aligned with the service contract, which
// never returns a nil slice on success.
func (m *MockTaskService) defaultTasks() []domain.TaskItem {
	if m.Tasks == nil {
		return []domain.TaskItem{}
	}
	return m.Tasks
}
