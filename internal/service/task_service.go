package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/platform/logger"
	"github.com/taskvault/taskvault/internal/result"
	"github.com/taskvault/taskvault/internal/store"
)

// TaskService orchestrates validation and persistence of tasks. Every
// operation reports its outcome as a Result; callers branch on IsSuccess
// rather than on errors.
type TaskService interface {
	// CreateTask validates the candidate and persists it when legal.
	// Validation violations are returned without touching the store.
	CreateTask(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem]

	// GetTask retrieves a single active task by ID.
	GetTask(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem]

	// GetAllTasks lists all active tasks, newest first.
	GetAllTasks(ctx context.Context) result.Result[[]domain.TaskItem]

	// GetDeletedTasks lists all soft-deleted tasks, newest first.
	GetDeletedTasks(ctx context.Context) result.Result[[]domain.TaskItem]

	// UpdateTask overwrites an active task's mutable fields. The target
	// must exist and be active before the candidate is even validated;
	// otherwise the fixed "cannot be updated" failure is returned.
	UpdateTask(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem]

	// DeleteTask soft-deletes an active task.
	DeleteTask(ctx context.Context, id uuid.UUID) result.Result[bool]

	// RestoreTask clears a task's soft-delete flag.
	RestoreTask(ctx context.Context, id uuid.UUID) result.Result[bool]
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the required store dependency is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
// Missing identity fields are assigned here because the store persists rows
// exactly as given. Validation runs after that backfill; any violations are
// returned as a failure Result and the store is never called.
func (s *taskServiceImpl) CreateTask(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	if violations := task.Validate(); len(violations) > 0 {
		log.Debug("task rejected by validation",
			slog.String("task_id", task.ID.String()),
			slog.Int("violation_count", len(violations)))
		return result.Failure[domain.TaskItem](violations...)
	}

	log.Debug("creating task",
		slog.String("task_id", task.ID.String()),
		slog.String("status", task.Status.String()))
	return s.taskStore.Create(ctx, task)
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task", slog.String("task_id", id.String()))
	return s.taskStore.GetByID(ctx, id)
}

// GetAllTasks implements TaskService.GetAllTasks
func (s *taskServiceImpl) GetAllTasks(ctx context.Context) result.Result[[]domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving all active tasks")
	return s.taskStore.GetAll(ctx)
}

// GetDeletedTasks implements TaskService.GetDeletedTasks
func (s *taskServiceImpl) GetDeletedTasks(ctx context.Context) result.Result[[]domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving deleted tasks")
	return s.taskStore.GetDeleted(ctx)
}

// UpdateTask implements TaskService.UpdateTask
// Existence is checked before validity: when the lookup fails the fixed
// "cannot be updated" message is returned and neither the validator nor the
// write path runs.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing := s.taskStore.GetByID(ctx, task.ID)
	if !existing.IsSuccess() {
		log.Debug("update target is not an active task",
			slog.String("task_id", task.ID.String()))
		return result.Failure[domain.TaskItem](MsgTaskCannotBeUpdated)
	}

	// Candidates assembled from partial input inherit the stored creation
	// time so the cross-field timestamp rules are checked against the
	// value the update will actually keep.
	if task.CreatedAt.IsZero() {
		task.CreatedAt = existing.Value().CreatedAt
	}

	if violations := task.Validate(); len(violations) > 0 {
		log.Debug("update rejected by validation",
			slog.String("task_id", task.ID.String()),
			slog.Int("violation_count", len(violations)))
		return result.Failure[domain.TaskItem](violations...)
	}

	log.Debug("updating task", slog.String("task_id", task.ID.String()))
	return s.taskStore.Update(ctx, task)
}

// DeleteTask implements TaskService.DeleteTask
// Delegates directly to the store; there is no existence pre-check, so a
// double delete surfaces the store's not-found failure unchanged.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) result.Result[bool] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("deleting task", slog.String("task_id", id.String()))
	return s.taskStore.Delete(ctx, id)
}

// RestoreTask implements TaskService.RestoreTask
func (s *taskServiceImpl) RestoreTask(ctx context.Context, id uuid.UUID) result.Result[bool] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("restoring task", slog.String("task_id", id.String()))
	return s.taskStore.Restore(ctx, id)
}
