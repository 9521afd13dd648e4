package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/platform/logger"
	"github.com/taskvault/taskvault/internal/redact"
	"github.com/taskvault/taskvault/internal/result"
	"github.com/taskvault/taskvault/internal/store"
)

// taskColumns is the column list shared by every SELECT and RETURNING clause
// so scans cannot drift from the queries.
const taskColumns = "id, title, description, status, priority, created_at, due_date, completed_at, updated_at, is_deleted"

// activeFilter is the single soft-delete visibility predicate. Every query
// that must only see live rows embeds this fragment.
const activeFilter = "is_deleted = FALSE"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx returns a TaskStore bound to the given transaction. The original
// store is unchanged and keeps using its own connection.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.TaskStore.Create
// It persists the task row exactly as given; assigning Id and CreatedAt is
// the service's responsibility. Storage faults become failure Results.
func (s *PostgresTaskStore) Create(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.CreatedAt,
		task.DueDate,
		task.CompletedAt,
		task.UpdatedAt,
		task.IsDeleted,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate task ID on create",
				slog.String("task_id", task.ID.String()))
		} else {
			log.Error("failed to create task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", task.ID.String()))
		}
		return result.Failure[domain.TaskItem](store.DatabaseError(err))
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("status", task.Status.String()),
		slog.String("priority", task.Priority.String()))
	return result.Success(task)
}

// GetByID implements store.TaskStore.GetByID
// It retrieves an active task by its unique ID. Soft-deleted rows and
// unknown IDs both report "Task not found.".
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.String("task_id", id.String()))

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND ` + activeFilter + `
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return result.Failure[domain.TaskItem](store.MsgTaskNotFound)
		}
		log.Error("failed to get task by ID",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return result.Failure[domain.TaskItem](store.DatabaseError(err))
	}

	return result.Success(task)
}

// GetAll implements store.TaskStore.GetAll
// It retrieves all active tasks, newest first. No matching rows is a
// Success carrying an empty slice.
func (s *PostgresTaskStore) GetAll(ctx context.Context) result.Result[[]domain.TaskItem] {
	return s.listTasks(ctx, false)
}

// GetDeleted implements store.TaskStore.GetDeleted
// It retrieves all soft-deleted tasks, newest first.
func (s *PostgresTaskStore) GetDeleted(ctx context.Context) result.Result[[]domain.TaskItem] {
	return s.listTasks(ctx, true)
}

// listTasks is the shared list query behind GetAll and GetDeleted; only the
// soft-delete state differs between the two.
func (s *PostgresTaskStore) listTasks(ctx context.Context, deleted bool) result.Result[[]domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE is_deleted = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, deleted)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", redact.Error(err)),
			slog.Bool("deleted", deleted))
		return result.Failure[[]domain.TaskItem](store.DatabaseError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	tasks := []domain.TaskItem{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", redact.Error(err)),
				slog.Bool("deleted", deleted))
			return result.Failure[[]domain.TaskItem](store.DatabaseError(err))
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning task rows",
			slog.String("error", redact.Error(err)),
			slog.Bool("deleted", deleted))
		return result.Failure[[]domain.TaskItem](store.DatabaseError(err))
	}

	log.Debug("listed tasks",
		slog.Bool("deleted", deleted),
		slog.Int("count", len(tasks)))
	return result.Success(tasks)
}

// Update implements store.TaskStore.Update
// It overwrites the mutable fields of the active row matching task.Id and
// returns the stored row. Id, CreatedAt and IsDeleted are never in the SET
// list, so an update can neither move a task between visibility states nor
// rewrite its creation time. A missing or soft-deleted row reports
// "Task not found."; update never resurrects.
func (s *PostgresTaskStore) Update(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4,
		    due_date = $5, completed_at = $6, updated_at = $7
		WHERE id = $8 AND ` + activeFilter + `
		RETURNING ` + taskColumns + `
	`

	updated, err := scanTask(s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.CompletedAt,
		task.UpdatedAt,
		task.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found for update", slog.String("task_id", task.ID.String()))
			return result.Failure[domain.TaskItem](store.MsgTaskNotFound)
		}
		log.Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return result.Failure[domain.TaskItem](store.DatabaseError(err))
	}

	log.Info("task updated successfully",
		slog.String("task_id", updated.ID.String()),
		slog.String("status", updated.Status.String()))
	return result.Success(updated)
}

// Delete implements store.TaskStore.Delete
// It soft-deletes an active task. Zero affected rows means the id is
// unknown or the row was already deleted; both report "Task not found." so
// double deletes stay visible to the caller.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) result.Result[bool] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET is_deleted = TRUE
		WHERE id = $1 AND ` + activeFilter + `
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return result.Failure[bool](store.DatabaseError(err))
	}

	affected, err := affectedRows(res)
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return result.Failure[bool](store.DatabaseError(err))
	}

	if affected == 0 {
		log.Debug("task not found for delete", slog.String("task_id", id.String()))
		return result.Failure[bool](store.MsgTaskNotFound)
	}

	log.Info("task soft-deleted", slog.String("task_id", id.String()))
	return result.Success(true)
}

// Restore implements store.TaskStore.Restore
// It clears the soft-delete flag. The WHERE clause matches on id alone and
// the affected-row count is the sole signal, so restoring an already-active
// row still succeeds; only a completely unknown id is "Task not found.".
func (s *PostgresTaskStore) Restore(ctx context.Context, id uuid.UUID) result.Result[bool] {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET is_deleted = FALSE
		WHERE id = $1
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to restore task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return result.Failure[bool](store.DatabaseError(err))
	}

	affected, err := affectedRows(res)
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return result.Failure[bool](store.DatabaseError(err))
	}

	if affected == 0 {
		log.Debug("task not found for restore", slog.String("task_id", id.String()))
		return result.Failure[bool](store.MsgTaskNotFound)
	}

	log.Info("task restored", slog.String("task_id", id.String()))
	return result.Success(true)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row in taskColumns order. Timestamps are
// normalized to UTC so values survive a write/read round trip comparably.
func scanTask(row rowScanner) (domain.TaskItem, error) {
	var task domain.TaskItem
	var dueDate, completedAt, updatedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&dueDate,
		&completedAt,
		&updatedAt,
		&task.IsDeleted,
	)
	if err != nil {
		return domain.TaskItem{}, err
	}

	task.CreatedAt = task.CreatedAt.UTC()
	if dueDate.Valid {
		ts := dueDate.Time.UTC()
		task.DueDate = &ts
	}
	if completedAt.Valid {
		ts := completedAt.Time.UTC()
		task.CompletedAt = &ts
	}
	if updatedAt.Valid {
		ts := updatedAt.Time.UTC()
		task.UpdatedAt = &ts
	}

	return task, nil
}
