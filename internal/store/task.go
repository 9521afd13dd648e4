package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/result"
)

// TaskStore defines the interface for task data persistence.
// Every operation reports its outcome as a Result: expected failures
// (missing rows, storage faults) are carried as failure messages, never as
// returned errors or panics. Implementations must not mutate Id, CreatedAt
// or IsDeleted outside the operations that own them.
type TaskStore interface {
	// Create persists a new task row exactly as given. The store does not
	// invent Id or CreatedAt; that responsibility sits with the caller.
	// Storage faults become Failure("Database error: ...").
	Create(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem]

	// GetByID retrieves an active task by its unique ID.
	// Returns Failure("Task not found.") when no active row matches,
	// including soft-deleted rows and the nil UUID.
	GetByID(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem]

	// GetAll retrieves every active task, newest first. An empty store is a
	// Success with an empty slice, never a Failure.
	GetAll(ctx context.Context) result.Result[[]domain.TaskItem]

	// GetDeleted retrieves every soft-deleted task, newest first. Same
	// empty-slice-is-success policy as GetAll.
	GetDeleted(ctx context.Context) result.Result[[]domain.TaskItem]

	// Update overwrites the mutable fields (Title, Description, Status,
	// Priority, DueDate, CompletedAt, UpdatedAt) of the active row matching
	// task.Id. Id, CreatedAt and IsDeleted are never written. Returns
	// Failure("Task not found.") when the row is missing or soft-deleted;
	// update never resurrects a deleted task.
	Update(ctx context.Context, task domain.TaskItem) result.Result[domain.TaskItem]

	// Delete soft-deletes an active task. Returns Failure("Task not found.")
	// for a missing id or an already-deleted row: double deletes are
	// surfaced to the caller, not absorbed.
	Delete(ctx context.Context, id uuid.UUID) result.Result[bool]

	// Restore clears the soft-delete flag. The affected-row count is the
	// sole signal, so restoring a row that is already active still succeeds;
	// only a completely missing id is a Failure("Task not found.").
	Restore(ctx context.Context, id uuid.UUID) result.Result[bool]

	// WithTx returns a TaskStore bound to the provided transaction, letting
	// a caller group operations into one transaction it manages itself.
	WithTx(tx *sql.Tx) TaskStore
}
