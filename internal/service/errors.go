package service

import "fmt"

// Error handling in this package splits along one line: expected domain
// outcomes (validation violations, not-found, storage faults) travel as
// failure Results with fixed messages, while wiring problems surface as
// ordinary Go errors.
//
// MsgTaskCannotBeUpdated belongs to the first group. TaskServiceError
// belongs to the second and is returned only from constructors; callers
// check it with errors.As when they need the operation that failed.

// MsgTaskCannotBeUpdated is the fixed message reported when an update's
// existence check fails because the target is missing or soft-deleted.
// Transports map it to a not-found indication.
const MsgTaskCannotBeUpdated = "Task cannot be updated because it does not exist or has been deleted."

// TaskServiceError is a custom error type for task service wiring errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}
