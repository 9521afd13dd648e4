package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
// Status and Priority carry the numeric enum values; the domain validator is
// the single authority on their range and on every other field rule, so the
// payload deliberately carries no validation tags of its own.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      int        `json:"status"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest defines the payload for the task update endpoint.
// The task ID comes from the URL path, never from the body.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      int        `json:"status"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskResponse defines the JSON shape of a task returned by the API.
// Enum fields are returned as their stored numeric values.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      int        `json:"status"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	IsDeleted   bool       `json:"is_deleted"`
}

// taskToResponse converts a domain task to its API response shape.
func taskToResponse(task domain.TaskItem) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      int(task.Status),
		Priority:    int(task.Priority),
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		UpdatedAt:   task.UpdatedAt,
		IsDeleted:   task.IsDeleted,
	}
}

// tasksToResponse converts a task list, always returning a non-nil slice so
// empty lists serialize as [] rather than null.
func tasksToResponse(tasks []domain.TaskItem) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}
