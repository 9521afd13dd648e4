// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/api/shared"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/platform/logger"
	"github.com/taskvault/taskvault/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/tasks requests.
// The body supplies the task fields; identity fields (ID, CreatedAt) are
// assigned by the service, so a fresh candidate is built with them zeroed.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create task request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	candidate := domain.TaskItem{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.Status(req.Status),
		Priority:    domain.Priority(req.Priority),
		DueDate:     req.DueDate,
	}

	result := h.taskService.CreateTask(r.Context(), candidate)
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	task := result.Value()
	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("title", task.Title))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests.
// It returns every active task, newest first.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	result := h.taskService.GetAllTasks(r.Context())
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(result.Value()))
}

// ListDeletedTasks handles GET /api/tasks/deleted requests.
// It returns every soft-deleted task, newest first.
func (h *TaskHandler) ListDeletedTasks(w http.ResponseWriter, r *http.Request) {
	result := h.taskService.GetDeletedTasks(r.Context())
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(result.Value()))
}

// GetTask handles GET /api/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		log.Debug("invalid task ID format", slog.String("id", idParam))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	result := h.taskService.GetTask(r.Context(), id)
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(result.Value()))
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// The candidate keeps a zero CreatedAt so the service can carry over the
// stored creation time, and stamps UpdatedAt with the request time.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		log.Debug("invalid task ID format", slog.String("id", idParam))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode update task request",
			slog.String("task_id", id.String()),
			slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	now := time.Now().UTC()
	candidate := domain.TaskItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.Status(req.Status),
		Priority:    domain.Priority(req.Priority),
		DueDate:     req.DueDate,
		CompletedAt: req.CompletedAt,
		UpdatedAt:   &now,
	}

	result := h.taskService.UpdateTask(r.Context(), candidate)
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	task := result.Value()
	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
// Success returns 204; deleting an already deleted or unknown task is a 404.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		log.Debug("invalid task ID format", slog.String("id", idParam))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	result := h.taskService.DeleteTask(r.Context(), id)
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// RestoreTask handles POST /api/tasks/{id}/restore requests.
// Success returns 204; restoring an unknown task is a 404. Restoring a task
// that was never deleted succeeds, matching the storage semantics.
func (h *TaskHandler) RestoreTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		log.Debug("invalid task ID format", slog.String("id", idParam))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	result := h.taskService.RestoreTask(r.Context(), id)
	if !result.IsSuccess() {
		respondWithFailure(w, r, result.Errors())
		return
	}

	log.Debug("task restored", slog.String("task_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
