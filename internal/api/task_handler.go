package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/service"
)

// TaskHandler handles task CRUD API requests. Every route it serves sits
// behind the auth middleware, so by the time a handler runs the request
// carries an authenticated username.
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	task, err := h.taskService.Create(r.Context(), req.Name, req.Priority)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// DeleteAllTasks handles DELETE /tasks.
func (h *TaskHandler) DeleteAllTasks(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.DeleteAll(r.Context()); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTask handles GET /tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		respondTaskError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := h.taskService.UpdateByID(r.Context(), id, req.Name, req.Priority); err != nil {
		respondTaskError(w, r, err, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: fmt.Sprintf("task %d updated", id),
	})
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteByID(r.Context(), id); err != nil {
		respondTaskError(w, r, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondTaskError writes the error response for a task operation,
// phrasing not-found errors with the requested ID.
func respondTaskError(w http.ResponseWriter, r *http.Request, err error, id int64) {
	msg := ""
	if errors.Is(err, service.ErrTaskNotFound) {
		msg = fmt.Sprintf("task %d not found", id)
	}
	HandleAPIError(w, r, err, msg)
}

// taskID extracts the numeric task ID from the URL path. A non-numeric ID
// gets a 404, matching how an unroutable resource behaves.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		shared.RespondWithError(w, r, http.StatusNotFound, fmt.Sprintf("task %s not found", raw))
		return 0, false
	}
	return id, true
}
