package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/azgroup/delega/internal/engine"
	"github.com/azgroup/delega/internal/handler/dto"
	"github.com/azgroup/delega/internal/middleware"
	"github.com/azgroup/delega/internal/service"
)

const (
	maxTitleLength = 200

	defaultListLimit = 50
	maxListLimit     = 200
)

// handleCreateTask creates a new task.
// @Summary Create a new task
// @Description Assign a task to a strictly junior actor. The deadline must be in the future. The assignee receives a task_assigned notification.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.Title == "" || len(req.Title) > maxTitleLength {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title must be between 1 and 200 characters")
		return
	}
	if req.AssigneeID == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "assignee_id is required")
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "deadline must be an RFC 3339 timestamp")
		return
	}

	result, err := h.taskService.CreateTask(ctx, actor, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTransitionResponse(result.Task, result.Notifications, time.Now()))
}

// handleGetTask retrieves task details.
// @Summary Get task details
// @Description Get a single task with its derived deadline classification. Restricted to the creator, the assignee, or the top administrator.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(ctx, actor, taskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task, time.Now()))
}

// handleListTasks returns the tasks visible to the caller.
// @Summary List tasks
// @Description List visible tasks, newest first. The top administrator sees all tasks in the mode; other actors only see tasks they created or are assigned to.
// @Tags tasks
// @Produce json
// @Param mode query string false "Mode: active (default) or history"
// @Param limit query int false "Page size (1-200, default 50)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.TasksListResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	query := r.URL.Query()

	mode := engine.ModeActive
	if modeParam := query.Get("mode"); modeParam != "" {
		mode = engine.Mode(modeParam)
		if !mode.IsValid() {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "mode must be 'active' or 'history'")
			return
		}
	}

	limit := defaultListLimit
	if limitParam := query.Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 && n <= maxListLimit {
			limit = n
		}
	}

	offset := 0
	if offsetParam := query.Get("offset"); offsetParam != "" {
		if n, err := strconv.Atoi(offsetParam); err == nil && n >= 0 {
			offset = n
		}
	}

	tasks, total, err := h.taskService.ListTasks(ctx, actor, mode, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks")
		return
	}

	now := time.Now()
	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = dto.ToTaskResponse(task, now)
	}

	respondJSON(w, http.StatusOK, dto.TasksListResponse{
		Tasks:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// handleListAssignable returns the actors the caller may assign tasks to.
// @Summary List eligible assignees
// @Description List active actors strictly junior to the caller, ordered by name. An empty list means the caller can delegate to no one.
// @Tags actors
// @Produce json
// @Success 200 {object} dto.ActorsListResponse
// @Security BearerAuth
// @Router /actors/assignable [get]
func (h *Handler) handleListAssignable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	actors, err := h.taskService.EligibleAssignees(ctx, actor)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list assignees")
		return
	}

	responses := make([]dto.ActorResponse, len(actors))
	for i, a := range actors {
		responses[i] = dto.ToActorResponse(a)
	}

	respondJSON(w, http.StatusOK, dto.ActorsListResponse{Actors: responses})
}
