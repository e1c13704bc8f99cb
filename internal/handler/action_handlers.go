package handler

import (
	"net/http"
	"time"

	"github.com/azgroup/delega/internal/engine"
	"github.com/azgroup/delega/internal/handler/dto"
	"github.com/azgroup/delega/internal/middleware"
)

const (
	actionSubmit  = engine.ActionSubmit
	actionApprove = engine.ActionApprove
	actionReject  = engine.ActionReject
	actionRemind  = engine.ActionRemind
)

// actionHandler builds the handler for a lifecycle action endpoint.
// All four actions share the same shape: resolve the actor, validate
// the task ID, hand the attempt to the service, map the outcome.
//
// Submit:
// @Summary Submit work for approval
// @Description The assignee reports a NEW task as done; status moves to PENDING. Emits no notification.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/submit [post]
//
// Approve:
// @Summary Approve submitted work
// @Description The top administrator approves a PENDING task; status moves to COMPLETED (terminal). The assignee receives a task_approved notification.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/approve [post]
//
// Reject:
// @Summary Reject submitted work
// @Description The top administrator bounces a PENDING task back to NEW for rework. The assignee receives a task_rejected notification.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/reject [post]
//
// Remind:
// @Summary Send a reminder
// @Description The creator nudges the assignee of a NEW task. Status is unchanged; the assignee receives a reminder notification.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/remind [post]
func (h *Handler) actionHandler(action engine.Action) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

		result, err := h.taskService.ApplyAction(ctx, taskID, actor, action)
		if err != nil {
			status, code, message := dto.MapDomainError(err)
			respondError(w, status, code, message)
			return
		}

		respondJSON(w, http.StatusOK, dto.ToTransitionResponse(result.Task, result.Notifications, time.Now()))
	})
}
