package handler

import (
	"net/http"
	"strconv"

	"github.com/azgroup/delega/internal/handler/dto"
	"github.com/azgroup/delega/internal/middleware"
)

const (
	defaultNotificationLimit = 10
	maxNotificationLimit     = 100
)

// handleListNotifications returns the caller's notifications, newest first.
// @Summary List notifications
// @Description List the caller's own notifications, newest first.
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size (1-100, default 10)"
// @Success 200 {object} dto.NotificationsListResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	limit := defaultNotificationLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 && n <= maxNotificationLimit {
			limit = n
		}
	}

	notifications, err := h.notifRepo.ListByRecipient(ctx, actor.ID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list notifications")
		return
	}

	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.ToNotificationResponse(n)
	}

	respondJSON(w, http.StatusOK, dto.NotificationsListResponse{Notifications: responses})
}

// handleMarkNotificationRead flips the read flag on one of the caller's
// notifications.
// @Summary Mark a notification as read
// @Description Flip the read flag. Only the recipient may acknowledge a notification; anyone else gets 404.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *Handler) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	notificationID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.notifRepo.MarkRead(ctx, notificationID, actor.ID); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
