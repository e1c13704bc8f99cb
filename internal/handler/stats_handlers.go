package handler

import (
	"net/http"

	"github.com/azgroup/delega/internal/domain"
	"github.com/azgroup/delega/internal/handler/dto"
	"github.com/azgroup/delega/internal/middleware"
	"github.com/azgroup/delega/internal/repository"
)

// handleGetStats returns dashboard counters scoped by the caller's
// visibility.
// @Summary Get statistics
// @Description Task counts by status, overdue count, and completion rate, limited to what the caller may see.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := middleware.GetActorFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	stats, err := h.taskRepo.GetStats(ctx, repository.StatsFilters{
		ViewerID:     actor.ID,
		Unrestricted: actor.IsTopAdministrator(),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute statistics")
		return
	}

	total := 0
	for _, count := range stats.TasksByStatus {
		total += count
	}

	completionRate := 0.0
	if total > 0 {
		completed := stats.TasksByStatus[string(domain.TaskStatusCompleted)]
		completionRate = float64(completed) / float64(total) * 100
	}

	respondJSON(w, http.StatusOK, dto.StatsResponse{
		TasksByStatus:         stats.TasksByStatus,
		OverdueCount:          stats.OverdueCount,
		CompletionRatePercent: completionRate,
	})
}
