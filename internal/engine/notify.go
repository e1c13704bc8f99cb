package engine

import (
	"fmt"
	"time"

	"github.com/azgroup/delega/internal/domain"
)

// NotificationsFor computes the notification fan-out for a successful
// transition. Message text is a single fixed template per category so
// that payloads are reproducible. The dispatcher only computes; it
// never delivers.
//
// Submit deliberately emits nothing: the administrator polls the
// pending queue instead of being pushed to.
func NotificationsFor(event *Event, now time.Time) []*domain.Notification {
	task := event.Task

	switch event.Action {
	case ActionCreate:
		return []*domain.Notification{{
			RecipientID: task.AssigneeID,
			Title:       "New task assigned",
			Message:     fmt.Sprintf("%s assigned you a task: %q", event.Actor.DisplayName(), task.Title),
			Category:    domain.NotificationTaskAssigned,
			CreatedAt:   now,
		}}
	case ActionApprove:
		return []*domain.Notification{{
			RecipientID: task.AssigneeID,
			Title:       "Task approved",
			Message:     fmt.Sprintf("The administrator approved completion of %q", task.Title),
			Category:    domain.NotificationTaskApproved,
			CreatedAt:   now,
		}}
	case ActionReject:
		return []*domain.Notification{{
			RecipientID: task.AssigneeID,
			Title:       "Task returned for rework",
			Message:     fmt.Sprintf("The administrator returned %q for rework", task.Title),
			Category:    domain.NotificationTaskRejected,
			CreatedAt:   now,
		}}
	case ActionRemind:
		return []*domain.Notification{{
			RecipientID: task.AssigneeID,
			Title:       "Task reminder",
			Message:     fmt.Sprintf("%s is reminding you to complete %q", event.Actor.DisplayName(), task.Title),
			Category:    domain.NotificationReminder,
			CreatedAt:   now,
		}}
	default:
		return nil
	}
}
