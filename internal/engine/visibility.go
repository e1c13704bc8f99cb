package engine

import "github.com/azgroup/delega/internal/domain"

// Mode selects which slice of the lifecycle a listing shows.
type Mode string

const (
	// ModeActive shows tasks still in flight (status != COMPLETED).
	ModeActive Mode = "active"
	// ModeHistory shows approved tasks (status == COMPLETED).
	ModeHistory Mode = "history"
)

// IsValid checks if the mode is one of the allowed values.
func (m Mode) IsValid() bool {
	return m == ModeActive || m == ModeHistory
}

func matchesMode(status domain.TaskStatus, mode Mode) bool {
	if mode == ModeHistory {
		return status == domain.TaskStatusCompleted
	}
	return status != domain.TaskStatusCompleted
}

// Visible reports whether the actor may observe the task in the given
// mode. The top administrator sees everything within the mode; any
// other actor only sees tasks they created or are assigned to,
// regardless of role level.
//
// This predicate is the source of truth. The repository pushes an
// equivalent predicate into SQL so large task sets are filtered in the
// store; the two must stay in agreement.
func Visible(actor *domain.Actor, task *domain.Task, mode Mode) bool {
	if !matchesMode(task.Status, mode) {
		return false
	}
	if actor.IsTopAdministrator() {
		return true
	}
	return task.IsAssignedTo(actor.ID) || task.IsCreatedBy(actor.ID)
}

// VisibleTasks filters an in-memory snapshot to the tasks the actor may
// see in the given mode, preserving input order.
func VisibleTasks(actor *domain.Actor, tasks []*domain.Task, mode Mode) []*domain.Task {
	visible := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if Visible(actor, task, mode) {
			visible = append(visible, task)
		}
	}
	return visible
}
