package domain

import "time"

// TaskStatus represents the status of a task in the lifecycle state machine.
type TaskStatus string

const (
	// TaskStatusNew is the initial status: created, awaiting assignee action.
	TaskStatusNew TaskStatus = "NEW"
	// TaskStatusPending means the assignee has submitted the work for approval.
	TaskStatusPending TaskStatus = "PENDING"
	// TaskStatusCompleted is the only terminal status: work approved.
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// IsTerminal returns true if the status permits no further transitions.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted
}

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNew, TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// UrgentWindow is how close to the deadline a task is classified as urgent.
const UrgentWindow = 48 * time.Hour

// DeadlineState is a derived, display-only classification of a task
// relative to its deadline. It is computed on every read and never
// stored, and it never feeds back into the status.
type DeadlineState string

const (
	DeadlineOverdue DeadlineState = "overdue"
	DeadlineUrgent  DeadlineState = "urgent"
	DeadlineOnTrack DeadlineState = "on_track"
)

// Task represents a unit of delegated work.
type Task struct {
	ID          string
	Title       string
	Description string
	Deadline    time.Time
	CreatorID   string
	AssigneeID  string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAssignedTo checks if the task is assigned to the given actor.
func (t *Task) IsAssignedTo(actorID string) bool {
	return t.AssigneeID == actorID
}

// IsCreatedBy checks if the task was created by the given actor.
func (t *Task) IsCreatedBy(actorID string) bool {
	return t.CreatorID == actorID
}

// DeadlineStateAt classifies the task's deadline relative to now.
// Completed tasks are always on track.
func (t *Task) DeadlineStateAt(now time.Time) DeadlineState {
	if t.Status == TaskStatusCompleted {
		return DeadlineOnTrack
	}
	switch remaining := t.Deadline.Sub(now); {
	case remaining < 0:
		return DeadlineOverdue
	case remaining < UrgentWindow:
		return DeadlineUrgent
	default:
		return DeadlineOnTrack
	}
}
