// Package engine implements the task lifecycle core: the transition
// table governing status changes, the actor-requirement guards, the
// visibility filter and the notification fan-out. Everything here is a
// pure function over snapshots; persistence and transport live with the
// callers.
package engine

import (
	"fmt"
	"time"

	"github.com/azgroup/delega/internal/domain"
)

// Action represents an actor-initiated operation on a task.
type Action string

const (
	ActionCreate  Action = "create"
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionRemind  Action = "remind"
)

// IsValid checks if the action is one of the transition actions
// applicable to an existing task. Create has its own entry point.
func (a Action) IsValid() bool {
	switch a {
	case ActionSubmit, ActionApprove, ActionReject, ActionRemind:
		return true
	default:
		return false
	}
}

// Event is the tuple describing a successful transition, consumed by
// the notification dispatcher.
type Event struct {
	Task   *domain.Task
	From   domain.TaskStatus
	To     domain.TaskStatus
	Action Action
	Actor  *domain.Actor
}

// Result is the atomic outcome of a transition: the next task snapshot
// and the notifications it produced. Callers must persist both as one
// logical unit.
type Result struct {
	Task          *domain.Task
	Notifications []*domain.Notification
}

type transitionKey struct {
	from   domain.TaskStatus
	action Action
}

type transition struct {
	to        domain.TaskStatus
	permitted func(actor *domain.Actor, task *domain.Task) error
}

// transitions is the complete set of legal (status, action) pairs. Any
// pair absent from this table fails with ErrIllegalTransition.
var transitions = map[transitionKey]transition{
	{domain.TaskStatusNew, ActionSubmit}:      {to: domain.TaskStatusPending, permitted: requireAssignee},
	{domain.TaskStatusPending, ActionApprove}: {to: domain.TaskStatusCompleted, permitted: requireTopAdministrator},
	{domain.TaskStatusPending, ActionReject}:  {to: domain.TaskStatusNew, permitted: requireTopAdministrator},
	{domain.TaskStatusNew, ActionRemind}:      {to: domain.TaskStatusNew, permitted: requireCreator},
}

func requireAssignee(actor *domain.Actor, task *domain.Task) error {
	if !task.IsAssignedTo(actor.ID) {
		return fmt.Errorf("%w: actor %s is not the assignee of task %s", domain.ErrForbidden, actor.ID, task.ID)
	}
	return nil
}

func requireCreator(actor *domain.Actor, task *domain.Task) error {
	if !task.IsCreatedBy(actor.ID) {
		return fmt.Errorf("%w: actor %s is not the creator of task %s", domain.ErrForbidden, actor.ID, task.ID)
	}
	return nil
}

func requireTopAdministrator(actor *domain.Actor, task *domain.Task) error {
	if !actor.IsTopAdministrator() {
		return fmt.Errorf("%w: only the top administrator may approve or reject task %s", domain.ErrForbidden, task.ID)
	}
	return nil
}

// Apply attempts a transition on an existing task snapshot. It either
// returns the full result or an error; the input snapshot is never
// mutated. Callers are expected to hold the latest committed status and
// to serialize conflicting writers in the store.
func Apply(actor *domain.Actor, task *domain.Task, action Action, now time.Time) (*Result, error) {
	tr, ok := transitions[transitionKey{from: task.Status, action: action}]
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a task in %s status", domain.ErrIllegalTransition, action, task.Status)
	}
	if err := tr.permitted(actor, task); err != nil {
		return nil, err
	}

	next := *task
	next.Status = tr.to
	if tr.to != task.Status {
		next.UpdatedAt = now
	}

	event := &Event{
		Task:   &next,
		From:   task.Status,
		To:     tr.to,
		Action: action,
		Actor:  actor,
	}

	return &Result{
		Task:          &next,
		Notifications: NotificationsFor(event, now),
	}, nil
}

// CreateParams carries the caller-supplied fields for a new task.
type CreateParams struct {
	Title       string
	Description string
	Deadline    time.Time
}

// Create validates and builds the initial snapshot for a new task:
// the assignee must be strictly junior to the creator and the deadline
// strictly in the future. The returned task has no ID; the store
// assigns one on insert.
func Create(creator, assignee *domain.Actor, params CreateParams, now time.Time) (*Result, error) {
	if !creator.CanAssignTo(assignee) {
		return nil, fmt.Errorf("%w: actor %s (level %d) cannot assign to %s (level %d)",
			domain.ErrHierarchyViolation, creator.ID, creator.RoleLevel, assignee.ID, assignee.RoleLevel)
	}
	if !params.Deadline.After(now) {
		return nil, fmt.Errorf("%w: got %s", domain.ErrInvalidDeadline, params.Deadline.Format(time.RFC3339))
	}

	task := &domain.Task{
		Title:       params.Title,
		Description: params.Description,
		Deadline:    params.Deadline,
		CreatorID:   creator.ID,
		AssigneeID:  assignee.ID,
		Status:      domain.TaskStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	event := &Event{
		Task:   task,
		From:   "",
		To:     domain.TaskStatusNew,
		Action: ActionCreate,
		Actor:  creator,
	}

	return &Result{
		Task:          task,
		Notifications: NotificationsFor(event, now),
	}, nil
}
