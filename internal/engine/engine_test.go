package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azgroup/delega/internal/domain"
	"github.com/azgroup/delega/internal/engine"
)

var (
	admin   = &domain.Actor{ID: "actor-admin", Username: "admin", FullName: "Top Administrator", RoleLevel: 0}
	manager = &domain.Actor{ID: "actor-manager", Username: "manager", FullName: "Middle Manager", RoleLevel: 1}
	staff   = &domain.Actor{ID: "actor-staff", Username: "staff", FullName: "Staff Member", RoleLevel: 2}
)

func newTask(status domain.TaskStatus) *domain.Task {
	now := time.Now()
	return &domain.Task{
		ID:         "task-1",
		Title:      "Quarterly report",
		Deadline:   now.Add(72 * time.Hour),
		CreatorID:  manager.ID,
		AssigneeID: staff.ID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestApply_Submit(t *testing.T) {
	task := newTask(domain.TaskStatusNew)

	result, err := engine.Apply(staff, task, engine.ActionSubmit, time.Now())
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusPending, result.Task.Status)
	assert.Empty(t, result.Notifications, "submit must not notify anyone")
	assert.Equal(t, domain.TaskStatusNew, task.Status, "input snapshot must not be mutated")
}

func TestApply_SubmitByNonAssignee(t *testing.T) {
	task := newTask(domain.TaskStatusNew)

	for _, actor := range []*domain.Actor{admin, manager} {
		_, err := engine.Apply(actor, task, engine.ActionSubmit, time.Now())
		assert.ErrorIs(t, err, domain.ErrForbidden, "actor %s", actor.ID)
	}
}

func TestApply_Approve(t *testing.T) {
	task := newTask(domain.TaskStatusPending)

	result, err := engine.Apply(admin, task, engine.ActionApprove, time.Now())
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusCompleted, result.Task.Status)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, staff.ID, result.Notifications[0].RecipientID)
	assert.Equal(t, domain.NotificationTaskApproved, result.Notifications[0].Category)
}

func TestApply_ApproveRequiresTopAdministrator(t *testing.T) {
	task := newTask(domain.TaskStatusPending)

	// Not even the creator may approve.
	_, err := engine.Apply(manager, task, engine.ActionApprove, time.Now())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = engine.Apply(staff, task, engine.ActionReject, time.Now())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApply_Reject(t *testing.T) {
	task := newTask(domain.TaskStatusPending)

	result, err := engine.Apply(admin, task, engine.ActionReject, time.Now())
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusNew, result.Task.Status)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, staff.ID, result.Notifications[0].RecipientID)
	assert.Equal(t, domain.NotificationTaskRejected, result.Notifications[0].Category)
}

func TestApply_Remind(t *testing.T) {
	task := newTask(domain.TaskStatusNew)

	result, err := engine.Apply(manager, task, engine.ActionRemind, time.Now())
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusNew, result.Task.Status, "remind must not change status")
	assert.Equal(t, task.UpdatedAt, result.Task.UpdatedAt)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, staff.ID, result.Notifications[0].RecipientID)
	assert.Equal(t, domain.NotificationReminder, result.Notifications[0].Category)
}

func TestApply_RemindRequiresCreator(t *testing.T) {
	task := newTask(domain.TaskStatusNew)

	for _, actor := range []*domain.Actor{admin, staff} {
		_, err := engine.Apply(actor, task, engine.ActionRemind, time.Now())
		assert.ErrorIs(t, err, domain.ErrForbidden, "actor %s", actor.ID)
	}
}

// TestApply_Totality verifies every (status, action) pair outside the
// transition table fails with ErrIllegalTransition, for every actor.
func TestApply_Totality(t *testing.T) {
	legal := map[domain.TaskStatus][]engine.Action{
		domain.TaskStatusNew:     {engine.ActionSubmit, engine.ActionRemind},
		domain.TaskStatusPending: {engine.ActionApprove, engine.ActionReject},
	}

	statuses := []domain.TaskStatus{domain.TaskStatusNew, domain.TaskStatusPending, domain.TaskStatusCompleted}
	actions := []engine.Action{engine.ActionSubmit, engine.ActionApprove, engine.ActionReject, engine.ActionRemind}
	actors := []*domain.Actor{admin, manager, staff}

	for _, status := range statuses {
		for _, action := range actions {
			isLegal := false
			for _, a := range legal[status] {
				if a == action {
					isLegal = true
				}
			}
			if isLegal {
				continue
			}
			for _, actor := range actors {
				task := newTask(status)
				_, err := engine.Apply(actor, task, action, time.Now())
				assert.ErrorIs(t, err, domain.ErrIllegalTransition,
					"%s on %s by %s", action, status, actor.ID)
				assert.Equal(t, status, task.Status)
			}
		}
	}
}

// TestApply_CompletedIsAbsorbing verifies no action moves a task out of
// COMPLETED, even for the top administrator.
func TestApply_CompletedIsAbsorbing(t *testing.T) {
	task := newTask(domain.TaskStatusCompleted)

	for _, action := range []engine.Action{engine.ActionSubmit, engine.ActionApprove, engine.ActionReject, engine.ActionRemind} {
		_, err := engine.Apply(admin, task, action, time.Now())
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, "action %s", action)
	}
}

// TestApply_StaleSnapshot covers the idempotent-rejection property: a
// second approve against the post-transition snapshot is illegal.
func TestApply_StaleSnapshot(t *testing.T) {
	task := newTask(domain.TaskStatusPending)

	result, err := engine.Apply(admin, task, engine.ActionApprove, time.Now())
	require.NoError(t, err)

	_, err = engine.Apply(admin, result.Task, engine.ActionApprove, time.Now())
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestCreate(t *testing.T) {
	now := time.Now()
	result, err := engine.Create(manager, staff, engine.CreateParams{
		Title:       "Inventory check",
		Description: "Count everything in warehouse B",
		Deadline:    now.Add(time.Hour),
	}, now)
	require.NoError(t, err)

	task := result.Task
	assert.Equal(t, domain.TaskStatusNew, task.Status)
	assert.Equal(t, manager.ID, task.CreatorID)
	assert.Equal(t, staff.ID, task.AssigneeID)

	require.Len(t, result.Notifications, 1)
	n := result.Notifications[0]
	assert.Equal(t, staff.ID, n.RecipientID)
	assert.Equal(t, domain.NotificationTaskAssigned, n.Category)
	assert.Contains(t, n.Message, manager.FullName)
	assert.Contains(t, n.Message, "Inventory check")
}

func TestCreate_HierarchyViolation(t *testing.T) {
	now := time.Now()
	params := engine.CreateParams{Title: "t", Deadline: now.Add(time.Hour)}

	cases := []struct {
		name     string
		creator  *domain.Actor
		assignee *domain.Actor
	}{
		{"upward", staff, manager},
		{"lateral", manager, &domain.Actor{ID: "peer", RoleLevel: 1}},
		{"self", manager, manager},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Create(tc.creator, tc.assignee, params, now)
			assert.ErrorIs(t, err, domain.ErrHierarchyViolation)
		})
	}
}

func TestCreate_InvalidDeadline(t *testing.T) {
	now := time.Now()

	_, err := engine.Create(manager, staff, engine.CreateParams{Title: "t", Deadline: now.Add(-time.Minute)}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidDeadline)

	// Exactly now is not strictly in the future.
	_, err = engine.Create(manager, staff, engine.CreateParams{Title: "t", Deadline: now}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidDeadline)
}

// TestNotificationRecipients verifies every successful transition only
// notifies the task's assignee or creator, never the acting actor.
func TestNotificationRecipients(t *testing.T) {
	attempts := []struct {
		status domain.TaskStatus
		action engine.Action
		actor  *domain.Actor
	}{
		{domain.TaskStatusNew, engine.ActionSubmit, staff},
		{domain.TaskStatusNew, engine.ActionRemind, manager},
		{domain.TaskStatusPending, engine.ActionApprove, admin},
		{domain.TaskStatusPending, engine.ActionReject, admin},
	}

	for _, at := range attempts {
		task := newTask(at.status)
		result, err := engine.Apply(at.actor, task, at.action, time.Now())
		require.NoError(t, err, "%s on %s", at.action, at.status)

		for _, n := range result.Notifications {
			assert.Contains(t, []string{task.AssigneeID, task.CreatorID}, n.RecipientID)
			assert.NotEqual(t, at.actor.ID, n.RecipientID,
				"%s must not notify the acting actor", at.action)
		}
	}
}
