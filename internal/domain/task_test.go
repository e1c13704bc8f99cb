package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/azgroup/delega/internal/domain"
)

func TestTaskStatusIsValid(t *testing.T) {
	assert.True(t, domain.TaskStatusNew.IsValid())
	assert.True(t, domain.TaskStatusPending.IsValid())
	assert.True(t, domain.TaskStatusCompleted.IsValid())
	assert.False(t, domain.TaskStatus("ARCHIVED").IsValid())
}

func TestTaskStatusIsTerminal(t *testing.T) {
	assert.False(t, domain.TaskStatusNew.IsTerminal())
	assert.False(t, domain.TaskStatusPending.IsTerminal())
	assert.True(t, domain.TaskStatusCompleted.IsTerminal())
}

func TestDeadlineStateAt(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name     string
		deadline time.Time
		status   domain.TaskStatus
		want     domain.DeadlineState
	}{
		{"past deadline", now.Add(-time.Minute), domain.TaskStatusNew, domain.DeadlineOverdue},
		{"inside urgent window", now.Add(24 * time.Hour), domain.TaskStatusNew, domain.DeadlineUrgent},
		{"just inside urgent window", now.Add(48*time.Hour - time.Second), domain.TaskStatusPending, domain.DeadlineUrgent},
		{"well ahead", now.Add(72 * time.Hour), domain.TaskStatusNew, domain.DeadlineOnTrack},
		{"completed never flags", now.Add(-time.Hour), domain.TaskStatusCompleted, domain.DeadlineOnTrack},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := &domain.Task{Deadline: tc.deadline, Status: tc.status}
			assert.Equal(t, tc.want, task.DeadlineStateAt(now))
		})
	}
}

func TestTaskOwnership(t *testing.T) {
	task := &domain.Task{CreatorID: "creator", AssigneeID: "assignee"}

	assert.True(t, task.IsCreatedBy("creator"))
	assert.False(t, task.IsCreatedBy("assignee"))
	assert.True(t, task.IsAssignedTo("assignee"))
	assert.False(t, task.IsAssignedTo("creator"))
}
