package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/azgroup/delega/internal/domain"
	"github.com/azgroup/delega/internal/engine"
)

func taskWith(id string, status domain.TaskStatus, creatorID, assigneeID string) *domain.Task {
	return &domain.Task{
		ID:         id,
		Title:      "task " + id,
		Deadline:   time.Now().Add(time.Hour),
		CreatorID:  creatorID,
		AssigneeID: assigneeID,
		Status:     status,
	}
}

func TestVisibleTasks_Administrator(t *testing.T) {
	tasks := []*domain.Task{
		taskWith("1", domain.TaskStatusNew, manager.ID, staff.ID),
		taskWith("2", domain.TaskStatusPending, manager.ID, staff.ID),
		taskWith("3", domain.TaskStatusCompleted, manager.ID, staff.ID),
		taskWith("4", domain.TaskStatusNew, "other-creator", "other-assignee"),
	}

	active := engine.VisibleTasks(admin, tasks, engine.ModeActive)
	assert.Len(t, active, 3, "administrator sees all non-completed tasks")

	history := engine.VisibleTasks(admin, tasks, engine.ModeHistory)
	assert.Len(t, history, 1)
	assert.Equal(t, "3", history[0].ID)
}

func TestVisibleTasks_NonAdministrator(t *testing.T) {
	tasks := []*domain.Task{
		taskWith("created", domain.TaskStatusNew, manager.ID, staff.ID),
		taskWith("assigned", domain.TaskStatusNew, "someone", manager.ID),
		taskWith("unrelated", domain.TaskStatusNew, "someone", "else"),
		taskWith("done", domain.TaskStatusCompleted, manager.ID, staff.ID),
	}

	active := engine.VisibleTasks(manager, tasks, engine.ModeActive)
	assert.Len(t, active, 2)
	for _, task := range active {
		assert.True(t, task.IsCreatedBy(manager.ID) || task.IsAssignedTo(manager.ID),
			"visibility soundness violated for task %s", task.ID)
	}

	history := engine.VisibleTasks(manager, tasks, engine.ModeHistory)
	assert.Len(t, history, 1)
	assert.Equal(t, "done", history[0].ID)
}

// Role level grants no visibility without ownership: a senior manager
// still cannot see an unrelated junior's task.
func TestVisible_SeniorityGrantsNothing(t *testing.T) {
	task := taskWith("1", domain.TaskStatusNew, "other-manager", staff.ID)

	assert.False(t, engine.Visible(manager, task, engine.ModeActive))
	assert.True(t, engine.Visible(admin, task, engine.ModeActive))
	assert.True(t, engine.Visible(staff, task, engine.ModeActive))
}

func TestModeIsValid(t *testing.T) {
	assert.True(t, engine.ModeActive.IsValid())
	assert.True(t, engine.ModeHistory.IsValid())
	assert.False(t, engine.Mode("archived").IsValid())
	assert.False(t, engine.Mode("").IsValid())
}
