package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azgroup/delega/internal/domain"
	"github.com/azgroup/delega/internal/engine"
)

func TestNotificationsFor_Deterministic(t *testing.T) {
	task := newTask(domain.TaskStatusNew)
	now := time.Now()
	event := &engine.Event{
		Task:   task,
		From:   domain.TaskStatusNew,
		To:     domain.TaskStatusNew,
		Action: engine.ActionRemind,
		Actor:  manager,
	}

	first := engine.NotificationsFor(event, now)
	second := engine.NotificationsFor(event, now)
	assert.Equal(t, first, second, "same event must produce identical payloads")
}

func TestNotificationsFor_ReminderMessage(t *testing.T) {
	task := newTask(domain.TaskStatusNew)
	event := &engine.Event{Task: task, Action: engine.ActionRemind, Actor: manager}

	notifications := engine.NotificationsFor(event, time.Now())
	require.Len(t, notifications, 1)

	n := notifications[0]
	assert.Equal(t, `Middle Manager is reminding you to complete "Quarterly report"`, n.Message)
	assert.Equal(t, "Task reminder", n.Title)
	assert.False(t, n.IsRead)
}

func TestNotificationsFor_FallsBackToUsername(t *testing.T) {
	creator := &domain.Actor{ID: "c", Username: "jdoe", RoleLevel: 1}
	task := newTask(domain.TaskStatusNew)
	event := &engine.Event{Task: task, Action: engine.ActionCreate, Actor: creator}

	notifications := engine.NotificationsFor(event, time.Now())
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "jdoe")
}

func TestNotificationsFor_SubmitEmitsNothing(t *testing.T) {
	task := newTask(domain.TaskStatusPending)
	event := &engine.Event{
		Task:   task,
		From:   domain.TaskStatusNew,
		To:     domain.TaskStatusPending,
		Action: engine.ActionSubmit,
		Actor:  staff,
	}

	assert.Empty(t, engine.NotificationsFor(event, time.Now()))
}
