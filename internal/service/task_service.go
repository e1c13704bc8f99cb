package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azgroup/delega/internal/domain"
	"github.com/azgroup/delega/internal/engine"
	"github.com/azgroup/delega/internal/repository"
)

// TaskService coordinates the lifecycle engine with durable storage.
// The engine decides what is legal; this layer makes the decision
// durable: the status write and the notification inserts always commit
// as one transaction.
type TaskService struct {
	pool      *pgxpool.Pool
	taskRepo  *repository.TaskRepository
	actorRepo *repository.ActorRepository
	notifRepo *repository.NotificationRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	actorRepo *repository.ActorRepository,
	notifRepo *repository.NotificationRepository,
) *TaskService {
	return &TaskService{
		pool:      pool,
		taskRepo:  taskRepo,
		actorRepo: actorRepo,
		notifRepo: notifRepo,
	}
}

// getActiveActor fetches an actor by ID and verifies it is active.
func (s *TaskService) getActiveActor(ctx context.Context, actorID string) (*domain.Actor, error) {
	actor, err := s.actorRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsActive {
		return nil, domain.ErrActorInactive
	}
	return actor, nil
}

// persistAndCommit writes the notifications and commits the transaction.
func (s *TaskService) persistAndCommit(ctx context.Context, tx pgx.Tx, result *engine.Result) error {
	if err := s.notifRepo.CreateBatch(ctx, tx, result.Notifications); err != nil {
		return fmt.Errorf("create notifications: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CreateTaskParams carries the request fields for task creation.
type CreateTaskParams struct {
	Title       string
	Description string
	Deadline    time.Time
	AssigneeID  string
}

// CreateTask creates a task assigned by the creator to a strictly
// junior actor, persisting the task and its assignment notification
// atomically.
func (s *TaskService) CreateTask(
	ctx context.Context,
	creator *domain.Actor,
	params CreateTaskParams,
) (*engine.Result, error) {
	assignee, err := s.getActiveActor(ctx, params.AssigneeID)
	if err != nil {
		return nil, err
	}

	result, err := engine.Create(creator, assignee, engine.CreateParams{
		Title:       params.Title,
		Description: params.Description,
		Deadline:    params.Deadline,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if _, err := s.taskRepo.Create(ctx, tx, result.Task); err != nil {
		return nil, err
	}

	if err := s.persistAndCommit(ctx, tx, result); err != nil {
		return nil, err
	}

	slog.Info("task created",
		"task_id", result.Task.ID,
		"creator_id", creator.ID,
		"assignee_id", assignee.ID,
	)

	return result, nil
}

// ApplyAction attempts a lifecycle transition on an existing task. The
// task row is locked for the duration of the transaction and the status
// write carries an optimistic check against the snapshot the engine
// evaluated, so a stale caller gets ErrConflictingUpdate and can
// re-read and retry.
func (s *TaskService) ApplyAction(
	ctx context.Context,
	taskID string,
	actor *domain.Actor,
	action engine.Action,
) (*engine.Result, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAction, action)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	result, err := engine.Apply(actor, task, action, time.Now())
	if err != nil {
		return nil, err
	}

	// Remind leaves the status untouched; nothing to write for it.
	if result.Task.Status != task.Status {
		if err := s.taskRepo.UpdateStatus(ctx, tx, taskID, task.Status, result.Task.Status); err != nil {
			return nil, err
		}
	}

	if err := s.persistAndCommit(ctx, tx, result); err != nil {
		return nil, err
	}

	slog.Info("task transition applied",
		"task_id", taskID,
		"actor_id", actor.ID,
		"action", action,
		"old_status", task.Status,
		"new_status", result.Task.Status,
	)

	return result, nil
}

// GetTask retrieves a task, enforcing the visibility filter for the
// viewer.
func (s *TaskService) GetTask(ctx context.Context, viewer *domain.Actor, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	mode := engine.ModeActive
	if task.Status == domain.TaskStatusCompleted {
		mode = engine.ModeHistory
	}
	if !engine.Visible(viewer, task, mode) {
		return nil, fmt.Errorf("%w: actor %s may not view task %s", domain.ErrForbidden, viewer.ID, taskID)
	}

	return task, nil
}

// ListTasks retrieves the page of tasks the viewer may see in the given
// mode, newest first.
func (s *TaskService) ListTasks(
	ctx context.Context,
	viewer *domain.Actor,
	mode engine.Mode,
	limit, offset int,
) ([]*domain.Task, int, error) {
	return s.taskRepo.List(ctx, repository.TaskListFilters{
		ViewerID:     viewer.ID,
		Unrestricted: viewer.IsTopAdministrator(),
		Completed:    mode == engine.ModeHistory,
		Limit:        limit,
		Offset:       offset,
	})
}

// EligibleAssignees retrieves the active actors the given actor may
// assign tasks to.
func (s *TaskService) EligibleAssignees(ctx context.Context, actor *domain.Actor) ([]*domain.Actor, error) {
	return s.actorRepo.ListJuniors(ctx, actor.RoleLevel)
}
