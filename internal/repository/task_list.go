package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/azgroup/delega/internal/domain"
)

// TaskListFilters holds the supported filters for task listing. The
// predicate realized here must stay equivalent to the engine's
// visibility filter, which is the source of truth.
type TaskListFilters struct {
	ViewerID     string // Required: actor requesting the list
	Unrestricted bool   // Top administrator: no ownership restriction
	Completed    bool   // History mode (status = COMPLETED) vs active (!=)
	Limit        int    // Required: page size
	Offset       int    // Required: page offset
}

// List retrieves the tasks visible to the viewer, newest first, with
// pagination. Returns the page and the total count of matching rows.
func (r *TaskRepository) List(ctx context.Context, filters TaskListFilters) ([]*domain.Task, int, error) {
	qb := psql.Select(taskColumns...).From("tasks")
	qb = applyVisibility(qb, filters)
	qb = qb.OrderBy("created_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := applyVisibility(psql.Select("COUNT(*)").From("tasks"), filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	return tasks, total, nil
}

func applyVisibility(qb sq.SelectBuilder, filters TaskListFilters) sq.SelectBuilder {
	if filters.Completed {
		qb = qb.Where(sq.Eq{"status": domain.TaskStatusCompleted})
	} else {
		qb = qb.Where(sq.NotEq{"status": domain.TaskStatusCompleted})
	}
	if !filters.Unrestricted {
		qb = qb.Where(sq.Or{
			sq.Eq{"assignee_id": filters.ViewerID},
			sq.Eq{"creator_id": filters.ViewerID},
		})
	}
	return qb
}
