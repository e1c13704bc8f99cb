package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/azgroup/delega/internal/domain"
)

// StatsFilters scopes statistics to what the viewer may observe,
// mirroring the visibility predicate.
type StatsFilters struct {
	ViewerID     string
	Unrestricted bool
}

// StatsResult holds the dashboard counters.
type StatsResult struct {
	TasksByStatus map[string]int
	OverdueCount  int
}

func statsScope(qb sq.SelectBuilder, filters StatsFilters) sq.SelectBuilder {
	if !filters.Unrestricted {
		qb = qb.Where(sq.Or{
			sq.Eq{"assignee_id": filters.ViewerID},
			sq.Eq{"creator_id": filters.ViewerID},
		})
	}
	return qb
}

// GetStats retrieves task counts by status and the overdue count within
// the viewer's visibility scope.
func (r *TaskRepository) GetStats(ctx context.Context, filters StatsFilters) (*StatsResult, error) {
	query, args, err := statsScope(
		psql.Select("status", "COUNT(*)").From("tasks"), filters,
	).GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by status: %w", err)
	}
	defer rows.Close()

	result := &StatsResult{TasksByStatus: make(map[string]int)}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		result.TasksByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}

	overdueQuery, overdueArgs, err := statsScope(
		psql.Select("COUNT(*)").From("tasks"), filters,
	).
		Where("deadline < NOW()").
		Where(sq.NotEq{"status": domain.TaskStatusCompleted}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overdue count query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, overdueQuery, overdueArgs...).Scan(&result.OverdueCount); err != nil {
		return nil, fmt.Errorf("count overdue tasks: %w", err)
	}

	return result, nil
}
