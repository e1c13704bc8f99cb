package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azgroup/delega/internal/domain"
)

// actorColumns is the shared list of columns for actor queries.
var actorColumns = []string{
	"id", "username", "full_name", "role_level", "token", "is_active", "created_at",
}

// ActorRepository handles database operations for actors.
type ActorRepository struct {
	pool *pgxpool.Pool
}

// NewActorRepository creates a new ActorRepository.
func NewActorRepository(pool *pgxpool.Pool) *ActorRepository {
	return &ActorRepository{pool: pool}
}

func scanActor(row pgx.Row) (*domain.Actor, error) {
	var actor domain.Actor
	err := row.Scan(
		&actor.ID,
		&actor.Username,
		&actor.FullName,
		&actor.RoleLevel,
		&actor.Token,
		&actor.IsActive,
		&actor.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("scan actor: %w", err)
	}
	return &actor, nil
}

// GetByID retrieves an actor by ID.
func (r *ActorRepository) GetByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	query, args, err := psql.
		Select(actorColumns...).
		From("actors").
		Where(sq.Eq{"id": actorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for actor: %w", err)
	}

	return scanActor(r.pool.QueryRow(ctx, query, args...))
}

// GetByToken finds an actor by authentication token.
func (r *ActorRepository) GetByToken(ctx context.Context, token string) (*domain.Actor, error) {
	query, args, err := psql.
		Select(actorColumns...).
		From("actors").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByToken query for actor: %w", err)
	}

	return scanActor(r.pool.QueryRow(ctx, query, args...))
}

// ListJuniors retrieves the active actors strictly junior to the given
// role level, ordered by name. This is the storage-side counterpart of
// domain.EligibleAssignees.
func (r *ActorRepository) ListJuniors(ctx context.Context, roleLevel int) ([]*domain.Actor, error) {
	query, args, err := psql.
		Select(actorColumns...).
		From("actors").
		Where(sq.Gt{"role_level": roleLevel}).
		Where(sq.Eq{"is_active": true}).
		OrderBy("full_name ASC", "username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListJuniors query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query junior actors: %w", err)
	}
	defer rows.Close()

	var actors []*domain.Actor
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return actors, nil
}
