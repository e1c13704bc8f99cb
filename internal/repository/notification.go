package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azgroup/delega/internal/domain"
)

// NotificationRepository handles database operations for notifications.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// CreateBatch persists the notifications produced by a transition
// within the same transaction as the status write, so a status change
// is never observed without its notifications.
func (r *NotificationRepository) CreateBatch(
	ctx context.Context,
	tx pgx.Tx,
	notifications []*domain.Notification,
) error {
	for _, n := range notifications {
		query, args, err := psql.
			Insert("notifications").
			Columns("recipient_id", "title", "message", "category", "is_read").
			Values(n.RecipientID, n.Title, n.Message, n.Category, n.IsRead).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build Create query for notification: %w", err)
		}

		if err := tx.QueryRow(ctx, query, args...).Scan(&n.ID, &n.CreatedAt); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}
	}
	return nil
}

// ListByRecipient retrieves the recipient's notifications, newest first.
func (r *NotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID string,
	limit int,
) ([]*domain.Notification, error) {
	query, args, err := psql.
		Select("id", "recipient_id", "title", "message", "category", "is_read", "created_at").
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByRecipient query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.Title,
			&n.Message,
			&n.Category,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag. The recipient predicate makes the flip
// recipient-only: marking someone else's notification affects no rows
// and reports not found.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	query, args, err := psql.
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{
			"id":           notificationID,
			"recipient_id": recipientID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build MarkRead query for notification %s: %w", notificationID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}
