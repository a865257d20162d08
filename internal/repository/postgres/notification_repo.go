package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	n.IsRead = false
	n.CreatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		n.UserID, n.Message, n.Type, n.IsRead, n.CreatedAt,
	).Scan(&n.ID)
}

func (r *notificationRepo) GetByUserID(ctx context.Context, userID string, onlyUnread bool, limit int) ([]domain.Notification, error) {
	query := `SELECT id, user_id, message, type, is_read, created_at
		FROM notifications WHERE user_id = $1`
	args := []interface{}{userID}

	if onlyUnread {
		query += ` AND is_read = false`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64, userID string) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead is idempotent; zero affected rows is fine.
func (r *notificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	query := `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

// Delete is idempotent; deleting an already-gone notification succeeds.
func (r *notificationRepo) Delete(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(ctx, query, id, userID)
	return err
}
