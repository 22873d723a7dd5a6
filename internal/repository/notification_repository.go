package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"ukmprhub/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, from_user_id, type, post_id, content, is_read, created_at)
		VALUES (:user_id, :from_user_id, :type, :post_id, :content, :is_read, :created_at)
		RETURNING id
	`

	id, err := insertReturningID(ctx, r.db, query, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	notification.ID = id
	return nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	notifications := []models.Notification{}

	query := `
		SELECT n.id, n.user_id, n.from_user_id, n.type, n.post_id, n.content, n.is_read, n.created_at,
			COALESCE(m.username, '') AS from_username,
			COALESCE(m.photo, '') AS from_photo
		FROM notifications n
		LEFT JOIN members m ON m.id = n.from_user_id
		WHERE n.user_id = $1
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT $2
	`

	if err := r.db.SelectContext(ctx, &notifications, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
