package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	"github.com/SscSPs/kas_kelas_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Title:          m.Title,
		Message:        m.Message,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

const notificationColumns = `notification_id, user_id, title, message, is_read, created_at`

func scanNotification(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.UserID,
		&m.Title,
		&m.Message,
		&m.IsRead,
		&m.CreatedAt,
	)
	return m, err
}

func collectNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	notifications := []domain.Notification{}
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
        INSERT INTO notifications (notification_id, user_id, title, message, is_read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`
	m, err := scanNotification(r.db.QueryRow(ctx, query, notificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification by ID %s: %w", notificationID, err)
	}
	d := toDomainNotification(m)
	return &d, nil
}

func (r *PgxNotificationRepository) FindNotifications(ctx context.Context, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

func (r *PgxNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

func (r *PgxNotificationRepository) UpdateNotification(ctx context.Context, notification domain.Notification) error {
	query := `
        UPDATE notifications
        SET title = $2, message = $3, is_read = $4
        WHERE notification_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		notification.NotificationID,
		notification.Title,
		notification.Message,
		notification.IsRead,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification %s: %w", notification.NotificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
