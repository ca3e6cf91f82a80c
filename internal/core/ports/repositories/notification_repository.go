package repositories

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// NotificationRepository defines persistence operations for Notifications.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)
	FindNotifications(ctx context.Context, limit int, offset int) ([]domain.Notification, error)
	FindNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UpdateNotification(ctx context.Context, notification domain.Notification) error
	MarkNotificationRead(ctx context.Context, notificationID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
}
