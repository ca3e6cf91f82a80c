package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// NotificationSvcFacade defines the operations for notifications.
type NotificationSvcFacade interface {
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error)
	GetNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)
	ListNotifications(ctx context.Context, limit, offset int) ([]domain.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UpdateNotification(ctx context.Context, notificationID string, req dto.UpdateNotificationRequest) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
}
