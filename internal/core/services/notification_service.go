package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/google/uuid"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepository) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         req.UserID,
		Title:          req.Title,
		Message:        req.Message,
		IsRead:         false,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}
	return &notification, nil
}

func (s *notificationService) GetNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	return s.notificationRepo.FindNotificationByID(ctx, notificationID)
}

func (s *notificationService) ListNotifications(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.FindNotifications(ctx, limit, offset)
}

func (s *notificationService) ListNotificationsByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notificationRepo.FindNotificationsByUser(ctx, userID)
}

func (s *notificationService) UpdateNotification(ctx context.Context, notificationID string, req dto.UpdateNotificationRequest) (*domain.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Message != nil {
		notification.Message = *req.Message
	}
	if req.IsRead != nil {
		notification.IsRead = *req.IsRead
	}

	if err := s.notificationRepo.UpdateNotification(ctx, *notification); err != nil {
		return nil, fmt.Errorf("failed to update notification %s: %w", notificationID, err)
	}
	return notification, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return s.notificationRepo.MarkNotificationRead(ctx, notificationID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, notificationID string) error {
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}
