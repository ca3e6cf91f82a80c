package dto

import (
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// CreateNotificationRequest defines the data needed to create a notification.
type CreateNotificationRequest struct {
	UserID  string `json:"userID" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateNotificationRequest defines the data allowed for updating a notification.
type UpdateNotificationRequest struct {
	Title   *string `json:"title"`
	Message *string `json:"message"`
	IsRead  *bool   `json:"isRead"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	UserID         string    `json:"userID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListNotificationsResponse wraps the list of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationsResponse converts a slice of domain.Notification to its list DTO.
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	return ListNotificationsResponse{Notifications: responses}
}
