package domain

import "time"

// Notification is a message delivered to a single user.
type Notification struct {
	NotificationID string    `json:"notificationID"` // Primary Key (UUID)
	UserID         string    `json:"userID"`         // FK -> users.user_id
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}
