package models

import "time"

// Notification is the persistence shape of a notification row.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
