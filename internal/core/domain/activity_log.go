package domain

import "time"

// ActivityLog records an action performed in the system for audit purposes.
// UserID is nullable: some actions are recorded before a user is known.
type ActivityLog struct {
	LogID       string    `json:"logID"`            // Primary Key (UUID)
	UserID      *string   `json:"userID,omitempty"` // Nullable FK -> users.user_id
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
