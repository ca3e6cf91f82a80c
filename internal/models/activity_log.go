package models

import (
	"database/sql"
	"time"
)

// ActivityLog is the persistence shape of an activity log row.
type ActivityLog struct {
	LogID       string         `db:"log_id"`
	UserID      sql.NullString `db:"user_id"`
	Action      string         `db:"action"`
	Description string         `db:"description"`
	Timestamp   time.Time      `db:"timestamp"`
}
