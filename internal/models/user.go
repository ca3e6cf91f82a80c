package models

import (
	"database/sql"
	"time"
)

// User is the persistence shape of a user row.
type User struct {
	UserID       string         `db:"user_id"`
	FullName     string         `db:"full_name"`
	Email        string         `db:"email"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	ClassID      sql.NullString `db:"class_id"`
	ParentID     sql.NullString `db:"parent_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
