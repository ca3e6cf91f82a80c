package domain

import "time"

// UserRole is the closed set of roles a user can hold.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleStudent UserRole = "STUDENT"
	RoleParent  UserRole = "PARENT"
)

// Billable reports whether weekly dues accrue for users with this role.
// Admins manage the fund but never owe into it.
func (r UserRole) Billable() bool {
	return r == RoleStudent || r == RoleParent
}

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleParent:
		return true
	}
	return false
}

// User represents a member of a class fund: a student, a parent, or an admin.
// ClassID and ParentID are plain foreign keys; navigation always goes back
// through the repositories, never through embedded object graphs.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	ClassID      *string  `json:"classID,omitempty"`  // Nullable FK -> classes.class_id (admins have none)
	ParentID     *string  `json:"parentID,omitempty"` // Nullable FK -> users.user_id (students only)
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
