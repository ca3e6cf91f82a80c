package dto

import (
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Role     string  `json:"role" binding:"required,oneof=ADMIN STUDENT PARENT"`
	ClassID  *string `json:"classID"`  // Optional, admins have no class
	ParentID *string `json:"parentID"` // Optional, students only
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN STUDENT PARENT"`
	ClassID  *string `json:"classID"`
	ParentID *string `json:"parentID"`
	Username *string `json:"username"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// ChangePasswordRequest defines the payload for a password change.
// OldPassword is optional; when present it must match the stored hash.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse defines the data returned for a user. Password hash never leaves the server.
type UserResponse struct {
	UserID    string    `json:"userID"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ClassID   *string   `json:"classID,omitempty"`
	ParentID  *string   `json:"parentID,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		Username:  user.Username,
		Role:      string(user.Role),
		ClassID:   user.ClassID,
		ParentID:  user.ParentID,
		CreatedAt: user.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: responses}
}
