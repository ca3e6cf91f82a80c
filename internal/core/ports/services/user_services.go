package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser creates a new user with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// CreateUsers creates a batch of users in one operation (bulk import).
	CreateUsers(ctx context.Context, reqs []dto.CreateUserRequest, creatorUserID string) ([]domain.User, error)

	// UpdateUser updates an existing user. Only non-nil request fields change.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// ChangePassword replaces a user's password hash after optionally
	// verifying the old password.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest, requestingUserID string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle.
type UserLifecycleSvc interface {
	// DeleteUser marks a user as deleted (soft delete). Users that still own
	// expense records cannot be deleted.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// AuthenticateUser verifies username/password credentials.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
