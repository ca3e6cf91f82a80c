package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	// SaveUsers persists a batch of users in a single transaction (bulk import).
	SaveUsers(ctx context.Context, users []domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	// FindBillableUsers returns every non-deleted user whose role accrues weekly dues.
	FindBillableUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}
