package repositories

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// ClassRepository defines persistence operations for Classes.
type ClassRepository interface {
	SaveClass(ctx context.Context, class domain.Class) error
	FindClassByID(ctx context.Context, classID string) (*domain.Class, error)
	FindClasses(ctx context.Context, limit int, offset int) ([]domain.Class, error)
	UpdateClass(ctx context.Context, class domain.Class) error
	DeleteClass(ctx context.Context, classID string) error
}
