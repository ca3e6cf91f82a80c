package repositories

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// ActivityLogRepository defines persistence operations for ActivityLogs.
type ActivityLogRepository interface {
	SaveActivityLog(ctx context.Context, log domain.ActivityLog) error
	FindActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error)
	FindActivityLogs(ctx context.Context, limit int, offset int) ([]domain.ActivityLog, error)
	DeleteActivityLog(ctx context.Context, logID string) error
}
