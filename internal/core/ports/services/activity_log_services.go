package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// ActivityRecorderSvc is the narrow interface other services use to append
// audit entries. Recording is best effort; failures are logged, not surfaced.
type ActivityRecorderSvc interface {
	RecordActivity(ctx context.Context, userID *string, action, description string)
}

// ActivityLogSvcFacade defines the operations for activity log entries.
type ActivityLogSvcFacade interface {
	ActivityRecorderSvc

	CreateActivityLog(ctx context.Context, req dto.CreateActivityLogRequest) (*domain.ActivityLog, error)
	GetActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error)
	ListActivityLogs(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error)
	DeleteActivityLog(ctx context.Context, logID string) error
}
