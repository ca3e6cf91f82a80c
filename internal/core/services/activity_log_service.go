package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/google/uuid"
)

type activityLogService struct {
	BaseService
	activityLogRepo portsrepo.ActivityLogRepository
}

// NewActivityLogService creates a new activity log service.
func NewActivityLogService(activityLogRepo portsrepo.ActivityLogRepository) portssvc.ActivityLogSvcFacade {
	return &activityLogService{activityLogRepo: activityLogRepo}
}

// RecordActivity appends an audit entry. It never fails the caller: a ledger
// mutation that succeeded stays succeeded even when its audit write does not.
func (s *activityLogService) RecordActivity(ctx context.Context, userID *string, action, description string) {
	log := domain.ActivityLog{
		LogID:       uuid.NewString(),
		UserID:      userID,
		Action:      action,
		Description: description,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.activityLogRepo.SaveActivityLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to record activity", "action", action)
	}
}

func (s *activityLogService) CreateActivityLog(ctx context.Context, req dto.CreateActivityLogRequest) (*domain.ActivityLog, error) {
	log := domain.ActivityLog{
		LogID:       uuid.NewString(),
		UserID:      req.UserID,
		Action:      req.Action,
		Description: req.Description,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.activityLogRepo.SaveActivityLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save activity log: %w", err)
	}
	return &log, nil
}

func (s *activityLogService) GetActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error) {
	return s.activityLogRepo.FindActivityLogByID(ctx, logID)
}

func (s *activityLogService) ListActivityLogs(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.activityLogRepo.FindActivityLogs(ctx, limit, offset)
}

func (s *activityLogService) DeleteActivityLog(ctx context.Context, logID string) error {
	return s.activityLogRepo.DeleteActivityLog(ctx, logID)
}
