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

type classService struct {
	BaseService
	classRepo portsrepo.ClassRepository
}

// NewClassService creates a new class service.
func NewClassService(classRepo portsrepo.ClassRepository) portssvc.ClassSvcFacade {
	return &classService{classRepo: classRepo}
}

func (s *classService) CreateClass(ctx context.Context, req dto.CreateClassRequest, creatorUserID string) (*domain.Class, error) {
	now := time.Now().UTC()
	class := domain.Class{
		ClassID: uuid.NewString(),
		Name:    req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.classRepo.SaveClass(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to save class: %w", err)
	}
	return &class, nil
}

func (s *classService) GetClassByID(ctx context.Context, classID string) (*domain.Class, error) {
	return s.classRepo.FindClassByID(ctx, classID)
}

func (s *classService) ListClasses(ctx context.Context, limit, offset int) ([]domain.Class, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.classRepo.FindClasses(ctx, limit, offset)
}

func (s *classService) UpdateClass(ctx context.Context, classID string, req dto.UpdateClassRequest, requestingUserID string) (*domain.Class, error) {
	class, err := s.classRepo.FindClassByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	class.LastUpdatedAt = time.Now().UTC()
	class.LastUpdatedBy = requestingUserID

	if err := s.classRepo.UpdateClass(ctx, *class); err != nil {
		return nil, fmt.Errorf("failed to update class %s: %w", classID, err)
	}
	return class, nil
}

func (s *classService) DeleteClass(ctx context.Context, classID string) error {
	return s.classRepo.DeleteClass(ctx, classID)
}
