package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// ClassSvcFacade defines the operations for classes.
type ClassSvcFacade interface {
	CreateClass(ctx context.Context, req dto.CreateClassRequest, creatorUserID string) (*domain.Class, error)
	GetClassByID(ctx context.Context, classID string) (*domain.Class, error)
	ListClasses(ctx context.Context, limit, offset int) ([]domain.Class, error)
	UpdateClass(ctx context.Context, classID string, req dto.UpdateClassRequest, requestingUserID string) (*domain.Class, error)
	DeleteClass(ctx context.Context, classID string) error
}
