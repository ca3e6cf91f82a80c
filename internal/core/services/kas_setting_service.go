package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/google/uuid"
)

type kasSettingService struct {
	BaseService
	kasSettingRepo portsrepo.KasSettingRepository
	paymentRepo    portsrepo.PaymentRepository
	activity       portssvc.ActivityRecorderSvc
}

// NewKasSettingService creates a new kas setting service.
func NewKasSettingService(
	kasSettingRepo portsrepo.KasSettingRepository,
	paymentRepo portsrepo.PaymentRepository,
	activity portssvc.ActivityRecorderSvc,
) portssvc.KasSettingSvcFacade {
	return &kasSettingService{
		kasSettingRepo: kasSettingRepo,
		paymentRepo:    paymentRepo,
		activity:       activity,
	}
}

func (s *kasSettingService) CreateKasSetting(ctx context.Context, req dto.CreateKasSettingRequest, creatorUserID string) (*domain.KasSetting, error) {
	if !req.AmountPerWeek.IsPositive() {
		return nil, fmt.Errorf("%w: weekly amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	setting := domain.KasSetting{
		SettingID:     uuid.NewString(),
		ClassID:       req.ClassID,
		AmountPerWeek: req.AmountPerWeek,
		StartDate:     req.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.kasSettingRepo.SaveKasSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to save kas setting: %w", err)
	}

	s.activity.RecordActivity(ctx, &creatorUserID, "kas_setting_created",
		fmt.Sprintf("Weekly dues set to %s for class %s", req.AmountPerWeek.String(), req.ClassID))
	return &setting, nil
}

func (s *kasSettingService) GetKasSettingByID(ctx context.Context, settingID string) (*domain.KasSetting, error) {
	return s.kasSettingRepo.FindKasSettingByID(ctx, settingID)
}

func (s *kasSettingService) ListKasSettings(ctx context.Context, limit, offset int) ([]domain.KasSetting, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.kasSettingRepo.FindKasSettings(ctx, limit, offset)
}

func (s *kasSettingService) UpdateKasSetting(ctx context.Context, settingID string, req dto.UpdateKasSettingRequest, requestingUserID string) (*domain.KasSetting, error) {
	setting, err := s.kasSettingRepo.FindKasSettingByID(ctx, settingID)
	if err != nil {
		return nil, err
	}

	if req.ClassID != nil {
		setting.ClassID = *req.ClassID
	}
	if req.AmountPerWeek != nil {
		if !req.AmountPerWeek.IsPositive() {
			return nil, fmt.Errorf("%w: weekly amount must be positive", apperrors.ErrValidation)
		}
		setting.AmountPerWeek = *req.AmountPerWeek
	}
	if req.StartDate != nil {
		setting.StartDate = *req.StartDate
	}
	setting.LastUpdatedAt = time.Now().UTC()
	setting.LastUpdatedBy = requestingUserID

	if err := s.kasSettingRepo.UpdateKasSetting(ctx, *setting); err != nil {
		return nil, fmt.Errorf("failed to update kas setting %s: %w", settingID, err)
	}
	return setting, nil
}

func (s *kasSettingService) DeleteKasSetting(ctx context.Context, settingID string) error {
	return s.kasSettingRepo.DeleteKasSetting(ctx, settingID)
}

// AddBalance records a manual top-up of the fund. The money enters the ledger
// as an already-accepted payment with zero week coverage, so the balance
// rises without touching anyone's dues position.
func (s *kasSettingService) AddBalance(ctx context.Context, req dto.AddBalanceRequest, adminUserID string) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: top-up amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		UserID:      adminUserID,
		WeekNumber:  0,
		Amount:      req.Amount,
		Status:      domain.PaymentAccepted,
		SubmittedAt: now,
		VerifiedAt:  &now,
		VerifiedBy:  &adminUserID,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save balance top-up: %w", err)
	}

	s.activity.RecordActivity(ctx, &adminUserID, "balance_added",
		fmt.Sprintf("Fund topped up by %s", req.Amount.String()))
	return &payment, nil
}
