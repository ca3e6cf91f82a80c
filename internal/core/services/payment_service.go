package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/platform/storage"
	"github.com/SscSPs/kas_kelas_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidKasSetting is returned when no dues setting exists or its
	// weekly amount is not positive; week arithmetic is undefined without it.
	ErrInvalidKasSetting = errors.New("kas setting missing or weekly amount is not positive")

	// ErrPaymentAlreadyAccepted is returned when approving a payment that is
	// already accepted. The record is left untouched.
	ErrPaymentAlreadyAccepted = errors.New("payment has already been accepted")

	// ErrPaymentAlreadyRejected is returned when rejecting a payment that is
	// already rejected.
	ErrPaymentAlreadyRejected = errors.New("payment has already been rejected")
)

// paymentService is the ledger engine: it derives dues coverage from
// payment amounts, runs the approval workflow, and recomputes arrears
// from the full payment history on every query.
type paymentService struct {
	BaseService
	paymentRepo    portsrepo.PaymentRepository
	userRepo       portsrepo.UserRepository
	kasSettingRepo portsrepo.KasSettingRepository
	proofStore     storage.ProofStore
	activity       portssvc.ActivityRecorderSvc
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepository,
	userRepo portsrepo.UserRepository,
	kasSettingRepo portsrepo.KasSettingRepository,
	proofStore storage.ProofStore,
	activity portssvc.ActivityRecorderSvc,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:    paymentRepo,
		userRepo:       userRepo,
		kasSettingRepo: kasSettingRepo,
		proofStore:     proofStore,
		activity:       activity,
	}
}

// weeksCovered computes how many whole weeks an amount pays for at the given
// weekly rate. Integer division, truncating: an amount that is not an exact
// multiple silently under-counts its coverage.
func weeksCovered(amount, amountPerWeek decimal.Decimal) int {
	quotient, _ := amount.QuoRem(amountPerWeek, 0)
	return int(quotient.IntPart())
}

// currentWeek computes the 1-based week index of now relative to the dues
// start date. Both ends are compared at date (not time) granularity.
func currentWeek(now, startDate time.Time) int {
	nowUTC := now.UTC()
	startUTC := startDate.UTC()
	nowDay := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	startDay := time.Date(startUTC.Year(), startUTC.Month(), startUTC.Day(), 0, 0, 0, 0, time.UTC)
	days := int(nowDay.Sub(startDay).Hours() / 24)
	return days/7 + 1
}

func (s *paymentService) SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, proofName string, proof io.Reader) (*dto.SubmitPaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	setting, err := s.kasSettingRepo.FindFirstKasSetting(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidKasSetting
		}
		return nil, fmt.Errorf("failed to load kas setting: %w", err)
	}
	if !setting.AmountPerWeek.IsPositive() {
		return nil, ErrInvalidKasSetting
	}

	// The proof file is written before the record insert. If the insert
	// fails the file is orphaned; nothing cleans it up.
	proofURL, err := s.proofStore.Save(proofName, proof)
	if err != nil {
		return nil, fmt.Errorf("failed to store payment proof: %w", err)
	}

	weeks := weeksCovered(req.Amount, setting.AmountPerWeek)

	lastWeek, err := s.paymentRepo.FindLastWeekNumber(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find last paid week for user %s: %w", req.UserID, err)
	}
	// Informational only: the first week this transaction covers. It never
	// changes the stored week number, which is always this payment's coverage.
	startWeek := lastWeek + 1

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		UserID:      req.UserID,
		WeekNumber:  weeks,
		Amount:      req.Amount,
		ProofURL:    &proofURL,
		Status:      domain.PaymentPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.activity.RecordActivity(ctx, &req.UserID, "payment_submitted",
		fmt.Sprintf("Payment of %s covering %d week(s) submitted", req.Amount.String(), weeks))

	s.LogInfo(ctx, "Payment submitted",
		slog.String("payment_id", payment.PaymentID),
		slog.String("user_id", req.UserID),
		slog.Int("week_number", weeks),
	)

	return &dto.SubmitPaymentResponse{
		Message:    "File uploaded successfully",
		FilePath:   proofURL,
		PaymentID:  payment.PaymentID,
		WeekNumber: weeks,
		StartWeek:  startWeek,
	}, nil
}

func (s *paymentService) ApprovePayment(ctx context.Context, paymentID string, verifierUserID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.Status == domain.PaymentAccepted {
		return ErrPaymentAlreadyAccepted
	}

	now := time.Now().UTC()
	if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, domain.PaymentAccepted, now, verifierUserID); err != nil {
		return fmt.Errorf("failed to accept payment %s: %w", paymentID, err)
	}

	s.activity.RecordActivity(ctx, &verifierUserID, "payment_accepted",
		fmt.Sprintf("Payment %s accepted", paymentID))
	return nil
}

func (s *paymentService) RejectPayment(ctx context.Context, paymentID string, verifierUserID string) error {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.Status == domain.PaymentRejected {
		return ErrPaymentAlreadyRejected
	}

	now := time.Now().UTC()
	if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, domain.PaymentRejected, now, verifierUserID); err != nil {
		return fmt.Errorf("failed to reject payment %s: %w", paymentID, err)
	}

	s.activity.RecordActivity(ctx, &verifierUserID, "payment_rejected",
		fmt.Sprintf("Payment %s rejected", paymentID))
	return nil
}

func (s *paymentService) ListArrears(ctx context.Context, now time.Time) ([]domain.UserArrears, error) {
	setting, err := s.kasSettingRepo.FindFirstKasSetting(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidKasSetting
		}
		return nil, fmt.Errorf("failed to load kas setting: %w", err)
	}
	if !setting.AmountPerWeek.IsPositive() {
		return nil, ErrInvalidKasSetting
	}

	week := currentWeek(now, setting.StartDate)

	users, err := s.userRepo.FindBillableUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list billable users: %w", err)
	}

	result := make([]domain.UserArrears, 0, len(users))
	for _, user := range users {
		paidWeeks, err := s.paymentRepo.SumWeekNumbersByStatus(ctx, user.UserID, domain.PaymentAccepted)
		if err != nil {
			return nil, fmt.Errorf("failed to sum paid weeks for user %s: %w", user.UserID, err)
		}
		manualWeeks, err := s.paymentRepo.SumWeekNumbersByStatus(ctx, user.UserID, domain.PaymentManualArrears)
		if err != nil {
			return nil, fmt.Errorf("failed to sum manual arrears for user %s: %w", user.UserID, err)
		}

		arrears := (week - paidWeeks) + manualWeeks
		if arrears < 0 {
			arrears = 0
		}

		result = append(result, domain.UserArrears{
			UserID:      user.UserID,
			UserName:    user.FullName,
			PaidWeeks:   paidWeeks,
			CurrentWeek: week,
			Arrears:     arrears,
		})
	}

	return result, nil
}

func (s *paymentService) AddManualArrears(ctx context.Context, req dto.AddArrearsRequest) (*domain.Payment, error) {
	if req.WeekCount <= 0 {
		return nil, fmt.Errorf("%w: week count must be positive", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.ClassID == nil {
		return nil, ErrInvalidKasSetting
	}

	setting, err := s.kasSettingRepo.FindKasSettingByClassID(ctx, *user.ClassID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidKasSetting
		}
		return nil, fmt.Errorf("failed to load kas setting for class %s: %w", *user.ClassID, err)
	}
	if !setting.AmountPerWeek.IsPositive() {
		return nil, ErrInvalidKasSetting
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		UserID:      req.UserID,
		WeekNumber:  req.WeekCount,
		Amount:      setting.AmountPerWeek.Mul(decimal.NewFromInt(int64(req.WeekCount))),
		Status:      domain.PaymentManualArrears,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save manual arrears: %w", err)
	}

	s.activity.RecordActivity(ctx, &req.UserID, "arrears_added",
		fmt.Sprintf("%d week(s) of arrears recorded for user %s", req.WeekCount, req.UserID))

	return &payment, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	status := domain.PaymentPending
	if req.Status != nil {
		status = domain.PaymentStatus(*req.Status)
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		UserID:      req.UserID,
		WeekNumber:  req.WeekNumber,
		Amount:      req.Amount,
		ProofURL:    req.ProofURL,
		Status:      status,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var before time.Time // zero means no upper bound
	if params.NextToken != "" {
		decoded, err := pagination.DecodeDateBasedToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = decoded
	}

	payments, err := s.paymentRepo.FindPayments(ctx, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	resp := &dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments)}
	if len(payments) == limit {
		resp.NextToken = pagination.EncodeDateBasedToken(payments[len(payments)-1].SubmittedAt)
	}
	return resp, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if req.WeekNumber != nil {
		payment.WeekNumber = *req.WeekNumber
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.ProofURL != nil {
		payment.ProofURL = req.ProofURL
	}

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to update payment %s: %w", paymentID, err)
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	return s.paymentRepo.DeletePayment(ctx, paymentID)
}
