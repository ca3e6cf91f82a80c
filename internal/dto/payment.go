package dto

import (
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data for creating a payment record directly,
// bypassing proof upload. WeekNumber is the number of weeks the payment covers.
type CreatePaymentRequest struct {
	UserID     string          `json:"userID" binding:"required"`
	WeekNumber int             `json:"weekNumber" binding:"min=0"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	ProofURL   *string         `json:"proofURL"`
	Status     *string         `json:"status" binding:"omitempty,oneof=PENDING ACCEPTED REJECTED MANUAL_ARREARS"`
}

// UpdatePaymentRequest defines the data allowed for updating a payment record.
type UpdatePaymentRequest struct {
	WeekNumber *int             `json:"weekNumber" binding:"omitempty,min=0"`
	Amount     *decimal.Decimal `json:"amount"`
	ProofURL   *string          `json:"proofURL"`
}

// SubmitPaymentRequest defines the multipart form fields accompanying a
// proof-of-payment upload. The file itself travels as form file "proofFile".
type SubmitPaymentRequest struct {
	UserID string          `form:"userID" binding:"required"`
	Amount decimal.Decimal `form:"amount" binding:"required,dgt0"`
}

// SubmitPaymentResponse reports the created pending payment. StartWeek is
// informational only: the first week this transaction is understood to cover.
type SubmitPaymentResponse struct {
	Message    string `json:"message"`
	FilePath   string `json:"filePath"`
	PaymentID  string `json:"paymentId"`
	WeekNumber int    `json:"weekNumber"`
	StartWeek  int    `json:"startWeek"`
}

// AddArrearsRequest defines the payload for recording manual arrears.
type AddArrearsRequest struct {
	UserID    string `json:"userId" binding:"required"`
	WeekCount int    `json:"weekCount" binding:"required"`
}

// ListPaymentsParams defines query parameters for listing payments.
// NextToken is an opaque cursor from a previous response.
type ListPaymentsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// PaymentResponse defines the data returned for a payment record.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	UserID      string          `json:"userID"`
	WeekNumber  int             `json:"weekNumber"`
	Amount      decimal.Decimal `json:"amount"`
	ProofURL    *string         `json:"proofURL,omitempty"`
	Status      string          `json:"status"`
	SubmittedAt time.Time       `json:"submittedAt"`
	VerifiedAt  *time.Time      `json:"verifiedAt,omitempty"`
	VerifiedBy  *string         `json:"verifiedBy,omitempty"`
}

// ListPaymentsResponse wraps a page of payments with the cursor for the next page.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken string            `json:"nextToken,omitempty"`
}

// UserArrearsResponse is one row of the arrears report.
type UserArrearsResponse struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	PaidWeeks   int    `json:"paidWeeks"`
	CurrentWeek int    `json:"currentWeek"`
	Arrears     int    `json:"arrears"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		UserID:      p.UserID,
		WeekNumber:  p.WeekNumber,
		Amount:      p.Amount,
		ProofURL:    p.ProofURL,
		Status:      string(p.Status),
		SubmittedAt: p.SubmittedAt,
		VerifiedAt:  p.VerifiedAt,
		VerifiedBy:  p.VerifiedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ToUserArrearsResponses converts domain arrears rows to their DTO form.
func ToUserArrearsResponses(rows []domain.UserArrears) []UserArrearsResponse {
	responses := make([]UserArrearsResponse, len(rows))
	for i, row := range rows {
		responses[i] = UserArrearsResponse{
			UserID:      row.UserID,
			UserName:    row.UserName,
			PaidWeeks:   row.PaidWeeks,
			CurrentWeek: row.CurrentWeek,
			Arrears:     row.Arrears,
		}
	}
	return responses
}
