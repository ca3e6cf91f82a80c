package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentAccepted PaymentStatus = "ACCEPTED"
	PaymentRejected PaymentStatus = "REJECTED"
	// PaymentManualArrears marks weeks an admin recorded as owed by hand.
	// These rows are never money received; their WeekNumber adds to arrears.
	PaymentManualArrears PaymentStatus = "MANUAL_ARREARS"
)

// Payment represents one dues transaction by a user.
//
// WeekNumber is the number of weeks THIS payment covers (or, for manual
// arrears, the number of weeks owed). It is not a calendar week index;
// arrears computation sums WeekNumber across a user's history.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // FK -> users.user_id
	WeekNumber  int             `json:"weekNumber"`
	Amount      decimal.Decimal `json:"amount"`
	ProofURL    *string         `json:"proofURL,omitempty"`
	Status      PaymentStatus   `json:"status"`
	SubmittedAt time.Time       `json:"submittedAt"`
	VerifiedAt  *time.Time      `json:"verifiedAt,omitempty"`
	VerifiedBy  *string         `json:"verifiedBy,omitempty"` // FK -> users.user_id
}

// UserArrears is the point-in-time dues position of a single user,
// recomputed from the full payment history on every query.
type UserArrears struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	PaidWeeks   int    `json:"paidWeeks"`
	CurrentWeek int    `json:"currentWeek"`
	Arrears     int    `json:"arrears"`
}
