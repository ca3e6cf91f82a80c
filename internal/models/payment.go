package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persistence shape of a payment row.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	UserID      string          `db:"user_id"`
	WeekNumber  int             `db:"week_number"`
	Amount      decimal.Decimal `db:"amount"`
	ProofURL    sql.NullString  `db:"proof_url"`
	Status      string          `db:"status"`
	SubmittedAt time.Time       `db:"submitted_at"`
	VerifiedAt  sql.NullTime    `db:"verified_at"`
	VerifiedBy  sql.NullString  `db:"verified_by"`
}
