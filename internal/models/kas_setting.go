package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// KasSetting is the persistence shape of a weekly dues configuration row.
type KasSetting struct {
	SettingID     string          `db:"setting_id"`
	ClassID       string          `db:"class_id"`
	AmountPerWeek decimal.Decimal `db:"amount_per_week"`
	StartDate     time.Time       `db:"start_date"`
	AuditFields
}
