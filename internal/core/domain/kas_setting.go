package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// KasSetting is the weekly dues configuration of a class: how much each
// member owes per week and the date dues began accruing. AmountPerWeek
// must be positive for any week or arrears computation to be defined.
type KasSetting struct {
	SettingID     string          `json:"settingID"` // Primary Key (UUID)
	ClassID       string          `json:"classID"`   // FK -> classes.class_id
	AmountPerWeek decimal.Decimal `json:"amountPerWeek"`
	StartDate     time.Time       `json:"startDate"`
	AuditFields
}
