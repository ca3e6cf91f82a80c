package dto

import (
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateKasSettingRequest defines the data for a weekly dues configuration.
type CreateKasSettingRequest struct {
	ClassID       string          `json:"classID" binding:"required"`
	AmountPerWeek decimal.Decimal `json:"amountPerWeek" binding:"required,dgt0"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
}

// UpdateKasSettingRequest defines the data allowed for updating dues settings.
type UpdateKasSettingRequest struct {
	ClassID       *string          `json:"classID"`
	AmountPerWeek *decimal.Decimal `json:"amountPerWeek"`
	StartDate     *time.Time       `json:"startDate"`
}

// AddBalanceRequest defines the payload for a manual fund top-up.
type AddBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
}

// ListKasSettingsParams defines query parameters for listing dues settings.
type ListKasSettingsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// KasSettingResponse defines the data returned for a dues configuration.
type KasSettingResponse struct {
	SettingID     string          `json:"settingID"`
	ClassID       string          `json:"classID"`
	AmountPerWeek decimal.Decimal `json:"amountPerWeek"`
	StartDate     time.Time       `json:"startDate"`
}

// ListKasSettingsResponse wraps the list of dues configurations.
type ListKasSettingsResponse struct {
	KasSettings []KasSettingResponse `json:"kasSettings"`
}

// ToKasSettingResponse converts a domain.KasSetting to KasSettingResponse DTO.
func ToKasSettingResponse(s *domain.KasSetting) KasSettingResponse {
	return KasSettingResponse{
		SettingID:     s.SettingID,
		ClassID:       s.ClassID,
		AmountPerWeek: s.AmountPerWeek,
		StartDate:     s.StartDate,
	}
}

// ToListKasSettingsResponse converts a slice of domain.KasSetting to its list DTO.
func ToListKasSettingsResponse(settings []domain.KasSetting) ListKasSettingsResponse {
	responses := make([]KasSettingResponse, len(settings))
	for i := range settings {
		responses[i] = ToKasSettingResponse(&settings[i])
	}
	return ListKasSettingsResponse{KasSettings: responses}
}
