package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// KasSettingSvcFacade defines the operations for weekly dues settings.
type KasSettingSvcFacade interface {
	CreateKasSetting(ctx context.Context, req dto.CreateKasSettingRequest, creatorUserID string) (*domain.KasSetting, error)
	GetKasSettingByID(ctx context.Context, settingID string) (*domain.KasSetting, error)
	ListKasSettings(ctx context.Context, limit, offset int) ([]domain.KasSetting, error)
	UpdateKasSetting(ctx context.Context, settingID string, req dto.UpdateKasSettingRequest, requestingUserID string) (*domain.KasSetting, error)
	DeleteKasSetting(ctx context.Context, settingID string) error

	// AddBalance records a manual fund top-up as an already-accepted payment
	// attributed to the acting admin.
	AddBalance(ctx context.Context, req dto.AddBalanceRequest, adminUserID string) (*domain.Payment, error)
}
