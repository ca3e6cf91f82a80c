package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// SaldoSvcFacade computes the derived fund balance. Every call recomputes
// from the full record set; nothing is cached.
type SaldoSvcFacade interface {
	GetSaldo(ctx context.Context) (*domain.Saldo, error)
}
