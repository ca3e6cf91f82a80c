package pgsql

import (
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ClassRepo:        newPgxClassRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		KasSettingRepo:   newPgxKasSettingRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		ActivityLogRepo:  newPgxActivityLogRepository(dbPool),
	}
}
