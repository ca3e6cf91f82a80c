package services

import (
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/platform/config"
	"github.com/SscSPs/kas_kelas_app/internal/platform/storage"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, proofStore storage.ProofStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Activity logging first: most other services record audit entries through it.
	container.ActivityLog = NewActivityLogService(repos.ActivityLogRepo)
	activity := container.ActivityLog.(portssvc.ActivityRecorderSvc)

	container.User = NewUserService(repos.UserRepo, repos.ExpenseRepo, activity)
	container.Class = NewClassService(repos.ClassRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.UserRepo, repos.KasSettingRepo, proofStore, activity)
	container.Expense = NewExpenseService(repos.ExpenseRepo, activity)
	container.KasSetting = NewKasSettingService(repos.KasSettingRepo, repos.PaymentRepo, activity)
	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.Saldo = NewSaldoService(repos.PaymentRepo, repos.ExpenseRepo)

	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.PaymentSvcFacade      = (*paymentService)(nil)
	_ portssvc.KasSettingSvcFacade   = (*kasSettingService)(nil)
	_ portssvc.SaldoSvcFacade        = (*saldoService)(nil)
	_ portssvc.ActivityLogSvcFacade  = (*activityLogService)(nil)
	_ portssvc.ClassSvcFacade        = (*classService)(nil)
	_ portssvc.ExpenseSvcFacade      = (*expenseService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
)
