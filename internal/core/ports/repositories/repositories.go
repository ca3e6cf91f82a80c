package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	UserRepo         UserRepository
	ClassRepo        ClassRepository
	PaymentRepo      PaymentRepository
	ExpenseRepo      ExpenseRepository
	KasSettingRepo   KasSettingRepository
	NotificationRepo NotificationRepository
	ActivityLogRepo  ActivityLogRepository
}
