package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User               UserSvcFacade
	Class              ClassSvcFacade
	Payment            PaymentSvcFacade
	Expense            ExpenseSvcFacade
	KasSetting         KasSettingSvcFacade
	Notification       NotificationSvcFacade
	ActivityLog        ActivityLogSvcFacade
	Saldo              SaldoSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
