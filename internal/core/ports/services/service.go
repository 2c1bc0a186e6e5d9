package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction   TransactionSvcFacade
	Analytics     AnalyticsSvcFacade
	Category      CategorySvcFacade
	PaymentMethod PaymentMethodSvcFacade
	BillingCycle  BillingCycleSvcFacade
	SavingsFund   SavingsFundSvcFacade
	Tax           RecurringTaxSvcFacade
	User          UserSvcFacade
	Linking       LinkingSvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
