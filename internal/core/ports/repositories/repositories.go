package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo   TransactionRepositoryFacade
	CategoryRepo      CategoryRepositoryFacade
	PaymentMethodRepo PaymentMethodRepositoryFacade
	BillingCycleRepo  BillingCycleRepositoryFacade
	SavingsFundRepo   SavingsFundRepositoryFacade
	TaxRepo           RecurringTaxRepositoryFacade
	UserRepo          UserRepositoryFacade
	LinkingRepo       LinkingRepositoryFacade
}
