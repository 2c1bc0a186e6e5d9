package services

import (
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BillingCycleRepo)
	container.Analytics = NewAnalyticsService(
		repos.TransactionRepo,
		repos.CategoryRepo,
		repos.SavingsFundRepo,
		repos.BillingCycleRepo,
	)

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)
	container.BillingCycle = NewBillingCycleService(repos.BillingCycleRepo)

	// Fund transfers record DEPOSIT/WITHDRAWAL transactions alongside the
	// balance adjustment, so the fund service also needs the transaction repo.
	container.SavingsFund = NewSavingsFundService(repos.SavingsFundRepo, repos.TransactionRepo)
	container.Tax = NewTaxService(repos.TaxRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Linking = NewLinkingService(repos.LinkingRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
