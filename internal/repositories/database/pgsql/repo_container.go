package pgsql

import (
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		PaymentMethodRepo: newPgxPaymentMethodRepository(dbPool),
		BillingCycleRepo:  newPgxBillingCycleRepository(dbPool),
		SavingsFundRepo:   newPgxSavingsFundRepository(dbPool),
		TaxRepo:           newPgxTaxRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		LinkingRepo:       newPgxLinkingRepository(dbPool),
	}
}
