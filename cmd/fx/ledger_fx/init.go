package ledger_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
)

var Module = fx.Provide(
	provideLedgerService, provideLedgerRepo)

func provideLedgerRepo(db *gorm.DB) repositories.LedgerRepository {
	return repositories.NewLedgerRepository(db)
}

func provideLedgerService(ledgerRepo repositories.LedgerRepository) services.LedgerServiceInterface {
	return services.NewLedgerService(ledgerRepo)
}
