package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/repositories"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.JWTManager) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens)
}
