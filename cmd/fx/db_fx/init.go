package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourline/internal/infra"
	"tourline/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideDB, provideJWTManager)

func provideConfig() infra.Config {
	return infra.LoadConfig()
}

func provideDB(cfg infra.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func provideJWTManager(cfg infra.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret)
}
