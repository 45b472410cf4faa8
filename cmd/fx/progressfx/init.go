package progressfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"chronowalker/internal/repositories"
	"chronowalker/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo, provideProgressService)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideProgressService(progressRepo repositories.ProgressRepository) services.ProgressServiceInterface {
	return services.NewProgressService(progressRepo)
}
