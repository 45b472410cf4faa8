package routesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"chronowalker/internal/repositories"
	"chronowalker/internal/services"
)

var Module = fx.Provide(
	provideRoutesRepo, provideRoutesService)

func provideRoutesRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideRoutesService(routeRepo repositories.RouteRepository) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo)
}
