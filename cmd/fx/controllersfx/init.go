package controllersfx

import (
	"go.uber.org/fx"

	"chronowalker/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewRoutesController),
	fx.Provide(controllers.NewProgressController))
