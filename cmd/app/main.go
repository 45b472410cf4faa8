package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"chronowalker/cmd/fx/controllersfx"
	"chronowalker/cmd/fx/dbfx"
	"chronowalker/cmd/fx/poisfx"
	"chronowalker/cmd/fx/progressfx"
	"chronowalker/cmd/fx/routesfx"
	"chronowalker/internal/api/controllers"
	"chronowalker/internal/infra"
	"chronowalker/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		poisfx.Module,
		routesfx.Module,
		progressfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	poisController *controllers.POIsController,
	routesController *controllers.RoutesController,
	progressController *controllers.ProgressController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, poisController, routesController, progressController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	poisController *controllers.POIsController,
	routesController *controllers.RoutesController,
	progressController *controllers.ProgressController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Chrono Walker API"})
	})

	auth := middleware.JWTAuthMiddleware()
	superuser := middleware.SuperuserMiddleware()

	poisGroup := r.Group("/pois")
	poisGroup.GET("", poisController.ListPOIs)
	poisGroup.GET("/:id", poisController.GetPOIByID)
	poisGroup.POST("", auth, superuser, poisController.CreatePOI)
	poisGroup.PUT("/:id", auth, superuser, poisController.UpdatePOI)
	poisGroup.DELETE("/:id", auth, superuser, poisController.DeletePOI)

	routesGroup := r.Group("/routes")
	routesGroup.GET("", routesController.ListRoutes)
	routesGroup.GET("/:id", routesController.GetRouteByID)
	routesGroup.POST("", auth, superuser, routesController.CreateRoute)
	routesGroup.PUT("/:id", auth, superuser, routesController.UpdateRoute)
	routesGroup.DELETE("/:id", auth, superuser, routesController.DeleteRoute)

	progressGroup := r.Group("/progress", auth)
	progressGroup.GET("", progressController.ListProgress)
	progressGroup.POST("", progressController.CreateProgress)
	progressGroup.PUT("/:id", progressController.UpdateProgress)
	progressGroup.DELETE("/:id", progressController.DeleteProgress)
}
