package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/polls/config"
	"github.com/lshigami/polls/database"
	_ "github.com/lshigami/polls/docs" // Swagger docs - generated by swag init
	adminctrl "github.com/lshigami/polls/internal/controller/admin"
	pollsctrl "github.com/lshigami/polls/internal/controller/polls"
	"github.com/lshigami/polls/internal/logger"
	"github.com/lshigami/polls/internal/middleware"
	"github.com/lshigami/polls/internal/repository"
	"github.com/lshigami/polls/internal/service"
	"github.com/lshigami/polls/internal/web"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// @title Polls Admin API
// @version 1.0
// @description Administrative API for managing poll questions and their choices. The public poll pages are served as HTML.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init("info") // reconfigured from LOG_LEVEL once config is loaded

	app := fx.New(appOptions()...)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func appOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: log.Logger}
		}),

		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewPollService,
			service.NewAdminService,
		),

		// Controllers Layer
		fx.Provide(
			pollsctrl.NewPollsController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(database.Migrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.LogLevel)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	pollsCtrl *pollsctrl.PollsController,
	adminCtrl *adminctrl.AdminController,
) {
	pollsCtrl.RegisterRoutes(router)
	adminCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Polls server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Polls available at http://localhost:%s%s/", cfg.Server.Port, cfg.Polls.MountPath)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
