// Package main provides the entry point for the ResepMakanan web service.
// It serves the HTMX recipe browsing UI from a static in-memory catalog.
package main

import (
	"context"
	"os"

	"github.com/resepmakanan/v1/internal/application/chat"
	recipeapp "github.com/resepmakanan/v1/internal/application/recipe"
	"github.com/resepmakanan/v1/internal/application/timer"
	"github.com/resepmakanan/v1/internal/infrastructure/ai/gemini"
	"github.com/resepmakanan/v1/internal/infrastructure/config"
	"github.com/resepmakanan/v1/internal/infrastructure/http/webserver"
	"github.com/resepmakanan/v1/internal/infrastructure/images"
	"github.com/resepmakanan/v1/internal/infrastructure/persistence/memory"
	"github.com/resepmakanan/v1/internal/ports/inbound"
	"github.com/resepmakanan/v1/internal/ports/outbound"
	"github.com/resepmakanan/v1/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		fx.NopLogger,

		// Configuration
		fx.Provide(func() (*config.Config, error) {
			return config.Load(os.Getenv("RESEPMAKANAN_CONFIG"))
		}),

		// Logger
		fx.Provide(func(cfg *config.Config) (*zap.Logger, error) {
			return logger.New(logger.Config{
				Level:       cfg.App.LogLevel,
				Format:      cfg.App.LogFormat,
				Development: cfg.App.Debug,
			})
		}),

		// Catalog
		fx.Provide(
			func(log *zap.Logger) (*memory.RecipeRepository, error) {
				return memory.NewRecipeRepository(log)
			},
			func(repo *memory.RecipeRepository) outbound.RecipeRepository { return repo },
			func(repo outbound.RecipeRepository, log *zap.Logger) inbound.RecipeService {
				return recipeapp.NewService(repo, log)
			},
		),

		// Kitchen assistant
		fx.Provide(
			func(cfg *config.Config, log *zap.Logger) outbound.TextGenerator {
				return gemini.NewClient(cfg, log)
			},
			func(gen outbound.TextGenerator, cfg *config.Config, log *zap.Logger) *chat.Service {
				return chat.NewService(gen, cfg.Chat.Greeting, log)
			},
		),

		// Cook timer and image resolution
		fx.Provide(
			timer.NewCountdown,
			func(cfg *config.Config) *images.Resolver {
				return images.NewResolver(cfg.Catalog.FallbackImageURL)
			},
		),

		// Web server
		fx.Provide(webserver.NewWebServer),

		fx.Invoke(registerLifecycleHooks),
	)

	app.Run()
}

func registerLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *webserver.WebServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting web server",
				zap.Int("port", cfg.Server.Port),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("web server failed", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down web server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
