// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alchemorsel/mealplanner/internal/application/planner"
	"github.com/alchemorsel/mealplanner/internal/catalog"
	"github.com/alchemorsel/mealplanner/internal/infrastructure/config"
	"github.com/alchemorsel/mealplanner/internal/infrastructure/persistence/memory"
	"github.com/alchemorsel/mealplanner/internal/infrastructure/persistence/migrations"
	"github.com/alchemorsel/mealplanner/internal/infrastructure/persistence/postgres"
	"github.com/alchemorsel/mealplanner/internal/ports/outbound"
	"github.com/alchemorsel/mealplanner/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,

	// Catalog modules
	CatalogModule,

	// Repository modules
	RepositoryModule,

	// Service modules
	ServiceModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// CatalogModule provides the food and template catalogs. The template
// catalog is cross-checked against the food catalog at startup so an
// inconsistent data set fails fast.
var CatalogModule = fx.Provide(
	func() (*catalog.FoodCatalog, *catalog.TemplateCatalog, error) {
		foods := catalog.NewFoodCatalog()
		templates := catalog.NewTemplateCatalog()
		if err := templates.Validate(foods); err != nil {
			return nil, nil, err
		}
		return foods, templates, nil
	},
)

// RepositoryModule provides the preference and generation-log stores.
// With database.enabled the stores are backed by postgres, otherwise the
// in-memory implementations serve demos and tests.
var RepositoryModule = fx.Provide(
	func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (outbound.PreferenceRepository, outbound.GenerationLogRepository, error) {
		if !cfg.Database.Enabled {
			log.Info("Using in-memory preference and log stores")
			prefRepo := memory.NewPreferenceRepository()
			prefRepo.SeedMappings(catalog.DefaultHealthMappings())
			return prefRepo, memory.NewGenerationLogRepository(), nil
		}

		if cfg.Database.AutoMigrate {
			if err := runMigrations(cfg, log); err != nil {
				return nil, nil, err
			}
		}

		pool, err := postgres.NewPool(context.Background(), cfg, log)
		if err != nil {
			return nil, nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				pool.Close()
				return nil
			},
		})

		return postgres.NewPreferenceRepository(pool, log),
			postgres.NewGenerationLogRepository(pool, log),
			nil
	},
)

// runMigrations applies pending schema migrations before the pool opens
func runMigrations(cfg *config.Config, log *zap.Logger) error {
	db, err := sql.Open("pgx", cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	migrator, err := migrations.New(db, log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(cfg *config.Config) planner.Config {
		return cfg.Engine
	},
	planner.NewPlannerService,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting mealplanner",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down mealplanner")
			_ = log.Sync()
			return nil
		},
	})
}
