package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/hamster-api/internal/application/auth"
	"github.com/jhoicas/hamster-api/internal/application/history"
	"github.com/jhoicas/hamster-api/internal/application/meta"
	"github.com/jhoicas/hamster-api/internal/application/stock"
	"github.com/jhoicas/hamster-api/internal/application/usecase"
	"github.com/jhoicas/hamster-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/hamster-api/internal/interfaces/http"
	"github.com/jhoicas/hamster-api/pkg/config"
	"github.com/jhoicas/hamster-api/pkg/logger"
)

const apiVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	nutrimentRepo := postgres.NewNutrimentTypeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := usecase.NewItemUseCase(itemRepo, entryRepo, txRunner, log.Component("items"))
	stockUC := stock.NewUseCase(txRunner, entryRepo, log.Component("stock"))
	historyUC := history.NewUseCase(historyRepo)
	metaUC := meta.NewUseCase(
		itemRepo, groupRepo, categoryRepo, locationRepo, entryRepo, historyRepo,
		apiVersion, cfg.Stock.AlmostExpiredSpan,
	)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, itemRepo, log)
	groupUC := usecase.NewGroupUseCase(groupRepo, itemRepo, log)
	tagUC := usecase.NewTagUseCase(tagRepo, itemRepo, log)
	unitUC := usecase.NewUnitUseCase(unitRepo, itemRepo, log)
	locationUC := usecase.NewLocationUseCase(locationRepo, txRunner, log)
	nutrimentUC := usecase.NewNutrimentTypeUseCase(nutrimentRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hamster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "version": apiVersion})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		StockUC:     stockUC,
		HistoryUC:   historyUC,
		MetaUC:      metaUC,
		CategoryUC:  categoryUC,
		GroupUC:     groupUC,
		TagUC:       tagUC,
		UnitUC:      unitUC,
		LocationUC:  locationUC,
		NutrimentUC: nutrimentUC,
		UserUC:      userUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
