package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/batmanhot/logistica-inventario/internal/application/auth"
	"github.com/batmanhot/logistica-inventario/internal/application/batch"
	"github.com/batmanhot/logistica-inventario/internal/application/catalog"
	"github.com/batmanhot/logistica-inventario/internal/application/directory"
	appinventory "github.com/batmanhot/logistica-inventario/internal/application/inventory"
	"github.com/batmanhot/logistica-inventario/internal/application/location"
	"github.com/batmanhot/logistica-inventario/internal/application/report"
	"github.com/batmanhot/logistica-inventario/internal/domain/inventory"
	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/blobstore"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/memory"
	infrapdf "github.com/batmanhot/logistica-inventario/internal/infrastructure/pdf"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/postgres"
	"github.com/batmanhot/logistica-inventario/internal/infrastructure/sqlite"
	httpRouter "github.com/batmanhot/logistica-inventario/internal/interfaces/http"
	"github.com/batmanhot/logistica-inventario/pkg/config"
	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	blobs, err := openBlobStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer blobs.Close()

	codec, err := blobstore.NewCodec(cfg.Store.Compress)
	if err != nil {
		log.Fatal().Err(err).Msg("crear codec")
	}
	defer codec.Close()

	newID := uuid.NewString
	runner := blobstore.NewRunner(
		blobstore.NewAggregateStore(blobs, codec),
		inventory.Options{
			LowStockThreshold: cfg.Inventory.LowStockThreshold,
			NearExpiryDays:    cfg.Inventory.NearExpiryDays,
		},
		blobstore.SystemClock, newID,
	)

	catalogUC := catalog.NewUseCase(runner, newID, blobstore.SystemClock, log)
	if seeded, err := catalogUC.SeedDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar datos iniciales")
	} else if seeded {
		log.Info().Msg("almacén vacío: catálogo inicial cargado")
	}

	inventoryUC := appinventory.NewUseCase(runner, appinventory.Options{
		Warehouses:    cfg.Inventory.Warehouses,
		BatchFIFO:     cfg.Inventory.BatchFIFO,
		AutoRecompute: cfg.Inventory.AutoRecompute,
	}, log)
	batchUC := batch.NewUseCase(runner, log)
	locationUC := location.NewUseCase(runner, cfg.Inventory.Warehouses, newID, blobstore.SystemClock, log)
	partnerUC := directory.NewPartnerUseCase(runner, newID, blobstore.SystemClock, log)
	carrierUC := directory.NewCarrierUseCase(runner, newID, blobstore.SystemClock, log)
	categoryUC := directory.NewCategoryUseCase(runner, newID, blobstore.SystemClock, log)
	reportUC := report.NewUseCase(runner, infrapdf.NewMarotoPDFGenerator(), time.Now)

	authUC, err := auth.NewAuthUseCase(
		auth.Credentials{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar autenticación")
	}

	scheduler := batch.NewScheduler(batchUC, cfg.Inventory.BatchSweepInterval, log)
	scheduler.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Logística Inventario API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger no disponible")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		ReportUC:    reportUC,
		BatchUC:     batchUC,
		LocationUC:  locationUC,
		PartnerUC:   partnerUC,
		CarrierUC:   carrierUC,
		CategoryUC:  categoryUC,
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
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openBlobStore abre el almacén de blobs según STORE_DRIVER.
func openBlobStore(ctx context.Context, cfg *config.Config) (repository.BlobStore, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Store.SQLitePath)
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store, err := postgres.NewBlobStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		return memory.NewBlobStore(), nil
	}
	return nil, fmt.Errorf("driver desconocido: %s", cfg.Store.Driver)
}
