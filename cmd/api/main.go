package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gameshop/catalog-api/api/routes"
	"github.com/gameshop/catalog-api/internal/blob"
	"github.com/gameshop/catalog-api/internal/brands"
	"github.com/gameshop/catalog-api/internal/categories"
	"github.com/gameshop/catalog-api/internal/images"
	"github.com/gameshop/catalog-api/internal/products"
	"github.com/gameshop/catalog-api/pkg/config"
	"github.com/gameshop/catalog-api/pkg/db"
	"github.com/gameshop/catalog-api/pkg/db/models"
	"github.com/gameshop/catalog-api/pkg/logger"
	"github.com/gameshop/catalog-api/pkg/metrics"
	"github.com/gameshop/catalog-api/pkg/migrate"
	"github.com/gameshop/catalog-api/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.FeatureFlags.UseSQLite {
		// sqlite has no goose migrations; build the schema from the models
		err := dbClient.DB().AutoMigrate(
			&models.Category{},
			&models.Brand{},
			&models.Product{},
			&models.ProductImage{},
		)
		if err != nil {
			logg.Error(context.Background(), "failed to migrate sqlite schema", err)
			os.Exit(1)
		}
	} else if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency replay disabled")
	}

	if err := routes.EnsureBlobRoot(cfg); err != nil {
		logg.Error(context.Background(), "failed to prepare blob root", err)
		os.Exit(1)
	}

	blobStore, err := blob.NewFileStore(cfg.Blob.Root)
	if err != nil {
		logg.Error(context.Background(), "failed to create blob store", err)
		os.Exit(1)
	}

	categoryRepo := categories.NewRepository(dbClient.DB())
	brandRepo := brands.NewRepository(dbClient.DB())
	productRepo := products.NewRepository(dbClient.DB())
	imageRepo := images.NewRepository(dbClient.DB())

	categoryService, err := categories.NewService(categoryRepo)
	exitOnError(logg, "create category service", err)
	brandService, err := brands.NewService(brandRepo)
	exitOnError(logg, "create brand service", err)
	productService, err := products.NewService(productRepo, categoryRepo, brandRepo)
	exitOnError(logg, "create product service", err)
	imageService, err := images.NewService(imageRepo, productRepo, blobStore, logg)
	exitOnError(logg, "create image service", err)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	handler := routes.NewRouter(routes.Deps{
		Config:     cfg,
		Logger:     logg,
		Metrics:    httpMetrics,
		DBPinger:   dbClient,
		Redis:      redisClient,
		Categories: categoryService,
		Brands:     brandService,
		Products:   productService,
		Images:     imageService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-shutdownCh:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func exitOnError(logg *logger.Logger, msg string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), msg, err)
	os.Exit(1)
}
