package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/georgemunganga/boxoffice-catalog/internal/config"
	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
	"github.com/georgemunganga/boxoffice-catalog/internal/modules/integration"
	"github.com/georgemunganga/boxoffice-catalog/internal/modules/productsync"
	"github.com/georgemunganga/boxoffice-catalog/internal/modules/routing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logger := config.NewLogger(cfg)

	// ── Catalog snapshot ────────────────────────────────────
	repo := catalog.NewSeedRepository()
	if !cfg.UseSeed() {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal(err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Fatal(err)
		}
		logger.Info("Successfully connected to the database!")
		repo = catalog.NewPostgresRepository(db, cfg.DefaultCurrency)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	snapshot, err := repo.LoadSnapshot(ctx, cfg.BoxOfficeChannelID)
	cancel()
	if err != nil {
		logger.Fatal(err)
	}
	holder := catalog.NewHolder(snapshot)

	for _, v := range routing.Diagnose(snapshot) {
		logger.WithFields(logrus.Fields{
			"module":  "catalog",
			"code":    v.Code,
			"subject": v.Subject,
		}).Warn(v.Message)
	}
	logger.WithFields(logrus.Fields{
		"module":     "catalog",
		"products":   len(snapshot.Products()),
		"warehouses": len(snapshot.Warehouses()),
		"routings":   len(snapshot.SalesRoutings()),
	}).Info("catalog snapshot loaded")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Publication resolution ──────────────────────────────
	routingService := routing.NewService(holder)
	routing.NewHandler(routingService).RegisterRoutes(router)

	// ── Product sync ────────────────────────────────────────
	syncService := productsync.NewService(holder, nil, logger)
	productsync.NewHandler(syncService, cfg.SyncDelay, logger).RegisterRoutes(router)

	// ── Catalog configuration ───────────────────────────────
	integrationService := integration.NewService(holder, logger)
	integration.NewHandler(integrationService).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	logger.Infof("Box-office catalog API starting on :%s", cfg.Port)
	logger.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
