package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clearwell/clearwell-backend/api/routes"
	"github.com/clearwell/clearwell-backend/internal/auth"
	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/internal/favorites"
	"github.com/clearwell/clearwell-backend/internal/ingredients"
	"github.com/clearwell/clearwell-backend/internal/scores"
	"github.com/clearwell/clearwell-backend/internal/users"
	"github.com/clearwell/clearwell-backend/pkg/auth/session"
	"github.com/clearwell/clearwell-backend/pkg/config"
	"github.com/clearwell/clearwell-backend/pkg/db"
	"github.com/clearwell/clearwell-backend/pkg/logger"
	"github.com/clearwell/clearwell-backend/pkg/metrics"
	"github.com/clearwell/clearwell-backend/pkg/migrate"
	"github.com/clearwell/clearwell-backend/pkg/redis"
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

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	scoreMetrics := metrics.NewScoreMetrics(registry)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	ingredientsService, err := ingredients.NewService(ingredients.ServiceParams{
		Repo: ingredients.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create ingredients service", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo:        catalogRepo,
		Ingredients: ingredientsService,
		Counters:    redisClient,
		Logger:      logg,
		Config:      cfg.Catalog,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	favoritesService, err := favorites.NewService(favorites.ServiceParams{
		Repo:     favorites.NewRepository(dbClient.DB()),
		Catalog:  catalogService,
		Counters: catalogRepo,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{
		Repo:      users.NewRepository(dbClient.DB()),
		Locations: catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	scoresService, err := scores.NewService(scores.ServiceParams{
		Favorites: favoritesService,
		Users:     users.NewRepository(dbClient.DB()),
		Locations: catalogRepo,
		Metrics:   scoreMetrics,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create scores service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, routes.Services{
		Auth:        authService,
		Favorites:   favoritesService,
		Scores:      scoresService,
		Catalog:     catalogService,
		Ingredients: ingredientsService,
		Users:       usersService,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", router)

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
		Addr:    addr,
		Handler: mux,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
