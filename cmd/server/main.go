package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/AnshRaj112/exercise-tracker/internal/config"
	"github.com/AnshRaj112/exercise-tracker/internal/database"
	"github.com/AnshRaj112/exercise-tracker/internal/handlers"
	"github.com/AnshRaj112/exercise-tracker/internal/logging"
	"github.com/AnshRaj112/exercise-tracker/internal/middleware"
	"github.com/AnshRaj112/exercise-tracker/internal/routes"
	"github.com/AnshRaj112/exercise-tracker/internal/services"
	"github.com/AnshRaj112/exercise-tracker/internal/store"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code once every deferred cleanup has run.
func run() int {
	envErr := godotenv.Load()
	cfg := config.Load()

	log := logging.New(cfg.Environment, cfg.LogLevel)
	if envErr != nil {
		log.Debug("no .env file found")
	}
	log.WithFields(logrus.Fields{"env": cfg.Environment, "store": cfg.Store}).Info("starting exercise tracker")

	st, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to open store")
		return 1
	}
	defer database.Disconnect()

	opts := []services.Option{services.WithLogger(log)}
	if cfg.RedisURI != "" {
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.WithError(err).Warn("redis unavailable, users cache disabled")
		} else {
			log.Info("connected to redis")
			opts = append(opts, services.WithCache(services.NewRedisUsersCache(database.RedisClient, cfg.CacheTTL, log)))
		}
	}
	defer database.DisconnectRedis()

	svc := services.NewExerciseService(st, opts...)
	exercise := handlers.NewExerciseHandler(svc, log, cfg.RequestTimeout)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log, cfg.TrustProxy))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
	}
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy).Handler)

	routes.SetupRoutes(r, exercise)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.WithError(err).Error("server failed")
		return 1
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	return 0
}

func openStore(cfg *config.Config, log logrus.FieldLogger) (store.UserStore, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), nil
	}

	log.WithField("database", cfg.MongoDatabase).Info("connecting to mongodb")
	if err := database.Connect(cfg.MongoURI, cfg.MongoDatabase); err != nil {
		return nil, err
	}
	log.Info("connected to mongodb")

	ms := store.NewMongoStore(database.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ms.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Warn("failed to ensure mongodb indexes")
	}
	return ms, nil
}
