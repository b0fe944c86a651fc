package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/bookstore/config"
	"github.com/ErlanBelekov/bookstore/internal/email"
	"github.com/ErlanBelekov/bookstore/internal/health"
	"github.com/ErlanBelekov/bookstore/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/bookstore/internal/log"
	"github.com/ErlanBelekov/bookstore/internal/metrics"
	httptransport "github.com/ErlanBelekov/bookstore/internal/transport/http"
	"github.com/ErlanBelekov/bookstore/internal/transport/http/handler"
	"github.com/ErlanBelekov/bookstore/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := ctxlog.New(cfg.Env, cfg.SlogLevel(), os.Stdout)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		stop()
		pool.Close()
		log.Fatalf("migrate: %v", err)
	}

	// Users
	userRepo := postgres.NewUserRepository(pool)
	authUsecase := usecase.NewAuthUsecase(userRepo, []byte(cfg.JWTSecret), cfg.JWTTTL)

	// Catalog
	bookRepo := postgres.NewBookRepository(pool)
	catalogUsecase := usecase.NewCatalogUsecase(bookRepo, postgres.NewCategoryRepository(pool))
	reviewUsecase := usecase.NewReviewUsecase(postgres.NewReviewRepository(pool), bookRepo)

	// Cart
	cartUsecase := usecase.NewCartUsecase(postgres.NewCartRepository(pool), bookRepo)

	// Orders
	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	orderUsecase := usecase.NewOrderUsecase(postgres.NewOrderRepository(pool), userRepo, sender, logger)

	metrics.Register(prometheus.DefaultRegisterer)
	checker := health.NewChecker(map[string]health.Pinger{"postgres": pool}, logger, prometheus.DefaultRegisterer)

	handlers := httptransport.Handlers{
		Auth:   handler.NewAuthHandler(authUsecase, logger),
		Books:  handler.NewBookHandler(catalogUsecase, logger),
		Cart:   handler.NewCartHandler(cartUsecase, logger),
		Order:  handler.NewOrderHandler(orderUsecase, logger),
		Review: handler.NewReviewHandler(reviewUsecase, logger),
	}

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httptransport.NewRouter(logger, handlers, userRepo, []byte(cfg.JWTSecret)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}
