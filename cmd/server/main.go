package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/iliyamo/film-festival/internal/auth"
	"github.com/iliyamo/film-festival/internal/config"
	"github.com/iliyamo/film-festival/internal/handler"
	"github.com/iliyamo/film-festival/internal/logger"
	"github.com/iliyamo/film-festival/internal/middleware"
	"github.com/iliyamo/film-festival/internal/queue"
	"github.com/iliyamo/film-festival/internal/repository"
	"github.com/iliyamo/film-festival/internal/router"
	"github.com/iliyamo/film-festival/internal/seed"
	"github.com/iliyamo/film-festival/internal/session"
)

func main() {
	// best-effort: a missing .env just means the real environment is used
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Dev: cfg.LogDev})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := repository.New()
	if cfg.SeedDemo {
		if _, err := seed.Demo(store, cfg.BcryptCost, cfg.TicketPriceCents); err != nil {
			log.Fatal("seed demo data", zap.Error(err))
		}
		log.Info("demo data loaded")
	}

	sessions := session.NewManager(store, cfg.SessionTTL, log.Named("session"))
	go sessions.Run(ctx, cfg.SessionSweepInterval)
	authn := auth.NewAuthenticator(sessions, store, cfg.BcryptCost)

	rdb, err := config.NewRedisClient(ctx)
	if err != nil {
		log.Warn("redis unavailable, response cache disabled", zap.Error(err))
	} else {
		defer func() { _ = rdb.Close() }()
	}
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb, log.Named("cache"))

	var events handler.TicketEvents
	if cfg.RabbitURL != "" {
		events = queue.NewPublisher(cfg.RabbitURL, log.Named("publisher"))
		if cfg.TicketConsumer {
			consumer := queue.NewConsumer(cfg.RabbitURL, cfg.TicketLogDir, log.Named("consumer"))
			go func() {
				if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("ticket consumer stopped", zap.Error(err))
				}
			}()
		}
	} else {
		log.Info("RABBITMQ_URL not set, ticket events disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(log)
	// time-ordered request ids
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.RequestLogger(log.Named("http")))
	e.Use(echomw.Recover())

	tickets := handler.NewTicketHandler(store, cfg.TicketPriceCents, events, log.Named("tickets"))
	router.Register(e, router.Handlers{
		Auth:      handler.NewAuthHandler(store, authn, cfg.BcryptCost, cfg.Production()),
		Films:     handler.NewFilmHandler(store, cache, log.Named("films")),
		Dashboard: handler.NewDashboardHandler(store),
		Tickets:   tickets,
		Authn:     authn,
		Cache:     cache,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown failed", zap.Error(err))
	}
	if err := tickets.Drain(shutdownCtx); err != nil {
		log.Warn("ticket events dropped at shutdown", zap.Error(err))
	}
}
