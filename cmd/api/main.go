package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chirosmith/portal-api/internal/config"
	"github.com/chirosmith/portal-api/internal/email"
	"github.com/chirosmith/portal-api/internal/handler"
	accountHandler "github.com/chirosmith/portal-api/internal/handler/account"
	scheduleHandler "github.com/chirosmith/portal-api/internal/handler/schedule"
	shellHandler "github.com/chirosmith/portal-api/internal/handler/shell"
	"github.com/chirosmith/portal-api/internal/middleware"
	"github.com/chirosmith/portal-api/internal/repository/postgres"
	"github.com/chirosmith/portal-api/internal/router"
	"github.com/chirosmith/portal-api/internal/schedule"
	accountService "github.com/chirosmith/portal-api/internal/service/account"
	"github.com/chirosmith/portal-api/internal/session"
	"github.com/chirosmith/portal-api/internal/shell"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	base := postgres.NewBaseRepository(db)
	accountRepo := postgres.NewAccountRepository(base)
	diag := postgres.NewDiagnostics(db)

	// Selection store, memory by default, redis when configured
	selections, err := newSelectionStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize selection store")
	}

	// Services
	emailSvc := email.NewService(cfg.SMTP)
	accountSvc := accountService.NewService(accountRepo, emailSvc)
	gridSvc := schedule.NewService(nil)
	names := shell.NewNameCache(cfg.Session.TTL)

	// Handlers
	h := handler.NewHandler(diag)
	accountH := accountHandler.NewHandler(accountSvc)
	scheduleH := scheduleHandler.NewHandler(gridSvc, selections)
	shellH := shellHandler.NewHandler(selections, names)

	r := router.NewRouter(h, accountH, scheduleH, shellH, router.RouterConfig{
		RateLimit:  middleware.RateLimiterConfig(cfg.RateLimit),
		CORSConfig: middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func newSelectionStore(cfg *config.Config) (session.SelectionStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		return session.NewRedisStore(cfg.Redis.URL, cfg.Session.TTL)
	default:
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
}
