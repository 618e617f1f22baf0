package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"algonest_webclient/internal/alert"
	"algonest_webclient/internal/api"
	"algonest_webclient/internal/gateway"
	"algonest_webclient/internal/middleware"
	"algonest_webclient/internal/repository"
	"algonest_webclient/internal/screen"
	"algonest_webclient/internal/service"
	"algonest_webclient/internal/session"
	"algonest_webclient/internal/support"
	"algonest_webclient/internal/wallet"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	sessions := session.NewManager(repo, cfg.Session)

	backend, err := gateway.New(cfg.Backend, sessions)
	if err != nil {
		zapLogger.Fatal("Failed to initialize backend client", zap.Error(err))
	}

	validator, err := wallet.NewValidator(cfg.Wallets)
	if err != nil {
		zapLogger.Fatal("Failed to load wallet rules", zap.Error(err))
	}

	notifier, err := support.NewNotifier(cfg.Support)
	if err != nil {
		zapLogger.Fatal("Failed to initialize support notifier", zap.Error(err))
	}

	svc := service.NewService(
		service.NewAuthService(backend, sessions),
		service.NewAccountService(backend),
		service.NewBotService(backend),
		service.NewWalletService(backend, validator, cfg.Recharge),
		service.NewWithdrawService(backend, cfg.Withdrawal),
		service.NewReferralService(backend, cfg.Referral),
		service.NewTransactionService(backend),
		service.NewSupportService(backend, notifier),
	)

	screens := screen.NewRegistry(cfg.Screens, api.Describe)
	defer screens.Close()
	alerts := alert.NewHub(cfg.Alerts)
	defer alerts.Close()

	sessions.OnTeardown(screens.CloseSession)
	sessions.OnTeardown(alerts.CloseSession)

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	authorization := middleware.NewAuthorization(sessions, middleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Server.CookieSecure,
		MaxAge: int(ttl.Seconds()),
	})

	router := api.NewRouter(api.Deps{
		Service: svc,
		Auth:    authorization,
		Screens: screens,
		Alerts:  alerts,
		CORS:    cfg.CORS,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions, cfg.Server.SweepEvery)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("Starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		zapLogger.Info("Shutting down server")
	case err := <-serveErr:
		if err != nil {
			zapLogger.Error("Failed to start server", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("Server stopped")
}

func sweepSessions(ctx context.Context, sessions *session.Manager, every time.Duration) {
	if every <= 0 {
		every = time.Hour
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.Sweep(ctx)
			if err != nil {
				logger.Logger().Error("failed to sweep sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Logger().Info("expired sessions removed", zap.Int64("count", n))
			}
		}
	}
}
