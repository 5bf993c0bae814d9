package app

import (
	"context"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"colorsrest/internal/server/config"
	"colorsrest/internal/server/httpapi"
	"colorsrest/internal/server/identity"
	"colorsrest/internal/server/repository/sqlite"
	"colorsrest/internal/server/service"
	"colorsrest/internal/server/token"
)

type App struct {
	version   string
	buildDate string
	logger    *zap.Logger
	server    *http.Server
	repoClose io.Closer
}

func New(version, buildDate string, logger *zap.Logger) (*App, error) {
	cfg := config.Load()
	repo, err := sqlite.New(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	tokens := token.New(token.Config{Key: cfg.JWTKey, Issuer: cfg.JWTIssuer, ExpireDays: cfg.JWTExpireDays})
	services := service.NewServices(repo, identity.New(repo), tokens)
	router := httpapi.NewRouter(services, logger, cfg.MaxRequestBytes)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &App{version: version, buildDate: buildDate, logger: logger, server: server, repoClose: repo}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() { _ = a.repoClose.Close() }()

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("http server error", zap.Error(err))
		}
	}()

	a.logger.Info("colorsrest server listening",
		zap.String("version", a.version),
		zap.String("buildDate", a.buildDate),
		zap.String("addr", a.server.Addr),
	)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}
