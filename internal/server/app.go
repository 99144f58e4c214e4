// Package server initializes and runs the GardenKeeper application.
// It validates configuration, opens the configured store, applies
// migrations, handles graceful shutdown and starts the REST API server.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gardenkeeper/internal/logging"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/config"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  repomanager.RepositoryManager
	http   *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	store, err := repomanager.Open(ctx, c.StorageDriver, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	hasher := auth.NewPasswordHasher(c.BcryptCost)
	issuer := auth.NewTokenIssuer([]byte(c.SecretKey), c.TokenValidityDuration)

	svc := httpapi.Services{
		Users:   services.NewUserService(store, hasher),
		Auth:    services.NewAuthService(store, hasher, issuer),
		Crops:   services.NewCropService(store),
		Journal: services.NewJournalService(store),
	}

	srv := httpapi.NewHTTPServer(c.HTTPAddr, logger, store, svc, httpapi.Options{
		CORSAllowedOrigins: c.CORSAllowedOrigins,
		AuthRateLimit:      c.AuthRateLimit,
		ShutdownTimeout:    c.ShutdownTimeout,
	})

	return &App{config: c, logger: logger, store: store, http: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// waits for the server to drain and closes the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.StorageDriver)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "closing store", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
