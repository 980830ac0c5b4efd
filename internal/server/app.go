// Package server initializes and runs the main application server.
// It selects a storage backend, wires the services, handles graceful
// shutdown, and starts the HTTP server for the ledger API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/finledger/internal/logging"
	"github.com/dmitrijs2005/finledger/internal/server/config"
	"github.com/dmitrijs2005/finledger/internal/server/httpapi"
	"github.com/dmitrijs2005/finledger/internal/server/shared/db"
	"github.com/dmitrijs2005/finledger/internal/server/statements"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	manager          db.RepositoryManager
	userService      *users.Service
	statementService *statements.Service
}

func NewApp(c *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	var manager db.RepositoryManager
	if c.DatabaseDSN == "" {
		manager = db.NewInMemoryRepositoryManager()
	} else {
		m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		manager = m
	}

	us := users.NewService(manager.Users(), c)
	ss := statements.NewService(manager.Statements(), manager.Users())

	return &App{config: c, logger: logger, manager: manager, userService: us, statementService: ss}, nil
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

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.statementService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
