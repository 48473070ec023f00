// Package server initializes and runs the PostMe storage server. It wires
// configuration, the Postgres-backed repositories, the letter and profile
// services, and the HTTP API, and handles graceful shutdown on signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/postmeapp/postme/internal/logging"
	"github.com/postmeapp/postme/internal/server/config"
	"github.com/postmeapp/postme/internal/server/httpapi"
	"github.com/postmeapp/postme/internal/server/letters"
	"github.com/postmeapp/postme/internal/server/profiles"
	"github.com/postmeapp/postme/internal/server/shared/db"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	letterService  *letters.Service
	profileService *profiles.Service
}

func NewApp(c *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ls := letters.NewService(m.Letters())
	ps := profiles.NewService(m.Conn(), m.Profiles)

	return &App{config: c, logger: logger, letterService: ls, profileService: ps}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.letterService, app.profileService,
		app.config.AccessKey, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
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
}
