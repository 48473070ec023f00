// Package cli implements the interactive PostMe client: a small REPL for
// joining, sending letters, and reading the inbox.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/postmeapp/postme/internal/client/api"
	"github.com/postmeapp/postme/internal/client/config"
	"github.com/postmeapp/postme/internal/client/models"
	"github.com/postmeapp/postme/internal/client/penpal"
	"github.com/postmeapp/postme/internal/client/repositories/kv"
	"github.com/postmeapp/postme/internal/client/services"
	"github.com/postmeapp/postme/internal/client/session"
	"github.com/postmeapp/postme/internal/client/storage"
	"github.com/postmeapp/postme/internal/logging"
)

// App wires the PostMe client together and carries the REPL state: the
// signed-in user and the last inbox listing (so "read 2" knows which
// letter the user means).
type App struct {
	config         *config.Config
	remote         *api.Client
	letterService  *services.LetterService
	profileService *services.ProfileService
	penpal         penpal.Generator
	logger         logging.Logger
	reader         *bufio.Reader

	userID    string
	lastInbox []models.Letter
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := storage.InitDatabase(c.LocalDBPath)
	if err != nil {
		return nil, err
	}

	kvRepo := kv.NewSQLiteRepository(db)
	local := storage.NewLocal(kvRepo)
	tracker := session.NewTracker(kvRepo)
	remote := api.NewClient(c.BackendURL, c.BackendKey, c.RequestTimeout)

	return &App{
		config:         c,
		remote:         remote,
		letterService:  services.NewLetterService(c, remote, local, logger),
		profileService: services.NewProfileService(c, remote, local, tracker, logger),
		penpal:         penpal.NewGeminiGenerator(c.GeminiAPIKey, c.GeminiModel, logger),
		logger:         logger,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

// restoreSession picks up the user signed in during a previous run.
func (a *App) restoreSession(ctx context.Context) {
	userID, err := a.profileService.Current(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err.Error())
		return
	}
	a.userID = userID
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
