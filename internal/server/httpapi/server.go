// Package httpapi exposes the PostMe collections over an HTTP JSON API.
// The surface is deliberately row-oriented: filter-by-equality list,
// insert, update, delete on letters, and single-row-or-404 fetch on
// profiles — the shape the client's remote store is written against.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postmeapp/postme/internal/logging"
	"github.com/postmeapp/postme/internal/server/models"
)

// LetterService is the letter storage surface the handlers call.
type LetterService interface {
	List(ctx context.Context, recipient string) ([]models.Letter, error)
	Save(ctx context.Context, letter *models.Letter) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ProfileService is the profile storage surface the handlers call.
type ProfileService interface {
	Get(ctx context.Context, username string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
}

type Server struct {
	address         string
	accessKey       string
	shutdownTimeout time.Duration
	logger          logging.Logger
	letters         LetterService
	profiles        ProfileService
}

func NewServer(address string, l logging.Logger, ls LetterService, ps ProfileService, accessKey string, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		accessKey:       accessKey,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "httpapi"),
		letters:         ls,
		profiles:        ps,
	}
}

// Router builds the gin engine with all routes registered. Everything under
// /api/v1 except ping requires the access key header.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api/v1")
	api.GET("/ping", s.ping)

	keyed := api.Group("")
	keyed.Use(s.accessKeyMiddleware())

	keyed.GET("/letters", s.listLetters)
	keyed.POST("/letters", s.saveLetter)
	keyed.PATCH("/letters/:id/read", s.markLetterRead)
	keyed.DELETE("/letters/:id", s.deleteLetter)

	keyed.GET("/profiles/:username", s.getProfile)
	keyed.POST("/profiles", s.createProfile)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
