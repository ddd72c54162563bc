// Package httpapi exposes the content API over HTTP with gin.
//
// Routes:
//
//	POST   /v1/content/login
//	PUT    /v1/content/account                 (auth)
//	GET    /v1/content/{resource}[/:id]
//	POST   /v1/content/{resource}              (auth, multipart)
//	PUT    /v1/content/{resource}/:id          (auth, multipart)
//	DELETE /v1/content/{resource}/:id          (auth)
//	...    /api/v1/content/transaction[/:id]   (same verbs, JSON)
//	GET    /uploads/*                          (local image store only)
//
// Errors are JSON objects with a "message" field.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/imagestore"
	"github.com/fundunity/cmsdash/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

var netListen = net.Listen

// Resources are the content services published by the API.
type Resources struct {
	AboutUs      *services.ContentService[models.AboutUs]
	Sliders      *services.ContentService[models.SliderImage]
	Programs     *services.ContentService[models.Program]
	Partners     *services.ContentService[models.Partner]
	Transactions *services.ContentService[models.Transaction]
}

type HTTPServer struct {
	address string
	users   *services.UserService
	logger  logging.Logger
	router  *gin.Engine
}

// NewHTTPServer builds the router. uploadDir is served at /uploads when
// non-empty.
func NewHTTPServer(a string, l logging.Logger, us *services.UserService, res Resources, uploadDir string) *HTTPServer {
	s := &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
	}
	s.router = s.setupRoutes(res, uploadDir)
	return s
}

func (s *HTTPServer) setupRoutes(res Resources, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.MaxMultipartMemory = 8 << 20

	requireAuth := s.accessTokenMiddleware()

	v1 := r.Group("/v1/content")
	v1.POST("/login", s.login)
	v1.PUT("/account", requireAuth, s.updateAccount)

	registerResource(v1.Group("/aboutus"), requireAuth, res.AboutUs, formDecoder(aboutUsFromForm), s.logger)
	registerResource(v1.Group("/imageslider"), requireAuth, res.Sliders, formDecoder(sliderFromForm), s.logger)
	registerResource(v1.Group("/program"), requireAuth, res.Programs, formDecoder(programFromForm), s.logger)
	registerResource(v1.Group("/ourpartner"), requireAuth, res.Partners, formDecoder(partnerFromForm), s.logger)

	api := r.Group("/api/v1/content")
	registerResource(api.Group("/transaction"), requireAuth, res.Transactions, decodeTransaction, s.logger)

	if uploadDir != "" {
		r.Static(imagestore.UploadsPath, uploadDir)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}

// Handler returns the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := netListen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// stops the shutdown goroutine when Serve fails on its own
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
