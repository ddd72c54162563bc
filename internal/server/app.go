// Package server wires the content API together: storage, image store,
// services and the HTTP server, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/server/config"
	"github.com/fundunity/cmsdash/internal/server/httpapi"
	"github.com/fundunity/cmsdash/internal/server/imagestore"
	"github.com/fundunity/cmsdash/internal/server/repositories/repomanager"
	"github.com/fundunity/cmsdash/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.HTTPServer
}

// newRepositoryManager is a seam for tests.
var newRepositoryManager = func(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		return repomanager.NewInMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
}

func newImageStore(ctx context.Context, c *config.Config) (imagestore.Store, string, error) {
	switch c.ImageStore {
	case config.ImageStoreLocal, "":
		s, err := imagestore.NewLocalStore(c.UploadDir, c.PublicBaseURL)
		if err != nil {
			return nil, "", err
		}
		return s, s.Dir, nil
	case config.ImageStoreS3:
		s, err := imagestore.NewS3Store(ctx, imagestore.S3Config{
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Region:       c.S3Region,
			Bucket:       c.S3Bucket,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		return s, "", err
	}
	return nil, "", fmt.Errorf("unknown image store %q", c.ImageStore)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	gin.SetMode(gin.ReleaseMode)

	if c.SecretKey == "" {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, err
		}
		c.SecretKey = secret
		logger.Warn(ctx, "no secret key configured, tokens will not survive a restart")
	}

	rm, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, uploadDir, err := newImageStore(ctx, c)
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("image store init error: %w", err)
	}

	us := services.NewUserService(rm.Users(), c.SecretKey, c.TokenValidityDuration, logger)
	if _, err := us.EnsureAdmin(ctx, c.AdminEmail, c.AdminPassword); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("admin seed error: %w", err)
	}

	w := c.MaxImageWidth
	res := httpapi.Resources{
		AboutUs:      services.NewContentService("aboutus", rm.AboutUs(), logger).WithImages(store, services.AboutUsImage, w),
		Sliders:      services.NewContentService("imageslider", rm.Sliders(), logger).WithImages(store, services.SliderImage, w),
		Programs:     services.NewContentService("program", rm.Programs(), logger).WithImages(store, services.ProgramImage, w),
		Partners:     services.NewContentService("ourpartner", rm.Partners(), logger).WithImages(store, services.PartnerImage, w),
		Transactions: services.NewContentService("transaction", rm.Transactions(), logger),
	}

	srv := httpapi.NewHTTPServer(c.HTTPAddr, logger, us, res, uploadDir)

	return &App{config: c, logger: logger, repos: rm, server: srv}, nil
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
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "image_store", app.config.ImageStore, "in_memory", app.config.DatabaseDSN == "")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
