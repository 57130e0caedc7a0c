package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clipshelf/clipshelf/internal/config"
	"github.com/clipshelf/clipshelf/internal/httpserver"
	"github.com/clipshelf/clipshelf/internal/httpserver/deps"
	"github.com/clipshelf/clipshelf/internal/logger"
	"github.com/clipshelf/clipshelf/internal/seo"
	"github.com/clipshelf/clipshelf/internal/store/catalog"
	"github.com/clipshelf/clipshelf/internal/uploads"
	"github.com/clipshelf/clipshelf/internal/version"
	"github.com/clipshelf/clipshelf/internal/youtube"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Image storage collaborator
	saver, err := uploads.NewSaver(cfg.UploadDir, cfg.AllowedExts)
	if err != nil {
		loggerClient.Errorf("Failed to prepare upload directory: %v", err)
		os.Exit(1)
	}

	// Metadata gateway - the catalog degrades gracefully without a key
	gateway := youtube.New(cfg.YouTubeAPIKey, cfg.YouTubeAPIURL, cfg.YouTubeTimeout, loggerClient)
	if !gateway.Enabled() {
		loggerClient.Warn("no YouTube API key configured, enrichment runs text-only")
	}

	// Enrichment pipeline
	pipeline := seo.New(gateway, loggerClient, cfg.RefreshInterval)

	// Catalog store - fail fast if the snapshot location is unusable
	loggerClient.Infof("Opening catalog at %s", cfg.DataFile)
	store, err := catalog.Open(cfg.DataFile, pipeline, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open catalog: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("catalog initialized",
		logger.Int("screenshots", store.Count()),
		logger.Duration("refresh_interval", cfg.RefreshInterval))

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		Catalog:         store,
		Uploads:         saver,
		Gateway:         gateway,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		TrustProxy:      cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting clipshelf v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("clipshelf %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ clipshelf stopped cleanly")
	return nil
}
