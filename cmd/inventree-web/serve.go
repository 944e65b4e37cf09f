package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/inventree-web/internal/api"
	"github.com/andresuchdata/inventree-web/internal/settings"
	"github.com/andresuchdata/inventree-web/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
)

func runServe(c *cli.Context) error {
	cfg := configFrom(c)

	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := newStore(c.Context, cfg)
	if err != nil {
		return err
	}

	// Prime the cache; the frontend can still trigger a refresh later.
	if err := store.Fetch(c.Context); err != nil {
		logger.Log.Warn().Err(err).Msg("initial server state refresh failed")
	}

	router := api.NewRouter(&api.Services{
		Store:        store,
		Frontend:     settings.Frontend(cfg.Frontend, cfg.Frontend.Debug),
		ManifestPath: cfg.Frontend.ManifestPath,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Log.Info().Msg("Server exiting")
	return nil
}
