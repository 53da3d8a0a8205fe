package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/kindlenotes/internal/config"
	"github.com/mrlokans/kindlenotes/internal/database"
	http_controllers "github.com/mrlokans/kindlenotes/internal/http"
	"github.com/mrlokans/kindlenotes/internal/kindle"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the server until ctx is cancelled, then shuts it down within the
// configured timeout.
func Serve(ctx context.Context, router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutdown Server, waiting %v before killing", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server exiting")
	return nil
}

// Run wires the router from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, version string) error {
	log.Printf("Starting kindlenotes v%s", version)

	router, cleanup, err := NewRouter(cfg, version)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, router, cfg, func(context.Context) { cleanup() })
}

// NewRouter opens the library database when one is configured and builds the
// HTTP router around it. The returned cleanup closes the database.
func NewRouter(cfg *config.Config, version string) (*gin.Engine, func(), error) {
	titlePolicy, err := kindle.ParseTitlePolicy(cfg.Outline.TitlePolicy)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid TITLE_POLICY: %w", err)
	}

	routerCfg := http_controllers.RouterConfig{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		ShowLocation:   cfg.Outline.ShowLocation,
		TitlePolicy:    titlePolicy,
		Version:        version,
	}

	cleanup := func() {}
	if cfg.Database.Path == "" {
		log.Printf("WARNING: DATABASE_PATH is not set. Library endpoints are disabled and converted notebooks will not be saved.")
	} else {
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		routerCfg.Library = db
		routerCfg.Health = db
		cleanup = func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}
	}

	return http_controllers.NewRouter(routerCfg), cleanup, nil
}
