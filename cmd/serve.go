package cmd

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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/pankajah/portfolio-site/internal/admin"
	"github.com/pankajah/portfolio-site/internal/analytics"
	"github.com/pankajah/portfolio-site/internal/config"
	"github.com/pankajah/portfolio-site/internal/metrics"
	"github.com/pankajah/portfolio-site/internal/server"
	"github.com/pankajah/portfolio-site/internal/site"
)

const cleanupInterval = 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gin.SetMode(cfg.GinMode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		deps := server.Deps{
			Renderer: renderer,
			Metrics:  metrics.New(reg),
			Gatherer: reg,
		}

		var store *analytics.Store
		var hasher *analytics.Hasher
		if cfg.TrackVisitors || cfg.AdminEnabled() {
			store, err = analytics.Open(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			hasher, err = analytics.NewRandomHasher()
			if err != nil {
				return err
			}
			go runCleanup(ctx, store, cfg.VisitorRetentionDays)
		}
		if cfg.TrackVisitors {
			deps.Tracker = server.NewVisitTracker(store, hasher, deps.Metrics)
			// Runs before store.Close so in-flight visit writes land.
			defer deps.Tracker.Wait()
		}
		if cfg.AdminEnabled() {
			deps.Admin, err = admin.New(admin.Options{
				Username:      cfg.AdminUsername,
				Password:      cfg.AdminPassword,
				BasePath:      renderer.Options().BasePath,
				RetentionDays: cfg.VisitorRetentionDays,
				Store:         store,
				Hasher:        hasher,
			})
			if err != nil {
				return err
			}
		} else {
			log.Println("Admin dashboard disabled: set PORTFOLIO_ADMIN_PASSWORD to enable it")
		}

		engine, err := server.New(cfg, deps)
		if err != nil {
			return err
		}
		return listen(ctx, cfg, engine)
	},
}

func listen(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving portfolio on %s%s/", cfg.Addr, site.NormalizeBasePath(cfg.BasePath))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// runCleanup removes visits older than the retention window once at startup
// and then daily until ctx is cancelled.
func runCleanup(ctx context.Context, store *analytics.Store, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		if _, err := store.Cleanup(ctx, time.Now().AddDate(0, 0, -retentionDays)); err != nil && ctx.Err() == nil {
			log.Printf("Error cleaning up old visitor data: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
