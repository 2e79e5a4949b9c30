package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ElkinVA/MyBiz-Project/internal/cache"
	"github.com/ElkinVA/MyBiz-Project/internal/catalog"
	"github.com/ElkinVA/MyBiz-Project/internal/config"
	"github.com/ElkinVA/MyBiz-Project/internal/content"
	"github.com/ElkinVA/MyBiz-Project/internal/database"
	"github.com/ElkinVA/MyBiz-Project/internal/handlers"
	"github.com/ElkinVA/MyBiz-Project/internal/render"
	"github.com/ElkinVA/MyBiz-Project/internal/routes"
	"github.com/ElkinVA/MyBiz-Project/internal/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	pageCache := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL, log)
	defer pageCache.Close()

	// Site settings are read once at startup and refreshed only through
	// the admin API.
	settingsStore := settings.NewStore(db)
	if err := settingsStore.Load(context.Background()); err != nil {
		return err
	}

	renderer, err := render.New(cfg.TemplateDir)
	if err != nil {
		return err
	}

	catalogStore := catalog.NewSQLStore(db)
	contentStore := content.NewSQLStore(db)

	h := &handlers.Handlers{
		DB:           db,
		Catalog:      catalogStore,
		CatalogAdmin: catalogStore,
		Content:      contentStore,
		ContentAdmin: contentStore,
		Settings:     settingsStore,
		Cache:        pageCache,
		Render:       renderer,
		Log:          log,
		JWTKey:       []byte(cfg.JWTSecret),
	}

	router := routes.SetupRouter(h, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Expired promotions are swept hourly so banners drop off without an
	// admin visit.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				n, err := contentStore.DeactivateExpiredPromotions(ctx, now)
				if err != nil {
					log.Error("promotion sweep failed", zap.Error(err))
					continue
				}
				if n > 0 {
					log.Info("deactivated expired promotions", zap.Int64("count", n))
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
