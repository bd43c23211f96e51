package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/erp-compare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/erp-compare-backend/internal/config"
	"github.com/heartmarshall/erp-compare-backend/internal/domain"
	"github.com/heartmarshall/erp-compare-backend/internal/transport/dataloader"
	"github.com/heartmarshall/erp-compare-backend/internal/transport/middleware"
	"github.com/heartmarshall/erp-compare-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations when enabled and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	repos := NewRepos(pool)
	svcs := NewServices(logger, cfg, repos)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)

	handler := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Check{
			"database": pool.Ping,
			"catalog": func(ctx context.Context) error {
				_, err := svcs.Catalog.Catalog(ctx, domain.EntityKindSystem)
				return err
			},
		}, "database"),
		Auth:     rest.NewAuthHandler(svcs.Auth, svcs.Users, logger),
		Catalog:  rest.NewCatalogHandler(svcs.Catalog, logger),
		Systems:  rest.NewSystemHandler(svcs.Systems, svcs.Catalog, logger),
		Drafts:   rest.NewDraftHandler(svcs.Drafts, logger),
		Compare:  rest.NewCompareHandler(svcs.Comparison, logger),
		Glossary: rest.NewGlossaryHandler(svcs.Glossary, logger),
		Users:    rest.NewUserAdminHandler(svcs.Users, logger),
	}, rest.RouterDeps{
		Logger:      logger,
		Auth:        middleware.Auth(svcs.Auth),
		CORS:        middleware.CORS(cfg.CORS),
		Metrics:     metrics.Handler,
		Loaders:     dataloader.Middleware(repos.FieldValues),
		AuthLimit:   limiter.Limit(cfg.RateLimit.AuthPerMinute),
		MetricsPage: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
