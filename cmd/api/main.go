// @title Pet Explorer API
// @version 1.0
// @description Catálogo de mascotas adoptables y registro de adopciones por sesión.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-explorer/internal/adapters/assetstore"
	"pet-explorer/internal/adapters/auth/jwtauth"
	"pet-explorer/internal/adapters/auth/odin"
	mem "pet-explorer/internal/adapters/storage/memory"
	pg "pet-explorer/internal/adapters/storage/postgres"
	"pet-explorer/internal/adapters/storage/sqlite"
	"pet-explorer/internal/config"
	"pet-explorer/internal/domain/adoptions"
	"pet-explorer/internal/middleware"
	"pet-explorer/internal/platform/logger"
	"pet-explorer/internal/platform/metrics"
	"pet-explorer/internal/ports/assets"
	"pet-explorer/internal/ports/auth"
	"pet-explorer/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	verifier, err := newVerifier(cfg, log)
	if err != nil {
		return err
	}

	res, err := newAssets(ctx, cfg)
	if err != nil {
		return err
	}

	opts := router.Options{
		AuthVerifier: verifier,
		Adoptions:    repo,
		Assets:       res,
		Logger:       log,
		Metrics:      metrics.New(),
	}
	if cfg.RateLimitEnabled() {
		opts.RateLimit = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "store": cfg.StoreDriver})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}

func openStore(cfg config.Config, log logger.Logger) (adoptions.Repository, func(), error) {
	var (
		db   *sql.DB
		err  error
		repo adoptions.Repository
	)

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		repo = pg.NewAdoptionsRepo(db)
	case config.StoreSQLite:
		db, err = sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		repo = sqlite.NewAdoptionsRepo(db)
	default:
		log.Warn("using in-memory adoptions store", nil)
		return mem.NewAdoptionRepo(), func() {}, nil
	}

	return repo, func() { _ = db.Close() }, nil
}

// newVerifier: JWT local > Odin > modo dev (X-Debug-User-ID).
func newVerifier(cfg config.Config, log logger.Logger) (auth.AuthVerifier, error) {
	switch {
	case cfg.AuthJWTSecret != "":
		return jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
	case cfg.OdinBaseURL != "":
		c, err := odin.NewClient(odin.Config{BaseURL: cfg.OdinBaseURL, APIKey: cfg.OdinAPIKey})
		if err != nil {
			return nil, err
		}
		return odin.NewVerifier(c), nil
	default:
		log.Warn("no auth verifier configured, dev mode (X-Debug-User-ID)", nil)
		return nil, nil
	}
}

func newAssets(ctx context.Context, cfg config.Config) (assets.Resolver, error) {
	if cfg.AssetS3Bucket == "" {
		return assetstore.NewStatic(cfg.AssetBaseURL)
	}
	return assetstore.NewS3(ctx, assetstore.S3Config{
		Bucket:    cfg.AssetS3Bucket,
		Region:    cfg.AssetS3Region,
		Endpoint:  cfg.AssetS3Endpoint,
		Prefix:    cfg.AssetS3Prefix,
		PathStyle: cfg.AssetS3PathStyle,
		Expiry:    cfg.AssetS3Expiry,
	})
}
