package router

import (
	"net/http"
	"time"

	_ "pet-explorer/docs"
	"pet-explorer/internal/adapters/assetstore"
	mem "pet-explorer/internal/adapters/storage/memory"
	"pet-explorer/internal/domain/adoptions"
	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/domain/explorer"
	"pet-explorer/internal/middleware"
	"pet-explorer/internal/platform/clock"
	"pet-explorer/internal/platform/i18n"
	"pet-explorer/internal/platform/logger"
	"pet-explorer/internal/platform/metrics"
	"pet-explorer/internal/ports/assets"
	"pet-explorer/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, adopciones in-memory.
	Adoptions adoptions.Repository

	Catalog   *catalog.Catalog // nil => catálogo compilado con reloj del sistema
	Localizer *i18n.Localizer  // nil => i18n.New()
	Assets    assets.Resolver  // nil => estáticos bajo /assets
	Logger    logger.Logger    // nil => no loguea
	Metrics   *metrics.Metrics // nil => registry nuevo

	// RateLimit se aplica solo a POST /pets/{petID}/adopt.
	RateLimit *middleware.RateLimiter

	// Now se inyecta en tests para AdoptedAt.
	Now func() time.Time
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default(clock.System{})
	}
	if opts.Localizer == nil {
		loc, err := i18n.New()
		if err != nil {
			return nil, err
		}
		opts.Localizer = loc
	}
	if opts.Assets == nil {
		st, err := assetstore.NewStatic("")
		if err != nil {
			return nil, err
		}
		opts.Assets = st
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Adoptions == nil {
		opts.Adoptions = mem.NewAdoptionRepo()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(opts.Metrics.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier, opts.Logger))
	r.Use(middleware.RequestLog(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	adoptSvc := adoptions.NewService(opts.Catalog, opts.Adoptions, adoptions.Options{
		Logger:   opts.Logger,
		Recorder: opts.Metrics,
		Now:      opts.Now,
	})

	var adoptLimit func(http.Handler) http.Handler
	if opts.RateLimit != nil {
		adoptLimit = opts.RateLimit.Middleware
	}

	// Rutas por módulo
	catalog.RegisterRoutes(r, opts.Catalog, opts.Localizer, opts.Assets)
	adoptions.RegisterRoutes(r, adoptSvc, adoptLimit)
	explorer.RegisterRoutes(r, opts.Catalog, adoptSvc, opts.Localizer, opts.Assets)

	return r, nil
}
