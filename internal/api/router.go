package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"threatlens/internal/api/handlers"
	apimiddleware "threatlens/internal/api/middleware"
	"threatlens/internal/config"
	"threatlens/internal/infrastructure/cache"
	"threatlens/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)
	})

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		// Full pipeline analysis
		api.Post("/analyze", r.handlers.Analysis.Analyze)

		// Individual pipeline stages
		api.Post("/extract/indicators", r.handlers.Analysis.ExtractIndicators)
		api.Post("/techniques/map", r.handlers.Analysis.MapTechniques)
		api.Post("/attribute", r.handlers.Analysis.Attribute)

		// ATT&CK technique catalog
		api.Route("/techniques", func(techniques chi.Router) {
			techniques.Get("/", r.handlers.Techniques.List)
			techniques.Get("/{id}", r.handlers.Techniques.Get)
		})

		// Threat actor catalog
		api.Route("/actors", func(actors chi.Router) {
			actors.Get("/", r.handlers.Actors.List)
			actors.Get("/{name}", r.handlers.Actors.Get)
		})

		// Full-text catalog search
		api.Get("/catalog/search", r.handlers.Search.Search)
	})

	return router
}
