package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vam-insurance/insurance-api/internal/auth"
	"github.com/vam-insurance/insurance-api/internal/config"
	"github.com/vam-insurance/insurance-api/internal/cors"
	"github.com/vam-insurance/insurance-api/internal/disaster"
	"github.com/vam-insurance/insurance-api/internal/document"
	"github.com/vam-insurance/insurance-api/internal/geoanalyst"
	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/insurance"
	"github.com/vam-insurance/insurance-api/internal/logging"
	"github.com/vam-insurance/insurance-api/internal/observability"
	"github.com/vam-insurance/insurance-api/internal/weather"
)

// Handlers groups the per-domain handlers the router dispatches to.
type Handlers struct {
	Auth       *auth.Handler
	Disaster   *disaster.Handler
	Document   *document.Handler
	Insurance  *insurance.Handler
	Weather    *weather.Handler
	GeoAnalyst *geoanalyst.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, policy *cors.Policy, h Handlers, logger *logging.Logger, metrics *observability.Metrics) *chi.Mux {
	r := chi.NewRouter()

	// CORS must be outermost: every response, including 404s, 500s, and
	// preflights, carries the policy headers.
	r.Use(policy.Middleware)
	r.Use(Recoverer(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger, metrics))

	health := healthHandler(cfg)
	r.Get("/", health)
	r.Get("/health", health)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Get("/me", h.Auth.Me)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.Document.List)
		r.Post("/upload", h.Document.Upload)
		r.Get("/{id}", h.Document.Get)
	})

	r.Route("/disaster-locations", func(r chi.Router) {
		r.Get("/", h.Disaster.List)
		r.Post("/", h.Disaster.Create)
		r.Get("/{id}", h.Disaster.Get)
	})

	r.Route("/insurance", func(r chi.Router) {
		r.Get("/packages", h.Insurance.ListPackages)
		r.Post("/applications", h.Insurance.CreateApplication)
	})

	r.Get("/weather/{lat}/{lon}", h.Weather.Get)

	r.Post("/geo-analyst/analyze", h.GeoAnalyst.Analyze)

	notFound := func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondError(w, "Route not found", http.StatusNotFound)
	}
	r.NotFound(notFound)
	// A known path with the wrong method is still an unroutable request
	// to callers of this API.
	r.MethodNotAllowed(notFound)

	return r
}

// healthHandler reports service status plus which external collaborators are
// configured, so deploys can be sanity-checked from the edge.
func healthHandler(cfg *config.Config) http.HandlerFunc {
	type features struct {
		Database bool `json:"database"`
		Storage  bool `json:"storage"`
		Cache    bool `json:"cache"`
		AI       bool `json:"ai"`
		Weather  bool `json:"weather"`
	}

	type healthResponse struct {
		Status      string    `json:"status"`
		Service     string    `json:"service"`
		Version     string    `json:"version"`
		Timestamp   time.Time `json:"timestamp"`
		Environment string    `json:"environment"`
		Features    features  `json:"features"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondJSON(w, healthResponse{
			Status:      "healthy",
			Service:     "VAM Insurance API",
			Version:     "2.0.0",
			Timestamp:   time.Now().UTC(),
			Environment: cfg.Server.Environment,
			Features: features{
				Database: cfg.Database.Host != "",
				Storage:  cfg.Storage.DocumentsBucket != "" && cfg.Storage.ImagesBucket != "",
				Cache:    cfg.Redis.Host != "",
				AI:       cfg.Analyst.GeminiAPIKey != "",
				Weather:  cfg.Weather.APIKey != "",
			},
		}, http.StatusOK)
	}
}
