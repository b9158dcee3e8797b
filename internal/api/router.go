package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/landlord/internal/api/handlers"
	mw "github.com/Harshitk-cp/landlord/internal/api/middleware"
	"github.com/Harshitk-cp/landlord/internal/auth"
	"github.com/Harshitk-cp/landlord/internal/buildconfig"
	"github.com/Harshitk-cp/landlord/internal/config"
	"github.com/Harshitk-cp/landlord/internal/domain"
	"github.com/Harshitk-cp/landlord/internal/service"
	"github.com/Harshitk-cp/landlord/internal/store"
)

// NewRouter wires stores, services and handlers into the HTTP router.
// db is the master database that holds the organization registry; each
// organization's partition collection lives in the same database.
func NewRouter(db *mongo.Database, logger *zap.Logger) *chi.Mux {
	// Stores
	registry := store.NewRegistryStore(db)
	partitions := store.NewPartitionStore(db)

	// Auth primitives
	hasher := auth.NewPasswordHasher(config.BcryptCost())
	tokens := auth.NewTokenService(config.JWTSecret(), config.TokenTTL())

	// Services
	orgSvc := service.NewOrgService(registry, partitions, hasher, logger)
	sessionSvc := service.NewSessionService(registry, hasher, tokens, logger)

	// Handlers
	orgHandler := handlers.NewOrgHandler(orgSvc)
	sessionHandler := handlers.NewSessionHandler(sessionSvc)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(mw.RequestID)         // Generate/extract request ID first
	r.Use(middleware.RealIP)    // Extract real IP
	r.Use(mw.Metrics)           // Record request metrics
	r.Use(mw.Logging(logger))   // Log all requests
	r.Use(middleware.Recoverer) // Recover from panics

	// Allow-all CORS for browser clients. Mounted ahead of the rate limiter
	// so throttled responses still carry CORS headers.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst())) // Rate limiting

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Prometheus metrics (no auth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Login (no auth, credentials in body)
		r.Post("/auth/login", sessionHandler.Login)

		r.Route("/orgs", func(r chi.Router) {
			// Organization signup (no auth, bootstrap endpoint)
			r.Post("/", orgHandler.Create)

			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", orgHandler.Get)

				// Mutations require a bearer token for the target org
				r.Group(func(r chi.Router) {
					r.Use(mw.BearerAuth(tokens))
					r.Put("/", orgHandler.Update)
					r.Delete("/", orgHandler.Delete)
				})
			})
		})
	})

	return r
}

func healthHandler(db *mongo.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Client().Ping(r.Context(), readpref.Primary()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": buildconfig.Version(),
			"commit":  buildconfig.Commit(),
		})
	}
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.Registry         = (*store.RegistryStore)(nil)
	_ domain.PartitionManager = (*store.PartitionStore)(nil)
)
