package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/bobbot/osrs-api/internal/gateway"
	"github.com/bobbot/osrs-api/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options configures the HTTP server
type Options struct {
	CORSOrigins []string
	Logger      *zap.Logger
}

// Server holds the HTTP server dependencies
type Server struct {
	svc    *gateway.Service
	router chi.Router
	logger *zap.Logger
	now    func() time.Time
}

// New creates a new API server
func New(svc *gateway.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	s := &Server{
		svc:    svc,
		router: chi.NewRouter(),
		logger: opts.Logger,
		now:    time.Now,
	}

	s.setupMiddleware(opts.CORSOrigins)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(requestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(metrics.Middleware)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Hiscores
		r.Get("/player/{username}", s.handleGetPlayer)

		// Items & prices
		r.Get("/item/{query}", s.handleGetItem)
		r.Get("/items/search/{query}", s.handleSearchItems)

		// Wiki
		r.Get("/wiki/guide/{title}", s.handleGetWikiGuide)
		r.Get("/wiki/search/{query}", s.handleSearchWiki)
		r.Get("/wiki/{title}", s.handleGetWiki)

		// Quests
		r.Get("/quests/{name}", s.handleGetQuest)

		// Slayer
		r.Get("/slayer", s.handleListSlayerMasters)
		r.Get("/slayer/{master}", s.handleGetSlayerTasks)
	})

	// Health check
	s.router.Get("/health", s.handleHealth)

	s.router.Method(http.MethodGet, "/metrics", metrics.Handler())
}

// handleHealth reports liveness with an ISO-8601 UTC timestamp
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps gateway errors onto the two response tiers:
// NotFoundError becomes 404 with its message, anything else 500.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *gateway.NotFoundError
	if errors.As(err, &notFound) {
		respondError(w, http.StatusNotFound, notFound.Message)
		return
	}

	s.logger.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.Error(err),
	)
	respondError(w, http.StatusInternalServerError, err.Error())
}

// pathParam returns a decoded URL parameter. chi hands back the raw path
// segment when the request path carried escapes Go would not produce itself.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
