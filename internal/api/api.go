// Package api exposes the generation engine, image history, and the
// key/value store over HTTP.
//
// # Architecture
//
// A Server owns the collaborators (pipeline runner, storage backend,
// history repository, key/value store) and mounts handlers on a chi
// router. All /api routes except image serving require an authenticated
// user; see auth.go for the accepted credentials.
//
// # Usage
//
//	srv := api.NewServer(cfg, runner, backend, repo, store, logger)
//	http.ListenAndServe(addr, srv.Router())
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/truemindlabs-dev/synora/internal/config"
	"github.com/truemindlabs-dev/synora/pkg/buildinfo"
	"github.com/truemindlabs-dev/synora/pkg/db"
	"github.com/truemindlabs-dev/synora/pkg/memstore"
	"github.com/truemindlabs-dev/synora/pkg/pipeline"
	"github.com/truemindlabs-dev/synora/pkg/storage"
)

// Server holds the collaborators behind the HTTP surface.
type Server struct {
	cfg     config.Config
	runner  *pipeline.Runner
	backend storage.Backend
	repo    *db.Repository
	store   memstore.Store
	logger  *log.Logger
}

// NewServer wires the collaborators together.
func NewServer(cfg config.Config, runner *pipeline.Runner, backend storage.Backend,
	repo *db.Repository, store memstore.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:     cfg,
		runner:  runner,
		backend: backend,
		repo:    repo,
		store:   store,
		logger:  logger,
	}
}

// Router builds the full route tree with middleware applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-User-Id", "X-User-Email"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		// Image serving stays public so stored URLs work in <img> tags.
		r.Get("/image/{key}", s.handleServeImage)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Post("/generate-image", s.handleGenerate)
			r.Post("/analyze-prompt", s.handleAnalyze)

			r.Get("/user/history", s.handleHistory)
			r.Get("/user/gallery", s.handleGallery)
			r.Get("/user/me", s.handleMe)
			r.Get("/user/stats", s.handleStats)

			r.Post("/store", s.handleStorePut)
			r.Get("/retrieve/{key}", s.handleStoreGet)
			r.Get("/store/list", s.handleStoreList)
			r.Delete("/store/{key}", s.handleStoreDelete)
		})
	})

	return r
}

// logRequests emits one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"service": "synora",
		"version": buildinfo.Version,
		"status":  "running",
		"endpoints": map[string]string{
			"generate": "POST /api/generate-image",
			"analyze":  "POST /api/analyze-prompt",
			"image":    "GET /api/image/{key}",
			"history":  "GET /api/user/history",
			"gallery":  "GET /api/user/gallery",
			"me":       "GET /api/user/me",
			"stats":    "GET /api/user/stats",
			"store":    "POST /api/store",
			"retrieve": "GET /api/retrieve/{key}",
			"list":     "GET /api/store/list",
			"health":   "GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "synora",
	})
}
