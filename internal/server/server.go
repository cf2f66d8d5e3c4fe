// Package server exposes the calculation engine and project store over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/stevenkilzer/calc/internal/metrics"
	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/constants"
	"github.com/stevenkilzer/calc/pkg/finance"
)

type handler struct {
	logger        *zap.Logger
	repo          store.ProjectRepository
	engine        *finance.Engine
	horizonMonths int
	maxBodySize   int64
	version       string
}

// Options configures the HTTP handler.
type Options struct {
	HorizonMonths int
	MaxBodySize   int64
	Version       string
}

// NewHandler constructs the HTTP handler serving the calculation API and
// project CRUD.
func NewHandler(logger *zap.Logger, repo store.ProjectRepository, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if repo == nil {
		repo = store.NewMemoryStore()
	}
	if opts.HorizonMonths <= 0 {
		opts.HorizonMonths = constants.DefaultHorizonMonths
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}
	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:        logger,
		repo:          repo,
		engine:        finance.NewEngine(logger),
		horizonMonths: opts.HorizonMonths,
		maxBodySize:   opts.MaxBodySize,
		version:       version,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(h.instrument)

	r.Get("/api/version", h.handleVersion)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/calculate", h.handleCalculate)

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", h.handleListProjects)
		r.Post("/", h.handleCreateProject)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetProject)
			r.Put("/", h.handleUpdateProject)
			r.Delete("/", h.handleDeleteProject)
			r.Post("/calculate", h.handleCalculateProject)
		})
	})

	return r
}

// instrument records request latency per chi route pattern.
func (h *handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}
