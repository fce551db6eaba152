// Package server exposes the layout engine over HTTP for development
// and shared deployments: the rendered stylesheet, the rule dump,
// intent resolution, and preset management.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/colgrid/colgrid/pkg/cache"
	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/layout"
	"github.com/colgrid/colgrid/pkg/preset"
)

// artifactTTL bounds cache storage for rendered artifacts. Rendering is
// deterministic, so expiry is a storage concern, not a staleness one.
const artifactTTL = 24 * time.Hour

// Config wires the server's collaborators. Zero-value fields get
// working defaults, so tests can construct a Server from a registry
// alone.
type Config struct {
	Registry *grid.Registry
	Cache    cache.Cache
	Keyer    cache.Keyer
	Presets  preset.Store
	Logger   *log.Logger
}

// Server serves the layout engine over HTTP.
type Server struct {
	reg      *grid.Registry
	resolver *layout.Resolver
	cache    cache.Cache
	keyer    cache.Keyer
	presets  preset.Store
	logger   *log.Logger
	cfgHash  string
}

// New creates a server from the given configuration.
func New(cfg Config) *Server {
	if cfg.Cache == nil {
		cfg.Cache = cache.NewNullCache()
	}
	if cfg.Keyer == nil {
		cfg.Keyer = cache.NewDefaultKeyer()
	}
	if cfg.Presets == nil {
		cfg.Presets = preset.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return &Server{
		reg:      cfg.Registry,
		resolver: layout.NewResolver(cfg.Registry, layout.WithLogger(cfg.Logger)),
		cache:    cfg.Cache,
		keyer:    cfg.Keyer,
		presets:  cfg.Presets,
		logger:   cfg.Logger,
		cfgHash:  configHash(cfg.Registry.Config()),
	}
}

// configHash derives the cache key component that ties every artifact
// to the exact grid configuration it was rendered from.
func configHash(cfg grid.Config) string {
	data, _ := json.Marshal(cfg)
	return cache.Hash(data)
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/grid.css", s.handleStylesheet)
	r.Get("/rules.json", s.handleRules)
	r.Post("/resolve", s.handleResolve)

	r.Route("/presets", func(r chi.Router) {
		r.Get("/", s.handleListPresets)
		r.Post("/", s.handleCreatePreset)
		r.Get("/{id}", s.handleGetPreset)
		r.Delete("/{id}", s.handleDeletePreset)
	})

	return r
}

// requestLogger logs one line per request at debug level, errors at
// warn.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		lvl := log.DebugLevel
		if ww.Status() >= http.StatusInternalServerError {
			lvl = log.WarnLevel
		}
		s.logger.Log(lvl, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
