package api

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yegors/seat-side/internal/advisor"
	"github.com/yegors/seat-side/internal/config"
	"github.com/yegors/seat-side/internal/storage/sqlite"
	"github.com/yegors/seat-side/internal/websocket"
	"github.com/yegors/seat-side/pkg/logger"
)

// Router wires the HTTP routes
type Router struct {
	handler  *Handler
	config   *config.Config
	logger   *logger.Logger
	wsServer *websocket.Server
}

// NewRouter creates the router. history may be nil when query history is disabled.
func NewRouter(service *advisor.Service, history *sqlite.HistoryStorage, cfg *config.Config, log *logger.Logger, wsServer *websocket.Server) *Router {
	return &Router{
		handler:  NewHandler(service, history, cfg, log, wsServer),
		config:   cfg,
		logger:   log.Named("router"),
		wsServer: wsServer,
	}
}

// Routes returns the root handler
func (rt *Router) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(rt.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(rt.cors)

	h := rt.handler

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.GetHealth)

		r.Route("/airports", func(r chi.Router) {
			r.Get("/", h.SearchAirports)
			r.Get("/major", h.GetMajorAirports)
			r.Get("/resolve", h.ResolveAirport)
			r.Get("/code/{code}", h.GetAirportByCode)
			r.Get("/country/{country}", h.GetAirportsByCountry)
		})

		r.Post("/recommendations", h.CreateRecommendation)
		r.Get("/recommendations/history", h.GetHistory)
		r.Get("/path", h.GetPath)
	})

	if rt.wsServer != nil {
		r.Get("/ws", rt.wsServer.HandleConnection)
	}

	if dir := rt.config.Server.StaticFilesDir; dir != "" {
		r.Handle("/*", NewStaticFileHandler(dir, rt.logger))
	}

	return r
}

// requestLogger logs each request once it completes
func (rt *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		rt.logger.Debug("HTTP request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", ww.Status()),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// cors applies the configured allowed origins
func (rt *Router) cors(next http.Handler) http.Handler {
	allowed := rt.config.Server.CORSAllowedOrigins
	allowAll := slices.Contains(allowed, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAll || slices.ContainsFunc(allowed, func(o string) bool {
			return strings.EqualFold(o, origin)
		})) {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
