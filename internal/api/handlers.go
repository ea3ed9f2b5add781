package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yegors/seat-side/internal/advisor"
	"github.com/yegors/seat-side/internal/airports"
	"github.com/yegors/seat-side/internal/config"
	"github.com/yegors/seat-side/internal/seating"
	"github.com/yegors/seat-side/internal/storage/sqlite"
	"github.com/yegors/seat-side/internal/websocket"
	"github.com/yegors/seat-side/pkg/logger"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 64 << 10

// Handler contains the API handlers
type Handler struct {
	advisor  *advisor.Service
	history  *sqlite.HistoryStorage
	config   *config.Config
	logger   *logger.Logger
	wsServer *websocket.Server
}

// NewHandler creates a new API handler
func NewHandler(service *advisor.Service, history *sqlite.HistoryStorage, cfg *config.Config, log *logger.Logger, wsServer *websocket.Server) *Handler {
	return &Handler{
		advisor:  service,
		history:  history,
		config:   cfg,
		logger:   log.Named("api-handler"),
		wsServer: wsServer,
	}
}

// GetHealth reports catalog and subsystem status
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	catalog := h.advisor.Lookup().Catalog()

	status := "ok"
	if !catalog.Loaded() {
		status = "degraded"
	}

	response := map[string]any{
		"status":          status,
		"catalog_loaded":  catalog.Loaded(),
		"airport_count":   catalog.Len(),
		"history_enabled": h.history != nil,
		"rules":           seating.RuleNames(),
	}
	if h.wsServer != nil {
		response["websocket_clients"] = h.wsServer.ClientCount()
	}

	WriteJSON(w, http.StatusOK, response)
}

// SearchAirports returns airports matching q by code, name or city. An empty q lists all airports.
func (h *Handler) SearchAirports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	list, err := h.advisor.Lookup().Search(query)
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"airports": list,
		"count":    len(list),
	})
}

// GetMajorAirports returns the airports of the major-city list
func (h *Handler) GetMajorAirports(w http.ResponseWriter, r *http.Request) {
	list, err := h.advisor.Lookup().Major()
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"airports": list,
		"count":    len(list),
	})
}

// ResolveAirport resolves free text in the city parameter to one airport
func (h *Handler) ResolveAirport(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if strings.TrimSpace(city) == "" {
		http.Error(w, "city parameter is required", http.StatusBadRequest)
		return
	}

	a, err := h.advisor.Resolve(city)
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, a)
}

// GetAirportByCode returns one airport by IATA code
func (h *Handler) GetAirportByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	a, err := h.advisor.Lookup().FindByCode(code)
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, a)
}

// GetAirportsByCountry returns all airports in a country
func (h *Handler) GetAirportsByCountry(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")

	list, err := h.advisor.Lookup().ByCountry(country)
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"country":  country,
		"airports": list,
		"count":    len(list),
	})
}

// CreateRecommendation answers a recommendation query
func (h *Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req advisor.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.advisor.Advise(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// GetPath returns the route polyline between two airports
func (h *Handler) GetPath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	points := 0
	if v := q.Get("points"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 || n > 1000 {
			http.Error(w, "points must be an integer between 2 and 1000", http.StatusBadRequest)
			return
		}
		points = n
	}

	src, err := h.advisor.Resolve(q.Get("from"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	dst, err := h.advisor.Resolve(q.Get("to"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	path := h.advisor.Path(src, dst, points)

	WriteJSON(w, http.StatusOK, map[string]any{
		"source":      src,
		"destination": dst,
		"path":        path,
		"count":       len(path),
	})
}

// GetHistory returns the most recent recommendation queries
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		http.Error(w, "query history is disabled", http.StatusServiceUnavailable)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read query history", logger.Error(err))
		http.Error(w, "failed to read query history", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"history": records,
		"count":   len(records),
	})
}

// writeError maps domain errors to HTTP status codes
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, seating.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, airports.ErrAirportNotFound):
		status = http.StatusNotFound
	case errors.Is(err, airports.ErrCatalogNotLoaded):
		status = http.StatusServiceUnavailable
	default:
		h.logger.Error("Request failed", logger.Error(err))
	}

	WriteJSON(w, status, map[string]string{"error": err.Error()})
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
