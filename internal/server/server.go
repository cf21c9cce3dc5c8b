// Package server exposes a Planner over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	routemapper "github.com/hashicorp/go-routemapper"
)

// Handler serves route queries against a single Planner.
type Handler struct {
	planner *routemapper.Planner
	logger  hclog.Logger
}

func NewHandler(planner *routemapper.Planner, logger hclog.Logger) *Handler {
	if logger == nil {
		logger = hclog.L()
	}

	return &Handler{
		planner: planner,
		logger:  logger,
	}
}

// RegisterRoutes adds the handler's endpoints to router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/locations", h.Locations).Methods(http.MethodGet)
	router.HandleFunc("/api/route", h.Route).Methods(http.MethodGet)
	router.HandleFunc("/map", h.Map).Methods(http.MethodGet)
}

// Router returns a new router with the handler's endpoints registered.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// Locations lists every known location.
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"locations": h.planner.Locations(),
	})
}

// Route returns the shortest path between the from and to query
// parameters as JSON.
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	path, status, err := h.query(r)
	if err != nil {
		h.writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, path)
}

// Map renders the shortest path between the from and to query parameters
// as an HTML map.
func (h *Handler) Map(w http.ResponseWriter, r *http.Request) {
	path, status, err := h.query(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	var buf bytes.Buffer
	if err := routemapper.RenderMap(&buf, path); err != nil {
		h.logger.Error("rendering map", "error", err)
		http.Error(w, "rendering map failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// query runs the request's query. It returns the status code to use when
// err is non-nil.
func (h *Handler) query(r *http.Request) (*routemapper.Path, int, error) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")

	path, err := h.planner.ShortestPath(from, to)
	if err != nil {
		var verr *routemapper.ValidationError
		if errors.As(err, &verr) {
			return nil, http.StatusBadRequest, err
		}

		h.logger.Error("route query failed", "from", from, "to", to, "error", err)
		return nil, http.StatusInternalServerError, err
	}

	if !path.Found() {
		return nil, http.StatusNotFound, routemapper.ErrNoPath
	}

	h.logger.Info("route served", "from", from, "to", to, "route", path.String())
	return path, http.StatusOK, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("writing response", "error", err)
	}
}
