// Package api serves destination rankings over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"

	"wayfare/internal/logging"
	"wayfare/internal/metrics"
	"wayfare/internal/model"
	"wayfare/internal/query"
	"wayfare/internal/search"
)

// Pinger reports storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	svc     *search.Service
	health  Pinger
	limiter *rate.Limiter
}

// NewServer wires svc behind a limiter allowing rps requests per second.
// health may be nil, in which case /health always reports ok.
func NewServer(svc *search.Service, health Pinger, rps float64, burst int) *Server {
	return &Server{svc: svc, health: health, limiter: newLimiter(rps, burst)}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /destinations", s.handleDestinations)
	mux.HandleFunc("GET /profiles", s.handleProfiles)
	mux.Handle("GET /metrics", metrics.Handler())
	return requestID(observe(limit(s.limiter, mux)))
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type DestinationsResponse struct {
	Profile    model.Profile  `json:"profile"`
	Count      int            `json:"count"`
	MeanCost   float64        `json:"mean_cost"`
	MeanRating float64        `json:"mean_rating"`
	Items      []model.Scored `json:"items"`
}

func (s *Server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := query.ParseCriteria(q.Get("max_cost"), q.Get("visa_free"), q.Get("min_rating"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	res, err := s.svc.Find(r.Context(), c, q.Get("profile"))
	if err != nil {
		logging.Error("destinations_error", map[string]any{
			"request_id": RequestIDFrom(r.Context()),
			"error":      err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "error executing query"})
		return
	}

	items := res.Items
	if items == nil {
		items = []model.Scored{}
	}
	writeJSON(w, http.StatusOK, DestinationsResponse{
		Profile:    res.Profile,
		Count:      res.Summary.Count,
		MeanCost:   res.Summary.MeanCost,
		MeanRating: res.Summary.MeanRating,
		Items:      items,
	})
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	ps := s.svc.Profiles()
	def := ps.Preferred()
	writeJSON(w, http.StatusOK, map[string]any{
		"default":  def.Name,
		"profiles": ps.All(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
