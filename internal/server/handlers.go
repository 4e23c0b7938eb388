package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wearwise/wearwise/internal/engine"
	"github.com/wearwise/wearwise/internal/search"
	"github.com/wearwise/wearwise/internal/store"
)

// scoreRequest is the body of POST /score and POST /recommend.
type scoreRequest struct {
	Composition engine.Composition `json:"composition"`
	Category    string             `json:"category"`
	MassKg      float64            `json:"mass_kg"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []search.Result `json:"results"`
}

type recommendResponse struct {
	Category        string                  `json:"category"`
	Composition     engine.Composition      `json:"composition"`
	LifespanMonths  float64                 `json:"lifespan_months"`
	Recommendations []engine.Recommendation `json:"recommendations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	results, err := s.service.Search(r.Context(), query)
	if err != nil {
		zap.L().Error("search failed", zap.String("query", query), zap.Error(err))
		respondError(w, http.StatusBadGateway, "catalog search failed")
		return
	}

	respondJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreRequest(w, r)
	if !ok {
		return
	}

	result := s.service.Score(r.Context(), req.Composition, req.Category, req.MassKg)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeScoreRequest(w, r)
	if !ok {
		return
	}

	result := s.service.Score(r.Context(), req.Composition, req.Category, req.MassKg)
	respondJSON(w, http.StatusOK, recommendResponse{
		Category:        result.Category,
		Composition:     result.Composition,
		LifespanMonths:  result.LifespanMonths,
		Recommendations: result.Recommendations,
	})
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	table := s.engine.Table()
	materials := make(map[string]any, table.Len())
	for _, name := range table.Names() {
		coeff, _ := table.Coefficients(name)
		materials[name] = coeff
	}
	respondJSON(w, http.StatusOK, map[string]any{"materials": materials})
}

func (s *Server) handleListLookups(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "lookup history is disabled")
		return
	}

	filter := store.Filter{
		Query:    r.URL.Query().Get("query"),
		Category: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	lookups, err := s.store.ListLookups(r.Context(), filter)
	if err != nil {
		zap.L().Error("list lookups failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "could not list lookups")
		return
	}
	if lookups == nil {
		lookups = []store.Lookup{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"lookups": lookups, "count": len(lookups)})
}

func (s *Server) handleGetLookup(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "lookup history is disabled")
		return
	}

	id := chi.URLParam(r, "id")
	lookup, err := s.store.GetLookup(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "lookup not found")
		return
	}
	respondJSON(w, http.StatusOK, lookup)
}

func decodeScoreRequest(w http.ResponseWriter, r *http.Request) (scoreRequest, bool) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if len(req.Composition) == 0 {
		respondError(w, http.StatusBadRequest, "composition is required")
		return req, false
	}
	for name, fraction := range req.Composition {
		if fraction < 0 {
			respondError(w, http.StatusBadRequest, "negative fraction for material "+name)
			return req, false
		}
	}
	return req, true
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
