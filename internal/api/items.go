package api

import (
	"net/http"
	"strconv"

	"github.com/bobbot/osrs-api/internal/lookup"
)

// handleGetItem returns the best-matching item with its latest prices
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	query := pathParam(r, "query")

	quote, err := s.svc.Item(r.Context(), query)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// handleSearchItems returns items whose name contains the query
func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	query := pathParam(r, "query")

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = lookup.DefaultSearchLimit
	}

	items, err := s.svc.SearchItems(r.Context(), query, limit)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}
