package api

import "net/http"

// handleGetWiki returns a page summary
func (s *Server) handleGetWiki(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Wiki(r.Context(), pathParam(r, "title"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// handleGetWikiGuide returns a quest's quick guide, or the page itself
func (s *Server) handleGetWikiGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := s.svc.WikiGuide(r.Context(), pathParam(r, "title"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, guide)
}

// handleSearchWiki returns the summary of the best search hit
func (s *Server) handleSearchWiki(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.SearchWiki(r.Context(), pathParam(r, "query"))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
