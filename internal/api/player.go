package api

import "net/http"

// handleGetPlayer returns a player's hiscores
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	username := pathParam(r, "username")

	stats, err := s.svc.Player(r.Context(), username)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
