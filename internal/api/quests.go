package api

import "net/http"

// handleGetQuest returns a quest by name
func (s *Server) handleGetQuest(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "name")

	quest, err := s.svc.Quest(r.Context(), name)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, quest)
}
