package api

import (
	"net/http"

	"github.com/bobbot/osrs-api/internal/gateway"
)

// handleListSlayerMasters returns the supported master names
func (s *Server) handleListSlayerMasters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gateway.SlayerMasters)
}

// handleGetSlayerTasks returns a master's task table
func (s *Server) handleGetSlayerTasks(w http.ResponseWriter, r *http.Request) {
	master := pathParam(r, "master")

	tasks, err := s.svc.SlayerTasks(master)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}
