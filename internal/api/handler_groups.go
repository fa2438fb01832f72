package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dutchpay/internal/models"
)

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var group models.Group
	if err := decodeJSON(r, &group); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if group.Name == "" {
		writeDetail(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := s.groups.Create(r.Context(), &group); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &group)
}

func (s *Server) handleSimplifyDebts(w http.ResponseWriter, r *http.Request) {
	if err := s.debts.SimplifyGroupDebts(r.Context(), chi.URLParam(r, "groupId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Debts simplified successfully"})
}
