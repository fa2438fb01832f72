package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dutchpay/internal/models"
)

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.debts.Balances(r.Context(), chi.URLParam(r, "kakaoId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

func (s *Server) handleGroupSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.debts.GroupSummaries(r.Context(), chi.URLParam(r, "kakaoId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleDebtsWith(w http.ResponseWriter, r *http.Request) {
	debts, err := s.debts.DebtsWith(r.Context(),
		chi.URLParam(r, "kakaoId"), chi.URLParam(r, "personKakaoId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if debts == nil {
		debts = []*models.Debt{}
	}
	writeJSON(w, http.StatusOK, debts)
}

func (s *Server) handleCreateDebt(w http.ResponseWriter, r *http.Request) {
	var debt models.Debt
	if err := decodeJSON(r, &debt); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if debt.FromUser == "" || debt.ToUser == "" {
		writeDetail(w, http.StatusBadRequest, "from_user and to_user are required")
		return
	}
	if debt.Amount <= 0 {
		writeDetail(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	if err := s.debts.Create(r.Context(), &debt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &debt)
}

func (s *Server) handleSettle(w http.ResponseWriter, r *http.Request) {
	kakaoID := chi.URLParam(r, "kakaoId")
	personKakaoID := chi.URLParam(r, "personKakaoId")

	deleted, err := s.debts.SettleBetween(r.Context(), kakaoID, personKakaoID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": deleted,
		"message": fmt.Sprintf("Deleted %d debts between %s and %s", deleted, kakaoID, personKakaoID),
	})
}
