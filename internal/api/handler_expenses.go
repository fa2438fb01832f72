package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dutchpay/internal/models"
	"dutchpay/internal/storage"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if err := decodeJSON(r, &expense); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if expense.Payer == "" {
		writeDetail(w, http.StatusBadRequest, "payer is required")
		return
	}

	if err := s.expenses.Create(r.Context(), &expense); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &expense)
}

// handleExpensesByID serves GET /expenses/{id}, which the API has always
// overloaded: the segment may be a group ID (returning that group's expense
// list) or an expense ID (returning the single expense). Groups are tried
// first; the two ID spaces are disjoint UUIDs so a record never shadows the
// other kind.
func (s *Server) handleExpensesByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	expenses, err := s.expenses.ListByGroup(r.Context(), id)
	if err == nil {
		writeJSON(w, http.StatusOK, emptyAsList(expenses))
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		writeError(w, err)
		return
	}

	expense, err := s.expenses.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (s *Server) handleGroupExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.ListByGroup(r.Context(), chi.URLParam(r, "groupId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(expenses))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}

// emptyAsList keeps empty results serializing as [] rather than null.
func emptyAsList(expenses []*models.Expense) []*models.Expense {
	if expenses == nil {
		return []*models.Expense{}
	}
	return expenses
}
