package http

import (
	"net/http"

	"moneyflow/internal/core"
)

// budgetRequest is the body of POST and PUT /budgets. PUT takes its key
// from the path and reads only monthlyBudget.
type budgetRequest struct {
	CategoryID    int64    `json:"categoryId"`
	MonthlyBudget *float64 `json:"monthlyBudget"`
}

func (b budgetRequest) amount() (float64, error) {
	if b.MonthlyBudget == nil {
		return 0, core.Invalid("monthlyBudget", "is required")
	}
	return *b.MonthlyBudget, nil
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.svc.Budgets.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, budgets)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	amount, err := req.amount()
	if err != nil {
		writeError(w, r, err)
		return
	}
	created, err := s.svc.Budgets.Create(r.Context(), core.Budget{CategoryID: req.CategoryID, MonthlyBudget: amount})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req budgetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	amount, err := req.amount()
	if err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := s.svc.Budgets.Update(r.Context(), categoryID, amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.svc.Budgets.Delete(r.Context(), categoryID); err != nil {
		writeError(w, r, err)
		return
	}
	writeDeleted(w, r, core.KindBudget)
}
