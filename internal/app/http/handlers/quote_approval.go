package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type approvalRequest struct {
	Approver string `json:"approver"`
	Note     string `json:"note"`
}

type approvalDecision struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note"`
}

func (h *Handlers) RequestApproval(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q, err := h.Book.RequestApproval(r.Context(), chi.URLParam(r, "id"), req.Approver, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) DecideApproval(w http.ResponseWriter, r *http.Request) {
	var req approvalDecision
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q, err := h.Book.DecideApproval(r.Context(), chi.URLParam(r, "id"), req.Approved, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}
