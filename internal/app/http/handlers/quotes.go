package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quote-crm/backend/internal/domain/quote"
)

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Book.List())
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.Book.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// SaveQuote creates a quote when the body has no id and replaces the stored
// one otherwise.
func (h *Handlers) SaveQuote(w http.ResponseWriter, r *http.Request) {
	var q quote.Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.save(w, r, q)
}

func (h *Handlers) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	var q quote.Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q.ID = chi.URLParam(r, "id")
	h.save(w, r, q)
}

func (h *Handlers) save(w http.ResponseWriter, r *http.Request, q quote.Quote) {
	status := http.StatusOK
	if q.ID == "" {
		status = http.StatusCreated
	}
	saved, err := h.Book.Save(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, status, saved)
}
