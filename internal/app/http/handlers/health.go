package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Quotes int    `json:"quotes"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Quotes: len(h.Book.List())})
}
