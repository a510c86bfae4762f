package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"quote-crm/backend/internal/domain/quote"
	"quote-crm/backend/internal/domain/quote/book"
	"quote-crm/backend/internal/domain/quote/pdf"
)

// maxUpload bounds import request bodies.
const maxUpload = 20 << 20

type Handlers struct {
	Book *book.Book
	PDF  pdf.Generator
	// MaxUpload caps the bytes read from an import request body.
	MaxUpload int64
}

func New(b *book.Book, gen pdf.Generator) *Handlers {
	return &Handlers{Book: b, PDF: gen, MaxUpload: maxUpload}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write json response")
	}
}

// writeError maps domain errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, book.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, quote.ErrApprovalNotRequested):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error().Err(err).Msg("request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
