package handlers

import (
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quote-crm/backend/internal/domain/quote/pdf"
)

func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	q, err := h.Book.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", contentDisposition(pdf.FileName(q)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// contentDisposition marks the response as a download. Non-ASCII names are
// sent in the RFC 2231 filename* form.
func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}
