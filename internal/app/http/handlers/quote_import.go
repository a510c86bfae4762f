package handlers

import (
	"errors"
	"mime"
	"net/http"

	"github.com/rs/zerolog/log"

	"quote-crm/backend/internal/domain/quote/importer"
	"quote-crm/backend/internal/infra/spreadsheet"
)

// ImportQuotes accepts either a multipart upload in field "file" (.xlsx,
// .csv, .json) or a JSON array of row objects. The sheet is parsed in full
// before the book is touched, so a bad file changes nothing.
func (h *Handlers) ImportQuotes(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUpload)
	rows, err := readImportRows(r, h.MaxUpload)
	if err != nil {
		log.Warn().Err(err).Msg("quote import: parse failed")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.Book.Import(r.Context(), rows)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Info().Int("rows", res.Rows).Int("created", res.Created).Int("updated", res.Updated).Msg("quote import")
	writeJSON(w, http.StatusOK, res)
}

func readImportRows(r *http.Request, limit int64) ([]importer.Row, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return spreadsheet.ReadJSON(r.Body)
	}

	if err := r.ParseMultipartForm(limit); err != nil {
		return nil, err
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return spreadsheet.Read(header.Filename, file)
}
