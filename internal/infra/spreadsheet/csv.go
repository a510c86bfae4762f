package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"

	"quote-crm/backend/internal/domain/quote/importer"
)

func readCSV(r io.Reader) ([]importer.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return toRows(records)
}
