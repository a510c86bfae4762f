package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"quote-crm/backend/internal/domain/quote/importer"
)

// readXLSX reads the first sheet. Cells are taken raw so numbers and dates
// reach the importer unformatted.
func readXLSX(r io.Reader) ([]importer.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return toRows(records)
}
