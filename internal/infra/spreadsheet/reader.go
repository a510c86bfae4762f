// Package spreadsheet parses uploaded quote sheets into raw rows keyed by
// their header cells.
package spreadsheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quote-crm/backend/internal/domain/quote/importer"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoHeader          = errors.New("spreadsheet has no header row")
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat picks the parser from the file extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
}

// Read parses the whole file named name from r. Either every row is returned
// or an error is, never a partial batch.
func Read(name string, r io.Reader) ([]importer.Row, error) {
	f, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}
	return ReadFormat(f, r)
}

func ReadFormat(f Format, r io.Reader) ([]importer.Row, error) {
	switch f {
	case FormatXLSX:
		return readXLSX(r)
	case FormatCSV:
		return readCSV(r)
	case FormatJSON:
		return ReadJSON(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// ReadJSON accepts an array of objects, the shape a client-side sheet parser
// produces.
func ReadJSON(r io.Reader) ([]importer.Row, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var rows []importer.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("parse json rows: %w", err)
	}
	return rows, nil
}

// toRows zips a header row with the data rows. Blank header cells and
// entirely blank rows are skipped; short rows simply lack the trailing keys.
func toRows(records [][]string) ([]importer.Row, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	header := make([]string, len(records[0]))
	hasHeader := false
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if header[i] != "" {
			hasHeader = true
		}
	}
	if !hasHeader {
		return nil, ErrNoHeader
	}

	rows := make([]importer.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := importer.Row{}
		for i, cell := range rec {
			if i >= len(header) || header[i] == "" || strings.TrimSpace(cell) == "" {
				continue
			}
			row[header[i]] = cell
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
