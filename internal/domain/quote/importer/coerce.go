package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"quote-crm/backend/internal/domain/quote"
)

// Excel day numbers accepted as dates: 1927-05-18 through 9999-12-31 in the
// 1900 date system. Smaller numbers are more likely years or counts.
const (
	minExcelSerial = 10000
	maxExcelSerial = 2958465
)

var dateLayouts = []string{
	quote.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2006/01/02",
	"02.01.2006",
}

func AsString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	case time.Time:
		return t.Format(quote.DateLayout), true
	case fmt.Stringer:
		return t.String(), true
	case int, int64, int32, float32, bool:
		return fmt.Sprint(t), true
	}
	return "", false
}

// AsVerbatim keeps string cells exactly as supplied, surrounding
// whitespace included.
func AsVerbatim(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	return AsString(v)
}

func AsNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// AsNonNegative rejects negative amounts.
func AsNonNegative(v any) (float64, bool) {
	f, ok := AsNumber(v)
	if !ok || f < 0 {
		return 0, false
	}
	return f, true
}

// AsPercent accepts values in [0, 100].
func AsPercent(v any) (float64, bool) {
	f, ok := AsNumber(v)
	if !ok || f < 0 || f > 100 {
		return 0, false
	}
	return f, true
}

// AsEnum matches a cell against a closed set ignoring case.
func AsEnum[E ~string](set []E) Coercion[E] {
	return func(v any) (E, bool) {
		s, ok := AsString(v)
		if !ok {
			var zero E
			return zero, false
		}
		return quote.Lookup(set, s)
	}
}

// AsDate accepts ISO dates, a handful of common spreadsheet layouts and
// Excel serial day numbers, returning an ISO calendar date.
func AsDate(v any) (string, bool) {
	if t, ok := v.(time.Time); ok {
		return t.Format(quote.DateLayout), true
	}
	if serial, ok := AsNumber(v); ok {
		return fromSerial(serial)
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(quote.DateLayout), true
		}
	}
	return "", false
}

func fromSerial(serial float64) (string, bool) {
	if serial < minExcelSerial || serial > maxExcelSerial {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format(quote.DateLayout), true
}
