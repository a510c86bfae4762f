package pdf

import (
	"fmt"
	"regexp"
	"strings"

	"quote-crm/backend/internal/domain/quote"
)

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}

// Line is one label/value row of the printed quote.
type Line struct {
	Label string
	Value string
}

func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// Lines lays out the quote in print order. Notes are left out when empty.
func Lines(q quote.Quote) []Line {
	lines := []Line{
		{Value: fmt.Sprintf("Quotation for %s", q.Customer)},
		{Label: "Title", Value: q.Title},
		{Label: "Value", Value: quote.FormatMoney(q.Value, q.Currency)},
		{Label: "Status", Value: string(q.Status)},
		{Label: "Originator", Value: q.Originator},
		{Label: "Start Date", Value: q.StartDate},
	}
	if strings.TrimSpace(q.Notes) != "" {
		lines = append(lines, Line{Label: "Notes", Value: q.Notes})
	}
	return lines
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}._ -]+`)

// FileName names the exported document after the customer.
func FileName(q quote.Quote) string {
	name := strings.TrimSpace(unsafeFileChars.ReplaceAllString(q.Customer, "_"))
	if name == "" {
		name = "quote"
	}
	return name + "_quote.pdf"
}
