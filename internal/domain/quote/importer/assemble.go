package importer

import (
	"time"

	"github.com/google/uuid"

	"quote-crm/backend/internal/domain/quote"
)

// Assembler builds complete quotes from raw rows.
type Assembler struct {
	Now   func() time.Time
	NewID func() string
}

func NewAssembler() Assembler {
	return Assembler{Now: time.Now, NewID: uuid.NewString}
}

// Assemble produces one quote from one row. A non-empty id in the row is kept
// verbatim so re-importing the same sheet updates instead of duplicating.
func (a Assembler) Assemble(row Row) quote.Quote {
	now := a.Now()
	stamp := quote.Stamp(now)

	id := Extract(row, FieldID)
	if id == "" {
		id = a.NewID()
	}

	q := quote.Quote{
		ID:          id,
		Title:       Extract(row, FieldTitle),
		Customer:    Extract(row, FieldCustomer),
		Contact:     Extract(row, FieldContact),
		Value:       Extract(row, FieldValue),
		Currency:    Extract(row, FieldCurrency),
		Probability: Extract(row, FieldProbability),
		Status:      Extract(row, FieldStatus),
		Originator:  Extract(row, FieldOriginator),
		StartDate:   Extract(row, FieldStartDate.WithDefault(now.Format(quote.DateLayout))),
		ValidUntil:  Extract(row, FieldValidUntil),
		Notes:       Extract(row, FieldNotes),
		Approval: quote.Approval{
			State:    Extract(row, FieldApprovalState),
			Approver: Extract(row, FieldApprover),
		},
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	return q
}

func (a Assembler) AssembleAll(rows []Row) []quote.Quote {
	out := make([]quote.Quote, 0, len(rows))
	for _, r := range rows {
		out = append(out, a.Assemble(r))
	}
	return out
}
