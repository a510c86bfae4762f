package importer

import "quote-crm/backend/internal/domain/quote"

// Alias table. Keys are case-sensitive and listed in priority order.
var (
	FieldID          = Field[string]{Aliases: []string{"id", "ID"}, Coerce: AsVerbatim}
	FieldTitle       = Field[string]{Aliases: []string{"title", "Title"}, Coerce: AsString}
	FieldCustomer    = Field[string]{Aliases: []string{"customer", "Customer", "client", "Client"}, Coerce: AsString}
	FieldContact     = Field[string]{Aliases: []string{"contact", "Contact"}, Coerce: AsString}
	FieldValue       = Field[float64]{Aliases: []string{"value", "Value"}, Coerce: AsNonNegative}
	FieldCurrency    = Field[quote.Currency]{Aliases: []string{"currency", "Currency"}, Coerce: AsEnum(quote.Currencies), Default: quote.GBP}
	FieldStatus      = Field[quote.Status]{Aliases: []string{"status", "Status"}, Coerce: AsEnum(quote.Statuses), Default: quote.StatusDraft}
	FieldProbability = Field[float64]{Aliases: []string{"probability", "Probability"}, Coerce: AsPercent}
	FieldOriginator  = Field[string]{Aliases: []string{"originator", "Originator", "owner", "Owner"}, Coerce: AsString}
	FieldStartDate   = Field[string]{Aliases: []string{"startDate", "Start Date"}, Coerce: AsDate}
	FieldValidUntil  = Field[string]{Aliases: []string{"validUntil", "Valid Until"}, Coerce: AsDate}
	FieldNotes       = Field[string]{Aliases: []string{"notes", "Notes"}, Coerce: AsString}

	FieldApprovalState = Field[quote.ApprovalState]{
		Aliases: []string{"approvalState", "Approval State", "approval", "Approval"},
		Coerce:  AsEnum(quote.ApprovalStates),
		Default: quote.ApprovalNotRequired,
	}
	FieldApprover = Field[string]{Aliases: []string{"approver", "Approver"}, Coerce: AsString}
)
