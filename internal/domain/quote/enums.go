package quote

import "strings"

type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists the accepted currencies; the first one is the baseline.
var Currencies = []Currency{GBP, USD, EUR}

type Status string

const (
	StatusDraft    Status = "Draft"
	StatusSent     Status = "Sent"
	StatusAccepted Status = "Accepted"
	StatusDeclined Status = "Declined"
	StatusExpired  Status = "Expired"
)

var Statuses = []Status{StatusDraft, StatusSent, StatusAccepted, StatusDeclined, StatusExpired}

type ApprovalState string

const (
	ApprovalNotRequired ApprovalState = "Not Required"
	ApprovalRequested   ApprovalState = "Requested"
	ApprovalApproved    ApprovalState = "Approved"
	ApprovalDeclined    ApprovalState = "Declined"
)

var ApprovalStates = []ApprovalState{ApprovalNotRequired, ApprovalRequested, ApprovalApproved, ApprovalDeclined}

// Lookup matches s against the members of set ignoring case and surrounding
// whitespace, returning the canonical spelling.
func Lookup[E ~string](set []E, s string) (E, bool) {
	s = strings.TrimSpace(s)
	for _, m := range set {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	var zero E
	return zero, false
}

func ParseCurrency(s string) Currency {
	if c, ok := Lookup(Currencies, s); ok {
		return c
	}
	return GBP
}

func ParseStatus(s string) Status {
	if st, ok := Lookup(Statuses, s); ok {
		return st
	}
	return StatusDraft
}

func ParseApprovalState(s string) ApprovalState {
	if st, ok := Lookup(ApprovalStates, s); ok {
		return st
	}
	return ApprovalNotRequired
}
