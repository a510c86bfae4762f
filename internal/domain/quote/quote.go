package quote

import "time"

// DateLayout is the calendar date format used for business dates.
const DateLayout = "2006-01-02"

// DefaultValidity is how long a freshly drafted quote stays valid.
const DefaultValidity = 30 * 24 * time.Hour

type Quote struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Customer    string   `json:"customer" yaml:"customer"`
	Contact     string   `json:"contact" yaml:"contact"`
	Value       float64  `json:"value" yaml:"value"`
	Currency    Currency `json:"currency" yaml:"currency"`
	Probability float64  `json:"probability" yaml:"probability"`
	Status      Status   `json:"status" yaml:"status"`
	Originator  string   `json:"originator" yaml:"originator"`
	StartDate   string   `json:"startDate" yaml:"startDate"`
	ValidUntil  string   `json:"validUntil" yaml:"validUntil"`
	Notes       string   `json:"notes" yaml:"notes"`
	Approval    Approval `json:"approval" yaml:"approval"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   string   `json:"updatedAt" yaml:"updatedAt"`
}

type Approval struct {
	State       ApprovalState `json:"state" yaml:"state"`
	Approver    string        `json:"approver" yaml:"approver"`
	RequestedAt string        `json:"requestedAt" yaml:"requestedAt"`
	DecidedAt   string        `json:"decidedAt" yaml:"decidedAt"`
	Note        string        `json:"note" yaml:"note"`
}

// Draft returns the empty skeleton a new quote form starts from.
func Draft(now time.Time) Quote {
	return Quote{
		Currency:    GBP,
		Probability: 50,
		Status:      StatusDraft,
		StartDate:   now.Format(DateLayout),
		ValidUntil:  now.Add(DefaultValidity).Format(DateLayout),
		Approval:    Approval{State: ApprovalNotRequired},
	}
}

// Stamp formats an instant the way createdAt/updatedAt are stored.
func Stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Normalize forces the closed-set and numeric fields back into range.
// Unknown enum values fall back to the baseline member of their set.
func (q Quote) Normalize() Quote {
	q.Currency = ParseCurrency(string(q.Currency))
	q.Status = ParseStatus(string(q.Status))
	q.Approval.State = ParseApprovalState(string(q.Approval.State))
	if q.Value < 0 || q.Value != q.Value {
		q.Value = 0
	}
	if q.Probability < 0 || q.Probability > 100 || q.Probability != q.Probability {
		q.Probability = 0
	}
	return q
}
