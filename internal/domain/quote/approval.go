package quote

import (
	"errors"
	"time"
)

var ErrApprovalNotRequested = errors.New("approval has not been requested")

// RequestApproval moves the quote's approval to Requested.
func (q *Quote) RequestApproval(approver, note string, now time.Time) {
	q.Approval = Approval{
		State:       ApprovalRequested,
		Approver:    approver,
		RequestedAt: Stamp(now),
		Note:        note,
	}
}

// DecideApproval records the approver's decision on a pending request.
func (q *Quote) DecideApproval(approved bool, note string, now time.Time) error {
	if q.Approval.State != ApprovalRequested {
		return ErrApprovalNotRequested
	}
	q.Approval.State = ApprovalDeclined
	if approved {
		q.Approval.State = ApprovalApproved
	}
	q.Approval.DecidedAt = Stamp(now)
	if note != "" {
		q.Approval.Note = note
	}
	return nil
}
