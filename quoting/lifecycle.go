/*
lifecycle.go - Quote status state machine

PURPOSE:
  Governs whether a quote's data is mutable and which status changes
  are legal. Implemented as a closed enumeration with a central
  transition table, so an illegal transition is always rejected in one
  place rather than by scattered boolean checks.

LOCKING:
  isLocked = quoted OR closed. Invoice-stage quotes stay editable by
  design: only formally quoting or closing locks data. While locked,
  every mutating operation on the quote is a silent no-op; the core
  enforces this independently of any UI affordance.

TRANSITIONS:
  draft    -> quoted (requires customer), archived
  quoted   -> draft, invoice, archived
  invoice  -> draft, closed
  closed   -> draft, invoice
  archived -> draft
*/
package quoting

// Status is the quote lifecycle state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusQuoted   Status = "quoted"
	StatusInvoice  Status = "invoice"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

// transitions is the single source of truth for legal status changes.
var transitions = map[Status][]Status{
	StatusDraft:    {StatusQuoted, StatusArchived},
	StatusQuoted:   {StatusDraft, StatusInvoice, StatusArchived},
	StatusInvoice:  {StatusDraft, StatusClosed},
	StatusClosed:   {StatusDraft, StatusInvoice},
	StatusArchived: {StatusDraft},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Locked reports whether a quote in this status rejects mutation.
// Invoice is deliberately not locked.
func (s Status) Locked() bool {
	return s == StatusQuoted || s == StatusClosed
}

// CanTransition reports whether the table permits moving to the given
// status. Guards (like the customer requirement) are checked by
// Transition, not here.
func (s Status) CanTransition(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition moves the quote to a new status, validating the table
// and the draft->quoted customer guard. On rejection the status is
// unchanged and a TransitionError carries the user-facing reason.
func (q *Quote) Transition(to Status) error {
	if !to.Valid() {
		return &TransitionError{From: q.Status, To: to, Reason: "unknown status", Err: ErrInvalidTransition}
	}
	if !q.Status.CanTransition(to) {
		return &TransitionError{From: q.Status, To: to, Reason: "not permitted", Err: ErrInvalidTransition}
	}
	if q.Status == StatusDraft && to == StatusQuoted && q.Details.CustomerRef == "" {
		return &TransitionError{From: q.Status, To: to, Reason: "customer required", Err: ErrCustomerRequired}
	}
	q.Status = to
	return nil
}

// IsLocked reports whether the quote currently rejects mutation.
func (q *Quote) IsLocked() bool { return q.Status.Locked() }
