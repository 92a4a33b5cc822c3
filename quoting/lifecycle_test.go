package quoting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

func draftQuote(customerRef string) *quoting.Quote {
	q := quoting.NewQuote("0001", quoting.DefaultRateProfile(), time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC))
	q.Details.CustomerRef = customerRef
	return q
}

func TestLifecycle_QuoteRequiresCustomer(t *testing.T) {
	// GIVEN: A draft with no customer reference
	// WHEN: Transitioning to quoted
	// THEN: Rejected with ErrCustomerRequired, status unchanged

	q := draftQuote("")
	err := q.Transition(quoting.StatusQuoted)

	if !errors.Is(err, quoting.ErrCustomerRequired) {
		t.Fatalf("expected ErrCustomerRequired, got %v", err)
	}
	if q.Status != quoting.StatusDraft {
		t.Errorf("status changed on rejection: %s", q.Status)
	}

	// WHEN: A customer is set
	// THEN: The transition succeeds and the quote locks immediately
	q.Details.CustomerRef = "Acme Mining"
	if err := q.Transition(quoting.StatusQuoted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.IsLocked() {
		t.Error("quoted quote should be locked")
	}
}

func TestLifecycle_TransitionTable(t *testing.T) {
	cases := []struct {
		from, to quoting.Status
		ok       bool
	}{
		{quoting.StatusDraft, quoting.StatusQuoted, true},
		{quoting.StatusDraft, quoting.StatusArchived, true},
		{quoting.StatusDraft, quoting.StatusInvoice, false},
		{quoting.StatusDraft, quoting.StatusClosed, false},
		{quoting.StatusQuoted, quoting.StatusDraft, true},
		{quoting.StatusQuoted, quoting.StatusInvoice, true},
		{quoting.StatusQuoted, quoting.StatusArchived, true},
		{quoting.StatusQuoted, quoting.StatusClosed, false},
		{quoting.StatusInvoice, quoting.StatusDraft, true},
		{quoting.StatusInvoice, quoting.StatusClosed, true},
		{quoting.StatusInvoice, quoting.StatusQuoted, false},
		{quoting.StatusClosed, quoting.StatusDraft, true},
		{quoting.StatusClosed, quoting.StatusInvoice, true},
		{quoting.StatusClosed, quoting.StatusQuoted, false},
		{quoting.StatusArchived, quoting.StatusDraft, true},
		{quoting.StatusArchived, quoting.StatusQuoted, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestLifecycle_InvoiceIsNotLocked(t *testing.T) {
	// Invoice-stage quotes remain editable by design; only quoting or
	// closing locks data.

	if quoting.StatusInvoice.Locked() {
		t.Error("invoice must not be locked")
	}
	if quoting.StatusDraft.Locked() || quoting.StatusArchived.Locked() {
		t.Error("draft and archived must not be locked")
	}
	if !quoting.StatusQuoted.Locked() || !quoting.StatusClosed.Locked() {
		t.Error("quoted and closed must be locked")
	}
}

func TestLifecycle_UnknownStatusRejected(t *testing.T) {
	q := draftQuote("Acme Mining")
	err := q.Transition(quoting.Status("pending"))
	if !errors.Is(err, quoting.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	var terr *quoting.TransitionError
	if !errors.As(err, &terr) {
		t.Fatal("expected a TransitionError")
	}
	if terr.From != quoting.StatusDraft {
		t.Errorf("From = %s, want draft", terr.From)
	}
}

func TestLifecycle_RejectionsCarrySentinels(t *testing.T) {
	// Every rejection path unwraps to the right sentinel regardless of
	// the human-readable reason text.

	q := draftQuote("Acme Mining")
	if err := q.Transition(quoting.StatusClosed); !errors.Is(err, quoting.ErrInvalidTransition) {
		t.Errorf("draft -> closed: expected ErrInvalidTransition, got %v", err)
	}

	q = draftQuote("")
	if err := q.Transition(quoting.StatusQuoted); !errors.Is(err, quoting.ErrCustomerRequired) {
		t.Errorf("draft -> quoted without customer: expected ErrCustomerRequired, got %v", err)
	}
}

func TestLifecycle_ReopenFromClosed(t *testing.T) {
	// closed -> draft and closed -> invoice are explicit re-opens.

	q := draftQuote("Acme Mining")
	mustTransition(t, q, quoting.StatusQuoted, quoting.StatusInvoice, quoting.StatusClosed)

	if err := q.Transition(quoting.StatusDraft); err != nil {
		t.Fatalf("closed -> draft: %v", err)
	}
	if q.IsLocked() {
		t.Error("reopened draft should be editable")
	}
}

func mustTransition(t *testing.T, q *quoting.Quote, path ...quoting.Status) {
	t.Helper()
	for _, to := range path {
		if err := q.Transition(to); err != nil {
			t.Fatalf("transition to %s: %v", to, err)
		}
	}
}
