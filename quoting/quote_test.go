package quoting_test

import (
	"testing"
	"time"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

// =============================================================================
// LOCK DISCIPLINE
// =============================================================================

func TestQuote_LockedMutatorsAreNoOps(t *testing.T) {
	// GIVEN: A quoted (locked) quote
	// WHEN: Every mutating operation is attempted
	// THEN: Nothing changes; rejection is silent by policy

	q := draftQuote("Acme Mining")
	q.AddExtra("Crane hire", d(500))
	mustTransition(t, q, quoting.StatusQuoted)

	shiftCount := len(q.Shifts)
	extraCount := len(q.Extras)
	ratesBefore := q.Rates

	q.AddShift(quoting.NewShift(time.Now()))
	q.RemoveShift(q.Shifts[0].ID)
	start := "07:00"
	q.UpdateShift(q.Shifts[0].ID, quoting.ShiftPatch{Start: &start})
	q.AddExtra("Should not appear", d(1))
	q.RemoveExtra(q.Extras[0].ID)
	q.AddExpense("Should not appear", d(1))
	ref := "Other Customer"
	q.UpdateDetails(quoting.JobDetailsPatch{CustomerRef: &ref})
	newRates := quoting.DefaultRateProfile()
	newRates.SiteNormal = d(999)
	q.SetRates(newRates)

	if len(q.Shifts) != shiftCount {
		t.Errorf("shift count changed: %d -> %d", shiftCount, len(q.Shifts))
	}
	if q.Shifts[0].Start != "" {
		t.Errorf("shift start mutated while locked: %q", q.Shifts[0].Start)
	}
	if len(q.Extras) != extraCount || len(q.Expenses) != 0 {
		t.Error("line items mutated while locked")
	}
	if q.Details.CustomerRef != "Acme Mining" {
		t.Errorf("details mutated while locked: %q", q.Details.CustomerRef)
	}
	if !q.Rates.Equal(ratesBefore) {
		t.Error("rates mutated while locked")
	}
}

func TestQuote_UnlockRestoresMutation(t *testing.T) {
	q := draftQuote("Acme Mining")
	mustTransition(t, q, quoting.StatusQuoted, quoting.StatusDraft)

	q.AddExtra("Crane hire", d(500))
	if len(q.Extras) != 1 {
		t.Fatal("mutation should work after unlock")
	}
}

// =============================================================================
// PATCH SEMANTICS
// =============================================================================

func TestQuote_UpdateShift_PartialPatch(t *testing.T) {
	// Nil patch fields leave the shift untouched.

	q := draftQuote("")
	id := q.Shifts[0].ID
	start, finish := "06:00", "18:00"
	night := true

	q.UpdateShift(id, quoting.ShiftPatch{Start: &start, Finish: &finish})
	q.UpdateShift(id, quoting.ShiftPatch{IsNightShift: &night})

	s := q.Shifts[0]
	if s.Start != "06:00" || s.Finish != "18:00" || !s.IsNightShift {
		t.Errorf("patch not applied: %+v", s)
	}
	if s.DayType != quoting.DayTypeFor(s.Date) {
		t.Errorf("untouched field changed: %s", s.DayType)
	}
}

func TestQuote_UpdateShift_UnknownIDIgnored(t *testing.T) {
	q := draftQuote("")
	start := "06:00"
	q.UpdateShift("no-such-shift", quoting.ShiftPatch{Start: &start})
	if q.Shifts[0].Start != "" {
		t.Error("patch applied to wrong shift")
	}
}

func TestQuote_NewQuoteSeedsDefaultShift(t *testing.T) {
	now := time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC) // a Saturday
	q := quoting.NewQuote("0007", quoting.DefaultRateProfile(), now)

	if q.Status != quoting.StatusDraft {
		t.Errorf("new quote status = %s", q.Status)
	}
	if len(q.Shifts) != 1 {
		t.Fatalf("expected one seeded shift, got %d", len(q.Shifts))
	}
	if q.Shifts[0].DayType != quoting.DayWeekend {
		t.Errorf("seeded shift day type = %s, want weekend", q.Shifts[0].DayType)
	}
}

// =============================================================================
// RATE SNAPSHOT SEMANTICS
// =============================================================================

func TestQuote_CustomerRatesAreSnapshot(t *testing.T) {
	// GIVEN: A quote created from a customer's profile
	// WHEN: The customer's profile changes afterwards
	// THEN: The quote's snapshot is unaffected

	customer := &quoting.Customer{
		ID:    "cust-1",
		Name:  "Acme Mining",
		Rates: testRates(),
	}

	q := draftQuote("")
	q.ApplyCustomer(customer)
	if q.Details.CustomerRef != "Acme Mining" {
		t.Fatalf("customer ref = %q", q.Details.CustomerRef)
	}

	customer.Rates.SiteNormal = d(9999)
	assertDec(t, "snapshot rate", q.Rates.SiteNormal, d(160))
}

func TestResolveRates(t *testing.T) {
	defaults := quoting.DefaultRateProfile()
	customer := &quoting.Customer{Rates: testRates()}
	customer.Rates.SiteNormal = d(175)

	assertDec(t, "customer profile", quoting.ResolveRates(customer, defaults).SiteNormal, d(175))
	assertDec(t, "defaults", quoting.ResolveRates(nil, defaults).SiteNormal, defaults.SiteNormal)
}

// =============================================================================
// NUMBERING
// =============================================================================

func TestNextQuoteNumber(t *testing.T) {
	cases := []struct {
		existing []string
		want     string
	}{
		{nil, "0001"},
		{[]string{"0001", "0002"}, "0003"},
		{[]string{"0002", "0009", "0005"}, "0010"},  // max+1, not len+1
		{[]string{"0001", "junk", ""}, "0002"},      // non-numeric skipped
		{[]string{"9999"}, "10000"},                 // grows past the pad
	}
	for _, c := range cases {
		if got := quoting.NextQuoteNumber(c.existing); got != c.want {
			t.Errorf("NextQuoteNumber(%v) = %q, want %q", c.existing, got, c.want)
		}
	}
}
