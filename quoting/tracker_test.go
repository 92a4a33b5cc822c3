package quoting_test

import (
	"testing"
	"time"

	"github.com/Coresick-au/Ai-MaintenanceApp-sub005/quoting"
)

func TestTracker_EditingAnyRateFieldSetsDirty(t *testing.T) {
	// GIVEN: A tracker baselined on a freshly loaded customer
	// WHEN: A single rate field changes on the (copied) edit value
	// THEN: Dirty reports true; the untouched copy reports false

	customer := quoting.Customer{ID: "cust-1", Name: "Acme Mining", Rates: testRates()}
	tracker := quoting.NewUnsavedChangesTracker(customer.EditState())

	clean := customer.EditState()
	if tracker.Dirty(clean) {
		t.Fatal("untouched copy should not be dirty")
	}

	edited := customer.EditState()
	edited.Rates.SiteOvertime = d(195)
	if !tracker.Dirty(edited) {
		t.Error("rate edit should be dirty")
	}
}

func TestTracker_SaveResetsBaseline(t *testing.T) {
	customer := quoting.Customer{ID: "cust-1", Rates: testRates()}
	tracker := quoting.NewUnsavedChangesTracker(customer.EditState())

	edited := customer.EditState()
	edited.Rates.VehicleAllowance = d(110)
	if !tracker.Dirty(edited) {
		t.Fatal("edit should be dirty before save")
	}

	// Saving moves the baseline to the just-saved value.
	tracker.Reset(edited)
	if tracker.Dirty(edited) {
		t.Error("just-saved value should be clean")
	}
	if !tracker.Dirty(customer.EditState()) {
		t.Error("pre-save value should now diverge from the baseline")
	}
}

func TestTracker_LockStateTracked(t *testing.T) {
	// The advisory lock flag and timestamp are part of the edit state.

	customer := quoting.Customer{ID: "cust-1", Rates: testRates()}
	tracker := quoting.NewUnsavedChangesTracker(customer.EditState())

	edited := customer
	edited.Lock(time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC))
	if !tracker.Dirty(edited.EditState()) {
		t.Error("lock change should be dirty")
	}
}

func TestTracker_StructuralNotReferenceEquality(t *testing.T) {
	// Two independently built but identical profiles compare equal;
	// the tracker must never rely on object identity.

	a := testRates()
	b := testRates()
	if !a.Equal(b) {
		t.Fatal("identical profiles should be equal")
	}

	b.ExpenseTemplates = append(b.ExpenseTemplates, quoting.ExpenseTemplate{Name: "Tolls", Cost: d(25)})
	if a.Equal(b) {
		t.Error("template difference should break equality")
	}
}
