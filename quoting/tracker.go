/*
tracker.go - Unsaved changes detection for rate editing

PURPOSE:
  Detects divergence between a live rate edit and the last persisted
  snapshot, used to gate save actions and warn before navigation. The
  edited value is always a copy of the baseline, so comparison must be
  full structural equality over the fields, never reference identity
  or a serialization round-trip.
*/
package quoting

import "time"

// RateEdit is the editable state of a customer rate screen: the rate
// profile plus the advisory lock state.
type RateEdit struct {
	Rates    RateProfile
	Locked   bool
	LockedAt *time.Time
}

// Equal reports structural equality over rates and lock state.
func (e RateEdit) Equal(o RateEdit) bool {
	if !e.Rates.Equal(o.Rates) || e.Locked != o.Locked {
		return false
	}
	switch {
	case e.LockedAt == nil && o.LockedAt == nil:
		return true
	case e.LockedAt == nil || o.LockedAt == nil:
		return false
	default:
		return e.LockedAt.Equal(*o.LockedAt)
	}
}

// EditState returns the trackable edit state of a customer.
func (c Customer) EditState() RateEdit {
	return RateEdit{Rates: c.Rates, Locked: c.Locked, LockedAt: c.LockedAt}
}

// UnsavedChangesTracker holds the baseline snapshot taken when a rate
// profile was loaded for editing.
type UnsavedChangesTracker struct {
	baseline RateEdit
}

// NewUnsavedChangesTracker snapshots the just-loaded state as the
// baseline.
func NewUnsavedChangesTracker(loaded RateEdit) *UnsavedChangesTracker {
	return &UnsavedChangesTracker{baseline: loaded}
}

// Dirty reports whether the live edit diverges from the baseline.
func (t *UnsavedChangesTracker) Dirty(current RateEdit) bool {
	return !t.baseline.Equal(current)
}

// Reset moves the baseline to the just-saved value.
func (t *UnsavedChangesTracker) Reset(saved RateEdit) {
	t.baseline = saved
}
